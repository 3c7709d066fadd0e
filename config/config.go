// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT signing secret (required for the API).
	JWTSecret string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	Engine Engine
}

// Engine holds the rating/selection tunables. Everything here has a sane
// default and can be overridden per run; none of it is hard-coded in the
// computation packages.
type Engine struct {
	// Rating solver
	Iterations    int
	LossCredit    float64
	RegularWeight float64
	BowlWeight    float64
	CFPWeight     float64

	// Rolling windows
	RollingWindow int
	DecayEnabled  bool
	DecayBase     float64

	// Coefficient scoring
	WinPoints          float64
	OTLossPoints       float64
	ParticipationBonus float64
	PerGameBonus       float64

	// Field selection and draw
	FieldSize       int
	ByeCount        int
	CapConference   string
	CapBids         int
	FloorConference string
	FloorBids       int
	DrawSeed        int64
	FormulaVersion  string
	Ruleset         string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_USER", "coe")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "league")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("DEBUG", false)

	v.SetDefault("COE_ITERATIONS", 15)
	v.SetDefault("COE_LOSS_CREDIT", 0.15)
	v.SetDefault("COE_WEIGHT_REGULAR", 1.0)
	v.SetDefault("COE_WEIGHT_BOWL", 2.0)
	v.SetDefault("COE_WEIGHT_CFP", 3.0)
	v.SetDefault("COE_ROLLING_WINDOW", 5)
	v.SetDefault("COE_DECAY_ENABLED", true)
	v.SetDefault("COE_DECAY_BASE", 0.92)
	v.SetDefault("COE_WIN_POINTS", 2.0)
	v.SetDefault("COE_OT_LOSS_POINTS", 1.0)
	v.SetDefault("COE_PARTICIPATION_BONUS", 6.0)
	v.SetDefault("COE_PER_GAME_BONUS", 1.5)
	v.SetDefault("FIELD_SIZE", 24)
	v.SetDefault("BYE_COUNT", 8)
	v.SetDefault("BID_CAP_CONFERENCE", "FBS Independents")
	v.SetDefault("BID_CAP", 2)
	v.SetDefault("BID_FLOOR_CONFERENCE", "Mid-American")
	v.SetDefault("BID_FLOOR", 1)
	v.SetDefault("DRAW_SEED", int64(20250101))
	v.SetDefault("FORMULA_VERSION", "v0")
	v.SetDefault("RULESET", "year2")

	cfg := &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		Debug:       v.GetBool("DEBUG"),
		Port:        v.GetString("PORT"),
		TLSDomains:  splitDomains(v.GetString("TLS_DOMAINS")),
		Engine: Engine{
			Iterations:         v.GetInt("COE_ITERATIONS"),
			LossCredit:         v.GetFloat64("COE_LOSS_CREDIT"),
			RegularWeight:      v.GetFloat64("COE_WEIGHT_REGULAR"),
			BowlWeight:         v.GetFloat64("COE_WEIGHT_BOWL"),
			CFPWeight:          v.GetFloat64("COE_WEIGHT_CFP"),
			RollingWindow:      v.GetInt("COE_ROLLING_WINDOW"),
			DecayEnabled:       v.GetBool("COE_DECAY_ENABLED"),
			DecayBase:          v.GetFloat64("COE_DECAY_BASE"),
			WinPoints:          v.GetFloat64("COE_WIN_POINTS"),
			OTLossPoints:       v.GetFloat64("COE_OT_LOSS_POINTS"),
			ParticipationBonus: v.GetFloat64("COE_PARTICIPATION_BONUS"),
			PerGameBonus:       v.GetFloat64("COE_PER_GAME_BONUS"),
			FieldSize:          v.GetInt("FIELD_SIZE"),
			ByeCount:           v.GetInt("BYE_COUNT"),
			CapConference:      v.GetString("BID_CAP_CONFERENCE"),
			CapBids:            v.GetInt("BID_CAP"),
			FloorConference:    v.GetString("BID_FLOOR_CONFERENCE"),
			FloorBids:          v.GetInt("BID_FLOOR"),
			DrawSeed:           v.GetInt64("DRAW_SEED"),
			FormulaVersion:     v.GetString("FORMULA_VERSION"),
			Ruleset:            v.GetString("RULESET"),
		},
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validate() {
	if c.DatabaseURL == "" && c.DBPass == "" {
		log.Fatal("config: DATABASE_URL or DB_PASS must be set")
	}
	e := c.Engine
	if e.Iterations <= 0 {
		log.Fatal("config: COE_ITERATIONS must be positive")
	}
	if e.RollingWindow <= 0 {
		log.Fatal("config: COE_ROLLING_WINDOW must be positive")
	}
	if e.FieldSize <= 0 || e.ByeCount < 0 || e.ByeCount >= e.FieldSize {
		log.Fatal("config: FIELD_SIZE/BYE_COUNT out of range")
	}
	if (e.FieldSize-e.ByeCount)%2 != 0 {
		log.Fatal("config: FIELD_SIZE minus BYE_COUNT must be even")
	}
	if strings.TrimSpace(e.FormulaVersion) == "" || strings.TrimSpace(e.Ruleset) == "" {
		log.Fatal("config: FORMULA_VERSION and RULESET must be set")
	}
}

func splitDomains(s string) []string {
	var domains []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}
