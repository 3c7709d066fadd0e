package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/ak038819-sudo/College-Football-Coefficient/config"
	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Team)(nil),
		(*models.TeamMembership)(nil),
		(*models.Game)(nil),
		(*models.ConferenceStanding)(nil),
		(*models.ConferenceChampion)(nil),
		(*models.SeasonRating)(nil),
		(*models.RatingRolling)(nil),
		(*models.TeamCoeComponent)(nil),
		(*models.TeamCoefficientYear)(nil),
		(*models.TeamCoefficientRolling)(nil),
		(*models.ConferenceCoeComponent)(nil),
		(*models.ConferenceCoefficientYear)(nil),
		(*models.ConferenceCoefficientRolling)(nil),
		(*models.ConferenceTeamRecord)(nil),
		(*models.Qualifier)(nil),
		(*models.FieldEntry)(nil),
		(*models.BracketSlot)(nil),
		(*models.DrawRecord)(nil),
		(*models.PlayoffGame)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	constraints := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ratings_no_dupes') THEN ALTER TABLE team_ratings_by_season ADD CONSTRAINT ratings_no_dupes UNIQUE (season_year, team_id, formula_version); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'team_coe_year_no_dupes') THEN ALTER TABLE team_coefficient_by_year ADD CONSTRAINT team_coe_year_no_dupes UNIQUE (season_year, team_id, formula_version); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'conf_coe_year_no_dupes') THEN ALTER TABLE conference_coefficient_by_year ADD CONSTRAINT conf_coe_year_no_dupes UNIQUE (season_year, conference, formula_version); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bracket_no_dupes') THEN ALTER TABLE playoff_bracket_by_year ADD CONSTRAINT bracket_no_dupes UNIQUE (season_year, slot, formula_version, ruleset); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'field_no_dupes') THEN ALTER TABLE playoff_field_by_year ADD CONSTRAINT field_no_dupes UNIQUE (season_year, team_id, formula_version, ruleset); END IF; END $$`,
	}
	for _, stmt := range constraints {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("constraint: %v", err)
		}
	}

	return nil
}
