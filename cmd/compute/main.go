// cmd/compute/main.go
// Recomputes season ratings, coefficients, records and rolling windows for a
// range of seasons. Safe to rerun: every table it writes is replaced per
// (season, formula version) key.
//
// Usage:
//
//	go run ./cmd/compute -from 2014 -to 2024
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/ak038819-sudo/College-Football-Coefficient/coefficients"
	"github.com/ak038819-sudo/College-Football-Coefficient/config"
	bundb "github.com/ak038819-sudo/College-Football-Coefficient/db"
	applog "github.com/ak038819-sudo/College-Football-Coefficient/logger"
	"github.com/ak038819-sudo/College-Football-Coefficient/ratings"
)

func main() {
	from := flag.Int("from", 0, "first season year (required)")
	to := flag.Int("to", 0, "last season year (required)")
	flag.Parse()

	if *from == 0 || *to == 0 || *to < *from {
		log.Fatal("both -from and -to are required, with -to >= -from")
	}

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		log.Fatal("logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	version := cfg.Engine.FormulaVersion
	ratingOpts := ratings.OptionsFromConfig(cfg.Engine)
	coeOpts := coefficients.OptionsFromConfig(cfg.Engine)
	rollOpts := ratings.RollingFromConfig(cfg.Engine)

	// Coefficient windows sum raw season values; only the rating window decays.
	coeRollOpts := rollOpts
	coeRollOpts.Decay = false

	for year := *from; year <= *to; year++ {
		if _, err := ratings.ComputeSeason(ctx, db, year, version, ratingOpts, logger); err != nil {
			logger.Fatal("season ratings failed", zap.Int("year", year), zap.Error(err))
		}
		if err := coefficients.ComputeTeamSeason(ctx, db, year, version, coeOpts, logger); err != nil {
			logger.Fatal("team coefficients failed", zap.Int("year", year), zap.Error(err))
		}
		if err := coefficients.ComputeConferenceSeason(ctx, db, year, version, coeOpts, logger); err != nil {
			logger.Fatal("conference coefficients failed", zap.Int("year", year), zap.Error(err))
		}
		if err := coefficients.ComputeRecords(ctx, db, year, logger); err != nil {
			logger.Fatal("records failed", zap.Int("year", year), zap.Error(err))
		}
	}

	for year := *from; year <= *to; year++ {
		if _, err := ratings.ComputeRolling(ctx, db, year, version, rollOpts, logger); err != nil {
			logger.Fatal("rolling ratings failed", zap.Int("year", year), zap.Error(err))
		}
		if _, err := coefficients.ComputeTeamRolling(ctx, db, year, version, coeRollOpts, logger); err != nil {
			logger.Fatal("rolling team coefficients failed", zap.Int("year", year), zap.Error(err))
		}
		if _, err := coefficients.ComputeConferenceRolling(ctx, db, year, version, coeRollOpts, logger); err != nil {
			logger.Fatal("rolling conference coefficients failed", zap.Int("year", year), zap.Error(err))
		}
	}

	logger.Info("compute finished",
		zap.Int("from", *from),
		zap.Int("to", *to),
		zap.String("formula_version", version))
}
