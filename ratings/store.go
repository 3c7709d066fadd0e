package ratings

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// ComputeSeason loads a season's games, runs the solver and replaces the
// stored ratings for (year, version). Returns the number of rated teams.
func ComputeSeason(ctx context.Context, db *bun.DB, year int, version string, opts Options, log *zap.Logger) (int, error) {
	var games []models.Game
	err := db.NewSelect().Model(&games).
		Where("season_year = ?", year).
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading games for %d: %w", year, err)
	}
	if len(games) == 0 {
		log.Warn("no games for season, ratings not computed", zap.Int("year", year))
		return 0, nil
	}

	rating := Season(games, opts)

	rows := make([]models.SeasonRating, 0, len(rating))
	for tid, r := range rating {
		rows = append(rows, models.SeasonRating{
			SeasonYear:     year,
			TeamID:         tid,
			Rating:         r,
			FormulaVersion: version,
		})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.NewDelete().Model((*models.SeasonRating)(nil)).
		Where("season_year = ? AND formula_version = ?", year, version).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing ratings for %d: %w", year, err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting ratings for %d: %w", year, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	log.Info("season ratings computed",
		zap.Int("year", year),
		zap.Int("teams", len(rows)),
		zap.String("formula_version", version))

	return len(rows), nil
}

// ComputeRolling aggregates stored season ratings into one figure per team for
// the trailing window ending at endYear, then replaces the stored rolling rows
// for (endYear, version). A partial window writes nothing and is not an error.
func ComputeRolling(ctx context.Context, db *bun.DB, endYear int, version string, opts RollingOptions, log *zap.Logger) (int, error) {
	startYear := endYear - (opts.Window - 1)

	var stored []models.SeasonRating
	err := db.NewSelect().Model(&stored).
		Where("season_year BETWEEN ? AND ?", startYear, endYear).
		Where("formula_version = ?", version).
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading ratings %d-%d: %w", startYear, endYear, err)
	}

	byYear := make(map[int]map[int]float64)
	for _, r := range stored {
		if byYear[r.SeasonYear] == nil {
			byYear[r.SeasonYear] = make(map[int]float64)
		}
		byYear[r.SeasonYear][r.TeamID] = r.Rating
	}

	values, start, ok := Window(byYear, endYear, opts)
	if !ok {
		log.Warn("partial rolling window, nothing emitted",
			zap.Int("end_year", endYear),
			zap.Int("window", opts.Window))
		return 0, nil
	}

	if len(values) == 0 {
		return 0, nil
	}

	rows := make([]models.RatingRolling, 0, len(values))
	for tid, v := range values {
		rows = append(rows, models.RatingRolling{
			SeasonYear:      endYear,
			TeamID:          tid,
			WindowStartYear: start,
			WindowEndYear:   endYear,
			Coefficient:     v,
			FormulaVersion:  version,
		})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.NewDelete().Model((*models.RatingRolling)(nil)).
		Where("season_year = ? AND formula_version = ?", endYear, version).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing rolling ratings for %d: %w", endYear, err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting rolling ratings for %d: %w", endYear, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	log.Info("rolling ratings computed",
		zap.Int("end_year", endYear),
		zap.Int("window_start", start),
		zap.Int("teams", len(rows)))

	return len(rows), nil
}
