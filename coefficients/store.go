package coefficients

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
	"github.com/ak038819-sudo/College-Football-Coefficient/ratings"
)

func loadGames(ctx context.Context, db *bun.DB, year int) ([]models.Game, error) {
	var games []models.Game
	err := db.NewSelect().Model(&games).
		Where("season_year = ?", year).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading games for %d: %w", year, err)
	}
	return games, nil
}

// ComputeTeamSeason recomputes every team coefficient component for a season
// and rolls them up into team_coefficient_by_year. Each component is deleted
// and reinserted under its own name so a rerun is idempotent per component.
func ComputeTeamSeason(ctx context.Context, db *bun.DB, year int, version string, opts Options, log *zap.Logger) error {
	games, err := loadGames(ctx, db, year)
	if err != nil {
		return err
	}

	nonconf := TeamBase(games, false, opts)
	conf := TeamBase(games, true, opts)
	participation, perGame := TeamPlayoff(games, opts)

	components := []struct {
		name  string
		tally map[int]Tally
		notes string
	}{
		{models.ComponentNonConfBase, nonconf, "Win=2, OT loss=1, Loss=0; non-conf only"},
		{models.ComponentConfBase, conf, "Win=2, OT loss=1, Loss=0; conference games only"},
		{models.ComponentPlayoffParticipation, participation, "+6 per participating team"},
		{models.ComponentPlayoffGames, perGame, "+1.5 per CFP game appearance"},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	totals := make(map[int]Tally)

	for _, comp := range components {
		_, err = tx.NewDelete().Model((*models.TeamCoeComponent)(nil)).
			Where("season_year = ? AND component = ? AND formula_version = ?", year, comp.name, version).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clearing team component %s: %w", comp.name, err)
		}

		if len(comp.tally) == 0 {
			continue
		}

		rows := make([]models.TeamCoeComponent, 0, len(comp.tally))
		for tid, t := range comp.tally {
			rows = append(rows, models.TeamCoeComponent{
				SeasonYear:     year,
				TeamID:         tid,
				Component:      comp.name,
				Points:         t.Points,
				GamesCounted:   t.Games,
				FormulaVersion: version,
				Notes:          comp.notes,
			})

			sum := totals[tid]
			sum.Points += t.Points
			sum.Games += t.Games
			totals[tid] = sum
		}

		if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("inserting team component %s: %w", comp.name, err)
		}
	}

	_, err = tx.NewDelete().Model((*models.TeamCoefficientYear)(nil)).
		Where("season_year = ? AND formula_version = ?", year, version).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clearing team rollup for %d: %w", year, err)
	}

	if len(totals) > 0 {
		rollup := make([]models.TeamCoefficientYear, 0, len(totals))
		for tid, t := range totals {
			rollup = append(rollup, models.TeamCoefficientYear{
				SeasonYear:     year,
				TeamID:         tid,
				TotalPoints:    t.Points,
				GamesCounted:   t.Games,
				PointsPerGame:  PPG(t.Points, t.Games),
				FormulaVersion: version,
			})
		}
		if _, err = tx.NewInsert().Model(&rollup).Exec(ctx); err != nil {
			return fmt.Errorf("inserting team rollup for %d: %w", year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("team coefficients computed",
		zap.Int("year", year),
		zap.Int("teams", len(totals)),
		zap.String("formula_version", version))

	return nil
}

// ComputeConferenceSeason recomputes every conference coefficient component
// for a season and rolls them up. The rollup's games-counted sums only the
// non-conference and playoff-games components: in-conference games and
// participation counts stay out of the points-per-game denominator.
func ComputeConferenceSeason(ctx context.Context, db *bun.DB, year int, version string, opts Options, log *zap.Logger) error {
	games, err := loadGames(ctx, db, year)
	if err != nil {
		return err
	}

	nonconf := ConferenceBase(games, false, opts)
	conf := ConferenceBase(games, true, opts)
	participation, perGame := ConferencePlayoff(games, opts)

	components := []struct {
		name    string
		tally   map[string]Tally
		inDenom bool
		notes   string
	}{
		{models.ComponentNonConfBase, nonconf, true, "Win=2, OT loss=1, Loss=0; non-conf only"},
		{models.ComponentConfBase, conf, false, "Win=2, OT loss=1, Loss=0; conference games only"},
		{models.ComponentPlayoffParticipation, participation, false, "+6 per participating team"},
		{models.ComponentPlayoffGames, perGame, true, "+1.5 per CFP game appearance"},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	points := make(map[string]float64)
	gamesCounted := make(map[string]int)

	for _, comp := range components {
		_, err = tx.NewDelete().Model((*models.ConferenceCoeComponent)(nil)).
			Where("season_year = ? AND component = ? AND formula_version = ?", year, comp.name, version).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clearing conference component %s: %w", comp.name, err)
		}

		if len(comp.tally) == 0 {
			continue
		}

		rows := make([]models.ConferenceCoeComponent, 0, len(comp.tally))
		for c, t := range comp.tally {
			rows = append(rows, models.ConferenceCoeComponent{
				SeasonYear:     year,
				Conference:     c,
				Component:      comp.name,
				Points:         t.Points,
				GamesCounted:   t.Games,
				FormulaVersion: version,
				Notes:          comp.notes,
			})

			points[c] += t.Points
			if comp.inDenom {
				gamesCounted[c] += t.Games
			}
		}

		if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("inserting conference component %s: %w", comp.name, err)
		}
	}

	_, err = tx.NewDelete().Model((*models.ConferenceCoefficientYear)(nil)).
		Where("season_year = ? AND formula_version = ?", year, version).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clearing conference rollup for %d: %w", year, err)
	}

	if len(points) > 0 {
		rollup := make([]models.ConferenceCoefficientYear, 0, len(points))
		for c, p := range points {
			rollup = append(rollup, models.ConferenceCoefficientYear{
				SeasonYear:     year,
				Conference:     c,
				TotalPoints:    p,
				GamesCounted:   gamesCounted[c],
				PointsPerGame:  PPG(p, gamesCounted[c]),
				FormulaVersion: version,
			})
		}
		if _, err = tx.NewInsert().Model(&rollup).Exec(ctx); err != nil {
			return fmt.Errorf("inserting conference rollup for %d: %w", year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("conference coefficients computed",
		zap.Int("year", year),
		zap.Int("conferences", len(points)),
		zap.String("formula_version", version))

	return nil
}

// ComputeTeamRolling replaces the trailing-window team coefficient rows for
// the window ending at endYear. Points are aggregated through the shared
// rolling aggregator; games-counted sums raw so points-per-game keeps a real
// denominator. Partial windows write nothing.
func ComputeTeamRolling(ctx context.Context, db *bun.DB, endYear int, version string, opts ratings.RollingOptions, log *zap.Logger) (int, error) {
	startYear := endYear - (opts.Window - 1)

	var byYearRows []models.TeamCoefficientYear
	err := db.NewSelect().Model(&byYearRows).
		Where("season_year BETWEEN ? AND ?", startYear, endYear).
		Where("formula_version = ?", version).
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading team rollups %d-%d: %w", startYear, endYear, err)
	}

	pointsByYear := make(map[int]map[int]float64)
	gamesByYear := make(map[int]map[int]float64)
	for _, r := range byYearRows {
		if pointsByYear[r.SeasonYear] == nil {
			pointsByYear[r.SeasonYear] = make(map[int]float64)
			gamesByYear[r.SeasonYear] = make(map[int]float64)
		}
		pointsByYear[r.SeasonYear][r.TeamID] = r.TotalPoints
		gamesByYear[r.SeasonYear][r.TeamID] = float64(r.GamesCounted)
	}

	points, start, ok := ratings.Window(pointsByYear, endYear, opts)
	if !ok {
		log.Warn("partial team coefficient window, nothing emitted",
			zap.Int("end_year", endYear), zap.Int("window", opts.Window))
		return 0, nil
	}
	if len(points) == 0 {
		return 0, nil
	}
	rawOpts := opts
	rawOpts.Decay = false
	games, _, _ := ratings.Window(gamesByYear, endYear, rawOpts)

	rows := make([]models.TeamCoefficientRolling, 0, len(points))
	for tid, p := range points {
		gc := int(games[tid])
		rows = append(rows, models.TeamCoefficientRolling{
			SeasonYear:      endYear,
			TeamID:          tid,
			WindowStartYear: start,
			WindowEndYear:   endYear,
			TotalPoints:     p,
			GamesCounted:    gc,
			PointsPerGame:   PPG(p, gc),
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

	_, err = tx.NewDelete().Model((*models.TeamCoefficientRolling)(nil)).
		Where("season_year = ? AND formula_version = ?", endYear, version).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing team rolling for %d: %w", endYear, err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting team rolling for %d: %w", endYear, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	return len(rows), nil
}

// ComputeConferenceRolling is the conference-side counterpart of
// ComputeTeamRolling.
func ComputeConferenceRolling(ctx context.Context, db *bun.DB, endYear int, version string, opts ratings.RollingOptions, log *zap.Logger) (int, error) {
	startYear := endYear - (opts.Window - 1)

	var byYearRows []models.ConferenceCoefficientYear
	err := db.NewSelect().Model(&byYearRows).
		Where("season_year BETWEEN ? AND ?", startYear, endYear).
		Where("formula_version = ?", version).
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading conference rollups %d-%d: %w", startYear, endYear, err)
	}

	pointsByYear := make(map[int]map[string]float64)
	gamesByYear := make(map[int]map[string]float64)
	for _, r := range byYearRows {
		if pointsByYear[r.SeasonYear] == nil {
			pointsByYear[r.SeasonYear] = make(map[string]float64)
			gamesByYear[r.SeasonYear] = make(map[string]float64)
		}
		pointsByYear[r.SeasonYear][r.Conference] = r.TotalPoints
		gamesByYear[r.SeasonYear][r.Conference] = float64(r.GamesCounted)
	}

	points, start, ok := ratings.Window(pointsByYear, endYear, opts)
	if !ok {
		log.Warn("partial conference coefficient window, nothing emitted",
			zap.Int("end_year", endYear), zap.Int("window", opts.Window))
		return 0, nil
	}
	if len(points) == 0 {
		return 0, nil
	}
	rawOpts := opts
	rawOpts.Decay = false
	games, _, _ := ratings.Window(gamesByYear, endYear, rawOpts)

	rows := make([]models.ConferenceCoefficientRolling, 0, len(points))
	for c, p := range points {
		gc := int(games[c])
		rows = append(rows, models.ConferenceCoefficientRolling{
			SeasonYear:      endYear,
			Conference:      c,
			WindowStartYear: start,
			WindowEndYear:   endYear,
			TotalPoints:     p,
			GamesCounted:    gc,
			PointsPerGame:   PPG(p, gc),
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

	_, err = tx.NewDelete().Model((*models.ConferenceCoefficientRolling)(nil)).
		Where("season_year = ? AND formula_version = ?", endYear, version).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing conference rolling for %d: %w", endYear, err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting conference rolling for %d: %w", endYear, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	return len(rows), nil
}

// ComputeRecords replaces the per-team season record rows for a year.
func ComputeRecords(ctx context.Context, db *bun.DB, year int, log *zap.Logger) error {
	games, err := loadGames(ctx, db, year)
	if err != nil {
		return err
	}

	records := Records(games)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.NewDelete().Model((*models.ConferenceTeamRecord)(nil)).
		Where("season_year = ?", year).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clearing records for %d: %w", year, err)
	}

	if len(records) > 0 {
		rows := make([]models.ConferenceTeamRecord, 0, len(records))
		for tid, rec := range records {
			rows = append(rows, models.ConferenceTeamRecord{
				SeasonYear:    year,
				TeamID:        tid,
				Conference:    rec.Conference,
				OverallWins:   rec.OverallWins,
				OverallLosses: rec.OverallLosses,
				OverallTies:   rec.OverallTies,
				OverallGames:  rec.OverallGames,
				ConfWins:      rec.ConfWins,
				ConfLosses:    rec.ConfLosses,
				ConfTies:      rec.ConfTies,
				ConfGames:     rec.ConfGames,
			})
		}
		if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("inserting records for %d: %w", year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("team records computed", zap.Int("year", year), zap.Int("teams", len(records)))

	return nil
}
