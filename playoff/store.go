package playoff

import (
	"context"
	"fmt"
	"sort"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// RoundOf24 names the play-in round built from pot 1 vs pot 2.
const RoundOf24 = "R24"

// conferenceRanks loads the rolling conference coefficients for the key's
// season and returns each conference's strength rank, 1 = strongest. Ordering
// is total points desc, then points-per-game desc, then conference name asc.
func conferenceRanks(ctx context.Context, db *bun.DB, key Key) (map[string]int, []string, error) {
	var rolling []models.ConferenceCoefficientRolling
	err := db.NewSelect().Model(&rolling).
		Where("season_year = ? AND formula_version = ?", key.SeasonYear, key.FormulaVersion).
		Order("total_points DESC", "points_per_game DESC", "conference ASC").
		Scan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading conference rolling for %d: %w", key.SeasonYear, err)
	}
	if len(rolling) == 0 {
		return nil, nil, fmt.Errorf("%w: season %d version %s", ErrNoConferenceRolling, key.SeasonYear, key.FormulaVersion)
	}

	ranks := make(map[string]int, len(rolling))
	ordered := make([]string, 0, len(rolling))
	for i, r := range rolling {
		ranks[r.Conference] = i + 1
		ordered = append(ordered, r.Conference)
	}
	return ranks, ordered, nil
}

// SelectField allocates bids from the rolling conference ranking, picks
// qualifiers from each conference's standings and replaces the stored
// qualifier list for the key. Returns the number of qualifiers written.
func SelectField(ctx context.Context, db *bun.DB, key Key, policy BidPolicy, log *zap.Logger) (int, error) {
	_, ordered, err := conferenceRanks(ctx, db, key)
	if err != nil {
		return 0, err
	}

	bids, err := policy.Allocate(ordered)
	if err != nil {
		return 0, err
	}

	var standingRows []models.ConferenceStanding
	err = db.NewSelect().Model(&standingRows).
		Where("season_year = ?", key.SeasonYear).
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading standings for %d: %w", key.SeasonYear, err)
	}

	byConf := make(map[string][]Standing)
	for _, s := range standingRows {
		byConf[s.Conference] = append(byConf[s.Conference], Standing{TeamID: s.TeamID, ConfRank: s.ConfRank})
	}

	var rows []models.Qualifier
	for _, b := range bids {
		standings, ok := byConf[b.Conference]
		if !ok || len(standings) == 0 {
			log.Warn("conference allocated bids but has no standings",
				zap.String("conference", b.Conference),
				zap.Int("bids", b.Bids),
				zap.Int("year", key.SeasonYear))
			continue
		}

		picks := SelectForConference(standings, b.Bids)
		if len(picks) < b.Bids {
			log.Warn("conference filled fewer bids than allocated",
				zap.String("conference", b.Conference),
				zap.Int("bids", b.Bids),
				zap.Int("filled", len(picks)))
		}

		for _, p := range picks {
			rows = append(rows, models.Qualifier{
				SeasonYear:     key.SeasonYear,
				Conference:     b.Conference,
				TeamID:         p.TeamID,
				ConfRank:       p.ConfRank,
				BidType:        p.BidType,
				FormulaVersion: key.FormulaVersion,
				Ruleset:        key.Ruleset,
			})
		}
	}

	if len(rows) != policy.Target {
		return 0, fmt.Errorf("%w: selected %d, target %d", ErrFieldSize, len(rows), policy.Target)
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

	_, err = tx.NewDelete().Model((*models.Qualifier)(nil)).
		Where("season_year = ? AND formula_version = ? AND ruleset = ?",
			key.SeasonYear, key.FormulaVersion, key.Ruleset).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing qualifiers: %w", err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting qualifiers: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	log.Info("qualifier field selected",
		zap.Int("year", key.SeasonYear),
		zap.Int("teams", len(rows)),
		zap.String("ruleset", key.Ruleset))

	return len(rows), nil
}

// loadFieldTeams turns the stored qualifier list into FieldTeams with names,
// conference ranks and rolling team strengths attached. Teams without a
// rolling figure are kept at zero strength and logged.
func loadFieldTeams(ctx context.Context, db *bun.DB, key Key, log *zap.Logger) ([]*FieldTeam, map[string]int, error) {
	var qualifiers []models.Qualifier
	err := db.NewSelect().Model(&qualifiers).
		Where("season_year = ? AND formula_version = ? AND ruleset = ?",
			key.SeasonYear, key.FormulaVersion, key.Ruleset).
		Scan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading qualifiers: %w", err)
	}
	if len(qualifiers) == 0 {
		return nil, nil, fmt.Errorf("%w: season %d ruleset %s", ErrNoQualifiers, key.SeasonYear, key.Ruleset)
	}

	confRanks, _, err := conferenceRanks(ctx, db, key)
	if err != nil {
		return nil, nil, err
	}

	var names []models.Team
	if err = db.NewSelect().Model(&names).Scan(ctx); err != nil {
		return nil, nil, fmt.Errorf("loading teams: %w", err)
	}
	nameByID := make(map[int]string, len(names))
	for _, t := range names {
		nameByID[t.TeamID] = t.TeamName
	}

	var strengths []models.TeamCoefficientRolling
	err = db.NewSelect().Model(&strengths).
		Where("season_year = ? AND formula_version = ?", key.SeasonYear, key.FormulaVersion).
		Scan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading team rolling: %w", err)
	}
	strengthByID := make(map[int]models.TeamCoefficientRolling, len(strengths))
	for _, s := range strengths {
		strengthByID[s.TeamID] = s
	}

	teams := make([]*FieldTeam, 0, len(qualifiers))
	for _, q := range qualifiers {
		ft := &FieldTeam{
			TeamID:      q.TeamID,
			Name:        nameByID[q.TeamID],
			Conference:  q.Conference,
			ConfRank:    q.ConfRank,
			ConfCoeRank: confRanks[q.Conference],
			BidType:     q.BidType,
		}
		if s, ok := strengthByID[q.TeamID]; ok {
			ft.TotalPoints = s.TotalPoints
			ft.PPG = s.PointsPerGame
		} else {
			log.Warn("qualifier has no rolling coefficient, treated as zero strength",
				zap.Int("team_id", q.TeamID),
				zap.String("team", ft.Name))
		}
		teams = append(teams, ft)
	}
	return teams, confRanks, nil
}

// RunDraw assigns pots to the stored qualifier field, applies the optional
// extra-qualifier override, rebalances to equal pots, draws bracket slots with
// the given seed and replaces the stored field, bracket, draw audit and any
// previously built games for the key.
func RunDraw(ctx context.Context, db *bun.DB, key Key, byeCount int, seed int64, extra *ExtraQualifier, log *zap.Logger) error {
	teams, confRanks, err := loadFieldTeams(ctx, db, key, log)
	if err != nil {
		return err
	}
	if (len(teams)-byeCount)%2 != 0 {
		return fmt.Errorf("%w: field %d with %d byes leaves odd pots", ErrPotBalance, len(teams), byeCount)
	}
	potTarget := (len(teams) - byeCount) / 2

	AssignPots(teams)
	ApplyExtraQualifier(teams, confRanks, extra)
	if err = CheckByes(teams, byeCount); err != nil {
		return err
	}
	if err = Rebalance(teams, potTarget); err != nil {
		return err
	}

	order, err := Draw(teams, byeCount, seed)
	if err != nil {
		return err
	}

	fieldRows := make([]models.FieldEntry, 0, len(teams))
	for _, t := range teams {
		fieldRows = append(fieldRows, models.FieldEntry{
			SeasonYear:     key.SeasonYear,
			TeamID:         t.TeamID,
			Conference:     t.Conference,
			ConfRank:       t.ConfRank,
			ConfCoeRank:    t.ConfCoeRank,
			BidType:        t.BidType,
			Pot:            t.Pot,
			FormulaVersion: key.FormulaVersion,
			Ruleset:        key.Ruleset,
		})
	}

	slotRows := make([]models.BracketSlot, 0, len(order))
	for i, t := range order {
		slotRows = append(slotRows, models.BracketSlot{
			SeasonYear:     key.SeasonYear,
			Slot:           i + 1,
			TeamID:         t.TeamID,
			Pot:            t.Pot,
			FormulaVersion: key.FormulaVersion,
			Ruleset:        key.Ruleset,
			DrawSeed:       seed,
		})
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

	for _, model := range []interface{}{
		(*models.PlayoffGame)(nil),
		(*models.BracketSlot)(nil),
		(*models.FieldEntry)(nil),
		(*models.DrawRecord)(nil),
	} {
		_, err = tx.NewDelete().Model(model).
			Where("season_year = ? AND formula_version = ? AND ruleset = ?",
				key.SeasonYear, key.FormulaVersion, key.Ruleset).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clearing draw output: %w", err)
		}
	}

	if _, err = tx.NewInsert().Model(&fieldRows).Exec(ctx); err != nil {
		return fmt.Errorf("inserting field: %w", err)
	}
	if _, err = tx.NewInsert().Model(&slotRows).Exec(ctx); err != nil {
		return fmt.Errorf("inserting bracket: %w", err)
	}
	draw := models.DrawRecord{
		SeasonYear:     key.SeasonYear,
		FormulaVersion: key.FormulaVersion,
		Ruleset:        key.Ruleset,
		DrawSeed:       seed,
	}
	if _, err = tx.NewInsert().Model(&draw).Exec(ctx); err != nil {
		return fmt.Errorf("inserting draw record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("draw complete",
		zap.Int("year", key.SeasonYear),
		zap.Int64("seed", seed),
		zap.Int("slots", len(slotRows)))

	return nil
}

// BuildRound24 pairs the drawn pot-1 slots against the pot-2 slots, assigns
// home field by rolling strength and replaces the stored play-in games for
// the key.
func BuildRound24(ctx context.Context, db *bun.DB, key Key, byeCount int, log *zap.Logger) error {
	var slots []models.BracketSlot
	err := db.NewSelect().Model(&slots).
		Where("season_year = ? AND formula_version = ? AND ruleset = ?",
			key.SeasonYear, key.FormulaVersion, key.Ruleset).
		Order("slot ASC").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("loading bracket: %w", err)
	}
	if len(slots) == 0 {
		return fmt.Errorf("%w: no bracket drawn for season %d", ErrNoQualifiers, key.SeasonYear)
	}

	teams, _, err := loadFieldTeams(ctx, db, key, log)
	if err != nil {
		return err
	}
	byID := make(map[int]*FieldTeam, len(teams))
	for _, t := range teams {
		byID[t.TeamID] = t
	}

	slotByID := make(map[int]int, len(slots))
	var pot1, pot2 []*FieldTeam
	for _, s := range slots {
		t, ok := byID[s.TeamID]
		if !ok {
			return fmt.Errorf("bracket slot %d holds unknown team %d", s.Slot, s.TeamID)
		}
		t.Pot = s.Pot
		slotByID[s.TeamID] = s.Slot
		switch {
		case s.Slot <= byeCount:
		case s.Slot <= byeCount+(len(slots)-byeCount)/2:
			pot1 = append(pot1, t)
		default:
			pot2 = append(pot2, t)
		}
	}
	sort.Slice(pot1, func(i, j int) bool { return slotByID[pot1[i].TeamID] < slotByID[pot1[j].TeamID] })
	sort.Slice(pot2, func(i, j int) bool { return slotByID[pot2[i].TeamID] < slotByID[pot2[j].TeamID] })

	pairs, err := PairPots(pot1, pot2)
	if err != nil {
		return err
	}
	HomeAway(pairs)

	rows := make([]models.PlayoffGame, 0, len(pairs))
	for i, p := range pairs {
		rows = append(rows, models.PlayoffGame{
			SeasonYear:     key.SeasonYear,
			Round:          RoundOf24,
			GameNo:         i + 1,
			HomeTeamID:     p.Home.TeamID,
			AwayTeamID:     p.Away.TeamID,
			HomeSlot:       slotByID[p.Home.TeamID],
			AwaySlot:       slotByID[p.Away.TeamID],
			HomePot:        p.Home.Pot,
			AwayPot:        p.Away.Pot,
			HomeIsHostBy:   "COE",
			FormulaVersion: key.FormulaVersion,
			Ruleset:        key.Ruleset,
		})
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

	_, err = tx.NewDelete().Model((*models.PlayoffGame)(nil)).
		Where("season_year = ? AND round = ? AND formula_version = ? AND ruleset = ?",
			key.SeasonYear, RoundOf24, key.FormulaVersion, key.Ruleset).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clearing round of 24: %w", err)
	}

	if _, err = tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("inserting round of 24: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("round of 24 built",
		zap.Int("year", key.SeasonYear),
		zap.Int("games", len(rows)))

	return nil
}
