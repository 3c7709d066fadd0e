package models

import "github.com/uptrace/bun"

// Bid types for qualifiers.
const (
	BidChampion = "champion"
	BidAtLarge  = "at_large"
)

// Pots. Pot 0 is a first-round bye.
const (
	PotBye = 0
	Pot1   = 1
	Pot2   = 2
)

// Qualifier is one team selected into the tournament field. Rows are keyed by
// (season_year, formula_version, ruleset) and fully replaced on rerun.
type Qualifier struct {
	bun.BaseModel `bun:"table:playoff_qualifiers_by_year,alias:q"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int    `bun:"season_year,notnull" json:"seasonYear"`
	Conference     string `bun:"conference,notnull" json:"conference"`
	TeamID         int    `bun:"team_id,notnull" json:"teamID"`
	ConfRank       int    `bun:"conf_rank,notnull" json:"confRank"`
	BidType        string `bun:"bid_type,notnull" json:"bidType"`
	FormulaVersion string `bun:"formula_version,notnull" json:"formulaVersion"`
	Ruleset        string `bun:"ruleset,notnull" json:"ruleset"`
}

// FieldEntry is a qualifier with its assigned pot and conference context.
// This is the authoritative field for a (season, ruleset, version) key.
type FieldEntry struct {
	bun.BaseModel `bun:"table:playoff_field_by_year,alias:pf"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int    `bun:"season_year,notnull" json:"seasonYear"`
	TeamID         int    `bun:"team_id,notnull" json:"teamID"`
	Conference     string `bun:"conference,notnull" json:"conference"`
	ConfRank       int    `bun:"conf_rank,notnull" json:"confRank"`
	ConfCoeRank    int    `bun:"conf_coe_rank,notnull" json:"confCoeRank"`
	BidType        string `bun:"bid_type,notnull" json:"bidType"`
	Pot            int    `bun:"pot,notnull" json:"pot"`
	FormulaVersion string `bun:"formula_version,notnull" json:"formulaVersion"`
	Ruleset        string `bun:"ruleset,notnull" json:"ruleset"`
}

// BracketSlot is one drawn bracket position. Slots run 1..N contiguously:
// byes first, then pot 1, then pot 2, each in drawn order.
type BracketSlot struct {
	bun.BaseModel `bun:"table:playoff_bracket_by_year,alias:pb"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int    `bun:"season_year,notnull" json:"seasonYear"`
	Slot           int    `bun:"slot,notnull" json:"slot"`
	TeamID         int    `bun:"team_id,notnull" json:"teamID"`
	Pot            int    `bun:"pot,notnull" json:"pot"`
	FormulaVersion string `bun:"formula_version,notnull" json:"formulaVersion"`
	Ruleset        string `bun:"ruleset,notnull" json:"ruleset"`
	DrawSeed       int64  `bun:"draw_seed,notnull" json:"drawSeed"`
}

// DrawRecord audits the RNG seed used for a draw.
type DrawRecord struct {
	bun.BaseModel `bun:"table:playoff_draws_by_year,alias:pd"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int    `bun:"season_year,notnull" json:"seasonYear"`
	FormulaVersion string `bun:"formula_version,notnull" json:"formulaVersion"`
	Ruleset        string `bun:"ruleset,notnull" json:"ruleset"`
	DrawSeed       int64  `bun:"draw_seed,notnull" json:"drawSeed"`
}

// PlayoffGame is a constructed matchup for a play-in round. Home field is
// decided by rolling strength at game-creation time, not by draw position.
type PlayoffGame struct {
	bun.BaseModel `bun:"table:playoff_games_by_year,alias:pg"`

	ID           int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear   int    `bun:"season_year,notnull" json:"seasonYear"`
	Round        string `bun:"round,notnull" json:"round"`
	GameNo       int    `bun:"game_no,notnull" json:"gameNo"`
	HomeTeamID   int    `bun:"home_team_id,notnull" json:"homeTeamID"`
	AwayTeamID   int    `bun:"away_team_id,notnull" json:"awayTeamID"`
	HomeSlot     int    `bun:"home_slot,notnull" json:"homeSlot"`
	AwaySlot     int    `bun:"away_slot,notnull" json:"awaySlot"`
	HomePot      int    `bun:"home_pot,notnull" json:"homePot"`
	AwayPot      int    `bun:"away_pot,notnull" json:"awayPot"`
	HomeIsHostBy string `bun:"home_is_host_by,notnull,default:'COE'" json:"homeIsHostBy"`

	FormulaVersion string `bun:"formula_version,notnull" json:"formulaVersion"`
	Ruleset        string `bun:"ruleset,notnull" json:"ruleset"`
}
