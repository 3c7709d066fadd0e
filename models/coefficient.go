package models

import "github.com/uptrace/bun"

// Coefficient component names. Components are additive and individually
// recomputable; totals are their sum.
const (
	ComponentNonConfBase          = "nonconf_base"
	ComponentConfBase             = "conf_base"
	ComponentPlayoffParticipation = "playoff_participation"
	ComponentPlayoffGames         = "playoff_games"
)

// TeamCoeComponent is one scoring component for a team in a season.
type TeamCoeComponent struct {
	bun.BaseModel `bun:"table:team_coe_components,alias:tcc"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	TeamID         int     `bun:"team_id,notnull" json:"teamID"`
	Component      string  `bun:"component,notnull" json:"component"`
	Points         float64 `bun:"points,notnull" json:"points"`
	GamesCounted   int     `bun:"games_counted,notnull" json:"gamesCounted"`
	FormulaVersion string  `bun:"formula_version,notnull" json:"formulaVersion"`
	Notes          string  `bun:"notes" json:"notes,omitempty"`
}

// TeamCoefficientYear is the per-season rollup of team components.
type TeamCoefficientYear struct {
	bun.BaseModel `bun:"table:team_coefficient_by_year,alias:tcy"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	TeamID         int     `bun:"team_id,notnull" json:"teamID"`
	TotalPoints    float64 `bun:"total_points,notnull" json:"totalPoints"`
	GamesCounted   int     `bun:"games_counted,notnull" json:"gamesCounted"`
	PointsPerGame  float64 `bun:"points_per_game,notnull" json:"pointsPerGame"`
	FormulaVersion string  `bun:"formula_version,notnull" json:"formulaVersion"`
}

// TeamCoefficientRolling is the trailing-window rollup of TeamCoefficientYear.
type TeamCoefficientRolling struct {
	bun.BaseModel `bun:"table:team_coefficient_rolling,alias:tcr"`

	ID              int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear      int     `bun:"season_year,notnull" json:"seasonYear"`
	TeamID          int     `bun:"team_id,notnull" json:"teamID"`
	WindowStartYear int     `bun:"window_start_year,notnull" json:"windowStartYear"`
	WindowEndYear   int     `bun:"window_end_year,notnull" json:"windowEndYear"`
	TotalPoints     float64 `bun:"total_points,notnull" json:"totalPoints"`
	GamesCounted    int     `bun:"games_counted,notnull" json:"gamesCounted"`
	PointsPerGame   float64 `bun:"points_per_game,notnull" json:"pointsPerGame"`
	FormulaVersion  string  `bun:"formula_version,notnull" json:"formulaVersion"`
}

// ConferenceCoeComponent is one scoring component for a conference in a season.
type ConferenceCoeComponent struct {
	bun.BaseModel `bun:"table:conference_coe_components,alias:ccc"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	Conference     string  `bun:"conference,notnull" json:"conference"`
	Component      string  `bun:"component,notnull" json:"component"`
	Points         float64 `bun:"points,notnull" json:"points"`
	GamesCounted   int     `bun:"games_counted,notnull" json:"gamesCounted"`
	FormulaVersion string  `bun:"formula_version,notnull" json:"formulaVersion"`
	Notes          string  `bun:"notes" json:"notes,omitempty"`
}

// ConferenceCoefficientYear is the per-season rollup of conference components.
// GamesCounted deliberately excludes the participation component so appearance
// bonuses don't double-count in the points-per-game denominator.
type ConferenceCoefficientYear struct {
	bun.BaseModel `bun:"table:conference_coefficient_by_year,alias:ccy"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	Conference     string  `bun:"conference,notnull" json:"conference"`
	TotalPoints    float64 `bun:"total_points,notnull" json:"totalPoints"`
	GamesCounted   int     `bun:"games_counted,notnull" json:"gamesCounted"`
	PointsPerGame  float64 `bun:"points_per_game,notnull" json:"pointsPerGame"`
	FormulaVersion string  `bun:"formula_version,notnull" json:"formulaVersion"`
}

// ConferenceCoefficientRolling is the trailing-window rollup of
// ConferenceCoefficientYear.
type ConferenceCoefficientRolling struct {
	bun.BaseModel `bun:"table:conference_coefficient_rolling,alias:ccr"`

	ID              int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear      int     `bun:"season_year,notnull" json:"seasonYear"`
	Conference      string  `bun:"conference,notnull" json:"conference"`
	WindowStartYear int     `bun:"window_start_year,notnull" json:"windowStartYear"`
	WindowEndYear   int     `bun:"window_end_year,notnull" json:"windowEndYear"`
	TotalPoints     float64 `bun:"total_points,notnull" json:"totalPoints"`
	GamesCounted    int     `bun:"games_counted,notnull" json:"gamesCounted"`
	PointsPerGame   float64 `bun:"points_per_game,notnull" json:"pointsPerGame"`
	FormulaVersion  string  `bun:"formula_version,notnull" json:"formulaVersion"`
}
