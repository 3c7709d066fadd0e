package models

import "github.com/uptrace/bun"

// SeasonRating is the iterative strength rating for one team in one season.
// The scale is relative within a season only; cross-season comparison goes
// through the rolling aggregation.
type SeasonRating struct {
	bun.BaseModel `bun:"table:team_ratings_by_season,alias:sr"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	TeamID         int     `bun:"team_id,notnull" json:"teamID"`
	Rating         float64 `bun:"rating,notnull" json:"rating"`
	FormulaVersion string  `bun:"formula_version,notnull" json:"formulaVersion"`
}

// RatingRolling is the trailing-window aggregate of SeasonRating for a team.
// Rows exist only for fully populated windows.
type RatingRolling struct {
	bun.BaseModel `bun:"table:team_rating_rolling,alias:rr"`

	ID              int     `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear      int     `bun:"season_year,notnull" json:"seasonYear"`
	TeamID          int     `bun:"team_id,notnull" json:"teamID"`
	WindowStartYear int     `bun:"window_start_year,notnull" json:"windowStartYear"`
	WindowEndYear   int     `bun:"window_end_year,notnull" json:"windowEndYear"`
	Coefficient     float64 `bun:"coefficient,notnull" json:"coefficient"`
	FormulaVersion  string  `bun:"formula_version,notnull" json:"formulaVersion"`
}
