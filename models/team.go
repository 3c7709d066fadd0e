package models

import "github.com/uptrace/bun"

// Team is a canonical team identity. Names are already alias-resolved by the
// loader side; the engine never guesses.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	TeamID   int    `bun:"team_id,pk,autoincrement" json:"teamID"`
	TeamName string `bun:"team_name,notnull,unique" json:"teamName"`
}

// TeamMembership records a team's conference and division status for one season.
type TeamMembership struct {
	bun.BaseModel `bun:"table:team_membership_by_season,alias:tm"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear     int    `bun:"season_year,notnull" json:"seasonYear"`
	TeamID         int    `bun:"team_id,notnull" json:"teamID"`
	ConferenceReal string `bun:"conference_real,notnull" json:"conference"`
	IsFBS          bool   `bun:"is_fbs,notnull,default:false" json:"isFbs"`
}
