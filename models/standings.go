package models

import "github.com/uptrace/bun"

// ConferenceStanding is one team's finish within its conference for a season.
// Rank 1 is the standings leader (champion unless overridden by the champions
// table).
type ConferenceStanding struct {
	bun.BaseModel `bun:"table:conference_standings_by_year,alias:cs"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear int    `bun:"season_year,notnull" json:"seasonYear"`
	Conference string `bun:"conference,notnull" json:"conference"`
	TeamID     int    `bun:"team_id,notnull" json:"teamID"`
	ConfRank   int    `bun:"conf_rank,notnull" json:"confRank"`
}

// ConferenceChampion is the designated champion of a conference for a season.
type ConferenceChampion struct {
	bun.BaseModel `bun:"table:conference_champions_by_year,alias:cc"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear int    `bun:"season_year,notnull" json:"seasonYear"`
	Conference string `bun:"conference,notnull" json:"conference"`
	TeamID     int    `bun:"team_id,notnull" json:"teamID"`
}
