package models

import "github.com/uptrace/bun"

// ConferenceTeamRecord tallies a team's overall and intra-conference results
// for one season. Overall counts every game with a known score and a known
// conference for the team; conference counts only games where both sides share
// a conference.
type ConferenceTeamRecord struct {
	bun.BaseModel `bun:"table:conference_team_records_by_year,alias:ctr"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	SeasonYear int    `bun:"season_year,notnull" json:"seasonYear"`
	TeamID     int    `bun:"team_id,notnull" json:"teamID"`
	Conference string `bun:"conference,notnull" json:"conference"`

	OverallWins   int `bun:"overall_wins,notnull" json:"overallWins"`
	OverallLosses int `bun:"overall_losses,notnull" json:"overallLosses"`
	OverallTies   int `bun:"overall_ties,notnull" json:"overallTies"`
	OverallGames  int `bun:"overall_games,notnull" json:"overallGames"`

	ConfWins   int `bun:"conf_wins,notnull" json:"confWins"`
	ConfLosses int `bun:"conf_losses,notnull" json:"confLosses"`
	ConfTies   int `bun:"conf_ties,notnull" json:"confTies"`
	ConfGames  int `bun:"conf_games,notnull" json:"confGames"`
}
