package models

import "github.com/uptrace/bun"

// Game phases in increasing importance. Anything unrecognized is treated as
// regular-season weight by the rating engine.
const (
	PhaseRegular = "regular"
	PhaseBowl    = "bowl"
	PhaseCFP     = "cfp"
)

// Game is one played (or scheduled) game. Nil scores mean not yet played;
// such rows are ignored by every computation. Conference columns are the
// conferences of record for that season and may be nil for non-FBS opponents.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	GameID         int     `bun:"game_id,pk,autoincrement" json:"gameID"`
	SeasonYear     int     `bun:"season_year,notnull" json:"seasonYear"`
	GamePhase      string  `bun:"game_phase,notnull,default:'regular'" json:"gamePhase"`
	HomeTeamID     int     `bun:"home_team_id,notnull" json:"homeTeamID"`
	AwayTeamID     int     `bun:"away_team_id,notnull" json:"awayTeamID"`
	HomeScore      *int    `bun:"home_score" json:"homeScore,omitempty"`
	AwayScore      *int    `bun:"away_score" json:"awayScore,omitempty"`
	WentOT         bool    `bun:"went_ot,notnull,default:false" json:"wentOT"`
	HomeConference *string `bun:"home_conference" json:"homeConference,omitempty"`
	AwayConference *string `bun:"away_conference" json:"awayConference,omitempty"`
}

// Decided reports whether the game has a winner: both scores present, not a tie.
func (g *Game) Decided() bool {
	return g.HomeScore != nil && g.AwayScore != nil && *g.HomeScore != *g.AwayScore
}

// NonConference reports whether both conferences are known and differ.
func (g *Game) NonConference() bool {
	return g.HomeConference != nil && g.AwayConference != nil &&
		*g.HomeConference != *g.AwayConference
}

// InConference reports whether both teams share a known conference.
func (g *Game) InConference() bool {
	return g.HomeConference != nil && g.AwayConference != nil &&
		*g.HomeConference == *g.AwayConference
}
