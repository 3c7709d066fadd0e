// Package coefficients scores teams and conferences from categorized game
// outcomes. Each component is computed independently and rolled up into a
// season total with a points-per-game figure; multi-year strength comes from
// rolling the season totals.
package coefficients

import (
	"github.com/ak038819-sudo/College-Football-Coefficient/config"
	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// Options are the component scoring tunables. The playoff bonuses are
// configuration defaults, not derived from an external rule.
type Options struct {
	WinPoints          float64
	OTLossPoints       float64
	ParticipationBonus float64
	PerGameBonus       float64
}

// OptionsFromConfig maps engine config onto scoring options.
func OptionsFromConfig(e config.Engine) Options {
	return Options{
		WinPoints:          e.WinPoints,
		OTLossPoints:       e.OTLossPoints,
		ParticipationBonus: e.ParticipationBonus,
		PerGameBonus:       e.PerGameBonus,
	}
}

// Tally is an additive points/games pair.
type Tally struct {
	Points float64
	Games  int
}

// sidePoints scores one side of a decided-or-tied game: win = WinPoints,
// overtime loss = OTLossPoints, anything else 0.
func (o Options) sidePoints(own, opp int, wentOT bool) float64 {
	if own > opp {
		return o.WinPoints
	}
	if wentOT && own < opp {
		return o.OTLossPoints
	}
	return 0
}

// TeamBase computes the base component for teams. When inConference is true
// only games where both sides share a conference count; otherwise only games
// between two different known conferences count. Games with a missing score
// are excluded entirely; ties count as a game with zero points.
func TeamBase(games []models.Game, inConference bool, opts Options) map[int]Tally {
	out := make(map[int]Tally)

	for _, g := range games {
		if g.HomeScore == nil || g.AwayScore == nil {
			continue
		}
		if inConference && !g.InConference() {
			continue
		}
		if !inConference && !g.NonConference() {
			continue
		}

		home := out[g.HomeTeamID]
		home.Points += opts.sidePoints(*g.HomeScore, *g.AwayScore, g.WentOT)
		home.Games++
		out[g.HomeTeamID] = home

		away := out[g.AwayTeamID]
		away.Points += opts.sidePoints(*g.AwayScore, *g.HomeScore, g.WentOT)
		away.Games++
		out[g.AwayTeamID] = away
	}

	return out
}

// ConferenceBase computes the base component for conferences: each side's
// points credit its own conference, and each counted game increments the
// conference's games-counted once per side involved.
func ConferenceBase(games []models.Game, inConference bool, opts Options) map[string]Tally {
	out := make(map[string]Tally)

	for _, g := range games {
		if g.HomeScore == nil || g.AwayScore == nil {
			continue
		}
		if inConference && !g.InConference() {
			continue
		}
		if !inConference && !g.NonConference() {
			continue
		}

		home := out[*g.HomeConference]
		home.Points += opts.sidePoints(*g.HomeScore, *g.AwayScore, g.WentOT)
		home.Games++
		out[*g.HomeConference] = home

		away := out[*g.AwayConference]
		away.Points += opts.sidePoints(*g.AwayScore, *g.HomeScore, g.WentOT)
		away.Games++
		out[*g.AwayConference] = away
	}

	return out
}

// TeamPlayoff computes the post-season components for teams: a one-time
// participation bonus for appearing in any championship-phase game, and a
// per-appearance bonus per such game. Both sides of each game count.
func TeamPlayoff(games []models.Game, opts Options) (participation, perGame map[int]Tally) {
	appearances := make(map[int]int)
	for _, g := range games {
		if g.GamePhase != models.PhaseCFP {
			continue
		}
		appearances[g.HomeTeamID]++
		appearances[g.AwayTeamID]++
	}

	participation = make(map[int]Tally, len(appearances))
	perGame = make(map[int]Tally, len(appearances))
	for tid, n := range appearances {
		participation[tid] = Tally{Points: opts.ParticipationBonus, Games: 1}
		perGame[tid] = Tally{Points: opts.PerGameBonus * float64(n), Games: n}
	}

	return participation, perGame
}

// ConferencePlayoff computes the post-season components for conferences: the
// participation bonus applies once per distinct team from the conference seen
// in a championship-phase game, and the per-appearance bonus once per game
// appearance (home and away counted separately). Sides with an unknown
// conference are skipped.
func ConferencePlayoff(games []models.Game, opts Options) (participation, perGame map[string]Tally) {
	teamsSeen := make(map[string]map[int]struct{})
	gamesSeen := make(map[string]int)

	count := func(conf *string, tid int) {
		if conf == nil {
			return
		}
		if teamsSeen[*conf] == nil {
			teamsSeen[*conf] = make(map[int]struct{})
		}
		teamsSeen[*conf][tid] = struct{}{}
		gamesSeen[*conf]++
	}

	for _, g := range games {
		if g.GamePhase != models.PhaseCFP {
			continue
		}
		count(g.HomeConference, g.HomeTeamID)
		count(g.AwayConference, g.AwayTeamID)
	}

	participation = make(map[string]Tally, len(teamsSeen))
	perGame = make(map[string]Tally, len(gamesSeen))
	for conf, teams := range teamsSeen {
		participation[conf] = Tally{
			Points: opts.ParticipationBonus * float64(len(teams)),
			Games:  len(teams),
		}
		perGame[conf] = Tally{
			Points: opts.PerGameBonus * float64(gamesSeen[conf]),
			Games:  gamesSeen[conf],
		}
	}

	return participation, perGame
}

// PPG divides points by games, returning 0 for an empty denominator.
func PPG(points float64, games int) float64 {
	if games <= 0 {
		return 0
	}
	return points / float64(games)
}
