// Package ratings implements the per-season iterative strength solver and the
// trailing-window aggregation used to compare seasons.
package ratings

import (
	"sort"

	"github.com/ak038819-sudo/College-Football-Coefficient/config"
	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// Options are the rating solver tunables.
type Options struct {
	Iterations   int
	LossCredit   float64
	PhaseWeights map[string]float64
}

// OptionsFromConfig maps engine config onto solver options.
func OptionsFromConfig(e config.Engine) Options {
	return Options{
		Iterations: e.Iterations,
		LossCredit: e.LossCredit,
		PhaseWeights: map[string]float64{
			models.PhaseRegular: e.RegularWeight,
			models.PhaseBowl:    e.BowlWeight,
			models.PhaseCFP:     e.CFPWeight,
		},
	}
}

// phaseWeight returns the configured multiplier for a game phase.
// Unrecognized phases count as regular-season games.
func (o Options) phaseWeight(phase string) float64 {
	if w, ok := o.PhaseWeights[phase]; ok {
		return w
	}
	return 1.0
}

// Season computes one rating per team appearing in the given season's games.
// Every participant starts at 1.0; each iteration propagates opponent strength
// through decided games and then rescales so ratings sum to the number of
// participants. Undecided games, ties and games with unknown scores never
// contribute. The result depends only on the inputs, never on ordering or
// randomness.
func Season(games []models.Game, opts Options) map[int]float64 {
	teams := make(map[int]struct{})
	for _, g := range games {
		teams[g.HomeTeamID] = struct{}{}
		teams[g.AwayTeamID] = struct{}{}
	}
	if len(teams) == 0 {
		return map[int]float64{}
	}

	rating := make(map[int]float64, len(teams))
	for t := range teams {
		rating[t] = 1.0
	}

	for i := 0; i < opts.Iterations; i++ {
		acc := accumulate(games, rating, opts)

		var total float64
		for _, v := range acc {
			total += v
		}
		if total <= 0 {
			// Degenerate season: nothing decided, keep the current ratings.
			break
		}

		scale := float64(len(teams)) / total
		for t := range teams {
			rating[t] = acc[t] * scale
		}
	}

	return rating
}

// accumulate runs one propagation pass. The winner of each decided game earns
// the full opponent_rating × phase_weight; the loser earns the configured
// fraction of the same term.
func accumulate(games []models.Game, rating map[int]float64, opts Options) map[int]float64 {
	acc := make(map[int]float64, len(rating))

	for _, g := range games {
		if !g.Decided() {
			continue
		}
		w := opts.phaseWeight(g.GamePhase)

		if *g.HomeScore > *g.AwayScore {
			acc[g.HomeTeamID] += rating[g.AwayTeamID] * w
			acc[g.AwayTeamID] += rating[g.HomeTeamID] * w * opts.LossCredit
		} else {
			acc[g.AwayTeamID] += rating[g.HomeTeamID] * w
			acc[g.HomeTeamID] += rating[g.AwayTeamID] * w * opts.LossCredit
		}
	}

	return acc
}

// Ranked is a rating with its team identity, for ordered reporting.
type Ranked struct {
	TeamID   int
	TeamName string
	Rating   float64
}

// Order sorts ratings descending, ties broken by team name ascending.
func Order(rating map[int]float64, names map[int]string) []Ranked {
	out := make([]Ranked, 0, len(rating))
	for tid, r := range rating {
		out = append(out, Ranked{TeamID: tid, TeamName: names[tid], Rating: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}
