package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

func intp(v int) *int { return &v }

func testOpts() Options {
	return Options{
		Iterations: 15,
		LossCredit: 0.15,
		PhaseWeights: map[string]float64{
			models.PhaseRegular: 1.0,
			models.PhaseBowl:    2.0,
			models.PhaseCFP:     3.0,
		},
	}
}

func game(phase string, home, away, hs, as int) models.Game {
	return models.Game{
		GamePhase:  phase,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  intp(hs),
		AwayScore:  intp(as),
	}
}

func TestSeasonNormalizationSum(t *testing.T) {
	games := []models.Game{
		game(models.PhaseRegular, 1, 2, 21, 14),
		game(models.PhaseRegular, 2, 3, 10, 31),
		game(models.PhaseRegular, 3, 4, 28, 27),
		game(models.PhaseBowl, 1, 3, 17, 20),
		game(models.PhaseCFP, 4, 1, 35, 3),
	}

	rating := Season(games, testOpts())
	require.Len(t, rating, 4)

	var sum float64
	for _, r := range rating {
		sum += r
	}
	assert.InDelta(t, 4.0, sum, 1e-9, "ratings must rescale to the participant count")
}

func TestAccumulateSingleBowlGame(t *testing.T) {
	games := []models.Game{game(models.PhaseBowl, 1, 2, 30, 20)}
	start := map[int]float64{1: 1.0, 2: 1.0}

	acc := accumulate(games, start, testOpts())

	// Winner earns opponent rating times the bowl weight; loser earns the
	// loss-credit fraction of the same term.
	assert.InDelta(t, 2.0, acc[1], 1e-9)
	assert.InDelta(t, 0.3, acc[2], 1e-9)
}

func TestSeasonIgnoresUndecidedGames(t *testing.T) {
	// An unplayed game, a tie and a half-scored row.
	games := []models.Game{
		{GamePhase: models.PhaseRegular, HomeTeamID: 1, AwayTeamID: 2},
		{GamePhase: models.PhaseRegular, HomeTeamID: 1, AwayTeamID: 2, HomeScore: intp(14), AwayScore: intp(14)},
		{GamePhase: models.PhaseRegular, HomeTeamID: 2, AwayTeamID: 3, HomeScore: intp(7)},
	}

	rating := Season(games, testOpts())
	require.Len(t, rating, 3)

	// Nothing decided: everyone keeps the initial rating.
	for tid, r := range rating {
		assert.InDelta(t, 1.0, r, 1e-9, "team %d", tid)
	}
}

func TestSeasonOrderIndependent(t *testing.T) {
	games := []models.Game{
		game(models.PhaseRegular, 1, 2, 21, 14),
		game(models.PhaseRegular, 3, 1, 10, 13),
		game(models.PhaseBowl, 2, 3, 24, 27),
	}
	reversed := []models.Game{games[2], games[1], games[0]}

	a := Season(games, testOpts())
	b := Season(reversed, testOpts())
	assert.Equal(t, a, b)
}

func TestSeasonUnknownPhaseCountsAsRegular(t *testing.T) {
	named := Season([]models.Game{game(models.PhaseRegular, 1, 2, 21, 14)}, testOpts())
	unknown := Season([]models.Game{game("spring-exhibition", 1, 2, 21, 14)}, testOpts())
	assert.Equal(t, named, unknown)
}

func TestOrderBreaksTiesByName(t *testing.T) {
	rating := map[int]float64{1: 1.2, 2: 0.8, 3: 1.2}
	names := map[int]string{1: "Utah", 2: "Army", 3: "Baylor"}

	ranked := Order(rating, names)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Baylor", ranked[0].TeamName)
	assert.Equal(t, "Utah", ranked[1].TeamName)
	assert.Equal(t, "Army", ranked[2].TeamName)
}
