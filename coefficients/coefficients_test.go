package coefficients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func testOpts() Options {
	return Options{
		WinPoints:          2.0,
		OTLossPoints:       1.0,
		ParticipationBonus: 6.0,
		PerGameBonus:       1.5,
	}
}

func crossGame(home, away int, hc, ac string, hs, as int, ot bool) models.Game {
	return models.Game{
		GamePhase:      models.PhaseRegular,
		HomeTeamID:     home,
		AwayTeamID:     away,
		HomeScore:      intp(hs),
		AwayScore:      intp(as),
		WentOT:         ot,
		HomeConference: strp(hc),
		AwayConference: strp(ac),
	}
}

func TestTeamBaseOvertimeLossCredit(t *testing.T) {
	games := []models.Game{
		crossGame(1, 2, "Big Ten", "SEC", 27, 30, true),
	}

	out := TeamBase(games, false, testOpts())
	require.Len(t, out, 2)

	assert.Equal(t, Tally{Points: 2.0, Games: 1}, out[2])
	assert.Equal(t, Tally{Points: 1.0, Games: 1}, out[1], "overtime loss keeps a point")
}

func TestTeamBaseRegulationLossScoresZeroButCounts(t *testing.T) {
	games := []models.Game{
		crossGame(1, 2, "Big Ten", "SEC", 10, 24, false),
	}

	out := TeamBase(games, false, testOpts())
	assert.Equal(t, Tally{Points: 0, Games: 1}, out[1])
}

func TestTeamBaseConferenceFilter(t *testing.T) {
	games := []models.Game{
		crossGame(1, 2, "Big Ten", "SEC", 21, 14, false),
		crossGame(3, 4, "Big Ten", "Big Ten", 28, 7, false),
		// unknown away conference: counts for neither component
		{
			GamePhase:      models.PhaseRegular,
			HomeTeamID:     5,
			AwayTeamID:     6,
			HomeScore:      intp(35),
			AwayScore:      intp(0),
			HomeConference: strp("Big Ten"),
		},
	}

	nonconf := TeamBase(games, false, testOpts())
	conf := TeamBase(games, true, testOpts())

	assert.Contains(t, nonconf, 1)
	assert.NotContains(t, nonconf, 3)
	assert.NotContains(t, nonconf, 5)

	assert.Contains(t, conf, 3)
	assert.NotContains(t, conf, 1)
	assert.NotContains(t, conf, 5)
}

func TestConferenceBaseCreditsBothSides(t *testing.T) {
	games := []models.Game{
		crossGame(1, 2, "MAC", "Sun Belt", 17, 20, true),
		crossGame(3, 4, "MAC", "Sun Belt", 31, 10, false),
	}

	out := ConferenceBase(games, false, testOpts())

	// MAC: OT loss (1) + win (2); two games counted.
	assert.Equal(t, Tally{Points: 3.0, Games: 2}, out["MAC"])
	// Sun Belt: win (2) + regulation loss (0).
	assert.Equal(t, Tally{Points: 2.0, Games: 2}, out["Sun Belt"])
}

func TestTeamPlayoffComponents(t *testing.T) {
	games := []models.Game{
		{GamePhase: models.PhaseCFP, HomeTeamID: 1, AwayTeamID: 2, HomeScore: intp(34), AwayScore: intp(31)},
		{GamePhase: models.PhaseCFP, HomeTeamID: 1, AwayTeamID: 3, HomeScore: intp(14), AwayScore: intp(20)},
		{GamePhase: models.PhaseBowl, HomeTeamID: 4, AwayTeamID: 5, HomeScore: intp(40), AwayScore: intp(6)},
	}

	participation, perGame := TeamPlayoff(games, testOpts())

	assert.Equal(t, Tally{Points: 6.0, Games: 1}, participation[1], "participation is a one-time bonus")
	assert.Equal(t, Tally{Points: 3.0, Games: 2}, perGame[1], "per-game bonus scales with appearances")
	assert.Equal(t, Tally{Points: 1.5, Games: 1}, perGame[2])
	assert.NotContains(t, participation, 4, "bowl games are not championship phase")
}

func TestConferencePlayoffDistinctTeams(t *testing.T) {
	games := []models.Game{
		{
			GamePhase:      models.PhaseCFP,
			HomeTeamID:     1,
			AwayTeamID:     2,
			HomeScore:      intp(34),
			AwayScore:      intp(31),
			HomeConference: strp("SEC"),
			AwayConference: strp("SEC"),
		},
		{
			GamePhase:      models.PhaseCFP,
			HomeTeamID:     1,
			AwayTeamID:     3,
			HomeScore:      intp(21),
			AwayScore:      intp(28),
			HomeConference: strp("SEC"),
			AwayConference: strp("Big 12"),
		},
	}

	participation, perGame := ConferencePlayoff(games, testOpts())

	// SEC fields two distinct teams over three appearances.
	assert.Equal(t, Tally{Points: 12.0, Games: 2}, participation["SEC"])
	assert.Equal(t, Tally{Points: 4.5, Games: 3}, perGame["SEC"])
	assert.Equal(t, Tally{Points: 6.0, Games: 1}, participation["Big 12"])
}

func TestPPGEmptyDenominator(t *testing.T) {
	assert.Zero(t, PPG(10, 0))
	assert.InDelta(t, 2.5, PPG(10, 4), 1e-9)
}
