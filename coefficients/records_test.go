package coefficients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

func TestRecordsOverallAndConference(t *testing.T) {
	games := []models.Game{
		crossGame(1, 2, "MAC", "MAC", 24, 10, false),
		crossGame(1, 3, "MAC", "SEC", 7, 35, false),
		crossGame(2, 1, "MAC", "MAC", 14, 14, false),
	}

	records := Records(games)
	require.Contains(t, records, 1)

	rec := records[1]
	assert.Equal(t, "MAC", rec.Conference)
	assert.Equal(t, 1, rec.OverallWins)
	assert.Equal(t, 1, rec.OverallLosses)
	assert.Equal(t, 1, rec.OverallTies)
	assert.Equal(t, 3, rec.OverallGames)

	assert.Equal(t, 1, rec.ConfWins)
	assert.Equal(t, 0, rec.ConfLosses)
	assert.Equal(t, 1, rec.ConfTies)
	assert.Equal(t, 2, rec.ConfGames)
}

func TestRecordsSkipsUnknownSides(t *testing.T) {
	games := []models.Game{
		// Away side has no conference of record: only the home side tallies.
		{
			GamePhase:      models.PhaseRegular,
			HomeTeamID:     1,
			AwayTeamID:     9,
			HomeScore:      intp(42),
			AwayScore:      intp(0),
			HomeConference: strp("MAC"),
		},
		// Unplayed game tallies nothing.
		{
			GamePhase:      models.PhaseRegular,
			HomeTeamID:     1,
			AwayTeamID:     2,
			HomeConference: strp("MAC"),
			AwayConference: strp("MAC"),
		},
	}

	records := Records(games)
	require.Contains(t, records, 1)
	assert.NotContains(t, records, 9)

	rec := records[1]
	assert.Equal(t, 1, rec.OverallGames)
	assert.Equal(t, 0, rec.ConfGames, "opponent conference unknown, not a shared-conference game")
}
