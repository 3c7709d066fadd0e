package playoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team(id int, name, conf string, points, ppg float64) *FieldTeam {
	return &FieldTeam{TeamID: id, Name: name, Conference: conf, TotalPoints: points, PPG: ppg}
}

func TestPairPotsSlotAligned(t *testing.T) {
	pot1 := []*FieldTeam{
		team(1, "A", "SEC", 40, 4),
		team(2, "B", "Big Ten", 38, 4),
	}
	pot2 := []*FieldTeam{
		team(3, "C", "ACC", 30, 3),
		team(4, "D", "Big 12", 28, 3),
	}

	pairs, err := PairPots(pot1, pot2)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// No conflicts anywhere: everyone keeps the slot-aligned opponent.
	assert.Equal(t, 3, pairs[0].Away.TeamID)
	assert.Equal(t, 4, pairs[1].Away.TeamID)
}

func TestPairPotsBacktracks(t *testing.T) {
	// Slot-aligned pairing would match two SEC teams; the solver must swap.
	pot1 := []*FieldTeam{
		team(1, "A", "SEC", 40, 4),
		team(2, "B", "Big Ten", 38, 4),
	}
	pot2 := []*FieldTeam{
		team(3, "C", "SEC", 30, 3),
		team(4, "D", "Big 12", 28, 3),
	}

	pairs, err := PairPots(pot1, pot2)
	require.NoError(t, err)

	for _, p := range pairs {
		assert.NotEqual(t, p.Home.Conference, p.Away.Conference)
	}
	assert.Equal(t, 4, pairs[0].Away.TeamID)
	assert.Equal(t, 3, pairs[1].Away.TeamID)
}

func TestPairPotsInfeasible(t *testing.T) {
	pot1 := []*FieldTeam{
		team(1, "A", "SEC", 40, 4),
		team(2, "B", "Big Ten", 38, 4),
	}
	pot2 := []*FieldTeam{
		team(3, "C", "SEC", 30, 3),
		team(4, "D", "SEC", 28, 3),
	}

	_, err := PairPots(pot1, pot2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInfeasiblePairing)
}

func TestPairPotsSizeMismatch(t *testing.T) {
	_, err := PairPots([]*FieldTeam{team(1, "A", "SEC", 0, 0)}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPotBalance)
}

func TestHomeAwayByStrength(t *testing.T) {
	strongAway := Pairing{
		Home: team(1, "A", "SEC", 20, 2),
		Away: team(2, "B", "Big Ten", 30, 3),
	}
	pairs := []Pairing{strongAway}

	HomeAway(pairs)
	assert.Equal(t, 2, pairs[0].Home.TeamID, "more rolling points hosts")
}

func TestHomeAwayTiebreaks(t *testing.T) {
	// Equal totals: points-per-game decides.
	pairs := []Pairing{{
		Home: team(1, "A", "SEC", 30, 2.5),
		Away: team(2, "B", "Big Ten", 30, 3.0),
	}}
	HomeAway(pairs)
	assert.Equal(t, 2, pairs[0].Home.TeamID)

	// Full tie: the lower name hosts.
	pairs = []Pairing{{
		Home: team(1, "Zulu", "SEC", 30, 3),
		Away: team(2, "Army", "Big Ten", 30, 3),
	}}
	HomeAway(pairs)
	assert.Equal(t, "Army", pairs[0].Home.Name)
}
