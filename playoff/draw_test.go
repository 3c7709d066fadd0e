package playoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedField(t *testing.T) []*FieldTeam {
	t.Helper()
	teams := fullField()
	AssignPots(teams)
	require.NoError(t, Rebalance(teams, 8))
	return teams
}

func TestDrawStructure(t *testing.T) {
	teams := balancedField(t)

	order, err := Draw(teams, 8, 20250101)
	require.NoError(t, err)
	require.Len(t, order, 24)

	seen := map[int]bool{}
	for i, tm := range order {
		assert.False(t, seen[tm.TeamID], "team %d drawn twice", tm.TeamID)
		seen[tm.TeamID] = true

		switch {
		case i < 8:
			assert.Equal(t, 0, tm.Pot, "slot %d", i+1)
		case i < 16:
			assert.Equal(t, 1, tm.Pot, "slot %d", i+1)
		default:
			assert.Equal(t, 2, tm.Pot, "slot %d", i+1)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	a, err := Draw(balancedField(t), 8, 42)
	require.NoError(t, err)
	b, err := Draw(balancedField(t), 8, 42)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].TeamID, b[i].TeamID, "slot %d", i+1)
	}
}

func TestDrawIgnoresInputOrder(t *testing.T) {
	teams := balancedField(t)
	reversed := make([]*FieldTeam, len(teams))
	for i, tm := range teams {
		reversed[len(teams)-1-i] = tm
	}

	a, err := Draw(teams, 8, 42)
	require.NoError(t, err)
	b, err := Draw(reversed, 8, 42)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].TeamID, b[i].TeamID, "slot %d", i+1)
	}
}

func TestDrawByeMismatch(t *testing.T) {
	teams := balancedField(t)

	_, err := Draw(teams, 6, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrByeCount)
}
