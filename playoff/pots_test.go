package playoff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotForRuleTable(t *testing.T) {
	cases := []struct {
		tier, finish, pot int
	}{
		{1, 1, 0}, {1, 2, 0}, {1, 3, 1}, {1, 4, 2},
		{3, 1, 0}, {3, 2, 1}, {3, 4, 2},
		{5, 1, 0}, {5, 2, 1}, {5, 3, 2},
		{6, 1, 0}, {6, 2, 2},
		{7, 1, 2}, {10, 1, 2},
		{12, 1, 2}, {1, 9, 2},
	}

	for _, c := range cases {
		assert.Equal(t, c.pot, PotFor(c.tier, c.finish), "tier %d finish %d", c.tier, c.finish)
	}
}

// fullField builds a 24-team field whose rule-table pot assignment lands
// exactly on 8 byes, 7 in pot 1 and 9 in pot 2. Strength decreases with team
// id so ordering assertions are easy to read.
func fullField() []*FieldTeam {
	shapes := []struct {
		tier     int
		finishes int
	}{
		{1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 3}, {6, 1},
		{7, 1}, {8, 1}, {9, 1}, {10, 1},
	}

	var teams []*FieldTeam
	id := 0
	for _, s := range shapes {
		for finish := 1; finish <= s.finishes; finish++ {
			id++
			teams = append(teams, &FieldTeam{
				TeamID:      id,
				Name:        fmt.Sprintf("Team %02d", id),
				Conference:  fmt.Sprintf("Conf %d", s.tier),
				ConfRank:    finish,
				ConfCoeRank: s.tier,
				TotalPoints: float64(100 - id),
				PPG:         float64(100-id) / 10,
			})
		}
	}
	return teams
}

func TestAssignPotsAndRebalance(t *testing.T) {
	teams := fullField()
	require.Len(t, teams, 24)

	AssignPots(teams)
	require.NoError(t, CheckByes(teams, 8))

	counts := map[int]int{}
	for _, tm := range teams {
		counts[tm.Pot]++
	}
	assert.Equal(t, 8, counts[0])
	assert.Equal(t, 7, counts[1])
	assert.Equal(t, 9, counts[2])

	require.NoError(t, Rebalance(teams, 8))

	counts = map[int]int{}
	var promoted *FieldTeam
	for _, tm := range teams {
		counts[tm.Pot]++
		// Tier 1, 4th place is the strongest team the rules put in pot 2.
		if tm.ConfCoeRank == 1 && tm.ConfRank == 4 {
			promoted = tm
		}
	}
	assert.Equal(t, 8, counts[0])
	assert.Equal(t, 8, counts[1])
	assert.Equal(t, 8, counts[2])
	require.NotNil(t, promoted)
	assert.Equal(t, 1, promoted.Pot, "the strongest pot-2 team moves up")
}

func TestRebalanceUnreachable(t *testing.T) {
	teams := []*FieldTeam{
		{TeamID: 1, Pot: 2},
		{TeamID: 2, Pot: 2},
		{TeamID: 3, Pot: 2},
	}

	err := Rebalance(teams, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPotBalance)
}

func TestCheckByesMismatch(t *testing.T) {
	teams := fullField()
	AssignPots(teams)

	err := CheckByes(teams, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrByeCount)
}

func TestApplyExtraQualifierStrongConference(t *testing.T) {
	teams := fullField()
	AssignPots(teams)

	// Tier 4, 4th place sits in pot 2; its conference ranks in the top six,
	// so the override lifts it to pot 1.
	var target *FieldTeam
	for _, tm := range teams {
		if tm.ConfCoeRank == 4 && tm.ConfRank == 4 {
			target = tm
		}
	}
	require.NotNil(t, target)
	require.Equal(t, 2, target.Pot)

	ranks := map[string]int{}
	for _, tm := range teams {
		ranks[tm.Conference] = tm.ConfCoeRank
	}

	ApplyExtraQualifier(teams, ranks, &ExtraQualifier{TeamID: target.TeamID, Conference: target.Conference})
	assert.Equal(t, 1, target.Pot)
}

func TestApplyExtraQualifierWeakConferencePromotesRankSeven(t *testing.T) {
	teams := fullField()
	AssignPots(teams)

	ranks := map[string]int{}
	var extra, champ7 *FieldTeam
	for _, tm := range teams {
		ranks[tm.Conference] = tm.ConfCoeRank
		if tm.ConfCoeRank == 8 {
			extra = tm
		}
		if tm.ConfCoeRank == 7 && tm.ConfRank == 1 {
			champ7 = tm
		}
	}
	require.NotNil(t, extra)
	require.NotNil(t, champ7)
	require.Equal(t, 2, champ7.Pot)

	ApplyExtraQualifier(teams, ranks, &ExtraQualifier{TeamID: extra.TeamID, Conference: extra.Conference})

	assert.Equal(t, 2, extra.Pot, "a rank 7-10 conference stays in pot 2")
	assert.Equal(t, 1, champ7.Pot, "the rank-7 champion moves up to keep slot symmetry")
}

func TestApplyExtraQualifierNeverMovesByes(t *testing.T) {
	teams := fullField()
	AssignPots(teams)

	var bye *FieldTeam
	for _, tm := range teams {
		if tm.Pot == 0 {
			bye = tm
			break
		}
	}
	require.NotNil(t, bye)

	ranks := map[string]int{bye.Conference: 1}
	ApplyExtraQualifier(teams, ranks, &ExtraQualifier{TeamID: bye.TeamID, Conference: bye.Conference})
	assert.Equal(t, 0, bye.Pot)
}
