package playoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

func TestSelectForConference(t *testing.T) {
	// Deliberately unsorted input.
	standings := []Standing{
		{TeamID: 30, ConfRank: 3},
		{TeamID: 10, ConfRank: 1},
		{TeamID: 40, ConfRank: 4},
		{TeamID: 20, ConfRank: 2},
	}

	picks := SelectForConference(standings, 3)
	require.Len(t, picks, 3)

	assert.Equal(t, Pick{TeamID: 10, ConfRank: 1, BidType: models.BidChampion}, picks[0])
	assert.Equal(t, Pick{TeamID: 20, ConfRank: 2, BidType: models.BidAtLarge}, picks[1])
	assert.Equal(t, Pick{TeamID: 30, ConfRank: 3, BidType: models.BidAtLarge}, picks[2])
}

func TestSelectForConferenceShortStandings(t *testing.T) {
	standings := []Standing{
		{TeamID: 10, ConfRank: 1},
		{TeamID: 20, ConfRank: 2},
		{TeamID: 30, ConfRank: 3},
	}

	// Four bids but only three ranked teams: never fabricate a qualifier.
	picks := SelectForConference(standings, 4)
	assert.Len(t, picks, 3)
}

func TestSelectForConferenceNoChampion(t *testing.T) {
	standings := []Standing{
		{TeamID: 20, ConfRank: 2},
		{TeamID: 30, ConfRank: 3},
	}

	assert.Nil(t, SelectForConference(standings, 2), "no rank-1 team means no qualifiers")
}

func TestSelectForConferenceZeroBids(t *testing.T) {
	assert.Nil(t, SelectForConference([]Standing{{TeamID: 10, ConfRank: 1}}, 0))
	assert.Nil(t, SelectForConference(nil, 3))
}
