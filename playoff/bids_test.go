package playoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(tiers []TierBand) BidPolicy {
	return BidPolicy{
		Tiers:           tiers,
		CapConference:   "FBS Independents",
		CapBids:         2,
		FloorConference: "Mid-American",
		FloorBids:       1,
		Target:          24,
	}
}

func tenConferences() []string {
	return []string{
		"SEC", "Big Ten", "Big 12", "ACC", "American Athletic",
		"Mountain West", "Sun Belt", "Conference USA", "Pac-12", "Mid-American",
	}
}

func TestAllocateYear2Exact(t *testing.T) {
	out, err := testPolicy(Year2Tiers()).Allocate(tenConferences())
	require.NoError(t, err)
	require.Len(t, out, 10)

	want := []int{4, 4, 4, 4, 3, 1, 1, 1, 1, 1}
	total := 0
	for i, b := range out {
		assert.Equal(t, want[i], b.Bids, "rank %d", b.Rank)
		assert.Equal(t, want[i], b.BaseBids)
		total += b.Bids
	}
	assert.Equal(t, 24, total)
}

func TestAllocateYear1RebalancesDown(t *testing.T) {
	// Year-1 tiers over ten conferences allocate 25; the weakest conference
	// above champion access gives one back. The floor conference at rank 10
	// and the single-bid ranks are untouchable, so rank 6 drops from 2 to 1.
	out, err := testPolicy(Year1Tiers()).Allocate(tenConferences())
	require.NoError(t, err)

	want := []int{4, 4, 4, 4, 3, 1, 1, 1, 1, 1}
	for i, b := range out {
		assert.Equal(t, want[i], b.Bids, "rank %d", b.Rank)
	}
}

func TestAllocateCapThenRebalanceUp(t *testing.T) {
	ranked := tenConferences()
	ranked[0] = "FBS Independents"

	out, err := testPolicy(Year2Tiers()).Allocate(ranked)
	require.NoError(t, err)

	assert.Equal(t, 2, out[0].Bids, "cap overrides the tier table")
	assert.Equal(t, 4, out[0].BaseBids)

	// The two freed bids go to the strongest conferences below the ceiling:
	// rank 5 rises to 4, rank 6 to 2.
	assert.Equal(t, 4, out[4].Bids)
	assert.Equal(t, 2, out[5].Bids)

	total := 0
	for _, b := range out {
		total += b.Bids
	}
	assert.Equal(t, 24, total)
}

func TestAllocateFloorGuaranteesChampion(t *testing.T) {
	// Eleven conferences with the floor conference outside every tier band.
	ranked := append(tenConferences()[:9:9], "Sun Belt East", "Mid-American")

	out, err := testPolicy(Year2Tiers()).Allocate(ranked)
	require.NoError(t, err)
	require.Len(t, out, 11)

	assert.Equal(t, 1, out[10].Bids, "floor conference keeps its champion bid")
	assert.Equal(t, 0, out[10].BaseBids)

	total := 0
	for _, b := range out {
		total += b.Bids
	}
	assert.Equal(t, 24, total)
}

func TestAllocateUnreachableTarget(t *testing.T) {
	out, err := testPolicy(Year2Tiers()).Allocate([]string{"SEC", "Big Ten", "Big 12"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBidRebalance)
}
