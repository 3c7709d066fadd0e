package ratings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowPartialEmitsNothing(t *testing.T) {
	byYear := map[int]map[int]float64{
		2014: {1: 1.0},
		2015: {1: 1.0},
		2016: {1: 1.0},
	}

	_, start, ok := Window(byYear, 2016, RollingOptions{Window: 5})
	assert.False(t, ok, "three seasons cannot fill a five-year window")
	assert.Equal(t, 2012, start)
}

func TestWindowDecayWeights(t *testing.T) {
	byYear := make(map[int]map[int]float64)
	for y := 2012; y <= 2016; y++ {
		byYear[y] = map[int]float64{7: 1.0}
	}

	opts := RollingOptions{Window: 5, Decay: true, DecayBase: 0.92}
	values, start, ok := Window(byYear, 2016, opts)
	require.True(t, ok)
	assert.Equal(t, 2012, start)

	want := 0.0
	for age := 0; age < 5; age++ {
		want += math.Pow(0.92, float64(age))
	}
	assert.InDelta(t, want, values[7], 1e-9)
}

func TestWindowRawSum(t *testing.T) {
	byYear := map[int]map[string]float64{
		2015: {"Big Ten": 10, "SEC": 12},
		2016: {"Big Ten": 8, "SEC": 14},
	}

	values, start, ok := Window(byYear, 2016, RollingOptions{Window: 2})
	require.True(t, ok)
	assert.Equal(t, 2015, start)
	assert.InDelta(t, 18.0, values["Big Ten"], 1e-9)
	assert.InDelta(t, 26.0, values["SEC"], 1e-9)
}

func TestWindowMissingKeyContributesZero(t *testing.T) {
	// Team 2 only has data in the end year; earlier years contribute zero
	// rather than invalidating the window.
	byYear := map[int]map[int]float64{
		2015: {1: 3.0},
		2016: {1: 2.0, 2: 5.0},
	}

	values, _, ok := Window(byYear, 2016, RollingOptions{Window: 2})
	require.True(t, ok)
	assert.InDelta(t, 5.0, values[1], 1e-9)
	assert.InDelta(t, 5.0, values[2], 1e-9)
}
