package ratings

import (
	"math"

	"github.com/ak038819-sudo/College-Football-Coefficient/config"
)

// RollingOptions control the trailing-window aggregation.
type RollingOptions struct {
	Window    int
	Decay     bool
	DecayBase float64
}

// RollingFromConfig maps engine config onto rolling options.
func RollingFromConfig(e config.Engine) RollingOptions {
	return RollingOptions{
		Window:    e.RollingWindow,
		Decay:     e.DecayEnabled,
		DecayBase: e.DecayBase,
	}
}

// weight returns the decay weight for a year at the given age within a window
// (age 0 = the end year).
func (o RollingOptions) weight(age int) float64 {
	if !o.Decay {
		return 1.0
	}
	return math.Pow(o.DecayBase, float64(age))
}

// Window aggregates per-year values for each key over the trailing window
// ending at endYear. A key missing in some window year contributes 0 for that
// year. If any year of the window has no data at all the window is partial and
// nothing is emitted: ok is false.
func Window[K comparable](byYear map[int]map[K]float64, endYear int, opts RollingOptions) (values map[K]float64, startYear int, ok bool) {
	startYear = endYear - (opts.Window - 1)

	for y := startYear; y <= endYear; y++ {
		if _, present := byYear[y]; !present {
			return nil, startYear, false
		}
	}

	values = make(map[K]float64)
	for y := startYear; y <= endYear; y++ {
		w := opts.weight(endYear - y)
		for k, v := range byYear[y] {
			values[k] += v * w
		}
	}

	return values, startYear, true
}
