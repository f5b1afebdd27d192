// Package timing measures and summarizes repeated scan runs.
package timing

import (
	"math"
	"sort"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Summary describes a set of timing samples. Durations are exact; Mean and
// StdDev are derived in float64 seconds.
type Summary struct {
	Trials int
	Min    time.Duration
	Max    time.Duration
	Median time.Duration
	Mean   float64 // seconds
	StdDev float64 // seconds, population
}

// Calculate summarizes samples. An empty input yields a zero Summary.
func Calculate(samples []time.Duration) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]time.Duration, n)
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	secs := make([]float64, n)
	var sum float64
	for i, d := range samples {
		secs[i] = d.Seconds()
		sum += secs[i]
	}
	mean := sum / float64(n)

	for i := range secs {
		secs[i] -= mean
	}
	sq := make([]float64, n)
	vecmath.MulBlock(sq, secs, secs)
	var ss float64
	for _, v := range sq {
		ss += v
	}

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Trials: n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
		Mean:   mean,
		StdDev: math.Sqrt(ss / float64(n)),
	}
}

// MinSeconds returns Min in seconds.
func (s Summary) MinSeconds() float64 {
	return s.Min.Seconds()
}

// Speedup returns how many times faster s is than base, comparing minimum
// times. Returns 0 when either minimum is zero.
func (s Summary) Speedup(base Summary) float64 {
	if s.Min <= 0 || base.Min <= 0 {
		return 0
	}
	return base.Min.Seconds() / s.Min.Seconds()
}
