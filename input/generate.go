// Package input builds the integer arrays the scans are timed on.
package input

import (
	"fmt"
	"math/rand"
)

// Default value range: [0, 100).
const (
	DefaultLow  = 0
	DefaultHigh = 100
)

// Generator produces deterministic pseudo-random input from a seed.
type Generator struct {
	seed     int64
	low, hi  int32
	rangeErr error
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed. Equal seeds yield equal arrays.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRange sets the half-open value range [low, high).
func WithRange(low, high int32) Option {
	return func(g *Generator) {
		if high <= low {
			g.rangeErr = fmt.Errorf("input range must satisfy low < high: [%d, %d)", low, high)
			return
		}
		g.low, g.hi = low, high
	}
}

// NewGenerator creates a configured generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed: 1,
		low:  DefaultLow,
		hi:   DefaultHigh,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the configured seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Uniform returns n values drawn uniformly from the configured range.
func (g *Generator) Uniform(n int) ([]int32, error) {
	if n <= 0 {
		return nil, fmt.Errorf("input length must be > 0: %d", n)
	}
	out := make([]int32, n)
	if err := g.Fill(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Fill overwrites dst with values drawn uniformly from the configured range.
// Every call restarts from the seed, so filling two equal-length slices
// yields equal contents.
func (g *Generator) Fill(dst []int32) error {
	if g.rangeErr != nil {
		return g.rangeErr
	}
	rng := rand.New(rand.NewSource(g.seed))
	span := g.hi - g.low
	for i := range dst {
		dst[i] = g.low + rng.Int31n(span)
	}
	return nil
}
