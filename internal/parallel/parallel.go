// Package parallel runs data-parallel loops as fork/join regions.
//
// Every call to For is one parallel region: the index range is split into
// chunks, the chunks run on at most Workers goroutines, and For returns only
// after every chunk has finished. The return of For is the barrier. Code that
// reads what a region wrote must start after For returns.
package parallel

import (
	"github.com/cwbudde/algo-scan/internal/cpu"
	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the minimum number of indices handed to one goroutine.
const DefaultGrain = 4096

// RangeFunc covers the half-open interval [low, high).
type RangeFunc func(low, high int)

// Config controls how a region is split.
type Config struct {
	Workers int // maximum goroutines running at once
	Grain   int // minimum indices per chunk
}

// DefaultConfig sizes the pool from the detected CPU topology.
func DefaultConfig() Config {
	f := cpu.DetectFeatures()
	return Config{
		Workers: f.Workers(),
		Grain:   DefaultGrain,
	}
}

// Normalize clamps non-positive fields to usable values.
func (c Config) Normalize() Config {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Grain < 1 {
		c.Grain = 1
	}
	return c
}

// Chunks returns the chunk length For would use for n indices.
func (c Config) Chunks(n int) int {
	c = c.Normalize()
	size := (n + c.Workers - 1) / c.Workers
	return max(size, c.Grain)
}

// For executes body over [0, n) and returns after all of it has run.
//
// Regions no larger than one chunk, or with a single worker, run inline on the
// calling goroutine.
func For(n int, cfg Config, body RangeFunc) {
	if n <= 0 {
		return
	}
	cfg = cfg.Normalize()
	size := cfg.Chunks(n)
	if cfg.Workers == 1 || size >= n {
		body(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for low := 0; low < n; low += size {
		high := min(low+size, n)
		g.Go(func() error {
			body(low, high)
			return nil
		})
	}
	_ = g.Wait()
}

// Copy copies src into dst in one region. dst and src must have equal length.
func Copy[T any](dst, src []T, cfg Config) {
	For(len(dst), cfg, func(low, high int) {
		copy(dst[low:high], src[low:high])
	})
}
