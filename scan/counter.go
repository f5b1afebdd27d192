package scan

import "sync/atomic"

// Counter tallies the additions a scan performs. Pass one through WithCounter
// to measure work; leave it out in production runs.
//
// Workers add their share once per chunk, so counting does not serialize the
// inner loops.
type Counter struct {
	adds atomic.Int64
}

// Adds returns the number of additions recorded so far.
func (c *Counter) Adds() int64 {
	return c.adds.Load()
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.adds.Store(0)
}

func (c *Counter) add(n int) {
	if c != nil && n > 0 {
		c.adds.Add(int64(n))
	}
}
