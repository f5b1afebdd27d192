package timing

import "time"

// Stopwatch measures elapsed wall time on the monotonic clock.
// The zero value is ready to Start.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Start (re)starts the stopwatch.
func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.running = true
}

// Stop freezes the elapsed time and returns it. Stop on a stopped watch
// returns the last measurement.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = time.Since(s.start)
		s.running = false
	}
	return s.elapsed
}

// Elapsed returns the time since Start while running, else the last
// measurement.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.start)
	}
	return s.elapsed
}

// Seconds returns Elapsed in seconds.
func (s *Stopwatch) Seconds() float64 {
	return s.Elapsed().Seconds()
}

// Time runs fn once and returns how long it took.
func Time(fn func()) time.Duration {
	var s Stopwatch
	s.Start()
	fn()
	return s.Stop()
}
