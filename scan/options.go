package scan

import (
	"unsafe"

	"github.com/cwbudde/algo-scan/internal/cpu"
	"github.com/cwbudde/algo-scan/internal/parallel"
)

// Option configures a parallel scan.
type Option func(*config)

type config struct {
	par     parallel.Config
	counter *Counter
}

// WithWorkers caps the number of goroutines per parallel region.
// Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.par.Workers = n
		}
	}
}

// WithGrain sets the minimum number of elements handed to one goroutine.
// It is rounded up to a whole number of cache lines. Values < 1 are ignored.
func WithGrain(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.par.Grain = n
		}
	}
}

// WithCounter records the number of additions performed into c.
func WithCounter(c *Counter) Option {
	return func(cfg *config) {
		cfg.counter = c
	}
}

func applyOptions[T Integer](opts []Option) config {
	cfg := config{par: parallel.DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var zero T
	line := cpu.DetectFeatures().LineElems(int(unsafe.Sizeof(zero)))
	cfg.par.Grain = (cfg.par.Grain + line - 1) / line * line
	return cfg
}
