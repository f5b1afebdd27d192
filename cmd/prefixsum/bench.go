package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/algo-scan/buffer"
	"github.com/cwbudde/algo-scan/input"
	"github.com/cwbudde/algo-scan/scan"
	"github.com/cwbudde/algo-scan/scan/registry"
	"github.com/cwbudde/algo-scan/stats/timing"
	"golang.org/x/exp/slog"
)

var errNoReference = errors.New("no reference algorithm selected")

// result is one algorithm's timing and verification outcome.
type result struct {
	entry   registry.Entry
	summary timing.Summary
	verify  scan.Result
}

type bench struct {
	o    options
	log  *slog.Logger
	opts []scan.Option
}

func newBench(o options, log *slog.Logger) *bench {
	var opts []scan.Option
	if o.workers > 0 {
		opts = append(opts, scan.WithWorkers(o.workers))
	}
	if o.grain > 0 {
		opts = append(opts, scan.WithGrain(o.grain))
	}
	return &bench{o: o, log: log, opts: opts}
}

// run times every entry on a private copy of one generated input. entries
// must start with the reference scan.
func (b *bench) run(entries []registry.Entry, stdout, stderr io.Writer) ([]result, error) {
	n := b.o.n

	src := buffer.New[int32](n)
	if err := input.NewGenerator(input.WithSeed(b.o.seed)).Fill(src.Data()); err != nil {
		return nil, err
	}
	b.log.Debug("input generated", "n", n, "seed", b.o.seed, "aligned", src.Aligned())

	work := buffer.New[int32](n)
	var reference []int32
	results := make([]result, 0, len(entries))

	for _, e := range entries {
		if !e.Reference && reference == nil {
			return nil, errNoReference
		}

		out := buffer.New[int32](n)
		samples, err := b.measure(e, out.Data(), work.Data(), src.Data())
		if err != nil {
			return nil, err
		}

		r := result{entry: e, summary: timing.Calculate(samples)}
		kind := "prefix sum"
		if e.Parallel {
			kind = "parallel prefix sum"
		}
		_, _ = fmt.Fprintf(stdout, "Time to do %s %s on a %d elements: %g (s)\n",
			e.Label, kind, n, r.summary.MinSeconds())

		if e.Reference {
			reference = out.Data()
			r.verify = scan.Verify(reference, reference)
		} else {
			r.verify = scan.Verify(reference, out.Data())
			if r.verify.OK() {
				_, _ = fmt.Fprintln(stdout, r.verify)
			} else {
				_, _ = fmt.Fprintln(stderr, r.verify)
				b.log.Warn("verification failed", "algo", e.Name, "err", r.verify.Err())
			}
		}
		results = append(results, r)
	}
	return results, nil
}

// measure runs e.Scan once per trial. Each trial starts from a fresh copy of
// src and a zeroed destination.
func (b *bench) measure(e registry.Entry, dst, work, src []int32) ([]time.Duration, error) {
	samples := make([]time.Duration, 0, b.o.trials)
	for trial := range b.o.trials {
		copy(work, src)
		clear(dst)

		var sw timing.Stopwatch
		sw.Start()
		err := e.Scan(dst, work, b.opts...)
		d := sw.Stop()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}

		samples = append(samples, d)
		b.log.Debug("trial done", "algo", e.Name, "trial", trial, "seconds", d.Seconds())
	}
	return samples, nil
}
