package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-scan/internal/cpu"
	"github.com/cwbudde/algo-scan/internal/parallel"
	"github.com/cwbudde/algo-scan/scan/registry"
)

func printList(w io.Writer, reg *registry.Registry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range reg.List() {
		note := ""
		if e.Reference {
			note = "reference"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Label, note)
	}
	_ = tw.Flush()
}

func printFeatures(w io.Writer) {
	f := cpu.DetectFeatures()
	cfg := parallel.DefaultConfig()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "architecture\t%s\n", f.Architecture)
	_, _ = fmt.Fprintf(tw, "cpus\t%d\n", f.NumCPU)
	_, _ = fmt.Fprintf(tw, "gomaxprocs\t%d\n", f.MaxProcs)
	_, _ = fmt.Fprintf(tw, "cache line\t%d bytes\n", f.CacheLineSize)
	_, _ = fmt.Fprintf(tw, "sse2/avx2/avx512\t%t/%t/%t\n", f.HasSSE2, f.HasAVX2, f.HasAVX512)
	_, _ = fmt.Fprintf(tw, "neon\t%t\n", f.HasNEON)
	_, _ = fmt.Fprintf(tw, "vector kernels\t%s\n", cpu.VectorLevel())
	_, _ = fmt.Fprintf(tw, "default workers\t%d\n", cfg.Workers)
	_, _ = fmt.Fprintf(tw, "default grain\t%d\n", cfg.Grain)
	_ = tw.Flush()
}

func printSummary(stdout, stderr io.Writer, results []result) {
	if len(results) == 0 {
		return
	}
	base := results[0].summary

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nAlgorithm\tWork\tTrials\tMin [s]\tMedian [s]\tMean [s]\tSpeedup\tResult\n"); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write summary header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t----\t------\t-------\t----------\t--------\t-------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write summary header: %v\n", err)
		return
	}

	for _, r := range results {
		status := "Pass"
		if !r.verify.OK() {
			status = fmt.Sprintf("FAIL (%d)", r.verify.Mismatches)
		}
		if r.entry.Reference {
			status = "reference"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.6f\t%.6f\t%.6f\t%.2fx\t%s\n",
			r.entry.Name,
			r.entry.Label,
			r.summary.Trials,
			r.summary.MinSeconds(),
			r.summary.Median.Seconds(),
			r.summary.Mean,
			r.summary.Speedup(base),
			status,
		); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: failed to write summary row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to flush summary: %v\n", err)
	}
}
