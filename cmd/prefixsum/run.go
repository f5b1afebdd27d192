package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-scan/scan/registry"
	"golang.org/x/exp/slog"
)

const (
	defaultElements = 1048576

	exitOK    = 0
	exitUsage = 2
)

// clock supplies the default seed. Tests replace it.
type clock func() time.Time

// options holds the parsed command line.
type options struct {
	n        int
	seed     int64
	seedSet  bool
	trials   int
	workers  int
	grain    int
	algos    []string
	list     bool
	features bool
	verbose  bool
}

var errUsage = errors.New("usage")

func usageLine(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: prefixsum [flags] <# elements> <rand seed>\n")
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("prefixsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.n, "n", defaultElements, "number of elements")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (default: current time)")
	fs.IntVar(&o.trials, "trials", 1, "runs per algorithm; the minimum time is reported")
	fs.IntVar(&o.workers, "workers", 0, "goroutines per parallel region (default: GOMAXPROCS)")
	fs.IntVar(&o.grain, "grain", 0, "minimum elements per goroutine (default: 4096)")
	algo := fs.String("algo", "", "comma-separated algorithms to run (serial always runs)")
	fs.BoolVar(&o.list, "list", false, "list available algorithms")
	fs.BoolVar(&o.features, "features", false, "print detected CPU features")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		usageLine(stderr)
		_, _ = fmt.Fprintf(stderr, "\nTimes and verifies parallel prefix sums against a serial reference.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	if pos := fs.Args(); len(pos) >= 2 {
		n, err := strconv.Atoi(pos[0])
		if err != nil {
			return o, fmt.Errorf("%w: invalid element count %q", errUsage, pos[0])
		}
		seed, err := strconv.ParseInt(pos[1], 10, 64)
		if err != nil {
			return o, fmt.Errorf("%w: invalid seed %q", errUsage, pos[1])
		}
		o.n, o.seed, o.seedSet = n, seed, true
	} else if !o.list && !o.features {
		usageLine(stderr)
	}

	if o.n <= 0 {
		return o, fmt.Errorf("%w: element count must be > 0: %d", errUsage, o.n)
	}
	if o.trials <= 0 {
		return o, fmt.Errorf("%w: trials must be > 0: %d", errUsage, o.trials)
	}
	if *algo != "" {
		for _, name := range strings.Split(*algo, ",") {
			if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
				o.algos = append(o.algos, name)
			}
		}
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer, now clock) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, o.verbose)
	reg := registry.Default()

	if o.list {
		printList(stdout, reg)
		return exitOK
	}
	if o.features {
		printFeatures(stdout)
		return exitOK
	}

	entries, err := reg.Select(o.algos)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return exitUsage
	}

	if !o.seedSet {
		o.seed = now().Unix()
		_, _ = fmt.Fprintf(stdout, "using %d elements and time as seed\n", o.n)
	}

	b := newBench(o, logger)
	results, err := b.run(entries, stdout, stderr)
	if err != nil {
		logger.Error("benchmark failed", "err", err)
		return exitUsage
	}
	printSummary(stdout, stderr, results)
	return exitOK
}
