// Package main is the entry point for logarray-bench, which runs a
// randomized workload against a logarray.Array and verifies it against a
// reference model.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/logarray/internal/config"
	"github.com/dshills/logarray/internal/logging"
	"github.com/dshills/logarray/internal/workload"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds command-line settings. Only flags the user actually set
// override the configuration file and environment.
type options struct {
	configPath  string
	logLevel    string
	ops         int
	seed        int64
	chunkSize   int
	initialSize int
	checkEvery  int
	dumpConfig  bool
	progress    time.Duration

	set map[string]bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.dumpConfig {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: os.Stderr,
		Prefix: "logarray-bench",
	})
	logging.SetDefault(logger)

	runner, err := workload.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.progress > 0 {
		progressCtx, cancelProgress := context.WithCancel(ctx)
		defer cancelProgress()
		go reportProgress(progressCtx, logger, runner.Metrics(), opts.progress)
	}

	res, err := runner.Run(ctx)
	printSummary(os.Stdout, res)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers defaults, the config file, LOGARRAY_* variables, and
// explicitly set flags, in that order, then validates the result. A file
// named with -config must exist; without it, DefaultPath is read if present.
func loadConfig(opts options) (config.Config, error) {
	var cfg config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFileRequired(opts.configPath)
	} else {
		cfg, err = config.LoadFile(config.DefaultPath)
	}
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}
	applyFlags(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.set["log-level"] {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.set["ops"] {
		cfg.Workload.Operations = opts.ops
	}
	if opts.set["seed"] {
		cfg.Workload.Seed = opts.seed
	}
	if opts.set["chunk-size"] {
		cfg.Array.ChunkSize = opts.chunkSize
	}
	if opts.set["initial-size"] {
		cfg.Workload.InitialSize = opts.initialSize
	}
	if opts.set["check-every"] {
		cfg.Workload.CheckEvery = opts.checkEvery
	}
}

// reportProgress logs the operation count every interval until ctx is done.
func reportProgress(ctx context.Context, logger *logging.Logger, m *workload.Metrics, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := m.Snapshot()
			logger.Info("progress: %d operations after %s", s.Total(), s.Uptime.Round(time.Second))
		}
	}
}

func printSummary(w io.Writer, res workload.Result) {
	fmt.Fprintf(w, "run:         %s\n", res.RunID)
	fmt.Fprintf(w, "seed:        %d\n", res.Seed)
	fmt.Fprintf(w, "operations:  %d (%.0f ops/s)\n", res.Operations, res.OpsPerSecond())
	for _, op := range workload.Ops() {
		n := res.Counts[op]
		if n == 0 {
			continue
		}
		if l, ok := res.Metrics.Ops[op]; ok {
			fmt.Fprintf(w, "  %-9s  %d (avg %s, max %s)\n", op, n, l.Avg, l.Max)
		} else {
			fmt.Fprintf(w, "  %-9s  %d\n", op, n)
		}
	}
	fmt.Fprintf(w, "checks:      %d (avg %s)\n", res.Checks, res.Metrics.Checks.Avg)
	fmt.Fprintf(w, "length:      %d\n", res.Stats.Len)
	fmt.Fprintf(w, "nodes:       %d (height %d, fill %.1f%%)\n", res.Stats.Nodes, res.Stats.Height, res.Stats.Fill()*100)
	fmt.Fprintf(w, "fingerprint: %016x (model %016x)\n", res.ArrayFingerprint, res.ModelFingerprint)
	fmt.Fprintf(w, "elapsed:     %s\n", res.Duration)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default: "+config.DefaultPath+" if present)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.ops, "ops", 0, "Number of operations to run")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.IntVar(&opts.chunkSize, "chunk-size", 0, "Maximum elements per node (at least 4)")
	flag.IntVar(&opts.initialSize, "initial-size", 0, "Elements loaded before the run starts")
	flag.IntVar(&opts.checkEvery, "check-every", 0, "Run a full invariant check every N operations (0 disables)")
	flag.DurationVar(&opts.progress, "progress", 10*time.Second, "Log progress at this interval (0 disables)")
	flag.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective configuration as TOML and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "logarray-bench - randomized workload for the chunked AVL array\n\n")
		fmt.Fprintf(os.Stderr, "Usage: logarray-bench [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvVars() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  logarray-bench                          Run the default workload\n")
		fmt.Fprintf(os.Stderr, "  logarray-bench -ops 1000000 -seed 42    Reproducible long run\n")
		fmt.Fprintf(os.Stderr, "  logarray-bench -c bench.toml -dump-config\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("logarray-bench %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts
}
