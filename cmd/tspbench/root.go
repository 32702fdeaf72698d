package main

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsplab/internal/bench"
	"github.com/katalvlaran/tsplab/internal/config"
)

type rootFlags struct {
	configPath     string
	inputDir       string
	output         string
	optima         string
	timeLimit      time.Duration
	exactTimeLimit time.Duration
	noExact        bool
	metricsFile    string
	logFormat      string
	verbose        bool
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "tspbench [instance.tsp]",
		Short: "Run TSP solvers over TSPLIB instances and save the results as JSON.",
		Long: `tspbench solves every *.tsp file of the input directory (or the single file given)
with twice-around-tree, Christofides and branch-and-bound, and rewrites the results
file after each instance.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			r, err := bench.New(cfg, logger)
			if err != nil {
				return err
			}
			single := ""
			if len(args) == 1 {
				single = args[0]
			}
			files, err := r.Files(single)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				logger.WithField("input_dir", cfg.InputDir).Warn("no .tsp files found")
			}
			_, err = r.Run(ctx, files)

			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.inputDir, "input-dir", "i", "", "directory scanned for *.tsp files")
	fl.StringVarP(&f.output, "output", "o", "", "results JSON file")
	fl.StringVar(&f.optima, "optima", "", "known optimal costs JSON file")
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "time limit of the approximation solvers (negative: unlimited)")
	fl.DurationVar(&f.exactTimeLimit, "exact-time-limit", 0, "time limit of branch-and-bound (negative: unlimited)")
	fl.BoolVar(&f.noExact, "no-exact", false, "skip branch-and-bound")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write solver metrics in Prometheus text format")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// resolve loads the config file and applies the flags the user set.
func (f *rootFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("input-dir") {
		cfg.InputDir = f.inputDir
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("optima") {
		cfg.Optima = f.optima
	}
	if fl.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fl.Changed("exact-time-limit") {
		cfg.ExactTimeLimit = f.exactTimeLimit
	}
	if f.noExact {
		cfg.RunExact = false
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if f.verbose {
		cfg.Verbose = true
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if cfg.LogFormat == config.LogFormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
