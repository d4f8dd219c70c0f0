package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/osuushi/hull/internal/bench"
	"github.com/osuushi/hull/internal/config"
	"github.com/osuushi/hull/internal/plot"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

var (
	benchCmd        = app.Command("bench", "Time both algorithms over growing point sets.")
	benchConfig     = benchCmd.Flag("config", "YAML benchmark configuration.").ExistingFile()
	benchSizes      = benchCmd.Flag("size", "Point set size to time (repeatable). Overrides the config.").Ints()
	benchTrials     = benchCmd.Flag("trials", "Runs per size. 0 keeps the configured value.").Int()
	benchSeed       = benchCmd.Flag("seed", "Random seed. 0 keeps the configured value.").Uint64()
	benchNaiveLimit = benchCmd.Flag("naive-limit", "Largest size to run the naive algorithm at. -1 keeps the configured value.").Default("-1").Int()
	benchInteger    = benchCmd.Flag("integer", "Snap generated coordinates to integers.").Bool()
	benchCSV        = benchCmd.Flag("csv", "Also write the results as CSV to this file.").String()
	benchChart      = benchCmd.Flag("chart", "Write a PNG chart of the timings to this file.").String()
	benchProfile    = benchCmd.Flag("cpuprofile", "Write a CPU profile to this directory.").String()
)

func runBench(ctx context.Context, logger *slog.Logger) error {
	cfg, err := loadBenchConfig()
	if err != nil {
		return err
	}

	if *benchProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*benchProfile), profile.Quiet).Stop()
	}

	logger.Info("starting benchmark", "sizes", cfg.Sizes, "trials", cfg.Trials, "naive_limit", cfg.NaiveLimit)
	runner := &bench.Runner{Config: cfg, Logger: logger}
	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	if err := report.WriteTable(os.Stdout, color); err != nil {
		return err
	}

	if *benchCSV != "" {
		if err := writeCSV(*benchCSV, report); err != nil {
			return err
		}
		logger.Info("wrote csv", "path", *benchCSV)
	}
	if *benchChart != "" {
		if err := plot.SavePNG(*benchChart, plot.DrawTimings(report, 960, 600)); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", *benchChart)
	}

	if len(report.Mismatches) > 0 {
		return errors.Errorf("%d hulls did not match the naive hull", len(report.Mismatches))
	}
	return nil
}

// The config file is applied first, then any flags given on the command line.
func loadBenchConfig() (config.Bench, error) {
	cfg := config.Default()
	if *benchConfig != "" {
		var err error
		if cfg, err = config.Load(*benchConfig); err != nil {
			return config.Bench{}, err
		}
	}

	if len(*benchSizes) > 0 {
		cfg.Sizes = *benchSizes
	}
	if *benchTrials != 0 {
		cfg.Trials = *benchTrials
	}
	if *benchSeed != 0 {
		cfg.Seed = *benchSeed
	}
	if *benchNaiveLimit >= 0 {
		cfg.NaiveLimit = *benchNaiveLimit
	}
	if *benchInteger {
		cfg.Integer = true
	}
	return cfg, cfg.Validate()
}

func writeCSV(path string, report *bench.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating csv")
	}
	if err := report.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing csv")
}
