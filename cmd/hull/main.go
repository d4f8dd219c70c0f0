// Command hull computes convex hulls of point sets and benchmarks the divide
// and conquer algorithm against the naive one.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/osuushi/hull/internal/logging"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("hull", "Convex hulls by divide and conquer.")
	verbose = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case computeCmd.FullCommand():
		err = runCompute(logger)
	case generateCmd.FullCommand():
		err = runGenerate()
	case benchCmd.FullCommand():
		err = runBench(ctx, logger)
	default:
		err = errors.Errorf("unknown command %q", command)
	}

	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		stop()
		os.Exit(1)
	}
}
