package main

import (
	"io"
	"log/slog"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hull"
	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/internal/plot"
	"github.com/osuushi/hull/internal/pointio"
	"github.com/pkg/errors"
)

var (
	computeCmd    = app.Command("compute", `Read points ("x y" per line) from stdin and print their hull.`)
	computeNaive  = computeCmd.Flag("naive", "Use the naive O(n³) algorithm.").Bool()
	computeSVG    = computeCmd.Flag("svg", "Read points from the polygons, polylines and circles of an SVG file instead of stdin.").ExistingFile()
	computePlot   = computeCmd.Flag("plot", "Write a PNG drawing of the points and hull to this file.").String()
	computeImgcat = computeCmd.Flag("imgcat", "Print the plot inline in the terminal (iTerm only).").Bool()
	computeLabels = computeCmd.Flag("labels", "Label hull vertices in the plot.").Bool()
)

func runCompute(logger *slog.Logger) error {
	points, err := readInput(os.Stdin)
	if err != nil {
		return err
	}

	algorithm := hull.ComputeHull
	if *computeNaive {
		algorithm = hull.NaiveHull
	}
	result, err := algorithm(points)
	if err != nil {
		return err
	}
	logger.Debug("computed hull", "points", len(points), "hull", len(result), "naive", *computeNaive)

	if err := pointio.WriteText(os.Stdout, result); err != nil {
		return err
	}

	if *computePlot == "" {
		if *computeImgcat {
			logger.Warn("--imgcat has no effect without --plot")
		}
		return nil
	}
	img := plot.DrawHull(points, internal.Hull(result), plot.Options{
		Size:   plot.DefaultOptions().Size,
		Labels: *computeLabels,
	})
	if err := plot.SavePNG(*computePlot, img); err != nil {
		return err
	}
	logger.Info("wrote plot", "path", *computePlot)
	if *computeImgcat {
		if err := imgcat.CatFile(*computePlot, os.Stderr); err != nil {
			logger.Warn("could not print plot to terminal", "path", *computePlot, "error", err)
		}
	}
	return nil
}

func readInput(stdin io.Reader) ([]hull.Point, error) {
	if *computeSVG == "" {
		return pointio.ReadText(stdin)
	}
	f, err := os.Open(*computeSVG)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return pointio.ReadSVG(f)
}
