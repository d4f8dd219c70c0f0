// Package bench times the divide and conquer hull against the naive hull over
// growing point sets, and cross-checks their results.
package bench

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/internal/config"
	"github.com/osuushi/hull/internal/gen"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

type Algorithm struct {
	Name string
	Hull func([]internal.Point) internal.Hull
}

var (
	DivideAndConquer = Algorithm{Name: "divide-and-conquer", Hull: internal.ComputeHull}
	Naive            = Algorithm{Name: "naive", Hull: internal.NaiveHull}
)

// Timing statistics for one algorithm at one size.
type Row struct {
	N         int
	Algorithm string
	Trials    int
	Mean      time.Duration
	StdDev    time.Duration
	Median    time.Duration
	// Mean number of points on the computed hulls.
	HullSize float64
}

// A point set on which the two algorithms disagreed.
type Mismatch struct {
	N        int
	Trial    int
	Points   []internal.Point
	Divided  internal.Hull
	Expected internal.Hull
}

type Report struct {
	Rows       []Row
	Mismatches []Mismatch
}

// Rows for a single algorithm, in size order.
func (r *Report) Series(algorithm string) []Row {
	var rows []Row
	for _, row := range r.Rows {
		if row.Algorithm == algorithm {
			rows = append(rows, row)
		}
	}
	return rows
}

type Runner struct {
	Config config.Bench
	Logger *slog.Logger
}

// Run times both algorithms at every configured size. A geometry error from
// either algorithm aborts the run; cross-check mismatches do not, and are
// collected in the report instead.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	rng := gen.RandWithSeed(r.Config.Seed)
	opts := gen.Options{Min: r.Config.Min, Max: r.Config.Max, Integer: r.Config.Integer}
	report := &Report{}

	for _, n := range r.Config.Sizes {
		runNaive := n <= r.Config.NaiveLimit
		var divided, naive samples

		for trial := 0; trial < r.Config.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "benchmark interrupted")
			}

			points := gen.Points(rng, n, opts)
			dcHull, err := divided.time(DivideAndConquer, points)
			if err != nil {
				return nil, errors.Wrapf(err, "%s, n=%d", DivideAndConquer.Name, n)
			}
			if !runNaive {
				continue
			}
			naiveHull, err := naive.time(Naive, points)
			if err != nil {
				return nil, errors.Wrapf(err, "%s, n=%d", Naive.Name, n)
			}

			if r.Config.CrossCheck && !dcHull.SameAs(naiveHull) {
				r.Logger.Warn("hull mismatch", "n", n, "trial", trial, "divided", len(dcHull), "naive", len(naiveHull))
				report.Mismatches = append(report.Mismatches, Mismatch{
					N:        n,
					Trial:    trial,
					Points:   points,
					Divided:  dcHull,
					Expected: naiveHull,
				})
			}
		}

		report.Rows = append(report.Rows, divided.row(n, DivideAndConquer.Name))
		if runNaive {
			report.Rows = append(report.Rows, naive.row(n, Naive.Name))
		}
		r.Logger.Debug("timed size", "n", n, "trials", r.Config.Trials, "naive", runNaive)
	}

	r.Logger.Info("benchmark finished", "sizes", len(r.Config.Sizes), "mismatches", len(report.Mismatches))
	return report, nil
}

type samples struct {
	durations []float64
	sizes     []float64
}

func (s *samples) time(algorithm Algorithm, points []internal.Point) (hull internal.Hull, err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()

	start := time.Now()
	hull = algorithm.Hull(points)
	s.durations = append(s.durations, float64(time.Since(start)))
	s.sizes = append(s.sizes, float64(len(hull)))
	return hull, nil
}

func (s *samples) row(n int, algorithm string) Row {
	mean, std := stat.MeanStdDev(s.durations, nil)
	if math.IsNaN(std) {
		// A single trial has no spread
		std = 0
	}
	sorted := append([]float64(nil), s.durations...)
	sort.Float64s(sorted)

	return Row{
		N:         n,
		Algorithm: algorithm,
		Trials:    len(s.durations),
		Mean:      time.Duration(mean),
		StdDev:    time.Duration(std),
		Median:    time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		HullSize:  stat.Mean(s.sizes, nil),
	}
}
