// Package gen produces random point sets for the hull algorithms.
package gen

import (
	"math"
	"math/rand/v2"

	"github.com/osuushi/hull/internal"
)

// Options for a generated point set. Coordinates are drawn uniformly from
// [Min, Max) on both axes.
type Options struct {
	Min float64
	Max float64
	// Snap coordinates down to integers. Integer sets are exact under the
	// orientation predicate and full of collinear and duplicate points.
	Integer bool
}

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf[T ~float64 | ~float32](rng *rand.Rand, min, max T) T {
	return T(rng.Float64())*(max-min) + min
}

// Points generates n points from rng.
func Points(rng *rand.Rand, n int, opts Options) []internal.Point {
	points := make([]internal.Point, n)
	for i := range points {
		x := randf(rng, opts.Min, opts.Max)
		y := randf(rng, opts.Min, opts.Max)
		if opts.Integer {
			x, y = math.Floor(x), math.Floor(y)
		}
		points[i] = internal.Point{X: x, Y: y}
	}
	return points
}

// Shuffled returns a shuffled copy of values.
func Shuffled[T any](rng *rand.Rand, values []T) []T {
	values = append([]T(nil), values...)

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return values
}
