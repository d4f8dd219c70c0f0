package main

import (
	"os"

	"github.com/osuushi/hull/internal/gen"
	"github.com/osuushi/hull/internal/pointio"
)

var (
	generateCmd     = app.Command("generate", "Print a random point set.")
	generateN       = generateCmd.Flag("count", "Number of points.").Short('n').Default("100").Int()
	generateSeed    = generateCmd.Flag("seed", "Random seed.").Default("1").Uint64()
	generateMin     = generateCmd.Flag("min", "Smallest coordinate.").Default("0").Float64()
	generateMax     = generateCmd.Flag("max", "Largest coordinate (exclusive).").Default("1000").Float64()
	generateInteger = generateCmd.Flag("integer", "Snap coordinates to integers.").Bool()
)

func runGenerate() error {
	points := gen.Points(gen.RandWithSeed(*generateSeed), *generateN, gen.Options{
		Min:     *generateMin,
		Max:     *generateMax,
		Integer: *generateInteger,
	})
	return pointio.WriteText(os.Stdout, points)
}
