package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It collects the vertices of every polygon and
// the centers of every circle in the document. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []Point
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			points = append(points, Point{parseCoord(coords[0]), parseCoord(coords[1])})
		}
	}
	for _, circleEl := range rootEl.FindAll("circle") {
		points = append(points, Point{parseCoord(circleEl.Attributes["cx"]), parseCoord(circleEl.Attributes["cy"])})
	}

	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}

// Some ad hoc generated fixtures

// Points evenly spaced on a circle, plus its center.
func Circle(n int, radius float64) []Point {
	points := []Point{{0, 0}}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A full integer grid. Almost every triple on its boundary is collinear.
func Grid(width, height int) []Point {
	var points []Point
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			points = append(points, Point{float64(x), float64(y)})
		}
	}
	return points
}

// n points on the line y = 2x + 1.
func Line(n int) []Point {
	var points []Point
	for i := 0; i < n; i++ {
		points = append(points, Point{float64(i), float64(2*i + 1)})
	}
	return points
}

// A ten pointed star, alternating between the two radii.
func Star(outerRadius, innerRadius float64) []Point {
	var points []Point
	for i := 0; i < 10; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
	}
	return points
}
