package internal

import (
	"math"
	"sort"
)

// Orientation tests treat three points as collinear when their cross product
// is within Epsilon of the squared length of the triangle's longest side. The
// bound scales with the coordinates, so the result does not depend on the
// units of the input, and it is symmetric in the three points, so every
// ordering of a triple agrees on whether it is collinear. Every predicate in
// the package goes through Orient.
const Epsilon = 1e-12

type Orientation int

const (
	Collinear Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "collinear"
	}
}

// Cross product of (b - a) and (c - a). Positive when a, b, c turn
// counterclockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Which side of the directed line a->b the point c lies on.
func Orient(a, b, c Point) Orientation {
	cross := Cross(a, b, c)
	tolerance := Epsilon * math.Max(Dist2(a, b), math.Max(Dist2(b, c), Dist2(c, a)))
	switch {
	case cross > tolerance:
		return Left
	case cross < -tolerance:
		return Right
	default:
		return Collinear
	}
}

// Squared distance between two points.
func Dist2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Lexicographic order: by X, then by Y. This is the canonical order the
// recursion splits on, and it simulates a very slightly rotated coordinate
// system in which no two distinct points share an X value.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Copy the points, sort the copy lexicographically and drop exact duplicates.
// The input slice is left untouched.
func SortedUnique(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	result := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

// Index of the lexicographically smallest point, or -1 for an empty slice.
func indexOfMin(points []Point) int {
	if len(points) == 0 {
		return -1
	}
	min := 0
	for i, p := range points[1:] {
		if p.Less(points[min]) {
			min = i + 1
		}
	}
	return min
}

// Index of the lexicographically largest point, or -1 for an empty slice.
func indexOfMax(points []Point) int {
	if len(points) == 0 {
		return -1
	}
	max := 0
	for i, p := range points[1:] {
		if points[max].Less(p) {
			max = i + 1
		}
	}
	return max
}

// Bounding box of a set of points. Infinite for an empty set.
func Bounds(points []Point) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}
