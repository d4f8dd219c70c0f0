package internal

// Points are plain values and are never modified once created. Every hull
// operation copies the points it keeps, so a caller's slice is never aliased
// by a result.
type Point struct {
	X float64
	Y float64
}

// A convex polygon boundary in counterclockwise order, starting at the
// lexicographically smallest point. Hulls with fewer than three points are
// degenerate: empty, a single point, or a segment.
type Hull []Point

// A tangent between two hulls, given as an index into the left hull and an
// index into the right hull.
type Tangent struct {
	Left  int
	Right int
}

type PointSet map[Point]struct{}
