// Convex hulls of planar point sets, by divide and conquer.
//
// ComputeHull splits the points at the median x coordinate, solves each half
// recursively, and merges the two hulls along their upper and lower tangents,
// for O(n log n) overall. NaiveHull is a cubic brute force reference that
// produces identical output, used for cross-checking and benchmarking.
//
// Hulls are returned counterclockwise, starting at the point with the smallest
// x (then smallest y). Duplicate points are ignored, and points lying on a hull
// edge between two corners are not part of the hull.
package hull

import "github.com/osuushi/hull/internal"

type Point = internal.Point
type GeometryError = internal.GeometryError

// Compute the convex hull of a set of points. The input slice is not modified.
//
// An empty input gives an empty hull, and one or two distinct points come
// back sorted. A *GeometryError means an internal invariant was broken; it is
// never caused by the shape of the input.
func ComputeHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return []Point(internal.ComputeHull(points)), nil
}

// Compute the convex hull by brute force, in O(n³) time. The result is the
// same as ComputeHull's.
func NaiveHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return []Point(internal.NaiveHull(points)), nil
}
