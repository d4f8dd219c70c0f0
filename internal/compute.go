package internal

// Compute the convex hull of an arbitrary set of points by divide and conquer.
//
// The points are copied, sorted lexicographically and deduplicated; the
// caller's slice is never reordered. Sets of BaseCaseMax points or fewer go
// straight to the base case. Larger sets are split at the middle (the left
// half gets the extra point), each half is solved recursively, and the two
// hulls are merged along their tangents.
func ComputeHull(points []Point) Hull {
	return computeSorted(SortedUnique(points))
}

func computeSorted(points []Point) Hull {
	if len(points) <= BaseCaseMax {
		return BaseCaseHull(points)
	}

	middle := (len(points) + 1) / 2
	// The halves are disjoint subslices and neither recursive call writes to
	// its input, so they could safely run in parallel.
	left := computeSorted(points[:middle])
	right := computeSorted(points[middle:])

	upper, lower := FindTangents(left, right)
	return MergeHulls(left, right, upper, lower)
}
