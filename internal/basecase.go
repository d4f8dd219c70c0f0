package internal

// Largest input the base case accepts. The recursion stops splitting once a
// half has this many points or fewer.
const BaseCaseMax = 5

// Build the hull of at most BaseCaseMax points directly, using a monotone
// chain over the lexicographically sorted points. Collinear points are never
// kept, so three or more collinear points degrade to the two extremes.
//
// The result is counterclockwise and starts at the lexicographically smallest
// point. Inputs of up to two distinct points come back sorted.
func BaseCaseHull(points []Point) Hull {
	if len(points) > BaseCaseMax {
		fatalf("base case given %d points, maximum is %d", len(points), BaseCaseMax)
	}

	sorted := SortedUnique(points)
	if len(sorted) <= 2 {
		return Hull(sorted)
	}

	// Lower chain left to right, then upper chain right to left. Each chain
	// ends with the first point of the other, so drop the last of each.
	var lower, upper []Point
	for _, p := range sorted {
		for len(lower) >= 2 && Orient(lower[len(lower)-2], lower[len(lower)-1], p) != Left {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && Orient(upper[len(upper)-2], upper[len(upper)-1], p) != Left {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := make(Hull, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}
