package internal

// Brute force hull, used as a reference to validate and benchmark ComputeHull.
//
// A directed pair p->q is a hull edge when every other point is strictly to its
// left or lies on the closed segment between p and q. That second condition
// keeps collinear boundary points out, matching ComputeHull. The edges are
// then chained starting from the lexicographically smallest point, which gives
// the same counterclockwise order ComputeHull produces. O(n³).
func NaiveHull(points []Point) Hull {
	unique := SortedUnique(points)
	if len(unique) <= 2 {
		return Hull(unique)
	}

	next := make(map[int]int, len(unique))
	for i, p := range unique {
		for j, q := range unique {
			if i == j || !isHullEdge(unique, i, j) {
				continue
			}
			if existing, ok := next[i]; ok {
				fatalf("point %v has two outgoing hull edges, to %v and %v", p, unique[existing], q)
			}
			next[i] = j
		}
	}

	// unique is sorted, so index 0 is the smallest point and always on the hull.
	first, ok := next[0]
	if !ok {
		fatalf("smallest point %v has no outgoing hull edge", unique[0])
	}
	hull := Hull{unique[0]}
	for i := first; i != 0; {
		hull = append(hull, unique[i])
		if len(hull) > len(unique) {
			fatalf("hull edges do not form a closed polygon")
		}
		j, ok := next[i]
		if !ok {
			fatalf("hull edge chain is broken at %v", unique[i])
		}
		i = j
	}
	return hull
}

func isHullEdge(points []Point, i, j int) bool {
	p, q := points[i], points[j]
	length := Dist2(p, q)
	for k, c := range points {
		if k == i || k == j {
			continue
		}
		switch Orient(p, q, c) {
		case Left:
			continue
		case Right:
			return false
		case Collinear:
			// On the line: it must sit between p and q.
			if Dist2(p, c) > length || Dist2(q, c) > length {
				return false
			}
		}
	}
	return true
}
