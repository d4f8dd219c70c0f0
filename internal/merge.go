package internal

// Fuse two hulls into one using their tangents. The merged boundary runs
// counterclockwise around l from the upper tangent down to the lower tangent,
// crosses to r, runs counterclockwise around r back up to the upper tangent,
// and closes. Points of either hull between the tangent endpoints on the facing
// side are dropped. The result starts at its lexicographically smallest point.
func MergeHulls(l, r Hull, upper, lower Tangent) Hull {
	for _, t := range []Tangent{upper, lower} {
		if t.Left < 0 || t.Left >= len(l) || t.Right < 0 || t.Right >= len(r) {
			fatalf("tangent %+v out of range for hulls of %d and %d points", t, len(l), len(r))
		}
	}

	merged := make(Hull, 0, len(l)+len(r))
	merged = appendArc(merged, l, upper.Left, lower.Left)
	merged = appendArc(merged, r, lower.Right, upper.Right)
	return merged.rotateToMin()
}

// Append the counterclockwise run of h from index `from` to index `to`,
// inclusive.
func appendArc(dst Hull, h Hull, from, to int) Hull {
	for i := from; ; i = CircularIndex(i+1, len(h)) {
		dst = append(dst, h[i])
		if i == to {
			return dst
		}
	}
}

// A copy of the hull rotated so its lexicographically smallest point comes
// first.
func (h Hull) rotateToMin() Hull {
	min := indexOfMin(h)
	if min <= 0 {
		return h
	}
	rotated := make(Hull, 0, len(h))
	rotated = append(rotated, h[min:]...)
	return append(rotated, h[:min]...)
}
