package internal

// Predicates for the properties every computed hull must satisfy. They are
// used by the tests and by the benchmark's cross-check.

// Every consecutive triple turns left. Hulls of fewer than three points are
// trivially convex, but a two point hull must not repeat a point.
func (h Hull) IsConvex() bool {
	switch len(h) {
	case 0, 1:
		return true
	case 2:
		return h[0] != h[1]
	}
	for i := range h {
		a := h[CircularIndex(i-1, len(h))]
		b := h[i]
		c := h[CircularIndex(i+1, len(h))]
		if Orient(a, b, c) != Left {
			return false
		}
	}
	return true
}

// Whether p lies inside the hull or on its boundary.
func (h Hull) Contains(p Point) bool {
	switch len(h) {
	case 0:
		return false
	case 1:
		return h[0] == p
	case 2:
		if Orient(h[0], h[1], p) != Collinear {
			return false
		}
		length := Dist2(h[0], h[1])
		return Dist2(h[0], p) <= length && Dist2(h[1], p) <= length
	}
	for i, a := range h {
		b := h[CircularIndex(i+1, len(h))]
		if Orient(a, b, p) == Right {
			return false
		}
	}
	return true
}

// Whether two hulls describe the same polygon: the same cyclic sequence of
// points, possibly starting elsewhere and possibly wound the other way.
func (h Hull) SameAs(other Hull) bool {
	if len(h) != len(other) {
		return false
	}
	if len(h) == 0 {
		return true
	}
	offset := -1
	for i, p := range other {
		if p == h[0] {
			offset = i
			break
		}
	}
	if offset < 0 {
		return false
	}
	n := len(h)
	forward, backward := true, true
	for i := range h {
		if h[i] != other[CircularIndex(offset+i, n)] {
			forward = false
		}
		if h[i] != other[CircularIndex(offset-i, n)] {
			backward = false
		}
	}
	return forward || backward
}
