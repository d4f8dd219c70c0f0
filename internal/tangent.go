package internal

// Find the upper and lower tangents between two convex hulls. Every point of l
// must come before every point of r in lexicographic order, which is what the
// recursion's split guarantees. Both hulls are counterclockwise.
//
// Each walk starts from the facing extremes (the largest point of l and the
// smallest point of r) and moves one index at a time while doing so lifts (or
// lowers) the line. Moving across a collinear point is allowed only when the
// new endpoint lies further along the line, so the tangents end at the
// outermost points and collinear points never survive a merge.
func FindTangents(l, r Hull) (upper, lower Tangent) {
	if len(l) == 0 || len(r) == 0 {
		fatalf("cannot find tangents of an empty hull (left %d points, right %d points)", len(l), len(r))
	}

	start := Tangent{Left: indexOfMax(l), Right: indexOfMin(r)}
	// On l, counterclockwise from its rightmost point climbs the upper chain.
	// On r, clockwise from its leftmost point climbs the upper chain.
	upper = walkTangent(l, r, start, 1, -1, Left)
	lower = walkTangent(l, r, start, -1, 1, Right)
	return upper, lower
}

// Walk a tangent outward. leftStep and rightStep are the index directions each
// side moves in, and side is where an improving candidate lies relative to the
// directed line from the left endpoint to the right endpoint.
func walkTangent(l, r Hull, t Tangent, leftStep, rightStep int, side Orientation) Tangent {
	// Every move advances one index monotonically, so a well formed pair of
	// hulls converges in fewer moves than this.
	limit := len(l) + len(r)
	steps := 0
	step := func() {
		steps++
		if steps > limit {
			fatalf("tangent search did not converge after %d steps (left %d points, right %d points)", limit, len(l), len(r))
		}
	}

	for {
		progress := false

		for len(r) > 1 {
			next := CircularIndex(t.Right+rightStep, len(r))
			if !improves(l[t.Left], r[t.Right], r[next], r[t.Right], l[t.Left], side) {
				break
			}
			step()
			t.Right = next
			progress = true
		}

		for len(l) > 1 {
			next := CircularIndex(t.Left+leftStep, len(l))
			if !improves(l[t.Left], r[t.Right], l[next], l[t.Left], r[t.Right], side) {
				break
			}
			step()
			t.Left = next
			progress = true
		}

		if !progress {
			return t
		}
	}
}

// Whether moving the endpoint current to candidate improves the line a->b. The
// candidate must lie strictly on the given side, or on the line itself but
// further from anchor (the endpoint on the other hull) than current is.
func improves(a, b, candidate, current, anchor Point, side Orientation) bool {
	switch Orient(a, b, candidate) {
	case side:
		return true
	case Collinear:
		return Dist2(anchor, candidate) > Dist2(anchor, current)
	default:
		return false
	}
}
