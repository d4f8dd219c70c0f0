package internal

// This contains no actual tests. It is just a helper for checking hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for a point set. The rules are:
// 1. Every consecutive triple turns left (convexity, no collinear points).
// 2. Every input point is inside or on the hull (containment).
// 3. Every hull point is an input point, and none repeats (extremality).
// 4. The hull is no larger than the input.
// 5. The hull starts at the lexicographically smallest input point.
func AssertValidHull(t *testing.T, points []Point, hull Hull) {
	t.Helper()

	require.LessOrEqual(t, len(hull), len(points), "hull is larger than its input")
	if len(points) == 0 {
		assert.Empty(t, hull)
		return
	}
	require.NotEmpty(t, hull, "hull of a non-empty set is empty")

	assert.True(t, hull.IsConvex(), "hull is not strictly convex: %v", hull)

	input := NewPointSet(points)
	seen := make(PointSet)
	for _, p := range hull {
		assert.True(t, input.Contains(p), "hull point %v is not an input point", p)
		assert.False(t, seen.Contains(p), "hull point %v appears twice", p)
		seen.Add(p)
	}

	for _, p := range points {
		assert.True(t, hull.Contains(p), "input point %v is outside the hull %v", p, hull)
	}

	assert.Equal(t, points[indexOfMin(points)], hull[0], "hull does not start at the smallest point")
}
