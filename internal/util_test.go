package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 0}
	assert.Equal(t, Left, Orient(a, b, Point{1, 1}))
	assert.Equal(t, Right, Orient(a, b, Point{1, -1}))
	assert.Equal(t, Collinear, Orient(a, b, Point{5, 0}))
	// Within the tolerance of the longest side (length 2)
	assert.Equal(t, Collinear, Orient(a, b, Point{1, Epsilon}))
	assert.Equal(t, Left, Orient(a, b, Point{1, 1e-9}))
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "collinear", Collinear.String())
}

func TestOrient_ScaleInvariant(t *testing.T) {
	for _, scale := range []float64{1e-9, 1e-6, 1e-3, 1, 1e3, 1e6, 1e9} {
		a := Point{0, 0}
		b := Point{scale, 0}
		c := Point{0, scale}
		assert.Equal(t, Left, Orient(a, b, c), "scale %g", scale)
		assert.Equal(t, Right, Orient(a, c, b), "scale %g", scale)
		assert.Equal(t, Collinear, Orient(a, b, Point{2 * scale, 0}), "scale %g", scale)
	}
}

func TestOrient_SymmetricCollinearity(t *testing.T) {
	// Every ordering of a nearly collinear triple agrees
	p := []Point{{0, 0}, {1e-4, 3e-17}, {2e-4, 0}}
	for _, perm := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
		assert.Equal(t, Collinear, Orient(p[perm[0]], p[perm[1]], p[perm[2]]), "order %v", perm)
	}
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 4))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 1, CircularIndex(5, 4))
	assert.Equal(t, 2, CircularIndex(-6, 4))
}

func TestSortedUnique(t *testing.T) {
	points := []Point{{2, 1}, {0, 5}, {2, 0}, {0, 5}, {1, 1}}
	original := append([]Point(nil), points...)

	sorted := SortedUnique(points)

	assert.Equal(t, []Point{{0, 5}, {1, 1}, {2, 0}, {2, 1}}, sorted)
	assert.Equal(t, original, points, "input was modified")
}

func TestPointSet(t *testing.T) {
	set := NewPointSet([]Point{{1, 2}, {3, 4}, {1, 2}})
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(Point{3, 4}))
	assert.False(t, set.Contains(Point{4, 3}))
	assert.True(t, set.Equals(NewPointSet([]Point{{3, 4}, {1, 2}})))
	assert.False(t, set.Equals(NewPointSet([]Point{{3, 4}})))
}

func TestBounds(t *testing.T) {
	minX, minY, maxX, maxY := Bounds([]Point{{1, -2}, {-3, 4}, {0, 0}})
	assert.Equal(t, []float64{-3, -2, 1, 4}, []float64{minX, minY, maxX, maxY})
}
