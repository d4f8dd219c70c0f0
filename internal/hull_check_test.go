package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHull_IsConvex(t *testing.T) {
	assert.True(t, Hull{}.IsConvex())
	assert.True(t, Hull{{0, 0}, {1, 0}}.IsConvex())
	assert.False(t, Hull{{0, 0}, {0, 0}}.IsConvex())
	assert.True(t, Hull{{0, 0}, {2, 0}, {2, 2}, {0, 2}}.IsConvex())
	// Clockwise
	assert.False(t, Hull{{0, 0}, {0, 2}, {2, 2}, {2, 0}}.IsConvex())
	// Collinear point on an edge
	assert.False(t, Hull{{0, 0}, {1, 0}, {2, 0}, {2, 2}}.IsConvex())
	// Reflex vertex
	assert.False(t, Hull{{0, 0}, {4, 0}, {2, 1}, {4, 4}, {0, 4}}.IsConvex())
}

func TestHull_Contains(t *testing.T) {
	square := Hull{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.True(t, square.Contains(Point{1, 1}))
	assert.True(t, square.Contains(Point{2, 1}))
	assert.True(t, square.Contains(Point{0, 0}))
	assert.False(t, square.Contains(Point{3, 1}))

	segment := Hull{{0, 0}, {4, 4}}
	assert.True(t, segment.Contains(Point{2, 2}))
	assert.False(t, segment.Contains(Point{5, 5}))
	assert.False(t, segment.Contains(Point{2, 3}))

	assert.True(t, Hull{{1, 1}}.Contains(Point{1, 1}))
	assert.False(t, Hull{}.Contains(Point{1, 1}))
}

func TestHull_SameAs(t *testing.T) {
	square := Hull{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.True(t, square.SameAs(Hull{{2, 2}, {0, 2}, {0, 0}, {2, 0}}))
	assert.True(t, square.SameAs(Hull{{0, 0}, {0, 2}, {2, 2}, {2, 0}}))
	assert.False(t, square.SameAs(Hull{{0, 0}, {2, 2}, {2, 0}, {0, 2}}))
	assert.False(t, square.SameAs(Hull{{0, 0}, {2, 0}, {2, 2}}))
	assert.True(t, Hull{}.SameAs(Hull{}))
}
