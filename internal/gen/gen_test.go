package gen

import (
	"math"
	"testing"

	"github.com/osuushi/hull/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints_Range(t *testing.T) {
	points := Points(RandWithSeed(7), 500, Options{Min: -10, Max: 10})
	require.Len(t, points, 500)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, -10.0)
		assert.Less(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, -10.0)
		assert.Less(t, p.Y, 10.0)
	}
}

func TestPoints_Integer(t *testing.T) {
	for _, p := range Points(RandWithSeed(7), 100, Options{Min: 0, Max: 50, Integer: true}) {
		assert.Equal(t, math.Floor(p.X), p.X)
		assert.Equal(t, math.Floor(p.Y), p.Y)
	}
}

func TestPoints_Deterministic(t *testing.T) {
	opts := Options{Min: 0, Max: 1000}
	assert.Equal(t, Points(RandWithSeed(42), 50, opts), Points(RandWithSeed(42), 50, opts))
	assert.NotEqual(t, Points(RandWithSeed(42), 50, opts), Points(RandWithSeed(43), 50, opts))
}

func TestShuffled(t *testing.T) {
	values := []internal.Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}, {X: 6}}
	shuffled := Shuffled(RandWithSeed(1), values)
	assert.ElementsMatch(t, values, shuffled)
	assert.Equal(t, []internal.Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}, {X: 6}}, values)
}
