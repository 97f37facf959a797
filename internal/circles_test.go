package internal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleThrough(t *testing.T) {
	center, radius, ok := CircleThrough(Point{0, 0}, Point{2, 0}, Point{0, 2})
	require.True(t, ok)
	assert.InDelta(t, 1, center.X, Epsilon)
	assert.InDelta(t, 1, center.Y, Epsilon)
	assert.InDelta(t, math.Sqrt2, radius, Epsilon)

	_, _, ok = CircleThrough(Point{0, 0}, Point{1, 1}, Point{2, 2})
	assert.False(t, ok, "collinear points have no circle")
	_, _, ok = CircleThrough(Point{1, 1}, Point{1, 1}, Point{3, 0})
	assert.False(t, ok, "coincident points have no circle")
}

func TestMeanSquareCircleError(t *testing.T) {
	// Chords sag inside the circle, so even a perfect 12-gon has a small error
	cycle := Cycle(RegularPolygonVertices(Point{0, 0}, 50, 12, 0))
	mse := MeanSquareCircleError(cycle, Point{0, 0}, 50, 100)
	assert.Greater(t, mse, 0.0)
	assert.Less(t, mse, 2.0)

	assert.InDelta(t, 100, MeanSquareCircleError(cycle, Point{0, 0}, 60, 2), Epsilon)
}

func TestBestFitCircle(t *testing.T) {
	cycle := Cycle(RegularPolygonVertices(Point{10, -20}, 50, 12, 0.1))
	circle, ok := BestFitCircle(cycle, rand.New(rand.NewSource(1)), 100, 100)
	require.True(t, ok)
	assert.InDelta(t, 50, circle.Radius, 1e-6)
	assert.InDelta(t, 10, circle.Center.X, 1e-6)
	assert.InDelta(t, -20, circle.Center.Y, 1e-6)
	assert.Less(t, circle.Error, 2.0)
	assert.Equal(t, cycle, circle.Cycle)

	t.Run("degenerate", func(t *testing.T) {
		_, ok := BestFitCircle(Cycle{{0, 0}, {1, 0}, {2, 0}}, rand.New(rand.NewSource(1)), 10, 10)
		assert.False(t, ok)
	})
}

func TestDetectCircles(t *testing.T) {
	round := Cycle(RegularPolygonVertices(Point{0, 0}, 50, 12, 0))
	square := Cycle{{200, 0}, {300, 0}, {300, 100}, {200, 100}}
	flat := Cycle{{0, 500}, {10, 500}, {20, 500}}
	ledger := NewEdgeLedger()

	result := DetectCircles([]Cycle{square, round, flat}, ledger, rand.New(rand.NewSource(1)), seededConfig())
	require.Len(t, result.Circles, 1)
	assert.Equal(t, round, result.Circles[0].Cycle)
	assert.ElementsMatch(t, []Cycle{square, flat}, result.Unused)
	assert.Empty(t, result.Discarded)
	assert.Equal(t, 12, ledger.Len())
	assert.Equal(t, "circle 0", ledger.Owner(round.Edges()[0]))
}

func TestDetectCircles_SharedEdges(t *testing.T) {
	// The same loop twice: the second copy loses every edge to the first
	round := Cycle(RegularPolygonVertices(Point{0, 0}, 50, 12, 0))
	ledger := NewEdgeLedger()
	result := DetectCircles([]Cycle{round, round.Reverse()}, ledger, rand.New(rand.NewSource(1)), seededConfig())
	assert.Len(t, result.Circles, 1)
	assert.Empty(t, result.Unused)
	assert.Len(t, result.Discarded, 1)
}
