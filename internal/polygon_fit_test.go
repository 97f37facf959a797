package internal

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularPolygonVertices(t *testing.T) {
	square := RegularPolygonVertices(Point{1, 1}, 2, 4, 0)
	want := []Point{{3, 1}, {1, 3}, {-1, 1}, {1, -1}}
	for i := range want {
		assert.InDelta(t, want[i].X, square[i].X, Epsilon)
		assert.InDelta(t, want[i].Y, square[i].Y, Epsilon)
	}
}

func TestFitRegularPolygon(t *testing.T) {
	vertices := RegularPolygonVertices(Point{200, 100}, 50, 6, 10*math.Pi/180)
	cfg := seededConfig()
	fit, err := FitRegularPolygon(context.Background(), vertices, Cycle(vertices).Edges(), cfg)
	require.NoError(t, err)
	assert.Equal(t, ShapePolygon, fit.Shape)
	// The radius grid has steps of 2/49
	assert.InDelta(t, 50, fit.Radius, 0.05)
	assertSameVertices(t, vertices, fit.Vertices, 0.1)

	t.Run("noisy", func(t *testing.T) {
		noisy := append([]Point(nil), vertices...)
		noisy[0].X += 2
		noisy[3].Y -= 2
		fit, err := FitRegularPolygon(context.Background(), noisy, Cycle(noisy).Edges(), cfg)
		require.NoError(t, err)
		assertSameVertices(t, vertices, fit.Vertices, 3)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FitRegularPolygon(ctx, vertices, Cycle(vertices).Edges(), cfg)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestEdgeErrors(t *testing.T) {
	edges := []Segment{NewSegment(Point{0, 0}, Point{10, 0})}
	errs := EdgeErrors(edges, []Point{{0, 0}, {10, 0}}, 3)
	assert.InDeltaSlice(t, []float64{5.0 / 3}, errs, Epsilon)
}

func TestValidate(t *testing.T) {
	square := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	fit := RegularPolygon{Vertices: square}
	edges := Cycle(square).Edges()

	assert.True(t, Validate(&fit, edges, 30, 150))
	// Along an edge, samples are a quarter edge from the nearest corner on average
	assert.InDelta(t, 25, fit.Error, 1)
	assert.False(t, Validate(&fit, edges, 30, 5))

	assert.False(t, Validate(&fit, nil, 30, 150))
	assert.True(t, math.IsInf(fit.Error, 1))
}
