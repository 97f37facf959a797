package render

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/osuushi/regularize/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection() *internal.Collection {
	triangle := &internal.RegularPolygon{
		Shape:    internal.ShapePolygon,
		Vertices: internal.RegularPolygonVertices(internal.Point{X: 100, Y: 100}, 50, 3, 0),
	}
	return &internal.Collection{Primitives: []internal.Primitive{
		{Index: 0, Kind: internal.KindPolygon, Polygon: triangle},
		{Index: 1, Kind: internal.KindCircle, Circle: &internal.Circle{Center: internal.Point{X: 300, Y: 100}, Radius: 40}},
	}}
}

func TestDraw(t *testing.T) {
	img := Draw(testCollection(), Options{ShowSymmetry: true})
	bounds := img.Bounds()
	// Triangle from x=75 to 150, circle to x=340, plus padding
	assert.InDelta(t, 340-75+2*padding, bounds.Dx(), 1)

	small := Draw(testCollection(), Options{MaxSize: 100})
	assert.LessOrEqual(t, small.Bounds().Dx(), 100)
	assert.LessOrEqual(t, small.Bounds().Dy(), 100)
}

func TestDraw_LargeDrawing(t *testing.T) {
	stroke := &internal.Stroke{Segment: internal.NewSegment(internal.Point{}, internal.Point{X: 8000, Y: 8000})}
	collection := &internal.Collection{Primitives: []internal.Primitive{
		{Index: 0, Kind: internal.KindStroke, Stroke: stroke},
	}}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	img := Draw(collection, Options{MaxSize: 256})
	runtime.ReadMemStats(&after)

	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
	// A full size canvas would be about 8040×8040×4 bytes
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(32<<20))
}

func TestDraw_Empty(t *testing.T) {
	img := Draw(&internal.Collection{}, Options{})
	assert.Equal(t, 2*padding, img.Bounds().Dx())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, Save(testCollection(), path, Options{ShowSources: true}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
