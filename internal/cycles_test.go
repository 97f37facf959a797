package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(edges ...Segment) *SegmentGraph {
	segments := make([]SimplifiedSegment, len(edges))
	for i, edge := range edges {
		segments[i] = SimplifiedSegment{ID: i, Segment: edge}
	}
	return NewSegmentGraph(segments)
}

func loopEdges(points ...Point) []Segment {
	return Cycle(points).Edges()
}

func TestSegmentGraph(t *testing.T) {
	a, b, c := Point{0, 0}, Point{10, 0}, Point{0, 10}
	g := graphOf(NewSegment(b, a), NewSegment(a, c), NewSegment(a, b))
	assert.Equal(t, []Point{a, c, b}, g.Nodes())
	assert.Equal(t, []Point{c, b}, g.Neighbors(a))
	assert.Equal(t, 2, g.Degree(a))
	// The repeated edge collapses
	assert.Len(t, g.Edges, 2)
}

func TestComponents(t *testing.T) {
	labels := components(6, [][2]int{{4, 1}, {1, 3}, {5, 5}})
	assert.Equal(t, []int{0, 1, 2, 1, 1, 5}, labels)
	assert.Empty(t, components(0, nil))
}

func TestDetectCycles_Square(t *testing.T) {
	curves := map[CurveID][]Point{0: RectangleLoop(0, 0, 100, 100)}
	simplified := Simplify(curves, seededConfig())
	result := DetectCycles(NewSegmentGraph(simplified.Segments), 100)

	require.Len(t, result.Cycles, 1)
	assert.Equal(t, Cycle{{0, 0}, {0, 100}, {100, 100}, {100, 0}}, result.Cycles[0])
	assert.Empty(t, result.OpenEdges)
	assert.False(t, result.Truncated)
}

func TestDetectCycles_SharedEdge(t *testing.T) {
	// Two squares side by side: each square plus the outline
	edges := append(loopEdges(Point{0, 0}, Point{100, 0}, Point{100, 100}, Point{0, 100}),
		loopEdges(Point{100, 0}, Point{200, 0}, Point{200, 100}, Point{100, 100})...)
	result := DetectCycles(graphOf(edges...), 100)

	require.Len(t, result.Cycles, 3)
	lengths := []int{}
	for _, cycle := range result.Cycles {
		lengths = append(lengths, len(cycle))
	}
	assert.ElementsMatch(t, []int{4, 4, 6}, lengths)
	assert.Empty(t, result.OpenEdges)
}

func TestDetectCycles_OpenEdges(t *testing.T) {
	tail := NewSegment(Point{100, 0}, Point{200, 0})
	far := NewSegment(Point{500, 500}, Point{600, 500})
	edges := append([]Segment{far}, loopEdges(Point{0, 0}, Point{100, 0}, Point{50, 80})...)
	edges = append(edges, tail)
	result := DetectCycles(graphOf(edges...), 100)

	require.Len(t, result.Cycles, 1)
	assert.Equal(t, []Segment{far, tail}, result.OpenEdges)
}

func TestDetectCycles_Limit(t *testing.T) {
	edges := append(loopEdges(Point{0, 0}, Point{100, 0}, Point{100, 100}, Point{0, 100}),
		loopEdges(Point{100, 0}, Point{200, 0}, Point{200, 100}, Point{100, 100})...)
	result := DetectCycles(graphOf(edges...), 1)
	assert.Len(t, result.Cycles, 1)
	assert.True(t, result.Truncated)
	// Edges outside the one retained cycle are open
	assert.Len(t, result.OpenEdges, 3)
}

func TestCycleKey(t *testing.T) {
	c := Cycle{{0, 0}, {1, 0}, {1, 1}}
	assert.Equal(t, cycleKey(c), cycleKey(c.Reverse()))
	assert.Equal(t, cycleKey(c), cycleKey(Cycle{{1, 0}, {1, 1}, {0, 0}}))
	assert.NotEqual(t, cycleKey(c), cycleKey(Cycle{{0, 0}, {1, 0}, {2, 2}}))
}
