package internal

// This contains no actual tests. It is just a helper for checking that a
// collection accounts for its input.

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a collection is complete. The rules are:
// 1. Every simplified segment id appears in exactly one primitive.
// 2. Indices are sequential from zero.
// 3. Each primitive carries exactly the payload for its kind.
// 4. Kinds appear in output order: polygons, circles, residual curves, strokes.
func AssertValidCollection(t *testing.T, c *Collection) {
	t.Helper()
	segments := c.Stats.Segments + c.Stats.DegenerateSegments
	owner := make(map[int]int)
	for i, p := range c.Primitives {
		require.Equal(t, i, p.Index, "primitive indices must be sequential")
		require.NotEmpty(t, p.Sources, "primitive %d has no sources", i)
		for _, source := range p.Sources {
			previous, ok := owner[source.SegmentID]
			require.False(t, ok, "segment %d is in primitives %d and %d", source.SegmentID, previous, i)
			owner[source.SegmentID] = i
		}

		payloads := 0
		for _, set := range []bool{p.Polygon != nil, p.Circle != nil, p.Stroke != nil, p.Curve != nil} {
			if set {
				payloads++
			}
		}
		require.Equal(t, 1, payloads, "primitive %d:\n%s", i, spew.Sdump(p))
	}
	for id := 0; id < segments; id++ {
		assert.Contains(t, owner, id, "segment %d is not in any primitive", id)
	}

	order := map[Kind]int{KindPolygon: 0, KindCircle: 1, KindResidualCurve: 2, KindStroke: 3}
	for i := 1; i < len(c.Primitives); i++ {
		assert.LessOrEqual(t, order[c.Primitives[i-1].Kind], order[c.Primitives[i].Kind], "primitive %d is out of order", i)
	}
}

// Normalized edge set of a loop, for comparing loops regardless of start and
// direction.
func edgeSet(c Cycle) SegmentSet {
	set := make(SegmentSet)
	for _, edge := range c.Edges() {
		set.Add(edge)
	}
	return set
}
