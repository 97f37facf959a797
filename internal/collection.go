package internal

import "sort"

type Kind string

const (
	KindPolygon       Kind = "polygon"
	KindCircle        Kind = "circle"
	KindStroke        Kind = "stroke"
	KindResidualCurve Kind = "residual-curve"
)

// One output shape. Exactly one of Polygon, Circle, Stroke and Curve is set,
// matching Kind.
type Primitive struct {
	Index   int             `json:"index"`
	Kind    Kind            `json:"kind"`
	Polygon *RegularPolygon `json:"polygon,omitempty"`
	Circle  *Circle         `json:"circle,omitempty"`
	Stroke  *Stroke         `json:"stroke,omitempty"`
	Curve   []Point         `json:"curve,omitempty"`
	// Every piece of the input the primitive replaces, in segment id order.
	Sources []SourceRange `json:"sources"`
}

type Stats struct {
	Curves             int   `json:"curves"`
	SkippedCurves      int   `json:"skippedCurves"`
	Segments           int   `json:"segments"`
	DegenerateSegments int   `json:"degenerateSegments"`
	Nodes              int   `json:"nodes"`
	Edges              int   `json:"edges"`
	Cycles             int   `json:"cycles"`
	CyclesTruncated    bool  `json:"cyclesTruncated"`
	Circles            int   `json:"circles"`
	DiscardedCycles    int   `json:"discardedCycles"`
	Polygons           int   `json:"polygons"`
	RejectedPolygons   int   `json:"rejectedPolygons"`
	DisplacedPolygons  int   `json:"displacedPolygons"`
	RecombinedPolygons int   `json:"recombinedPolygons"`
	ResidualCurves     int   `json:"residualCurves"`
	Strokes            int   `json:"strokes"`
	RevertedSegments   int   `json:"revertedSegments"`
	Seed               int64 `json:"seed"`
}

type Collection struct {
	Primitives []Primitive `json:"primitives"`
	Warnings   []string    `json:"warnings,omitempty"`
	Stats      Stats       `json:"stats"`
}

func (c *Collection) add(p Primitive) {
	p.Index = len(c.Primitives)
	sortSources(p.Sources)
	c.Primitives = append(c.Primitives, p)
}

func (c *Collection) OfKind(kind Kind) []Primitive {
	var primitives []Primitive
	for _, p := range c.Primitives {
		if p.Kind == kind {
			primitives = append(primitives, p)
		}
	}
	return primitives
}

// Number of primitives per kind, for summaries.
func (c *Collection) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, p := range c.Primitives {
		counts[p.Kind]++
	}
	return counts
}

func sortSources(sources []SourceRange) {
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].SegmentID < sources[j].SegmentID })
}

// Gather the source ranges behind a set of graph edges.
func (m InverseMap) sources(edges []Segment) []SourceRange {
	var sources []SourceRange
	for _, edge := range edges {
		sources = append(sources, m[edge]...)
	}
	return sources
}
