package internal

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/osuushi/regularize/internal/dbg"
	"github.com/pkg/errors"
)

// Run every stage over one drawing. Each stage consumes what the earlier ones
// left behind: circles get first pick of the loops, polygons take the loops
// no circle wanted, and whatever is left of the loops becomes residual curves.
// Edges that were never part of a loop are merged into strokes.
//
// All state lives in this call, so concurrent calls are independent.
func Regularize(ctx context.Context, curves map[CurveID][]Point, cfg *Config) (*Collection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	collection := &Collection{}
	stats := &collection.Stats
	stats.Curves = len(curves)

	simplified := Simplify(curves, cfg)
	collection.Warnings = append(collection.Warnings, simplified.Warnings...)
	stats.SkippedCurves = len(simplified.Warnings)
	stats.Segments = len(simplified.Segments)
	stats.DegenerateSegments = len(simplified.Degenerate)
	if len(simplified.Segments) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%d curves, %d skipped, %d degenerate segments",
			stats.Curves, stats.SkippedCurves, stats.DegenerateSegments)
	}

	graph := NewSegmentGraph(simplified.Segments)
	stats.Nodes = len(graph.Nodes())
	stats.Edges = len(graph.Edges)

	cycles := DetectCycles(graph, cfg.MaxCycles)
	stats.Cycles = len(cycles.Cycles)
	stats.CyclesTruncated = cycles.Truncated
	if cycles.Truncated {
		warning := fmt.Sprintf("stopped cycle search after %d cycles", cfg.MaxCycles)
		collection.Warnings = append(collection.Warnings, warning)
		cfg.logf("%s", warning)
	}
	if cfg.Debug {
		for _, cycle := range cycles.Cycles {
			cfg.debugf("cycle %s: %v", dbg.Name(cycleKey(cycle)), cycle)
		}
	}

	seed := time.Now().UnixNano()
	if cfg.RandomSeed != nil {
		seed = *cfg.RandomSeed
	}
	stats.Seed = seed
	rng := rand.New(rand.NewSource(seed))

	ledger := NewEdgeLedger()
	circles := DetectCircles(cycles.Cycles, ledger, rng, cfg)
	stats.Circles = len(circles.Circles)
	stats.DiscardedCycles = len(circles.Discarded)

	polygons, err := RegularizePolygons(ctx, circles.Unused, ledger, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "fitting polygons")
	}
	stats.RejectedPolygons = polygons.Rejected
	stats.DisplacedPolygons = polygons.Displaced

	var pool []Segment
	pooled := make(SegmentSet)
	for _, edges := range append(cycleEdgeLists(circles.Discarded), polygons.Released) {
		for _, edge := range edges {
			if !pooled.Contains(edge) {
				pooled.Add(edge)
				pool = append(pool, edge)
			}
		}
	}

	accepted := polygons.Polygons
	residual := pool
	if cfg.RecombineResiduals {
		var recombined []RegularPolygon
		recombined, residual, err = RecombineResiduals(ctx, pool, ledger, len(accepted), cfg)
		if err != nil {
			return nil, errors.Wrap(err, "recombining residual edges")
		}
		stats.RecombinedPolygons = len(recombined)
		accepted = append(accepted, recombined...)
	} else {
		residual = nil
		for _, edge := range pool {
			if !ledger.Claimed(edge) {
				residual = append(residual, edge)
			}
		}
	}
	stats.Polygons = len(accepted)

	merged := MergeSegments(cycles.OpenEdges, cfg)
	stats.RevertedSegments = len(merged.Reverted)

	inverse := simplified.Inverse
	for i := range accepted {
		polygon := accepted[i]
		collection.add(Primitive{Kind: KindPolygon, Polygon: &polygon, Sources: inverse.sources(polygon.Edges)})
	}
	for i := range circles.Circles {
		circle := circles.Circles[i]
		collection.add(Primitive{Kind: KindCircle, Circle: &circle, Sources: inverse.sources(circle.Cycle.Edges())})
	}

	leftovers := append(inverse.sources(residual), simplified.Degenerate...)
	sortSources(leftovers)
	for _, source := range leftovers {
		collection.add(Primitive{Kind: KindResidualCurve, Curve: source.Points, Sources: []SourceRange{source}})
	}
	stats.ResidualCurves = len(leftovers)

	for _, stroke := range merged.Strokes() {
		stroke := stroke
		collection.add(Primitive{Kind: KindStroke, Stroke: &stroke, Sources: inverse.sources(stroke.Members)})
	}
	stats.Strokes = len(merged.Merged) + len(merged.Reverted)

	checkCoverage(collection, stats.Segments+stats.DegenerateSegments)
	cfg.debugf("%d polygons, %d circles, %d residual curves, %d strokes",
		stats.Polygons, stats.Circles, stats.ResidualCurves, stats.Strokes)
	return collection, nil
}

func cycleEdgeLists(cycles []Cycle) [][]Segment {
	lists := make([][]Segment, len(cycles))
	for i, cycle := range cycles {
		lists[i] = cycle.Edges()
	}
	return lists
}

// Every simplified segment must end up in exactly one primitive. Anything
// else means the stages lost track of edge ownership.
func checkCoverage(c *Collection, segments int) {
	owner := make(map[int]int, segments)
	for _, p := range c.Primitives {
		for _, source := range p.Sources {
			if previous, ok := owner[source.SegmentID]; ok {
				fatalf("segment %d is in primitive %d and primitive %d", source.SegmentID, previous, p.Index)
			}
			owner[source.SegmentID] = p.Index
		}
	}
	if len(owner) != segments {
		fatalf("output accounts for %d of %d segments", len(owner), segments)
	}
}
