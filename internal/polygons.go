package internal

import (
	"context"
	"fmt"
	"sort"
)

type RegularPolygon struct {
	Shape    Shape   `json:"shape"`
	Vertices []Point `json:"vertices"`
	Center   Point   `json:"center"`
	// Radians. For polygons and stars this is the angle of the first vertex;
	// for rectangles, the direction of the width side, in [0, π).
	Rotation float64 `json:"rotation"`
	// Circumradius. Outer radius for stars, half diagonal for rectangles.
	Radius      float64 `json:"radius"`
	InnerRadius float64 `json:"innerRadius,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	// Worst per-edge mean distance from the loop to the fitted vertices.
	Error float64 `json:"error"`
	Cycle Cycle   `json:"cycle"`
	// Graph edges the shape accounts for.
	Edges []Segment `json:"edges"`
}

// Axes of mirror symmetry of the fitted shape, each as a segment across the
// shape.
func (p RegularPolygon) SymmetryLines() []Segment {
	v := p.Vertices
	n := len(v)
	if n < 3 {
		return nil
	}
	midpoint := func(edge int) Point {
		return Midpoint(v[CircularIndex(edge, n)], v[CircularIndex(edge+1, n)])
	}

	var lines []Segment
	switch {
	case p.Shape == ShapeRectangle:
		lines = append(lines, NewSegment(midpoint(0), midpoint(2)), NewSegment(midpoint(1), midpoint(3)))
	case p.Shape == ShapeStar || n%2 == 0:
		// Stars alternate outer and inner points, so the opposite vertex is
		// always half way around the list
		for k := 0; k < n/2; k++ {
			lines = append(lines, NewSegment(v[k], v[k+n/2]))
		}
		if p.Shape != ShapeStar {
			for k := 0; k < n/2; k++ {
				lines = append(lines, NewSegment(midpoint(k), midpoint(k+n/2)))
			}
		}
	default:
		for k := 0; k < n; k++ {
			lines = append(lines, NewSegment(v[k], midpoint(k+(n-1)/2)))
		}
	}
	return lines
}

// Clean, classify and fit a single loop, then validate the fit against the
// loop's own edges. The second return reports whether the fit was accepted.
// Only cancellation produces an error.
func FitCycle(ctx context.Context, cycle Cycle, cfg *Config) (RegularPolygon, bool, error) {
	edges := cycle.Edges()
	vertices := CleanVertices(cycle, cfg)
	if len(vertices) < 3 {
		return RegularPolygon{Cycle: cycle, Edges: edges}, false, nil
	}

	var fit RegularPolygon
	ok := false
	switch ClassifyShape(vertices) {
	case ShapeStar:
		fit, ok = FitStar(vertices, cfg.StarRadiusRatio)
	case ShapeRectangle:
		fit, ok = FitRectangle(vertices, cfg.RectangleSideTolerance, cfg.SquareAspectRatio)
	}
	if !ok {
		var err error
		if fit, err = FitRegularPolygon(ctx, vertices, edges, cfg); err != nil {
			return RegularPolygon{}, false, err
		}
	}
	fit.Cycle = cycle
	fit.Edges = edges

	accepted := Validate(&fit, edges, cfg.PolygonSamples, cfg.PolygonErrorThreshold)
	return fit, accepted, nil
}

type PolygonResult struct {
	// Accepted shapes in acceptance order (best fit first).
	Polygons []RegularPolygon
	// Edges of rejected and displaced loops, deduplicated, in the order they
	// were first released. Some of them may still be claimed by an accepted
	// shape that shares them.
	Released []Segment
	Rejected  int
	Displaced int
}

// Fit every loop, then accept fits greedily from the lowest error. A fit
// that overlaps an edge claimed earlier is displaced and its edges released.
func RegularizePolygons(ctx context.Context, cycles []Cycle, ledger *EdgeLedger, cfg *Config) (*PolygonResult, error) {
	result := &PolygonResult{}
	released := make(SegmentSet)
	release := func(edges []Segment) {
		for _, edge := range edges {
			if !released.Contains(edge) {
				released.Add(edge)
				result.Released = append(result.Released, edge)
			}
		}
	}

	queue := &priorityQueue[RegularPolygon]{}
	for _, cycle := range cycles {
		fit, ok, err := FitCycle(ctx, cycle, cfg)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Rejected++
			cfg.debugf("rejected %s loop %v (error %.2f)", fit.Shape, cycle, fit.Error)
			release(fit.Edges)
			continue
		}
		queue.push(fit.Error, fit)
	}

	for !queue.empty() {
		_, fit := queue.pop()
		if ledger.AnyClaimed(fit.Edges) {
			result.Displaced++
			release(fit.Edges)
			continue
		}
		ledger.Claim(fit.Edges, fmt.Sprintf("polygon %d", len(result.Polygons)))
		result.Polygons = append(result.Polygons, fit)
		cfg.debugf("accepted %s with %d vertices (error %.2f)", fit.Shape, len(fit.Vertices), fit.Error)
	}
	return result, nil
}

// Give leftover loop edges a second chance. The unclaimed edges are grouped
// into connected clusters, and every cluster that could be walked as a closed
// outline (at least three edges, every vertex of even degree) is fit as a
// generic regular polygon from its distinct endpoints. Clusters are
// independent of each other, so a single pass reaches the fixed point.
//
// Returns the accepted polygons and the edges that remain residual, in input
// order. Accepted polygons are numbered after the first offset ones.
func RecombineResiduals(ctx context.Context, edges []Segment, ledger *EdgeLedger, offset int, cfg *Config) ([]RegularPolygon, []Segment, error) {
	var unclaimed []Segment
	for _, edge := range edges {
		if !ledger.Claimed(edge) {
			unclaimed = append(unclaimed, edge)
		}
	}

	var polygons []RegularPolygon
	used := make(SegmentSet)
	for _, cluster := range connectedClusters(unclaimed) {
		if len(cluster) < 3 || !closedWalk(cluster) {
			continue
		}
		outline := clusterOutline(cluster)
		fit, err := FitRegularPolygon(ctx, outline, cluster, cfg)
		if err != nil {
			return nil, nil, err
		}
		fit.Cycle = outline
		fit.Edges = cluster
		if !Validate(&fit, cluster, cfg.PolygonSamples, cfg.PolygonErrorThreshold) {
			continue
		}
		ledger.Claim(cluster, fmt.Sprintf("polygon %d", offset+len(polygons)))
		polygons = append(polygons, fit)
		for _, edge := range cluster {
			used.Add(edge)
		}
		cfg.debugf("recombined %d residual edges into a %d-gon (error %.2f)", len(cluster), len(outline), fit.Error)
	}

	var remaining []Segment
	for _, edge := range unclaimed {
		if !used.Contains(edge) {
			remaining = append(remaining, edge)
		}
	}
	return polygons, remaining, nil
}

// Partition edges into connected components. Components are ordered by
// their first edge, and edges keep their input order within a component.
func connectedClusters(edges []Segment) [][]Segment {
	index := make(map[Point]int)
	for _, edge := range edges {
		for _, p := range [...]Point{edge.A, edge.B} {
			if _, ok := index[p]; !ok {
				index[p] = len(index)
			}
		}
	}
	pairs := make([][2]int, len(edges))
	for i, edge := range edges {
		pairs[i] = [2]int{index[edge.A], index[edge.B]}
	}
	groups := components(len(index), pairs)

	var clusters [][]Segment
	position := make(map[int]int)
	for _, edge := range edges {
		root := groups[index[edge.A]]
		i, ok := position[root]
		if !ok {
			i = len(clusters)
			position[root] = i
			clusters = append(clusters, nil)
		}
		clusters[i] = append(clusters[i], edge)
	}
	return clusters
}

func closedWalk(edges []Segment) bool {
	degree := make(map[Point]int)
	for _, edge := range edges {
		degree[edge.A]++
		degree[edge.B]++
	}
	for _, d := range degree {
		if d%2 != 0 {
			return false
		}
	}
	return true
}

// Distinct endpoints of a cluster, ordered by polar angle about their
// centroid.
func clusterOutline(edges []Segment) Cycle {
	seen := make(PointSet)
	var points Cycle
	for _, edge := range edges {
		for _, p := range [...]Point{edge.A, edge.B} {
			if !seen.Contains(p) {
				seen.Add(p)
				points = append(points, p)
			}
		}
	}
	center := Centroid(points)
	sort.SliceStable(points, func(i, j int) bool {
		return PolarAngle(points[i], center) < PolarAngle(points[j], center)
	})
	return points
}
