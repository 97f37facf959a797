package internal

import (
	"fmt"
	"sort"
)

// Facilities for reducing each raw polyline to a handful of vertices and then
// snapping nearby endpoints together so that strokes which were meant to meet
// actually share a vertex. Everything downstream works on the segments built
// here, and the inverse map is the only way back to the original points.

type SimplifiedSegment struct {
	ID      int
	Segment Segment
	Source  SourceRange
}

type SimplifyResult struct {
	// Segments with distinct endpoints, in segment id order.
	Segments []SimplifiedSegment
	// Segments whose endpoints reconciled onto a single point. They take no
	// part in the graph and end up as residual curves.
	Degenerate []SourceRange
	Inverse    InverseMap
	Warnings   []string
}

// Raw simplified segment before reconciliation, in original coordinates.
type rawSegment struct {
	start, end Point
	source     SourceRange
}

func Simplify(curves map[CurveID][]Point, cfg *Config) *SimplifyResult {
	result := &SimplifyResult{Inverse: make(InverseMap)}

	ids := make([]CurveID, 0, len(curves))
	for id := range curves {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var raw []rawSegment
	for _, id := range ids {
		points := curves[id]
		if reason := invalidCurveReason(points); reason != "" {
			warning := fmt.Sprintf("skipping curve %d: %s", id, reason)
			result.Warnings = append(result.Warnings, warning)
			cfg.logf("%s", warning)
			continue
		}

		indices := farthestPointIndices(points, cfg.SimplifyEpsilon, 0)
		for i := 0; i < len(indices)-1; i++ {
			start, end := indices[i], indices[i+1]
			raw = append(raw, rawSegment{
				start: points[start],
				end:   points[end],
				source: SourceRange{
					SegmentID: len(raw),
					Curve:     id,
					Start:     start,
					End:       end,
					Points:    append([]Point(nil), points[start:end+1]...),
				},
			})
		}
	}

	reconciled := reconcileEndpoints(raw, cfg.EndpointMergeThreshold, cfg.RoundingDecimals)
	for i, r := range raw {
		a, b := reconciled[2*i], reconciled[2*i+1]
		if a == b {
			result.Degenerate = append(result.Degenerate, r.source)
			continue
		}
		segment := NewSegment(a, b)
		result.Segments = append(result.Segments, SimplifiedSegment{
			ID:      r.source.SegmentID,
			Segment: segment,
			Source:  r.source,
		})
		result.Inverse.add(segment, r.source)
	}
	return result
}

func invalidCurveReason(points []Point) string {
	if len(points) < 2 {
		return fmt.Sprintf("needs at least 2 points, has %d", len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Sprintf("point %d has non-finite coordinates %v", i, p)
		}
	}
	return ""
}

// Recursive farthest-point simplification. Returns the indices of the kept
// points, offset by the given amount, always including both ends.
func farthestPointIndices(points []Point, epsilon float64, offset int) []int {
	end := len(points) - 1
	if end < 1 {
		return []int{offset}
	}

	var maxDistance float64
	index := 0
	for i := 1; i < end; i++ {
		d := PointLineDistance(points[i], points[0], points[end])
		if d > maxDistance {
			index = i
			maxDistance = d
		}
	}

	if maxDistance > epsilon {
		left := farthestPointIndices(points[:index+1], epsilon, offset)
		right := farthestPointIndices(points[index:], epsilon, offset+index)
		// The split point ends the left half and starts the right half
		return append(left[:len(left)-1], right...)
	}
	return []int{offset, offset + end}
}

// Snap endpoints that lie within threshold of each other. Closeness is
// transitive, so a junction of three strokes collapses to one vertex; each
// group is replaced by its centroid, which for a plain pair is the midpoint.
// The result holds two entries per segment: start then end.
func reconcileEndpoints(segments []rawSegment, threshold float64, decimals int) []Point {
	endpoints := make([]Point, 0, 2*len(segments))
	for _, s := range segments {
		endpoints = append(endpoints, s.start, s.end)
	}

	var pairs [][2]int
	for i := range endpoints {
		for j := i + 1; j < len(endpoints); j++ {
			if endpoints[i].Close(endpoints[j], threshold) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	groups := components(len(endpoints), pairs)

	members := make(map[int][]Point)
	for i, p := range endpoints {
		members[groups[i]] = append(members[groups[i]], p)
	}
	centroids := make(map[int]Point, len(members))
	for root, points := range members {
		centroids[root] = Centroid(points).Round(decimals)
	}

	reconciled := make([]Point, len(endpoints))
	for i := range endpoints {
		reconciled[i] = centroids[groups[i]]
	}
	return reconciled
}
