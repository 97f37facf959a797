package internal

import "sort"

// Vertex cleanup applied to a loop before its shape is classified. A
// simplified hand-drawn loop carries extra vertices: needles where the pen
// doubled back, short stubs near corners, and near-duplicates left by
// reconciliation. The three passes below remove them in that order.

func CleanVertices(cycle Cycle, cfg *Config) []Point {
	points := RemoveSpikes(cycle, cfg.SpikeAngleDegrees)
	points = FilterShortEdges(points, cfg.ShortEdgeRatio)
	return DeduplicateByArea(points, cfg.VertexProximityTolerance)
}

// Drop vertices where the outline turns back on itself. The angle is the one
// between the incoming and outgoing edge directions, so a straight
// continuation is 0° and a full reversal is 180°. Angles are measured on the
// input loop, not recomputed after removals.
func RemoveSpikes(points []Point, maxAngle float64) []Point {
	n := len(points)
	if n < 3 {
		return append([]Point(nil), points...)
	}
	kept := make([]Point, 0, n)
	for i, p := range points {
		prev := points[CircularIndex(i-1, n)]
		next := points[CircularIndex(i+1, n)]
		if TurnAngle(prev, p, next) > maxAngle {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Remove vertices bounding edges much shorter than the loop's mean edge. The
// threshold is fixed from the initial mean. When edge (i, i+1) is too short,
// whichever endpoint sits next to the shorter of its neighboring edges goes.
//
// Quadrilaterals and triangles are left alone: a 100×60 rectangle has sides
// well under 85% of its mean edge, and those are real corners.
func FilterShortEdges(points []Point, ratio float64) []Point {
	points = append([]Point(nil), points...)
	if len(points) <= 4 {
		return points
	}

	var total float64
	for i, p := range points {
		total += p.Distance(points[CircularIndex(i+1, len(points))])
	}
	threshold := ratio * total / float64(len(points))

	// A removal joins two edges into one that may itself be short, so passes
	// repeat until one removes nothing.
	for removed := true; removed && len(points) > 3; {
		removed = false
		i := 0
		for i < len(points) && len(points) > 3 {
			n := len(points)
			if points[i].Distance(points[CircularIndex(i+1, n)]) >= threshold {
				i++
				continue
			}
			before := points[CircularIndex(i-1, n)].Distance(points[i])
			after := points[CircularIndex(i+1, n)].Distance(points[CircularIndex(i+2, n)])
			remove := i
			if before > after {
				remove = CircularIndex(i+1, n)
			}
			points = append(points[:remove], points[remove+1:]...)
			removed = true
		}
	}
	return points
}

// Rank vertices by the area of the triangle they form with their neighbors,
// largest first, and keep each one unless an already kept vertex lies within
// tolerance. Equal areas keep the earlier vertex. The survivors keep their
// order around the loop.
func DeduplicateByArea(points []Point, tolerance float64) []Point {
	n := len(points)
	if n < 3 {
		return append([]Point(nil), points...)
	}

	queue := &priorityQueue[int]{}
	for i, p := range points {
		area := TriangleArea(points[CircularIndex(i-1, n)], p, points[CircularIndex(i+1, n)])
		queue.push(-area, i)
	}

	var keptIndices []int
	for !queue.empty() {
		_, i := queue.pop()
		duplicate := false
		for _, k := range keptIndices {
			if points[i].Close(points[k], tolerance) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			keptIndices = append(keptIndices, i)
		}
	}

	sort.Ints(keptIndices)
	kept := make([]Point, len(keptIndices))
	for j, i := range keptIndices {
		kept[j] = points[i]
	}
	return kept
}
