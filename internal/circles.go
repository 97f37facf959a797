package internal

import (
	"fmt"
	"math"
	"math/rand"
)

type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	// Mean squared distance of the sampled cycle edges to the circle.
	Error float64 `json:"error"`
	Cycle Cycle   `json:"cycle"`
}

type CircleResult struct {
	// Accepted circles in acceptance order (best fit first).
	Circles []Circle
	// Loops that were not accepted and whose edges are all still unclaimed.
	Unused []Cycle
	// Loops that lost at least one edge to an accepted circle.
	Discarded []Cycle
}

type circleCandidate struct {
	circle Circle
	valid  bool
}

// Fit a circle to every cycle, then accept circles greedily from the best fit
// down. A cycle that shares any edge with an already accepted circle is
// rejected, so each edge belongs to the best fitting circle that wants it.
func DetectCircles(cycles []Cycle, ledger *EdgeLedger, rng *rand.Rand, cfg *Config) *CircleResult {
	result := &CircleResult{}
	queue := &priorityQueue[circleCandidate]{}
	for _, cycle := range cycles {
		circle, ok := BestFitCircle(cycle, rng, cfg.CircleTrials, cfg.CircleSamples)
		key := circle.Error
		if !ok {
			key = math.Inf(1)
		}
		queue.push(key, circleCandidate{circle, ok})
	}

	var unused []Cycle
	for !queue.empty() {
		_, candidate := queue.pop()
		cycle := candidate.circle.Cycle
		edges := cycle.Edges()
		if ledger.AnyClaimed(edges) {
			unused = append(unused, cycle)
			continue
		}
		if !candidate.valid || candidate.circle.Error >= cfg.CircleErrorThreshold {
			unused = append(unused, cycle)
			continue
		}
		ledger.Claim(edges, fmt.Sprintf("circle %d", len(result.Circles)))
		result.Circles = append(result.Circles, candidate.circle)
		cfg.debugf("accepted circle r=%.2f at %v (mse %.3f)", candidate.circle.Radius, candidate.circle.Center, candidate.circle.Error)
	}

	for _, cycle := range unused {
		if ledger.AnyClaimed(cycle.Edges()) {
			result.Discarded = append(result.Discarded, cycle)
		} else {
			result.Unused = append(result.Unused, cycle)
		}
	}
	return result
}

// Random three point sampling. Each trial takes three distinct vertices,
// builds the circle through them and scores it against the whole loop. The
// lowest error trial wins. The second return is false when every trial was
// degenerate.
func BestFitCircle(cycle Cycle, rng *rand.Rand, trials, samples int) (Circle, bool) {
	best := Circle{Cycle: cycle, Error: math.Inf(1)}
	found := false
	if len(cycle) < 3 {
		return best, false
	}

	for trial := 0; trial < trials; trial++ {
		indices := rng.Perm(len(cycle))[:3]
		center, radius, ok := CircleThrough(cycle[indices[0]], cycle[indices[1]], cycle[indices[2]])
		if !ok {
			continue
		}
		mse := MeanSquareCircleError(cycle, center, radius, samples)
		if mse < best.Error {
			best.Center = center
			best.Radius = radius
			best.Error = mse
			found = true
		}
	}
	return best, found
}

// The circumcircle of three points. Collinear (or coincident) points have no
// circumcircle.
func CircleThrough(a, b, c Point) (Point, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return Point{}, 0, false
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	center := Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	radius := center.Distance(a)
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Point{}, 0, false
	}
	return center, radius, true
}

// Mean squared distance from points interpolated along every cycle edge to
// the circle. The distance from a point to a circle is ||p-c| - r|, which is
// also well defined for a point sitting on the center.
func MeanSquareCircleError(cycle Cycle, center Point, radius float64, samples int) float64 {
	var total float64
	var count int
	for i, p := range cycle {
		next := cycle[CircularIndex(i+1, len(cycle))]
		for _, s := range SampleSegment(p, next, samples) {
			d := s.Distance(center) - radius
			total += d * d
			count++
		}
	}
	if count == 0 {
		return math.Inf(1)
	}
	return total / float64(count)
}
