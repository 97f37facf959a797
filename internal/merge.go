package internal

import "math"

// Open edges that continue each other in a straight line are usually a single
// pen stroke that the simplifier cut into pieces. The merger chains them back
// together and replaces each chain with the one segment spanning it.

type Stroke struct {
	Segment Segment `json:"segment"`
	// Open edges the stroke stands for. A single member means the edge was
	// never merged, or was reverted.
	Members []Segment `json:"members"`
}

type MergeResult struct {
	// Chains whose collapsed endpoints touch no other chain, in seed order.
	Merged []Stroke
	// Members of chains that touched another chain, each as its own stroke.
	Reverted []Stroke
}

func (r *MergeResult) Strokes() []Stroke {
	return append(append([]Stroke(nil), r.Merged...), r.Reverted...)
}

// Slope dy/dx, with every vertical segment at +Inf.
func slope(s Segment) float64 {
	dx := s.B.X - s.A.X
	if dx == 0 {
		return math.Inf(1)
	}
	return (s.B.Y - s.A.Y) / dx
}

// Vertical segments all share slope +Inf, so they chain with each other even
// though the difference of two infinities is NaN.
func slopesClose(a, b, tolerance float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return math.IsInf(a, 0) && math.IsInf(b, 0)
	}
	return math.Abs(a-b) < tolerance
}

func touches(a, b Segment, threshold float64) bool {
	return a.A.Close(b.A, threshold) || a.A.Close(b.B, threshold) ||
		a.B.Close(b.A, threshold) || a.B.Close(b.B, threshold)
}

func MergeSegments(segments []Segment, cfg *Config) *MergeResult {
	used := make([]bool, len(segments))
	var chains [][]Segment
	var collapsed []Segment

	for seed := range segments {
		if used[seed] {
			continue
		}
		used[seed] = true
		chain := []Segment{segments[seed]}
		reference := slope(segments[seed])

		for merged := true; merged; {
			merged = false
			for j, candidate := range segments {
				if used[j] || !slopesClose(reference, slope(candidate), cfg.CollinearSlopeTolerance) {
					continue
				}
				for _, member := range chain {
					if touches(member, candidate, cfg.EndpointMergeThreshold) {
						chain = append(chain, candidate)
						used[j] = true
						merged = true
						break
					}
				}
			}
		}

		chains = append(chains, chain)
		collapsed = append(collapsed, collapseChain(chain, reference, cfg.CollinearSlopeTolerance))
	}

	result := &MergeResult{}
	for i, chain := range chains {
		shared := false
		for j := range chains {
			if i != j && touches(collapsed[i], collapsed[j], cfg.VertexProximityTolerance) {
				shared = true
				break
			}
		}
		if !shared {
			result.Merged = append(result.Merged, Stroke{Segment: collapsed[i], Members: chain})
			continue
		}
		for _, member := range chain {
			result.Reverted = append(result.Reverted, Stroke{Segment: member, Members: []Segment{member}})
		}
	}
	return result
}

// Span a chain by its extreme endpoints: along x for shallow chains, along y
// otherwise. The first endpoint wins ties.
func collapseChain(chain []Segment, reference, tolerance float64) Segment {
	points := make([]Point, 0, 2*len(chain))
	for _, s := range chain {
		points = append(points, s.A, s.B)
	}
	coordinate := func(p Point) float64 { return p.Y }
	if math.Abs(reference) < tolerance {
		coordinate = func(p Point) float64 { return p.X }
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		if coordinate(p) < coordinate(lo) {
			lo = p
		}
		if coordinate(p) > coordinate(hi) {
			hi = p
		}
	}
	return NewSegment(lo, hi)
}
