package internal

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Brute force pose search for a regular N-gon. The candidate grid is radius
// (a narrow band around the mean vertex radius) by rotation (whole degrees).
// Everything here is a pure function of its arguments, so fits for different
// loops may safely run concurrently.

// Vertices of a regular n-gon on a circle of radius around center, the first
// vertex at angle rotation.
func RegularPolygonVertices(center Point, radius float64, n int, rotation float64) []Point {
	points := make([]Point, n)
	for k := range points {
		points[k] = polarPoint(center, radius, rotation+2*math.Pi*float64(k)/float64(n))
	}
	return points
}

// Search for the regular polygon with as many vertices as the input set that
// best matches both the vertices and the true edges. The score is the sum of
// nearest-candidate distances of the vertices plus the mean nearest-candidate
// distance of the edge samples. The error of the result is left for Validate.
func FitRegularPolygon(ctx context.Context, vertices []Point, edges []Segment, cfg *Config) (RegularPolygon, error) {
	n := len(vertices)
	center := Centroid(vertices)
	distances := make([]float64, n)
	for i, v := range vertices {
		distances[i] = v.Distance(center)
	}
	averageRadius := stat.Mean(distances, nil)

	samples := sampleEdges(edges, cfg.PolygonSamples)

	// Unit directions of every candidate vertex for every rotation step,
	// shared across the radius rows.
	rotations := make([]float64, cfg.RotationSteps)
	directions := make([][]Point, cfg.RotationSteps)
	for step := range rotations {
		rotations[step] = 2 * math.Pi * float64(step) / float64(cfg.RotationSteps)
		directions[step] = RegularPolygonVertices(Point{}, 1, n, rotations[step])
	}

	best := RegularPolygon{Shape: ShapePolygon, Center: center, Radius: averageRadius}
	bestScore := math.Inf(1)
	candidate := make([]Point, n)
	nearest := make([]float64, len(samples))

	for _, radius := range Linspace(averageRadius-cfg.RadiusSpan, averageRadius+cfg.RadiusSpan, cfg.RadiusSteps) {
		if err := ctx.Err(); err != nil {
			return RegularPolygon{}, err
		}
		for step, unit := range directions {
			for k, u := range unit {
				candidate[k] = Point{center.X + radius*u.X, center.Y + radius*u.Y}
			}

			var score float64
			for _, v := range vertices {
				score += NearestDistance(v, candidate)
			}
			if len(samples) > 0 {
				for i, s := range samples {
					nearest[i] = NearestDistance(s, candidate)
				}
				score += floats.Sum(nearest) / float64(len(samples))
			}

			if score < bestScore {
				bestScore = score
				best.Radius = radius
				best.Rotation = rotations[step]
			}
		}
	}

	best.Vertices = RegularPolygonVertices(center, best.Radius, n, best.Rotation)
	return best, nil
}

// Validate a fitted shape against the true edges of its loop: each edge is
// sampled and the mean distance of its samples to the nearest fitted vertex
// is its error. The fit error is the worst edge, and the fit is rejected if
// any edge exceeds threshold.
func Validate(fit *RegularPolygon, edges []Segment, samples int, threshold float64) bool {
	errs := EdgeErrors(edges, fit.Vertices, samples)
	if len(errs) == 0 {
		fit.Error = math.Inf(1)
		return false
	}
	fit.Error = floats.Max(errs)
	return fit.Error <= threshold
}

func EdgeErrors(edges []Segment, fitted []Point, samples int) []float64 {
	errs := make([]float64, len(edges))
	for i, edge := range edges {
		points := SampleSegment(edge.A, edge.B, samples)
		var total float64
		for _, p := range points {
			total += NearestDistance(p, fitted)
		}
		errs[i] = total / float64(len(points))
	}
	return errs
}

func sampleEdges(edges []Segment, samples int) []Point {
	points := make([]Point, 0, len(edges)*samples)
	for _, edge := range edges {
		points = append(points, SampleSegment(edge.A, edge.B, samples)...)
	}
	return points
}
