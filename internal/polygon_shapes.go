package internal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

type Shape string

const (
	ShapePolygon   Shape = "polygon"
	ShapeStar      Shape = "star"
	ShapeRectangle Shape = "rectangle"
)

// Pick the family a cleaned vertex set is tried against first. Stars and
// rectangles fall back to the generic polygon when their specific fit does
// not apply.
func ClassifyShape(vertices []Point) Shape {
	switch n := len(vertices); {
	case n >= 8 && n%2 == 0:
		return ShapeStar
	case n == 4:
		return ShapeRectangle
	default:
		return ShapePolygon
	}
}

// Fit a regular star to alternating outer and inner vertices. The vertices
// are ordered by polar angle about their centroid; the fit applies only when
// the radial distances strictly alternate and the inner points are
// noticeably closer to the center than the outer ones.
func FitStar(vertices []Point, maxRadiusRatio float64) (RegularPolygon, bool) {
	n := len(vertices)
	if n < 6 || n%2 != 0 {
		return RegularPolygon{}, false
	}

	center := Centroid(vertices)
	sorted := append([]Point(nil), vertices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return PolarAngle(sorted[i], center) < PolarAngle(sorted[j], center)
	})
	distances := make([]float64, n)
	for i, p := range sorted {
		distances[i] = p.Distance(center)
	}

	// Outer points are the peaks. Shift by one if the peaks sit at odd
	// positions, so outer points always take the even slots.
	switch {
	case alternatesFrom(distances, 0):
	case alternatesFrom(distances, 1):
		sorted = append(sorted[1:], sorted[0])
		distances = append(distances[1:], distances[0])
	default:
		return RegularPolygon{}, false
	}

	m := n / 2
	outer := make([]float64, 0, m)
	inner := make([]float64, 0, m)
	var sinSum, cosSum float64
	for i, d := range distances {
		if i%2 == 1 {
			inner = append(inner, d)
			continue
		}
		outer = append(outer, d)
		offset := PolarAngle(sorted[i], center) - 2*math.Pi*float64(i/2)/float64(m)
		sinSum += math.Sin(offset)
		cosSum += math.Cos(offset)
	}

	outerRadius := stat.Mean(outer, nil)
	innerRadius := stat.Mean(inner, nil)
	if !(outerRadius > 0) || innerRadius/outerRadius > maxRadiusRatio {
		return RegularPolygon{}, false
	}

	rotation := normalizeAngle(math.Atan2(sinSum, cosSum), 2*math.Pi)
	points := make([]Point, n)
	for j := range points {
		radius := outerRadius
		if j%2 == 1 {
			radius = innerRadius
		}
		points[j] = polarPoint(center, radius, rotation+math.Pi*float64(j)/float64(m))
	}

	return RegularPolygon{
		Shape:       ShapeStar,
		Vertices:    points,
		Center:      center,
		Rotation:    rotation,
		Radius:      outerRadius,
		InnerRadius: innerRadius,
	}, true
}

// Whether every value at positions start, start+2, ... is strictly greater
// than both of its circular neighbors.
func alternatesFrom(values []float64, start int) bool {
	n := len(values)
	for i := start; i < n; i += 2 {
		if values[i] <= values[CircularIndex(i-1, n)] || values[i] <= values[CircularIndex(i+1, n)] {
			return false
		}
	}
	return true
}

// Fit a rectangle to four vertices given in loop order. Opposite sides must
// agree within the relative side tolerance, and the shape must not be close
// to square: near-squares are better served by the regular 4-gon fit.
func FitRectangle(vertices []Point, sideTolerance, squareAspect float64) (RegularPolygon, bool) {
	if len(vertices) != 4 {
		return RegularPolygon{}, false
	}

	sides := make([]float64, 4)
	for i := range sides {
		sides[i] = vertices[i].Distance(vertices[CircularIndex(i+1, 4)])
	}
	if !relativelyClose(sides[0], sides[2], sideTolerance) || !relativelyClose(sides[1], sides[3], sideTolerance) {
		return RegularPolygon{}, false
	}
	if floats.Max(sides) == 0 || floats.Min(sides)/floats.Max(sides) > squareAspect {
		return RegularPolygon{}, false
	}

	width := (sides[0] + sides[2]) / 2
	height := (sides[1] + sides[3]) / 2
	// Sides 0 and 2 run in opposite directions around the loop
	direction := r2.Add(
		r2.Sub(vertices[1].vec(), vertices[0].vec()),
		r2.Sub(vertices[2].vec(), vertices[3].vec()),
	)
	rotation := normalizeAngle(math.Atan2(direction.Y, direction.X), math.Pi)
	center := Centroid(vertices)

	return RegularPolygon{
		Shape:    ShapeRectangle,
		Vertices: RectangleVertices(center, width, height, rotation),
		Center:   center,
		Rotation: rotation,
		Radius:   math.Hypot(width, height) / 2,
		Width:    width,
		Height:   height,
	}, true
}

// Corners of a width×height rectangle centered on center, rotated by rotation
// radians, in counterclockwise order.
func RectangleVertices(center Point, width, height, rotation float64) []Point {
	corners := []r2.Vec{
		{X: -width / 2, Y: -height / 2},
		{X: width / 2, Y: -height / 2},
		{X: width / 2, Y: height / 2},
		{X: -width / 2, Y: height / 2},
	}
	points := make([]Point, len(corners))
	for i, corner := range corners {
		points[i] = pointFromVec(r2.Add(center.vec(), r2.Rotate(corner, rotation, r2.Vec{})))
	}
	return points
}

// Relative closeness in the numpy isclose sense: |a-b| <= tolerance·|b|.
func relativelyClose(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= 1e-8+tolerance*math.Abs(b)
}

// Reduce angle into [0, period).
func normalizeAngle(angle, period float64) float64 {
	angle = math.Mod(angle, period)
	if angle < 0 {
		angle += period
	}
	if angle >= period-Epsilon {
		angle = 0
	}
	return angle
}
