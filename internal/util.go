package internal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
// Exact comparison is only used on rounded coordinates, where it is stable.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Lexicographic ordering of points: by X, then by Y. This is the ordering used
// to normalize segments and to iterate graph nodes deterministically.
func (p Point) Before(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Distance(other Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), other.vec()))
}

func (p Point) Close(other Point, tolerance float64) bool {
	return p.Distance(other) < tolerance
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Round both coordinates to the given number of decimals. Negative zero is
// folded into zero so rounded points hash consistently.
func (p Point) Round(decimals int) Point {
	scale := math.Pow(10, float64(decimals))
	round := func(v float64) float64 {
		r := math.Round(v*scale) / scale
		if r == 0 {
			return 0
		}
		return r
	}
	return Point{round(p.X), round(p.Y)}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Evenly spaced points from a to b, both endpoints included.
func SampleSegment(a, b Point, n int) []Point {
	if n < 2 {
		return []Point{a}
	}
	samples := make([]Point, n)
	step := r2.Scale(1/float64(n-1), r2.Sub(b.vec(), a.vec()))
	for i := range samples {
		samples[i] = pointFromVec(r2.Add(a.vec(), r2.Scale(float64(i), step)))
	}
	// Pin the last sample so accumulated error never moves the endpoint
	samples[n-1] = b
	return samples
}

// Evenly spaced values over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}[:n]
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func Centroid(points []Point) Point {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return Point{stat.Mean(xs, nil), stat.Mean(ys, nil)}
}

// Distance from p to the closest of the candidate points.
func NearestDistance(p Point, candidates []Point) float64 {
	best := math.Inf(1)
	for _, c := range candidates {
		if d := p.Distance(c); d < best {
			best = d
		}
	}
	return best
}

// Perpendicular distance from p to the infinite line through start and end.
// A zero-length or non-finite reference line falls back to the distance to
// start.
func PointLineDistance(p, start, end Point) float64 {
	direction := r2.Sub(end.vec(), start.vec())
	length := r2.Norm(direction)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return p.Distance(start)
	}
	return math.Abs(r2.Cross(direction, r2.Sub(p.vec(), start.vec()))) / length
}

// Angle in degrees between the vectors a→b and b→c. Zero-length vectors have
// no direction, and the angle is reported as 0.
func TurnAngle(a, b, c Point) float64 {
	v1 := r2.Sub(b.vec(), a.vec())
	v2 := r2.Sub(c.vec(), b.vec())
	m1, m2 := r2.Norm(v1), r2.Norm(v2)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := r2.Dot(v1, v2) / (m1 * m2)
	cos = math.Min(1, math.Max(-1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Unsigned area of the triangle abc.
func TriangleArea(a, b, c Point) float64 {
	return 0.5 * math.Abs(r2.Cross(r2.Sub(b.vec(), a.vec()), r2.Sub(c.vec(), a.vec())))
}

// Polar angle of p around center, in (-π, π].
func PolarAngle(p, center Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

func polarPoint(center Point, radius, angle float64) Point {
	return Point{center.X + radius*math.Cos(angle), center.Y + radius*math.Sin(angle)}
}
