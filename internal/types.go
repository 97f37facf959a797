package internal

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Identifier of an input curve. Ids must be unique within one invocation.
type CurveID int

// A segment is an undirected graph edge. Segments built with NewSegment are
// normalized so that A is lexicographically before B, which makes them usable
// as map keys regardless of the direction they were drawn in.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

func NewSegment(a, b Point) Segment {
	if b.Before(a) {
		return Segment{b, a}
	}
	return Segment{a, b}
}

func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

// A source range ties one simplified segment back to the stretch of the
// original curve that it replaced. Start and End are inclusive indices into
// the original curve's point list.
type SourceRange struct {
	SegmentID int     `json:"segment"`
	Curve     CurveID `json:"curve"`
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Points    []Point `json:"points"`
}

// Several source ranges can reconcile onto the same normalized segment, so
// the map keeps all of them in segment id order.
type InverseMap map[Segment][]SourceRange

func (m InverseMap) add(s Segment, r SourceRange) {
	m[s] = append(m[s], r)
}

// A closed loop of points. The closing edge from the last point back to the
// first is implicit.
type Cycle []Point

func (c Cycle) Edges() []Segment {
	edges := make([]Segment, len(c))
	for i, p := range c {
		edges[i] = NewSegment(p, c[CircularIndex(i+1, len(c))])
	}
	return edges
}

func (c Cycle) Reverse() Cycle {
	reversed := make(Cycle, 0, len(c))
	for i := len(c) - 1; i >= 0; i-- {
		reversed = append(reversed, c[i])
	}
	return reversed
}

type PointSet map[Point]struct{}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

type SegmentSet map[Segment]struct{}

func (set SegmentSet) Add(s Segment) {
	set[s] = struct{}{}
}

func (set SegmentSet) Contains(s Segment) bool {
	_, ok := set[s]
	return ok
}
