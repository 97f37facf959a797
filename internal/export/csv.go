// Package export writes regularized drawings back out in the format the
// sketch frontend reads.
package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/osuushi/regularize/internal"
	"github.com/pkg/errors"
)

// Every primitive becomes one output curve, numbered by primitive index.
// Shapes are flattened into points: polygons and strokes by interpolating
// their edges, circles by sampling the circumference, and residual curves by
// interpolating between their original points.
const (
	PointsPerEdge   = 5
	PointsPerCircle = 10
)

const staticColumn = "0.0000"

func WriteCSV(w io.Writer, collection *internal.Collection) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"CurveIndex", "Static", "X", "Y"}); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, primitive := range collection.Primitives {
		index := strconv.Itoa(primitive.Index)
		for _, p := range Flatten(primitive) {
			row := []string{index, staticColumn, formatFloat(p.X), formatFloat(p.Y)}
			if err := writer.Write(row); err != nil {
				return errors.Wrapf(err, "writing primitive %d", primitive.Index)
			}
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing csv")
}

// The points drawn for a primitive.
func Flatten(primitive internal.Primitive) []internal.Point {
	switch primitive.Kind {
	case internal.KindPolygon:
		return interpolateLoop(primitive.Polygon.Vertices)
	case internal.KindCircle:
		return circlePoints(primitive.Circle.Center, primitive.Circle.Radius, PointsPerCircle)
	case internal.KindStroke:
		return internal.SampleSegment(primitive.Stroke.Segment.A, primitive.Stroke.Segment.B, PointsPerEdge)
	case internal.KindResidualCurve:
		return interpolatePath(primitive.Curve)
	}
	return nil
}

func interpolateLoop(vertices []internal.Point) []internal.Point {
	var points []internal.Point
	for i, v := range vertices {
		points = append(points, internal.SampleSegment(v, vertices[internal.CircularIndex(i+1, len(vertices))], PointsPerEdge)...)
	}
	return points
}

func interpolatePath(path []internal.Point) []internal.Point {
	if len(path) == 1 {
		return append([]internal.Point(nil), path...)
	}
	var points []internal.Point
	for i := 0; i < len(path)-1; i++ {
		points = append(points, internal.SampleSegment(path[i], path[i+1], PointsPerEdge)...)
	}
	return points
}

// n points from angle 0 to 2π inclusive, so the first and last coincide.
func circlePoints(center internal.Point, radius float64, n int) []internal.Point {
	points := make([]internal.Point, n)
	for i, theta := range internal.Linspace(0, 2*math.Pi, n) {
		points[i] = internal.Point{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)}
	}
	return points
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
