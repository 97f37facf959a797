package ingest

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/regularize/internal"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It collects polyline, polygon and line
// elements in document order and numbers them from zero. Polygons are closed
// by repeating their first point. Transforms, paths and units are ignored, and
// coordinates are taken as they are written.

func ReadSVG(r io.Reader) (map[internal.CurveID][]internal.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	curves := make(map[internal.CurveID][]internal.Point)
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		points, ok, err := elementPoints(el)
		if err != nil {
			return errors.Wrapf(err, "<%s> element %d", el.Name, len(curves))
		}
		if ok {
			curves[internal.CurveID(len(curves))] = points
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return curves, nil
}

func elementPoints(el *svgparser.Element) ([]internal.Point, bool, error) {
	switch el.Name {
	case "polyline":
		points, err := ParsePoints(el.Attributes["points"])
		return points, true, err
	case "polygon":
		points, err := ParsePoints(el.Attributes["points"])
		if err == nil && len(points) > 0 {
			points = append(points, points[0])
		}
		return points, true, err
	case "line":
		var coords [4]float64
		for i, name := range [...]string{"x1", "y1", "x2", "y2"} {
			value, err := parseNumber(el.Attributes[name])
			if err != nil {
				return nil, true, errors.Wrapf(err, "attribute %s", name)
			}
			coords[i] = value
		}
		return []internal.Point{{X: coords[0], Y: coords[1]}, {X: coords[2], Y: coords[3]}}, true, nil
	}
	return nil, false, nil
}

// Parse an SVG points list. Coordinates may be separated by commas, whitespace
// or both.
func ParsePoints(s string) ([]internal.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]internal.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, internal.Point{X: x, Y: y})
	}
	return points, nil
}

func parseNumber(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", s)
	}
	return value, nil
}
