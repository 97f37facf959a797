package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into curves. This is not a full (or even
// correct) svg parser. Every polyline becomes one curve, numbered in document
// order. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) map[CurveID][]Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}

	curves := make(map[CurveID][]Point)
	for i, polylineEl := range polylines {
		pointString := polylineEl.Attributes["points"]
		var points []Point
		for _, pointString := range strings.Split(pointString, " ") {
			if pointString == "" {
				continue
			}

			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			points = append(points, Point{x, y})
		}
		curves[CurveID(i)] = points
	}
	return curves
}

// Some ad hoc code specified fixtures

// Closed polyline through n points on a circle, starting at angle rotation.
func RegularLoop(center Point, radius float64, n int, rotation float64) []Point {
	points := RegularPolygonVertices(center, radius, n, rotation)
	return append(points, points[0])
}

func RectangleLoop(x, y, width, height float64) []Point {
	return []Point{{x, y}, {x + width, y}, {x + width, y + height}, {x, y + height}, {x, y}}
}

func SimpleStar(center Point, outerRadius, innerRadius float64, points int, rotation float64) []Point {
	var vertices []Point
	for i := 0; i < 2*points; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := rotation + math.Pi*float64(i)/float64(points)
		vertices = append(vertices, polarPoint(center, radius, angle))
	}
	return vertices
}

func seededConfig() *Config {
	cfg := DefaultConfig()
	seed := int64(42)
	cfg.RandomSeed = &seed
	return &cfg
}
