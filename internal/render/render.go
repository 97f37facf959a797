// Package render draws regularized drawings for previews and debugging.
package render

import (
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/regularize/internal"
	"github.com/osuushi/regularize/internal/export"
	"github.com/pkg/errors"
)

type Options struct {
	// Longest side of the output in pixels. Zero keeps the drawing's own
	// scale. Drawings are only ever scaled down.
	MaxSize int
	// Draw the original input faintly under the primitives.
	ShowSources bool
	// Draw the mirror axes of fitted polygons.
	ShowSymmetry bool
}

// Padding around the drawing, in drawing units. It shrinks with the drawing.
const padding = 20

var palette = map[internal.Kind]colorful.Color{
	internal.KindPolygon:       colorful.Hcl(30, 0.7, 0.6).Clamped(),
	internal.KindCircle:        colorful.Hcl(140, 0.7, 0.6).Clamped(),
	internal.KindStroke:        colorful.Hcl(250, 0.7, 0.6).Clamped(),
	internal.KindResidualCurve: colorful.Hcl(0, 0, 0.5).Clamped(),
}

// Draw the collection on a white canvas, in input coordinates (y grows
// downward, as in the SVG and canvas sources).
func Draw(collection *internal.Collection, opts Options) image.Image {
	minX, minY, maxX, maxY := bounds(collection)
	spanX := maxX - minX + 2*padding
	spanY := maxY - minY + 2*padding

	// Scale down before allocating, so the canvas never exceeds MaxSize
	scale := 1.0
	if opts.MaxSize > 0 {
		scale = math.Min(1, float64(opts.MaxSize)/math.Max(spanX, spanY))
	}
	width := pixels(scale*spanX, opts.MaxSize)
	height := pixels(scale*spanY, opts.MaxSize)

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.Scale(scale, scale)
	c.Translate(padding-minX, padding-minY)

	if opts.ShowSources {
		c.SetRGBA(0, 0, 0, 0.15)
		c.SetLineWidth(4)
		for _, p := range collection.Primitives {
			for _, source := range p.Sources {
				path(c, source.Points, false)
				c.Stroke()
			}
		}
	}

	c.SetLineWidth(2)
	for _, p := range collection.Primitives {
		color := palette[p.Kind]
		c.SetRGB(color.R, color.G, color.B)
		switch p.Kind {
		case internal.KindCircle:
			c.DrawCircle(p.Circle.Center.X, p.Circle.Center.Y, p.Circle.Radius)
		case internal.KindPolygon:
			path(c, p.Polygon.Vertices, true)
		default:
			path(c, export.Flatten(p), false)
		}
		c.Stroke()

		if opts.ShowSymmetry && p.Kind == internal.KindPolygon {
			c.Push()
			c.SetDash(4, 4)
			c.SetLineWidth(1)
			for _, line := range p.Polygon.SymmetryLines() {
				c.DrawLine(line.A.X, line.A.Y, line.B.X, line.B.Y)
			}
			c.Stroke()
			c.Pop()
		}
	}

	return c.Image()
}

func pixels(size float64, limit int) int {
	n := int(math.Ceil(size))
	if limit > 0 && n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Render to a file. The image format follows the extension.
func Save(collection *internal.Collection, path string, opts Options) error {
	return errors.Wrapf(imaging.Save(Draw(collection, opts), path), "saving preview %q", path)
}

// Print a saved preview inline in the terminal (iTerm only).
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func path(c *gg.Context, points []internal.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
}

func bounds(collection *internal.Collection) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	extend := func(p internal.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, primitive := range collection.Primitives {
		for _, p := range export.Flatten(primitive) {
			extend(p)
		}
		if primitive.Kind == internal.KindCircle {
			center, r := primitive.Circle.Center, primitive.Circle.Radius
			extend(internal.Point{X: center.X - r, Y: center.Y - r})
			extend(internal.Point{X: center.X + r, Y: center.Y + r})
		}
		for _, source := range primitive.Sources {
			for _, p := range source.Points {
				extend(p)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}
