package main

import (
	"fmt"

	"github.com/osuushi/regularize"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Every config value has a flag named like its YAML key. A flag only touches
// the config when it was given, so values from --config survive unless
// overridden.

type overrides []func(*regularize.Config)

func (o overrides) apply(cfg *regularize.Config) {
	for _, override := range o {
		override(cfg)
	}
}

func configFlags(app *kingpin.Application) *overrides {
	o := &overrides{}
	defaults := regularize.DefaultConfig()

	floats := []struct {
		name, help string
		field      func(*regularize.Config) *float64
	}{
		{"simplifyEpsilon", "Simplification tolerance.", func(c *regularize.Config) *float64 { return &c.SimplifyEpsilon }},
		{"endpointMergeThreshold", "Distance under which endpoints are joined.", func(c *regularize.Config) *float64 { return &c.EndpointMergeThreshold }},
		{"circleErrorThreshold", "Largest accepted circle fit error.", func(c *regularize.Config) *float64 { return &c.CircleErrorThreshold }},
		{"polygonErrorThreshold", "Largest accepted polygon edge error.", func(c *regularize.Config) *float64 { return &c.PolygonErrorThreshold }},
		{"spikeAngleDegrees", "Turn angle above which a vertex is a spike.", func(c *regularize.Config) *float64 { return &c.SpikeAngleDegrees }},
		{"shortEdgeRatio", "Edges shorter than this fraction of the mean are dropped.", func(c *regularize.Config) *float64 { return &c.ShortEdgeRatio }},
		{"vertexProximityTolerance", "Distance under which vertices are duplicates.", func(c *regularize.Config) *float64 { return &c.VertexProximityTolerance }},
		{"starRadiusRatio", "Largest inner to outer radius ratio of a star.", func(c *regularize.Config) *float64 { return &c.StarRadiusRatio }},
		{"rectangleSideTolerance", "Relative tolerance between opposite rectangle sides.", func(c *regularize.Config) *float64 { return &c.RectangleSideTolerance }},
		{"squareAspectRatio", "Rectangles closer to square than this are fit as 4-gons.", func(c *regularize.Config) *float64 { return &c.SquareAspectRatio }},
		{"radiusSpan", "Radius search half width.", func(c *regularize.Config) *float64 { return &c.RadiusSpan }},
		{"collinearSlopeTolerance", "Slope difference under which segments are collinear.", func(c *regularize.Config) *float64 { return &c.CollinearSlopeTolerance }},
	}
	for _, f := range floats {
		f := f
		var value float64
		app.Flag(f.name, fmt.Sprintf("%s (default %v)", f.help, *f.field(&defaults))).
			Action(o.add(func(c *regularize.Config) { *f.field(c) = value })).
			Float64Var(&value)
	}

	ints := []struct {
		name, help string
		field      func(*regularize.Config) *int
	}{
		{"roundingDecimals", "Decimals kept on joined coordinates.", func(c *regularize.Config) *int { return &c.RoundingDecimals }},
		{"maxCycles", "Stop looking for loops after this many.", func(c *regularize.Config) *int { return &c.MaxCycles }},
		{"circleTrials", "Random circle fits per loop.", func(c *regularize.Config) *int { return &c.CircleTrials }},
		{"circleSamples", "Samples per edge when scoring a circle.", func(c *regularize.Config) *int { return &c.CircleSamples }},
		{"polygonSamples", "Samples per edge when scoring a polygon.", func(c *regularize.Config) *int { return &c.PolygonSamples }},
		{"radiusSteps", "Radii tried by the polygon search.", func(c *regularize.Config) *int { return &c.RadiusSteps }},
		{"rotationSteps", "Rotations tried by the polygon search.", func(c *regularize.Config) *int { return &c.RotationSteps }},
	}
	for _, f := range ints {
		f := f
		var value int
		app.Flag(f.name, fmt.Sprintf("%s (default %v)", f.help, *f.field(&defaults))).
			Action(o.add(func(c *regularize.Config) { *f.field(c) = value })).
			IntVar(&value)
	}

	var seed int64
	app.Flag("randomSeed", "Seed for circle fitting. Unset seeds from the clock.").
		Action(o.add(func(c *regularize.Config) { c.RandomSeed = &seed })).
		Int64Var(&seed)

	var recombine bool
	app.Flag("recombineResiduals", "Retry leftover loop edges as polygons (default true).").
		Action(o.add(func(c *regularize.Config) { c.RecombineResiduals = recombine })).
		BoolVar(&recombine)

	return o
}

func (o *overrides) add(override func(*regularize.Config)) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*o = append(*o, override)
		return nil
	}
}
