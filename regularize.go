// Regularization of hand-drawn vector sketches.
//
// This package takes a drawing as a set of sampled polylines and replaces the
// noisy strokes with clean primitives: regular polygons, stars, rectangles,
// circles and straight strokes. Whatever cannot be explained by a clean shape
// is returned untouched as a residual curve, so every piece of the input is
// accounted for in exactly one primitive.
package regularize

import (
	"context"

	"github.com/osuushi/regularize/internal"
)

type Point = internal.Point
type CurveID = internal.CurveID
type Config = internal.Config
type Collection = internal.Collection
type Primitive = internal.Primitive
type Kind = internal.Kind
type RegularPolygon = internal.RegularPolygon
type Circle = internal.Circle
type Stroke = internal.Stroke
type Segment = internal.Segment
type SourceRange = internal.SourceRange

const (
	KindPolygon       = internal.KindPolygon
	KindCircle        = internal.KindCircle
	KindStroke        = internal.KindStroke
	KindResidualCurve = internal.KindResidualCurve
)

var (
	// Returned (wrapped) when no curve survives validation and
	// simplification. Check with errors.Is.
	ErrEmptyInput = internal.ErrEmptyInput
	// Returned (wrapped) when a Config value is out of range.
	ErrInvalidConfig = internal.ErrInvalidConfig
)

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// Read a YAML config file. Keys the file leaves out keep their defaults.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// Regularize a drawing given as point lists keyed by curve id.
//
// Identical input, config, and random seed produce identical output. The
// config is only read, so one Config may be shared by concurrent calls.
func Regularize(curves map[CurveID][]Point, cfg Config) (*Collection, error) {
	return RegularizeContext(context.Background(), curves, cfg)
}

// Like Regularize, but gives up with the context's error once ctx is done.
func RegularizeContext(ctx context.Context, curves map[CurveID][]Point, cfg Config) (result *Collection, err error) {
	defer func() {
		recoveredErr := internal.HandleRegularizePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Regularize(ctx, curves, &cfg)
}
