package internal

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every tolerance and threshold used by the pipeline. A Config
// is read only once a run starts, so one value may be shared by concurrent
// runs.
type Config struct {
	// Farthest-point simplification tolerance.
	SimplifyEpsilon float64 `yaml:"simplifyEpsilon"`
	// Endpoints closer than this are reconciled to their centroid. Also the
	// adjacency tolerance when chaining collinear segments.
	EndpointMergeThreshold float64 `yaml:"endpointMergeThreshold"`
	// Number of decimals kept when rounding reconciled coordinates.
	RoundingDecimals int `yaml:"roundingDecimals"`
	// Stop cycle enumeration after this many distinct cycles.
	MaxCycles int `yaml:"maxCycles"`

	CircleErrorThreshold float64 `yaml:"circleErrorThreshold"`
	CircleTrials         int     `yaml:"circleTrials"`
	CircleSamples        int     `yaml:"circleSamples"`
	// Seed for circle sampling. Nil seeds from the clock.
	RandomSeed *int64 `yaml:"randomSeed"`

	PolygonErrorThreshold    float64 `yaml:"polygonErrorThreshold"`
	PolygonSamples           int     `yaml:"polygonSamples"`
	SpikeAngleDegrees        float64 `yaml:"spikeAngleDegrees"`
	ShortEdgeRatio           float64 `yaml:"shortEdgeRatio"`
	VertexProximityTolerance float64 `yaml:"vertexProximityTolerance"`
	StarRadiusRatio          float64 `yaml:"starRadiusRatio"`
	RectangleSideTolerance   float64 `yaml:"rectangleSideTolerance"`
	SquareAspectRatio        float64 `yaml:"squareAspectRatio"`
	RadiusSteps              int     `yaml:"radiusSteps"`
	RadiusSpan               float64 `yaml:"radiusSpan"`
	RotationSteps            int     `yaml:"rotationSteps"`
	RecombineResiduals       bool    `yaml:"recombineResiduals"`

	CollinearSlopeTolerance float64 `yaml:"collinearSlopeTolerance"`

	// Destination for warnings and debug traces. Nil is silent.
	Logger *log.Logger `yaml:"-"`
	Debug  bool        `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		SimplifyEpsilon:          5,
		EndpointMergeThreshold:   5,
		RoundingDecimals:         1,
		MaxCycles:                10000,
		CircleErrorThreshold:     75,
		CircleTrials:             100,
		CircleSamples:            100,
		PolygonErrorThreshold:    150,
		PolygonSamples:           30,
		SpikeAngleDegrees:        170,
		ShortEdgeRatio:           0.85,
		VertexProximityTolerance: 1,
		StarRadiusRatio:          0.9,
		RectangleSideTolerance:   0.1,
		SquareAspectRatio:        0.75,
		RadiusSteps:              50,
		RadiusSpan:               1,
		RotationSteps:            360,
		RecombineResiduals:       true,
		CollinearSlopeTolerance:  1,
	}
}

// Read a YAML config file on top of the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"simplifyEpsilon", c.SimplifyEpsilon},
		{"endpointMergeThreshold", c.EndpointMergeThreshold},
		{"circleErrorThreshold", c.CircleErrorThreshold},
		{"polygonErrorThreshold", c.PolygonErrorThreshold},
		{"collinearSlopeTolerance", c.CollinearSlopeTolerance},
		{"vertexProximityTolerance", c.VertexProximityTolerance},
		{"spikeAngleDegrees", c.SpikeAngleDegrees},
		{"shortEdgeRatio", c.ShortEdgeRatio},
		{"starRadiusRatio", c.StarRadiusRatio},
		{"rectangleSideTolerance", c.RectangleSideTolerance},
		{"squareAspectRatio", c.SquareAspectRatio},
	}
	for _, field := range positive {
		if !(field.value > 0) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %v", field.name, field.value)
		}
	}

	counts := []struct {
		name  string
		value int
		min   int
	}{
		{"maxCycles", c.MaxCycles, 1},
		{"circleTrials", c.CircleTrials, 1},
		{"circleSamples", c.CircleSamples, 2},
		{"polygonSamples", c.PolygonSamples, 2},
		{"radiusSteps", c.RadiusSteps, 1},
		{"rotationSteps", c.RotationSteps, 1},
		{"roundingDecimals", c.RoundingDecimals, 0},
	}
	for _, field := range counts {
		if field.value < field.min {
			return errors.Wrapf(ErrInvalidConfig, "%s must be at least %d, got %d", field.name, field.min, field.value)
		}
	}

	if c.RadiusSpan < 0 {
		return errors.Wrapf(ErrInvalidConfig, "radiusSpan must not be negative, got %v", c.RadiusSpan)
	}
	return nil
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c *Config) debugf(format string, args ...interface{}) {
	if c.Debug {
		c.logf(format, args...)
	}
}
