package internal

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Nil(t, cfg.RandomSeed)
	assert.Equal(t, 5.0, cfg.SimplifyEpsilon)
	assert.Equal(t, 75.0, cfg.CircleErrorThreshold)
	assert.Equal(t, 150.0, cfg.PolygonErrorThreshold)
}

func TestConfig_Validate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"zero epsilon":      func(c *Config) { c.SimplifyEpsilon = 0 },
		"negative merge":    func(c *Config) { c.EndpointMergeThreshold = -1 },
		"zero rotations":    func(c *Config) { c.RotationSteps = 0 },
		"one sample":        func(c *Config) { c.CircleSamples = 1 },
		"negative decimals": func(c *Config) { c.RoundingDecimals = -1 },
		"negative span":     func(c *Config) { c.RadiusSpan = -0.5 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "good.yaml")
		require.NoError(t, os.WriteFile(path, []byte("simplifyEpsilon: 2\nrandomSeed: 7\nrecombineResiduals: false\n"), 0o644))
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.SimplifyEpsilon)
		require.NotNil(t, cfg.RandomSeed)
		assert.Equal(t, int64(7), *cfg.RandomSeed)
		assert.False(t, cfg.RecombineResiduals)
		assert.Equal(t, 5.0, cfg.EndpointMergeThreshold)
	})

	t.Run("out of range", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxCycles: 0\n"), 0o644))
		_, err := LoadConfig(path)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestConfig_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = log.New(&buf, "", 0)
	cfg.debugf("hidden")
	cfg.logf("shown %d", 1)
	cfg.Debug = true
	cfg.debugf("traced")
	assert.Equal(t, "shown 1\ntraced\n", buf.String())

	// A nil logger is silent
	cfg.Logger = nil
	cfg.logf("nothing")
}
