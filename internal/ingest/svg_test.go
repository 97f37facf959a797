package ingest

import (
	"strings"
	"testing"

	"github.com/osuushi/regularize/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <g>
    <polyline points="0,0 10,0 10,10" />
  </g>
  <polygon points="20 20, 30 20, 30 30" />
  <line x1="0" y1="50" x2="100" y2="50" />
  <circle cx="5" cy="5" r="5" />
</svg>`
	curves, err := ReadSVG(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[internal.CurveID][]internal.Point{
		0: {{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		1: {{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}, {X: 20, Y: 20}},
		2: {{X: 0, Y: 50}, {X: 100, Y: 50}},
	}, curves)
}

func TestParsePoints(t *testing.T) {
	points, err := ParsePoints(" 1,2 3 4\n5,6 ")
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, points)

	_, err = ParsePoints("1,2 3")
	assert.Error(t, err)
	_, err = ParsePoints("1,x")
	assert.Error(t, err)
}
