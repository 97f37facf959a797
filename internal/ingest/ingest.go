// Package ingest reads drawings from files into point lists keyed by curve
// id.
package ingest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/regularize/internal"
	"github.com/pkg/errors"
)

// Read a drawing, choosing the format from the file extension.
func ReadFile(path string) (map[internal.CurveID][]internal.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening drawing")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f)
	case ".svg":
		return ReadSVG(f)
	default:
		return nil, errors.Errorf("unsupported drawing format %q", ext)
	}
}
