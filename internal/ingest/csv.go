package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/regularize/internal"
	"github.com/pkg/errors"
)

// Drawings exchanged with the sketch frontend are CSV files with the header
// CurveIndex,Static,X,Y and one row per sampled point. Rows for a curve are
// in drawing order; the Static column is carried by the frontend and ignored
// here.

var ErrMalformedRow = errors.New("malformed row")

func ReadCSV(r io.Reader) (map[internal.CurveID][]internal.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	curves := make(map[internal.CurveID][]internal.Point)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv")
		}
		line++
		if line == 1 && isHeader(record) {
			continue
		}
		if len(record) < 4 {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: want 4 fields, got %d", line, len(record))
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			// Some exports write the index as a float
			f, ferr := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
			if ferr != nil || f != float64(int(f)) {
				return nil, errors.Wrapf(ErrMalformedRow, "line %d: curve index %q", line, record[0])
			}
			id = int(f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: x %q", line, record[2])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: y %q", line, record[3])
		}

		curveID := internal.CurveID(id)
		curves[curveID] = append(curves[curveID], internal.Point{X: x, Y: y})
	}
	return curves, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	return err != nil
}
