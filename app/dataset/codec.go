// Package dataset loads student CSV files, keeps the assessed results in
// memory for the web handlers, and writes the batch results report.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

// ErrMissingColumns reports a header without the required dataset fields.
var ErrMissingColumns = errors.New("missing required columns")

// requiredColumns are the header names the loader must find, matched
// case-insensitively. G3 is optional and unknown columns are ignored, so
// the full UCI student file loads as-is.
var requiredColumns = []string{
	"g1", "g2", "absences", "studytime", "failures",
	"famsup", "medu", "fedu", "dalc", "walc", "goout",
}

// ParseRecords reads a delimited student dataset. The separator is sniffed
// from the header line; semicolon wins ties, matching the files this system
// has historically consumed.
func ParseRecords(r io.Reader) ([]models.StudentRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseWith(raw, sniffSeparator(raw))
}

func sniffSeparator(raw []byte) rune {
	header := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	if bytes.Count(header, []byte{';'}) >= bytes.Count(header, []byte{','}) {
		return ';'
	}
	return ','
}

func parseWith(raw []byte, sep rune) ([]models.StudentRecord, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = sep
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("dataset is empty")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	g3Col, hasG3 := cols["g3"]

	records := make([]models.StudentRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if hasG3 && g3Col < len(row) {
			if cell := strings.TrimSpace(row[g3Col]); cell != "" {
				g3, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid g3 value %q", i+1, cell)
				}
				rec.G3 = &g3
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (models.StudentRecord, error) {
	var rec models.StudentRecord

	fields := []struct {
		name string
		dst  *int
	}{
		{"g1", &rec.G1}, {"g2", &rec.G2}, {"absences", &rec.Absences},
		{"studytime", &rec.StudyTime}, {"failures", &rec.Failures},
		{"medu", &rec.Medu}, {"fedu", &rec.Fedu},
		{"dalc", &rec.Dalc}, {"walc", &rec.Walc}, {"goout", &rec.GoOut},
	}
	for _, f := range fields {
		v, err := intCell(row, cols, f.name)
		if err != nil {
			return rec, err
		}
		*f.dst = v
	}

	// Anything that is not an explicit "no" counts as having support.
	rec.FamSup = models.FamSupYes
	if famsup := cell(row, cols["famsup"]); strings.EqualFold(famsup, "no") {
		rec.FamSup = models.FamSupNo
	}
	return rec, nil
}

func intCell(row []string, cols map[string]int, name string) (int, error) {
	raw := cell(row, cols[name])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return v, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
