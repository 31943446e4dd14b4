// Package tabular reads delimited vendor exports into header-keyed rows.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row maps a column header to the raw cell text of one input row. Columns
// absent from a row read as the empty string.
type Row map[string]string

// File is one fully-read input file: the header in file order plus every
// data row.
type File struct {
	Headers []string
	Rows    []Row
}

// ReadFile parses a CSV export into header-keyed rows. A leading UTF-8 BOM
// on the first header cell is stripped, since vendor exports are commonly
// written as UTF-8 with signature.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; missing cells read as empty

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: file has no header row", path)
	}

	headers := records[0]
	headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")

	file := &File{Headers: headers}
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		file.Rows = append(file.Rows, row)
	}
	return file, nil
}

// RequireColumns verifies that every required column is present in headers.
// It returns a single error naming all missing columns, so the caller can
// abort the run before touching any row.
func RequireColumns(headers, required []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("input file is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
