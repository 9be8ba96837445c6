package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TableOptions controls tabular parsing.
type TableOptions struct {
	Delimiter rune
	// IDColumn names the column copied into Record.ID.
	IDColumn string
	Required []string
}

// ParseTable reads header-plus-rows delimited text into one record per row.
// Rows shorter than the header yield empty values; extra cells are ignored.
func ParseTable(r io.Reader, opts TableOptions) ([]Record, error) {
	reader := csv.NewReader(stripBOM(r))
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	// A quote inside an unquoted cell is kept as text.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkColumns(header, opts.Required); err != nil {
		return nil, &LineError{Line: 1, Err: err}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			} else {
				fields[name] = ""
			}
		}
		rec := Record{Line: line, Fields: fields}
		if opts.IDColumn != "" {
			rec.ID = strings.TrimSpace(fields[opts.IDColumn])
		}
		records = append(records, rec)
	}
	return records, nil
}

func checkColumns(header, required []string) error {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
}
