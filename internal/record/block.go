package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

// ParseBlocks reads marker-delimited key/value records.
//
// A trimmed line starting with "<marker>:" opens a record whose ID is the rest of the
// line. Each following non-blank line must be "key: value"; repeated keys overwrite.
func ParseBlocks(r io.Reader, marker string) ([]Record, error) {
	prefix := marker + ":"
	scanner := bufio.NewScanner(stripBOM(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		records []Record
		current *Record
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{
				ID:     strings.TrimSpace(line[len(prefix):]),
				Line:   lineNo,
				Fields: map[string]string{},
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}
		if current == nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrOrphanField}
		}
		current.Fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read blocks: %w", err)
	}
	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}
