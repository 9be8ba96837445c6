package record

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Record is one parsed source record: a primary ID plus its flat field mapping.
type Record struct {
	ID     string
	Line   int
	Fields map[string]string
}

// Value returns the field value for key, or "" when the key is absent.
func (r Record) Value(key string) string {
	return r.Fields[key]
}

// Lookup returns the field value for key and whether it was present.
func (r Record) Lookup(key string) (string, bool) {
	value, ok := r.Fields[key]
	return value, ok
}

// ErrMalformedLine indicates a block line without a key/value separator.
var ErrMalformedLine = errors.New("missing key/value separator")

// ErrOrphanField indicates a key/value line that appears before the first record marker.
var ErrOrphanField = errors.New("field outside of a record")

// ErrMissingColumn indicates a tabular header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// LineError ties a parse failure to its source line.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error returns the line number, cause and offending text.
func (err *LineError) Error() string {
	if err.Text == "" {
		return fmt.Sprintf("line %d: %v", err.Line, err.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", err.Line, err.Err, err.Text)
}

// Unwrap exposes the underlying sentinel.
func (err *LineError) Unwrap() error {
	return err.Err
}

// stripBOM drops a leading byte-order mark so the first marker or header matches.
func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
