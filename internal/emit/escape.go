package emit

import "strings"

var cEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Escape quotes text for a C string literal. Backslashes, double quotes and
// newlines are escaped in a single pass, so no escape is escaped twice.
func Escape(s string) string {
	return cEscaper.Replace(s)
}
