package content

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseSceneType maps a source type name to a SceneType. Unknown or empty names
// fall back to SceneNormal.
func ParseSceneType(value string) SceneType {
	if t, ok := sceneTypeNames[strings.TrimSpace(value)]; ok {
		return t
	}
	return SceneNormal
}

// CorrectIndex maps a correct-answer marker to a choice index in [0,3].
// Letters a-d (any case) map to 0-3, integers are clamped, anything else is 0.
func CorrectIndex(value string) int {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) == 1 && value[0] >= 'a' && value[0] <= 'd' {
		return int(value[0] - 'a')
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return clampChoice(n)
}

func clampChoice(n int) int {
	if n < 0 {
		return 0
	}
	if n > 3 {
		return 3
	}
	return n
}

// ExpandNewlines turns the in-field newline marker into real line breaks.
func ExpandNewlines(text, marker string) string {
	if marker == "" {
		return text
	}
	return strings.ReplaceAll(text, marker, "\n")
}

// SplitList splits a list field, trimming elements and dropping empty ones.
func SplitList(value, separator string) []string {
	var out []string
	for _, part := range strings.Split(value, separator) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// displayText normalizes user-visible text to NFC.
func displayText(value string) string {
	return norm.NFC.String(value)
}
