package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// colorDecision captures how verbose output is styled.
type colorDecision struct {
	styled bool
	// forced styles output even when the writer is not a terminal.
	forced bool
}

// resolveColorMode decides whether verbose output to w is styled.
func resolveColorMode(mode string, w io.Writer) (colorDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return colorDecision{}, nil
		}
		return colorDecision{styled: isTerminal(w)}, nil
	case "always":
		return colorDecision{styled: true, forced: true}, nil
	case "never":
		return colorDecision{}, nil
	default:
		return colorDecision{}, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
