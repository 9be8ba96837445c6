package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"contentc/internal/compiler"
)

const verbosePrefix = "[verbose]"

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleCounts
	styleWarning
)

// verboseLogger writes build diagnostics when -v is set.
type verboseLogger struct {
	w        io.Writer
	enabled  bool
	renderer *lipgloss.Renderer
}

func newVerboseLogger(enabled bool, w io.Writer, color colorDecision) verboseLogger {
	logger := verboseLogger{w: w, enabled: enabled && w != nil}
	if color.styled && logger.enabled {
		logger.renderer = lipgloss.NewRenderer(w)
		if color.forced {
			logger.renderer.SetColorProfile(termenv.ANSI256)
		}
	}
	return logger
}

func (l verboseLogger) logf(style verboseStyle, format string, args ...any) {
	if !l.enabled {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.w, "%s %s\n", l.stylize(verbosePrefix, lipgloss.Color("242")), l.stylize(line, styleColor(style)))
}

func (l verboseLogger) stylize(text string, color lipgloss.Color) string {
	if l.renderer == nil || color == "" {
		return text
	}
	return l.renderer.NewStyle().Foreground(color).Render(text)
}

func styleColor(style verboseStyle) lipgloss.Color {
	switch style {
	case styleCounts:
		return lipgloss.Color("33")
	case styleWarning:
		return lipgloss.Color("214")
	default:
		return ""
	}
}

// logBuildSummary reports entity counts, empty categories and dangling links.
func (l verboseLogger) logBuildSummary(build *compiler.Build) {
	if !l.enabled || build == nil {
		return
	}
	tables := build.Tables
	l.logf(styleDefault, "build %s", build.ID)
	l.logf(styleCounts, "categories=%d questions=%d scenes=%d quizzes=%d",
		len(tables.Categories), len(tables.Questions), len(tables.Scenes), len(tables.Quizzes))
	var empty []string
	for i, count := range build.Categories.Counts() {
		if count == 0 {
			empty = append(empty, tables.Categories[i])
		}
	}
	if len(empty) > 0 {
		l.logf(styleDefault, "categories without questions: %s", strings.Join(empty, ", "))
	}
	for _, d := range tables.Dangling {
		l.logf(styleWarning, "scene %q: %s %q not found, emitted -1", d.Scene, d.Field, d.Ref)
	}
}
