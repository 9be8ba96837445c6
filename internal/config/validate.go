package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks a normalized config for values the parsers cannot work with.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateMarker("scenes.marker", cfg.Scenes.Marker, collector)
	validateMarker("quizzes.marker", cfg.Quizzes.Marker, collector)
	if cfg.Scenes.Marker != "" && cfg.Scenes.Marker == cfg.Quizzes.Marker {
		collector.add("quizzes.marker", fmt.Sprintf("must differ from scenes.marker %q", cfg.Scenes.Marker))
	}

	delimiter := cfg.Questions.Delimiter
	if utf8.RuneCountInString(delimiter) != 1 {
		collector.add("questions.delimiter", fmt.Sprintf("must be a single character, got %q", delimiter))
	} else if strings.ContainsAny(delimiter, "\"\r\n") || delimiter == string(utf8.RuneError) {
		collector.add("questions.delimiter", fmt.Sprintf("unsupported delimiter %q", delimiter))
	}

	if cfg.Text.Newline == "" {
		collector.add("text.newline", "is required")
	}
	if cfg.Text.ListSeparator == "" {
		collector.add("text.list_separator", "is required")
	}

	for i, include := range cfg.Output.Includes {
		if include == "" {
			collector.add(fmt.Sprintf("output.includes[%d]", i), "is required")
		}
	}

	return collector.result()
}

func validateMarker(field, marker string, collector *issueCollector) {
	switch {
	case marker == "":
		collector.add(field, "is required")
	case strings.Contains(marker, ":"):
		collector.add(field, "must not contain ':'")
	case strings.ContainsAny(marker, " \t"):
		collector.add(field, "must not contain whitespace")
	}
}
