package config

import "strings"

// Normalize trims values and fills empty fields with defaults.
func Normalize(cfg *Config) {
	cfg.Scenes.Marker = orDefault(strings.TrimSpace(cfg.Scenes.Marker), DefaultSceneMarker)
	cfg.Quizzes.Marker = orDefault(strings.TrimSpace(cfg.Quizzes.Marker), DefaultQuizMarker)
	cfg.Questions.Delimiter = orDefault(cfg.Questions.Delimiter, DefaultDelimiter)
	cfg.Text.Newline = orDefault(cfg.Text.Newline, DefaultNewline)
	cfg.Text.ListSeparator = orDefault(cfg.Text.ListSeparator, DefaultListSeparator)
	if cfg.Output.Includes == nil {
		cfg.Output.Includes = DefaultIncludes()
	}
	for i := range cfg.Output.Includes {
		cfg.Output.Includes[i] = strings.TrimSpace(cfg.Output.Includes[i])
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
