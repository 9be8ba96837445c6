package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestLoadDefaults verifies an empty path yields the default configuration.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Scenes.Marker != "SCENE" || cfg.Quizzes.Marker != "QUIZ" {
		t.Fatalf("unexpected markers: %+v", cfg)
	}
	if cfg.DelimiterRune() != ',' {
		t.Fatalf("expected comma delimiter, got %q", cfg.DelimiterRune())
	}
}

// TestLoadFile verifies file values override defaults and missing ones are filled.
func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, `version: 1
scenes:
  marker: ROOM
questions:
  delimiter: ";"
output:
  includes: ["<genesis.h>", "content.h"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenes.Marker != "ROOM" || cfg.Quizzes.Marker != "QUIZ" {
		t.Fatalf("unexpected markers: %+v", cfg)
	}
	if cfg.DelimiterRune() != ';' {
		t.Fatalf("expected ';' delimiter, got %q", cfg.DelimiterRune())
	}
	if !reflect.DeepEqual(cfg.Output.Includes, []string{"<genesis.h>", "content.h"}) {
		t.Fatalf("unexpected includes: %q", cfg.Output.Includes)
	}
	if cfg.Text.Newline != "|" {
		t.Fatalf("expected default newline marker, got %q", cfg.Text.Newline)
	}
}

// TestLoadEnvOverrides verifies CONTENTC_* variables win over file values.
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONTENTC_SCENES_MARKER", "PAGE")
	t.Setenv("CONTENTC_TEXT_NEWLINE", "~")
	t.Setenv("CONTENTC_OUTPUT_INCLUDES", "a.h,b.h")
	path := writeConfigFile(t, "version: 1\nscenes:\n  marker: ROOM\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenes.Marker != "PAGE" {
		t.Fatalf("expected env marker, got %q", cfg.Scenes.Marker)
	}
	if cfg.Text.Newline != "~" {
		t.Fatalf("expected env newline, got %q", cfg.Text.Newline)
	}
	if !reflect.DeepEqual(cfg.Output.Includes, []string{"a.h", "b.h"}) {
		t.Fatalf("unexpected includes: %q", cfg.Output.Includes)
	}
}

// TestLoadEnvError verifies malformed env values are reported.
func TestLoadEnvError(t *testing.T) {
	t.Setenv("CONTENTC_VERSION", "one")
	_, err := Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// TestLoadMissingFile verifies read errors are wrapped.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yml")
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}

// TestLoadRequiresVersion verifies config files must state their version.
func TestLoadRequiresVersion(t *testing.T) {
	path := writeConfigFile(t, "scenes:\n  marker: ROOM\n")
	_, err := Load(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "version: is required") {
		t.Fatalf("expected version issue, got %q", err.Error())
	}
}

// TestParseUnknownField verifies unknown fields are rejected.
func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nunknown: true\n")); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseRejectsMultipleDocs(t *testing.T) {
	if _, err := Parse([]byte("version: 1\n---\nversion: 1\n")); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}
