package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the build config discovered next to content sources.
const FileName = "contentc.yml"

// ErrConfigNotFound reports that no config file exists in a directory or its parents.
var ErrConfigNotFound = errors.New("config not found")

// vcsMarkers identify the root of a checkout.
var vcsMarkers = []string{".git", ".hg", ".svn"}

// FindConfigPath searches upward from a directory for FileName, stopping at the
// enclosing repository root. Outside a repository only startDir is checked.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	stop := repoRoot(abs)
	if stop == "" {
		stop = abs
	}

	for dir = abs; ; dir = filepath.Dir(dir) {
		configPath := filepath.Join(dir, FileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}
		if dir == stop || filepath.Dir(dir) == dir {
			return "", fmt.Errorf("no %s between %s and %s: %w", FileName, abs, stop, ErrConfigNotFound)
		}
	}
}

// repoRoot returns the nearest ancestor of dir holding a VCS marker, or "".
func repoRoot(dir string) string {
	for {
		for _, marker := range vcsMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Discover loads the config found above startDir, or the defaults when there is none.
func Discover(startDir string) (Config, string, error) {
	path, err := FindConfigPath(startDir)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err := Load("")
		return cfg, "", err
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}
