package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"contentc/internal/compiler"
)

// Manifest summarizes one build for tooling that tracks generated content.
type Manifest struct {
	Version  int           `yaml:"version"`
	BuildID  string        `yaml:"build_id"`
	Output   string        `yaml:"output"`
	Inputs   []Input       `yaml:"inputs"`
	Counts   Counts        `yaml:"counts"`
	Dangling []DanglingRef `yaml:"dangling,omitempty"`
}

// Input fingerprints a source file.
type Input struct {
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
	Bytes  int    `yaml:"bytes"`
}

// Counts lists how many entities each table holds.
type Counts struct {
	Categories      int `yaml:"categories"`
	Questions       int `yaml:"questions"`
	Scenes          int `yaml:"scenes"`
	Quizzes         int `yaml:"quizzes"`
	EmptyCategories int `yaml:"empty_categories"`
}

// DanglingRef is a scene link that was emitted as -1 although it named a target.
type DanglingRef struct {
	Scene string `yaml:"scene"`
	Field string `yaml:"field"`
	Ref   string `yaml:"ref"`
}

// FromBuild summarizes a compiled build written to outputPath.
func FromBuild(build *compiler.Build, outputPath string) Manifest {
	m := Manifest{
		Version: 1,
		BuildID: build.ID.String(),
		Output:  outputPath,
		Counts: Counts{
			Categories: len(build.Tables.Categories),
			Questions:  len(build.Tables.Questions),
			Scenes:     len(build.Tables.Scenes),
			Quizzes:    len(build.Tables.Quizzes),
		},
	}
	for _, src := range build.Sources.List() {
		m.Inputs = append(m.Inputs, Input{Path: src.Path, SHA256: src.SHA256(), Bytes: len(src.Data)})
	}
	for _, count := range build.Categories.Counts() {
		if count == 0 {
			m.Counts.EmptyCategories++
		}
	}
	for _, d := range build.Tables.Dangling {
		m.Dangling = append(m.Dangling, DanglingRef{Scene: d.Scene, Field: d.Field, Ref: d.Ref})
	}
	return m
}

// Marshal renders the manifest as YAML.
func Marshal(m Manifest) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}
