package compiler

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"contentc/internal/config"
	"contentc/internal/content"
	"contentc/internal/emit"
	"contentc/internal/index"
	"contentc/internal/record"
	"contentc/internal/resolve"
)

// Build is the complete in-memory result of one compilation.
type Build struct {
	ID         uuid.UUID
	Sources    Sources
	Tables     resolve.Tables
	Categories index.CategoryQuestions
	Output     []byte
}

// Compile runs parse, normalize, resolve, index and emit over the sources.
func Compile(cfg config.Config, sources Sources) (*Build, error) {
	set, err := Normalize(cfg, sources)
	if err != nil {
		return nil, err
	}
	tables := resolve.Resolve(set)
	categories := index.Build(len(tables.Categories), tables.Questions)
	id := BuildID(sources)
	output, err := emit.Source(tables, categories, emit.Options{
		BuildID:  id.String(),
		Includes: cfg.Output.Includes,
	})
	if err != nil {
		return nil, err
	}
	return &Build{
		ID:         id,
		Sources:    sources,
		Tables:     tables,
		Categories: categories,
		Output:     output,
	}, nil
}

// Normalize parses the three sources into typed domain records.
func Normalize(cfg config.Config, sources Sources) (content.Set, error) {
	opts := content.Options{
		NewlineMarker: cfg.Text.Newline,
		ListSeparator: cfg.Text.ListSeparator,
	}

	sceneRecords, err := record.ParseBlocks(bytes.NewReader(sources.Scenes.Data), cfg.Scenes.Marker)
	if err != nil {
		return content.Set{}, sourceError(sources.Scenes, err)
	}
	scenes, err := content.NormalizeScenes(sceneRecords, opts)
	if err != nil {
		return content.Set{}, sourceError(sources.Scenes, err)
	}

	questionRecords, err := record.ParseTable(bytes.NewReader(sources.Questions.Data), record.TableOptions{
		Delimiter: cfg.DelimiterRune(),
		IDColumn:  "id",
		Required:  content.QuestionColumns(),
	})
	if err != nil {
		return content.Set{}, sourceError(sources.Questions, err)
	}
	questions, err := content.NormalizeQuestions(questionRecords)
	if err != nil {
		return content.Set{}, sourceError(sources.Questions, err)
	}

	quizRecords, err := record.ParseBlocks(bytes.NewReader(sources.Quizzes.Data), cfg.Quizzes.Marker)
	if err != nil {
		return content.Set{}, sourceError(sources.Quizzes, err)
	}
	quizzes, err := content.NormalizeQuizzes(quizRecords, opts)
	if err != nil {
		return content.Set{}, sourceError(sources.Quizzes, err)
	}

	return content.Set{Scenes: scenes, Questions: questions, Quizzes: quizzes}, nil
}

func sourceError(src Source, err error) error {
	return fmt.Errorf("%s: %w", src.Path, err)
}
