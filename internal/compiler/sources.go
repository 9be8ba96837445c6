package compiler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Source is one input file held fully in memory.
type Source struct {
	Path string
	Data []byte
}

// SHA256 returns the hex digest of the source bytes.
func (s Source) SHA256() string {
	sum := sha256.Sum256(s.Data)
	return hex.EncodeToString(sum[:])
}

// Sources are the three inputs of a build.
type Sources struct {
	Scenes    Source
	Questions Source
	Quizzes   Source
}

// List returns the sources in argument order.
func (s Sources) List() []Source {
	return []Source{s.Scenes, s.Questions, s.Quizzes}
}

// ReadSources loads the scene script, question table and quiz script.
func ReadSources(scenesPath, questionsPath, quizzesPath string) (Sources, error) {
	var sources Sources
	for _, item := range []struct {
		path string
		dest *Source
	}{
		{scenesPath, &sources.Scenes},
		{questionsPath, &sources.Questions},
		{quizzesPath, &sources.Quizzes},
	} {
		data, err := os.ReadFile(item.path)
		if err != nil {
			return Sources{}, fmt.Errorf("read %s: %w", item.path, err)
		}
		*item.dest = Source{Path: item.path, Data: data}
	}
	return sources, nil
}
