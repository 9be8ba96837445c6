package cli

import (
	"path/filepath"
	"testing"

	"contentc/internal/testutil"
)

const (
	sampleScenes = `SCENE: s1
type: quiz_trigger
text: Hello|World
trigger_quiz: q1
next: missing
`
	sampleQuestions = `id,category,question,answer_a,answer_b,answer_c,correct
q1,Science,"What?","A","B","C",b
`
	sampleQuizzes = `QUIZ: q1
name: First
categories: Science, Art
`
)

// workspace holds source paths written into a temp dir.
type workspace struct {
	dir       string
	scenes    string
	questions string
	quizzes   string
	output    string
}

func newWorkspace(t *testing.T, scenes, questions, quizzes string) workspace {
	t.Helper()
	dir := t.TempDir()
	return workspace{
		dir:       dir,
		scenes:    testutil.WriteFile(t, dir, "scenes.txt", scenes),
		questions: testutil.WriteFile(t, dir, "questions.csv", questions),
		quizzes:   testutil.WriteFile(t, dir, "quizzes.txt", quizzes),
		output:    filepath.Join(dir, "out", "data_load.c"),
	}
}

func (w workspace) args(flags ...string) []string {
	return append(flags, w.scenes, w.questions, w.quizzes, w.output)
}
