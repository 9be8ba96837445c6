package duckdb_test

import (
	"testing"

	"contentc/internal/compiler"
	"contentc/internal/config"
)

const questionTable = `id,category,question,answer_a,answer_b,answer_c,correct
k1,Science,What?,A,B,C,b
k2,History,Who?,Ann,Bob,Cy,c
k3,Science,Why?,X,Y,Z,a
`

// compileFixture builds a small content set used by the export tests.
func compileFixture(t *testing.T) *compiler.Build {
	t.Helper()
	build, err := compiler.Compile(config.Default(), compiler.Sources{
		Scenes: compiler.Source{Path: "scenes.txt", Data: []byte(`SCENE: intro
type: quiz_trigger
text: Hello|World
trigger_quiz: q1
next: end
SCENE: end
type: good_ending
next: nowhere
question_id: k2
`)},
		Questions: compiler.Source{Path: "questions.csv", Data: []byte(questionTable)},
		Quizzes:   compiler.Source{Path: "quizzes.txt", Data: []byte("QUIZ: q1\nname: Finals\nwrong_limit: 2\ncategories: Science, Art\n")},
	})
	if err != nil {
		t.Fatalf("compile fixture: %v", err)
	}
	return build
}
