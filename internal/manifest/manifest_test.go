package manifest

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"contentc/internal/compiler"
	"contentc/internal/config"
)

func compileSample(t *testing.T) *compiler.Build {
	t.Helper()
	build, err := compiler.Compile(config.Default(), compiler.Sources{
		Scenes:    compiler.Source{Path: "scenes.txt", Data: []byte("SCENE: a\nnext: ghost\nSCENE: b\nnext: a\n")},
		Questions: compiler.Source{Path: "questions.csv", Data: []byte("id,category,question,answer_a,answer_b,answer_c,correct\nq1,Art,Q,A,B,C,a\n")},
		Quizzes:   compiler.Source{Path: "quizzes.txt", Data: []byte("QUIZ: z\ncategories: Art, Music\n")},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return build
}

// TestFromBuild verifies counts, fingerprints and dangling links are reported.
func TestFromBuild(t *testing.T) {
	build := compileSample(t)
	m := FromBuild(build, "out/data_load.c")
	if m.BuildID != build.ID.String() {
		t.Fatalf("expected build id %s, got %s", build.ID, m.BuildID)
	}
	want := Counts{Categories: 2, Questions: 1, Scenes: 2, Quizzes: 1, EmptyCategories: 1}
	if m.Counts != want {
		t.Fatalf("expected counts %+v, got %+v", want, m.Counts)
	}
	if len(m.Inputs) != 3 || m.Inputs[0].Path != "scenes.txt" || len(m.Inputs[0].SHA256) != 64 {
		t.Fatalf("unexpected inputs: %+v", m.Inputs)
	}
	if len(m.Dangling) != 1 || m.Dangling[0] != (DanglingRef{Scene: "a", Field: "next", Ref: "ghost"}) {
		t.Fatalf("unexpected dangling refs: %+v", m.Dangling)
	}
}

// TestMarshalRoundTrip verifies the YAML output uses snake_case keys.
func TestMarshalRoundTrip(t *testing.T) {
	m := FromBuild(compileSample(t), "data_load.c")
	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	for _, key := range []string{"build_id:", "empty_categories: 1", "dangling:"} {
		if !strings.Contains(text, key) {
			t.Fatalf("expected %q in manifest:\n%s", key, text)
		}
	}
	var decoded Manifest
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.BuildID != m.BuildID || decoded.Counts != m.Counts {
		t.Fatalf("expected decoded manifest to match, got %+v", decoded)
	}
}
