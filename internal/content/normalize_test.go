package content

import (
	"errors"
	"testing"

	"contentc/internal/record"
)

func rec(id string, fields map[string]string) record.Record {
	return record.Record{ID: id, Line: 1, Fields: fields}
}

// TestNormalizeScenesDefaults verifies absent optional fields get their defaults.
func TestNormalizeScenesDefaults(t *testing.T) {
	scenes, err := NormalizeScenes([]record.Record{rec("s1", map[string]string{})}, Options{})
	if err != nil {
		t.Fatalf("normalize scenes: %v", err)
	}
	scene := scenes[0]
	if scene.Type != SceneNormal || scene.Background != 0 || scene.Music != 0 {
		t.Fatalf("unexpected defaults: %+v", scene)
	}
	if scene.Next != "" || scene.TriggerQuiz != "" || scene.QuestionID != "" {
		t.Fatalf("expected empty links, got %+v", scene)
	}
}

// TestNormalizeScenesFields verifies typed fields and newline expansion.
func TestNormalizeScenesFields(t *testing.T) {
	scenes, err := NormalizeScenes([]record.Record{rec("s1", map[string]string{
		"type":         "quiz_trigger",
		"text":         "Hello|World",
		"trigger_quiz": "q1",
		"bg":           "4",
		"music":        " 2 ",
		"mood":         "tense",
	})}, DefaultOptions())
	if err != nil {
		t.Fatalf("normalize scenes: %v", err)
	}
	scene := scenes[0]
	if scene.Type != SceneQuizTrigger {
		t.Fatalf("expected quiz trigger, got %v", scene.Type)
	}
	if scene.Text != "Hello\nWorld" {
		t.Fatalf("expected expanded text, got %q", scene.Text)
	}
	if scene.TriggerQuiz != "q1" || scene.Background != 4 || scene.Music != 2 {
		t.Fatalf("unexpected scene: %+v", scene)
	}
	if scene.Extra["mood"] != "tense" {
		t.Fatalf("expected unknown key passed through, got %v", scene.Extra)
	}
}

// TestNormalizeScenesInvalidNumber verifies non-integer presentation ids fail.
func TestNormalizeScenesInvalidNumber(t *testing.T) {
	_, err := NormalizeScenes([]record.Record{rec("s1", map[string]string{"bg": "forest"})}, Options{})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected invalid number error, got %v", err)
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "bg" {
		t.Fatalf("expected bg field error, got %v", err)
	}
}

// TestNormalizeQuestions verifies answers, category and correct normalization.
func TestNormalizeQuestions(t *testing.T) {
	questions, err := NormalizeQuestions([]record.Record{rec("q1", map[string]string{
		"id":       "q1",
		"category": " Science ",
		"question": "What?",
		"answer_a": "A",
		"answer_b": "B",
		"answer_c": "C",
		"correct":  "b",
	})})
	if err != nil {
		t.Fatalf("normalize questions: %v", err)
	}
	q := questions[0]
	if q.Category != "Science" || q.Prompt != "What?" || q.Correct != 1 {
		t.Fatalf("unexpected question: %+v", q)
	}
	if q.Answers != [AnswerCount]string{"A", "B", "C"} {
		t.Fatalf("unexpected answers: %q", q.Answers)
	}
}

// TestNormalizeQuestionsMissingCategory verifies a blank category fails the build.
func TestNormalizeQuestionsMissingCategory(t *testing.T) {
	_, err := NormalizeQuestions([]record.Record{rec("q1", map[string]string{"category": " "})})
	if !errors.Is(err, ErrMissingCategory) {
		t.Fatalf("expected missing category error, got %v", err)
	}
}

// TestNormalizeQuizzes verifies defaults and category list splitting.
func TestNormalizeQuizzes(t *testing.T) {
	quizzes, err := NormalizeQuizzes([]record.Record{
		rec("quiz1", map[string]string{"name": "Finals", "wrong_limit": "3", "questions": "10", "categories": "Science, History"}),
		rec("quiz2", map[string]string{}),
	}, Options{})
	if err != nil {
		t.Fatalf("normalize quizzes: %v", err)
	}
	first := quizzes[0]
	if first.Name != "Finals" || first.WrongLimit != 3 || first.QuestionCount != 10 {
		t.Fatalf("unexpected quiz: %+v", first)
	}
	if len(first.Categories) != 2 || first.Categories[1] != "History" {
		t.Fatalf("unexpected categories: %q", first.Categories)
	}
	second := quizzes[1]
	if second.WrongLimit != 0 || second.QuestionCount != 0 || len(second.Categories) != 0 {
		t.Fatalf("expected zero defaults, got %+v", second)
	}
}

// TestNormalizeQuestionsKeepsCellText verifies prompt and answer cells are emitted as authored.
func TestNormalizeQuestionsKeepsCellText(t *testing.T) {
	questions, err := NormalizeQuestions([]record.Record{rec("q1", map[string]string{
		"category": "Art",
		"question": "  Who painted this? ",
		"answer_a": " Monet",
		"answer_b": "Manet ",
		"answer_c": "",
	})})
	if err != nil {
		t.Fatalf("normalize questions: %v", err)
	}
	q := questions[0]
	if q.Prompt != "  Who painted this? " {
		t.Fatalf("expected untrimmed prompt, got %q", q.Prompt)
	}
	if q.Answers != [AnswerCount]string{" Monet", "Manet ", ""} {
		t.Fatalf("expected untrimmed answers, got %q", q.Answers)
	}
}
