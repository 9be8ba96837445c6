package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"contentc/internal/record"
)

// ErrInvalidNumber indicates a numeric field holds a non-integer value.
var ErrInvalidNumber = errors.New("invalid number")

// ErrMissingCategory indicates a question row has no category.
var ErrMissingCategory = errors.New("missing category")

// FieldError ties a normalization failure to a record field.
type FieldError struct {
	Line  int
	ID    string
	Field string
	Err   error
}

// Error returns a readable message naming the record and field.
func (err *FieldError) Error() string {
	return fmt.Sprintf("line %d: %q.%s: %v", err.Line, err.ID, err.Field, err.Err)
}

// Unwrap exposes the underlying sentinel.
func (err *FieldError) Unwrap() error {
	return err.Err
}

var sceneFields = []string{"type", "text", "next", "trigger_quiz", "question_id", "bg", "music"}

var questionFields = []string{"id", "category", "question", "answer_a", "answer_b", "answer_c", "correct"}

var quizFields = []string{"name", "wrong_limit", "questions", "categories"}

// QuestionColumns lists the header names a question table must carry.
func QuestionColumns() []string {
	return append([]string(nil), questionFields...)
}

// NormalizeScenes converts scene records into typed scenes.
func NormalizeScenes(records []record.Record, opts Options) ([]Scene, error) {
	opts = opts.withDefaults()
	scenes := make([]Scene, 0, len(records))
	for _, rec := range records {
		bg, err := intField(rec, "bg")
		if err != nil {
			return nil, err
		}
		music, err := intField(rec, "music")
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, Scene{
			ID:          rec.ID,
			Line:        rec.Line,
			Type:        ParseSceneType(rec.Value("type")),
			Text:        displayText(ExpandNewlines(rec.Value("text"), opts.NewlineMarker)),
			Next:        strings.TrimSpace(rec.Value("next")),
			TriggerQuiz: strings.TrimSpace(rec.Value("trigger_quiz")),
			QuestionID:  strings.TrimSpace(rec.Value("question_id")),
			Background:  bg,
			Music:       music,
			Extra:       extraFields(rec, sceneFields),
		})
	}
	return scenes, nil
}

// NormalizeQuestions converts question rows into typed questions.
func NormalizeQuestions(records []record.Record) ([]Question, error) {
	questions := make([]Question, 0, len(records))
	for _, rec := range records {
		category := strings.TrimSpace(rec.Value("category"))
		if category == "" {
			return nil, &FieldError{Line: rec.Line, ID: rec.ID, Field: "category", Err: ErrMissingCategory}
		}
		questions = append(questions, Question{
			ID:       rec.ID,
			Line:     rec.Line,
			Category: category,
			Prompt:   displayText(rec.Value("question")),
			Answers: [AnswerCount]string{
				displayText(rec.Value("answer_a")),
				displayText(rec.Value("answer_b")),
				displayText(rec.Value("answer_c")),
			},
			Correct: CorrectIndex(rec.Value("correct")),
			Extra:   extraFields(rec, questionFields),
		})
	}
	return questions, nil
}

// NormalizeQuizzes converts quiz records into typed quizzes.
func NormalizeQuizzes(records []record.Record, opts Options) ([]Quiz, error) {
	opts = opts.withDefaults()
	quizzes := make([]Quiz, 0, len(records))
	for _, rec := range records {
		wrongLimit, err := intField(rec, "wrong_limit")
		if err != nil {
			return nil, err
		}
		count, err := intField(rec, "questions")
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, Quiz{
			ID:            rec.ID,
			Line:          rec.Line,
			Name:          displayText(rec.Value("name")),
			WrongLimit:    wrongLimit,
			QuestionCount: count,
			Categories:    SplitList(rec.Value("categories"), opts.ListSeparator),
			Extra:         extraFields(rec, quizFields),
		})
	}
	return quizzes, nil
}

// intField reads an optional integer field; absent or blank values are 0.
func intField(rec record.Record, key string) (int, error) {
	raw := strings.TrimSpace(rec.Value(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Line: rec.Line, ID: rec.ID, Field: key, Err: fmt.Errorf("%w %q", ErrInvalidNumber, raw)}
	}
	return n, nil
}

func extraFields(rec record.Record, known []string) map[string]string {
	var extra map[string]string
	for key, value := range rec.Fields {
		if contains(known, key) {
			continue
		}
		if extra == nil {
			extra = map[string]string{}
		}
		extra[key] = value
	}
	return extra
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
