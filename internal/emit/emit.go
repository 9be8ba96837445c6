package emit

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"contentc/internal/content"
	"contentc/internal/index"
	"contentc/internal/resolve"
)

// Sentinel is the emitted value of an absent link.
const Sentinel = -1

// Options controls the generated file preamble.
type Options struct {
	BuildID  string
	Includes []string
}

// Source renders the generated C source for a resolved build.
func Source(tables resolve.Tables, categories index.CategoryQuestions, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := File(tables, categories, opts).Render(context.Background(), &buf); err != nil {
		return nil, fmt.Errorf("render source: %w", err)
	}
	return buf.Bytes(), nil
}

// File composes every section of the generated file in output order.
func File(tables resolve.Tables, categories index.CategoryQuestions, opts Options) templ.Component {
	return templ.Join(
		Preamble(opts),
		CategoryNames(tables.Categories),
		Questions(tables.Questions),
		Scenes(tables.Scenes),
		Quizzes(tables.Quizzes),
		CategoryIndex(categories),
	)
}

func section(write func(lw *lineWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lw := &lineWriter{w: w}
		write(lw)
		return lw.err
	})
}

// Preamble renders the generated-file banner and include lines.
func Preamble(opts Options) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// Code generated by contentc. DO NOT EDIT.")
		if opts.BuildID != "" {
			lw.linef("// build %s", opts.BuildID)
		}
		for _, include := range opts.Includes {
			lw.linef("#include %s", includeTarget(include))
		}
		lw.blank()
	})
}

// includeTarget keeps <system> and "quoted" names as written and quotes bare names.
func includeTarget(name string) string {
	if len(name) > 1 && name[0] == '<' && name[len(name)-1] == '>' {
		return name
	}
	if len(name) > 1 && name[0] == '"' && name[len(name)-1] == '"' {
		return name
	}
	return `"` + name + `"`
}

// CategoryNames renders the category name table.
func CategoryNames(names []string) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// ---- Categories ----")
		lw.linef("const char * const CATEGORY_NAMES[] = {")
		for _, name := range names {
			lw.linef(`  "%s",`, Escape(name))
		}
		lw.linef("};")
		lw.linef("const u16 CATEGORY_COUNT = %d;", len(names))
		lw.blank()
	})
}

// Questions renders the question table.
func Questions(questions []resolve.Question) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// ---- Questions ----")
		lw.linef("static const Question QUESTIONS_DATA[] = {")
		for _, q := range questions {
			lw.linef("  {")
			lw.linef("    .id = %d,", q.Index)
			lw.linef("    .category_id = %d,", q.Category)
			lw.linef(`    .question = "%s",`, Escape(q.Prompt))
			lw.linef(`    .answerA = "%s",`, Escape(q.Answers[0]))
			lw.linef(`    .answerB = "%s",`, Escape(q.Answers[1]))
			lw.linef(`    .answerC = "%s",`, Escape(q.Answers[2]))
			lw.linef("    .correct = %d,", q.Correct)
			lw.linef("  },")
		}
		lw.linef("};")
		lw.linef("const Question * const QUESTIONS = QUESTIONS_DATA;")
		lw.linef("const u16 QUESTIONS_COUNT = %d;", len(questions))
		lw.blank()
	})
}

// Scenes renders the scene table with links lowered to internal indices.
func Scenes(scenes []resolve.Scene) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// ---- Scenes ----")
		lw.linef("static const Scene SCENES_DATA[] = {")
		for _, s := range scenes {
			lw.linef("  {")
			lw.linef("    .id = %d,", s.Index)
			lw.linef("    .type = %s,", SceneTypeSymbol(s.Type))
			lw.linef(`    .text = "%s",`, Escape(s.Text))
			lw.linef("    .nextScene = %d,", Lower(s.Next))
			lw.linef("    .triggerQuiz = %d,", Lower(s.TriggerQuiz))
			lw.linef("    .questionId = %d,", Lower(s.Question))
			lw.linef("    .bg = %d, .music = %d,", s.Background, s.Music)
			lw.linef("  },")
		}
		lw.linef("};")
		lw.linef("const Scene * const SCENES = SCENES_DATA;")
		lw.linef("const u16 SCENES_COUNT = %d;", len(scenes))
		lw.blank()
	})
}

// Quizzes renders per-quiz category arrays followed by the quiz table.
func Quizzes(quizzes []resolve.Quiz) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// ---- Quizzes ----")
		for _, qz := range quizzes {
			if len(qz.Categories) == 0 {
				continue
			}
			lw.linef("static const u16 %s[] = { %s };", quizCategoriesSymbol(qz.Index), joinInts(qz.Categories))
		}
		lw.linef("static const Quiz QUIZZES_DATA[] = {")
		for _, qz := range quizzes {
			categories := "0"
			if len(qz.Categories) > 0 {
				categories = quizCategoriesSymbol(qz.Index)
			}
			lw.linef("  {")
			lw.linef("    .id = %d,", qz.Index)
			lw.linef(`    .name = "%s",`, Escape(qz.Name))
			lw.linef("    .wrongLimit = %d,", qz.WrongLimit)
			lw.linef("    .questionCount = %d,", qz.QuestionCount)
			lw.linef("    .categories = %s,", categories)
			lw.linef("    .categoryCount = %d,", len(qz.Categories))
			lw.linef("  },")
		}
		lw.linef("};")
		lw.linef("const Quiz * const QUIZZES = QUIZZES_DATA;")
		lw.linef("const u16 QUIZZES_COUNT = %d;", len(quizzes))
		lw.blank()
	})
}

// CategoryIndex renders per-category question lists, the pointer table and counts.
// Empty categories get a null pointer instead of an array.
func CategoryIndex(categories index.CategoryQuestions) templ.Component {
	return section(func(lw *lineWriter) {
		lw.linef("// ---- Category Question Indexes ----")
		symbols := make([]string, len(categories))
		for i, list := range categories {
			if len(list) == 0 {
				symbols[i] = "0"
				continue
			}
			symbols[i] = categoryQuestionsSymbol(i)
			lw.linef("static const u16 %s[] = { %s };", symbols[i], joinInts(list))
		}
		lw.linef("const u16 * const CATEGORY_QUESTION_INDEXES[] = {")
		for _, symbol := range symbols {
			lw.linef("  %s,", symbol)
		}
		lw.linef("};")
		lw.linef("const u16 CATEGORY_QUESTION_COUNTS[] = {")
		for _, count := range categories.Counts() {
			lw.linef("  %d,", count)
		}
		lw.linef("};")
	})
}

// Lower converts a link to its emitted integer, Sentinel when absent.
func Lower(ref resolve.Ref) int {
	if i, ok := ref.Index(); ok {
		return i
	}
	return Sentinel
}

// SceneTypeSymbol returns the runtime enum constant for a scene type.
func SceneTypeSymbol(t content.SceneType) string {
	switch t {
	case content.SceneQuizTrigger:
		return "SCENE_TYPE_QUIZ_TRIGGER"
	case content.SceneGoodEnding:
		return "SCENE_TYPE_GOOD_ENDING"
	case content.SceneBadEnding:
		return "SCENE_TYPE_BAD_ENDING"
	default:
		return "SCENE_TYPE_NORMAL"
	}
}

func quizCategoriesSymbol(i int) string {
	return fmt.Sprintf("_QUIZ_CATS_%d", i)
}

func categoryQuestionsSymbol(i int) string {
	return fmt.Sprintf("_CAT_QIDX_%d", i)
}
