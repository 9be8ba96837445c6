package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"contentc/internal/compiler"
	"contentc/internal/resolve"
)

// ExportFile writes the build's resolved tables into the DuckDB database at path.
func ExportFile(ctx context.Context, path string, build *compiler.Build) error {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	return Export(ctx, db, build)
}

// Export replaces the export tables with the build's contents in one transaction.
func Export(ctx context.Context, db *sql.DB, build *compiler.Build) (err error) {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if build == nil {
		return errors.New("duckdb: build is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err := EnsureSchema(ctx, tx); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	steps := []struct {
		name string
		run  func(context.Context, *sql.Tx, *compiler.Build) error
	}{
		{"builds", insertBuild},
		{"categories", insertCategories},
		{"questions", insertQuestions},
		{"scenes", insertScenes},
		{"quizzes", insertQuizzes},
		{"category_questions", insertCategoryQuestions},
	}
	for _, step := range steps {
		if err := step.run(ctx, tx, build); err != nil {
			return fmt.Errorf("export %s: %w", step.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertBuild(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO builds (build_id) VALUES (?)`, build.ID.String())
	return err
}

func insertCategories(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	for i, name := range build.Tables.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (category_id, name) VALUES (?, ?)`, i, name); err != nil {
			return err
		}
	}
	return nil
}

func insertQuestions(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	for _, q := range build.Tables.Questions {
		_, err := tx.ExecContext(ctx, `INSERT INTO questions
			(question_id, category_id, prompt, answer_a, answer_b, answer_c, correct)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			q.Index, q.Category, q.Prompt, q.Answers[0], q.Answers[1], q.Answers[2], q.Correct)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertScenes(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	for _, s := range build.Tables.Scenes {
		_, err := tx.ExecContext(ctx, `INSERT INTO scenes
			(scene_id, scene_type, text, next_scene, trigger_quiz, question_id, bg, music)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.Index, s.Type.String(), s.Text, nullRef(s.Next), nullRef(s.TriggerQuiz), nullRef(s.Question), s.Background, s.Music)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertQuizzes(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	for _, qz := range build.Tables.Quizzes {
		_, err := tx.ExecContext(ctx, `INSERT INTO quizzes (quiz_id, name, wrong_limit, question_count) VALUES (?, ?, ?, ?)`,
			qz.Index, qz.Name, qz.WrongLimit, qz.QuestionCount)
		if err != nil {
			return err
		}
		for pos, category := range qz.Categories {
			_, err := tx.ExecContext(ctx, `INSERT INTO quiz_categories (quiz_id, position, category_id) VALUES (?, ?, ?)`,
				qz.Index, pos, category)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func insertCategoryQuestions(ctx context.Context, tx *sql.Tx, build *compiler.Build) error {
	for category, list := range build.Categories {
		for pos, question := range list {
			_, err := tx.ExecContext(ctx, `INSERT INTO category_questions (category_id, position, question_id) VALUES (?, ?, ?)`,
				category, pos, question)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// nullRef stores absent links as NULL rather than the runtime's -1.
func nullRef(ref resolve.Ref) sql.NullInt64 {
	i, ok := ref.Index()
	return sql.NullInt64{Int64: int64(i), Valid: ok}
}
