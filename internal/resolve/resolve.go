package resolve

import "contentc/internal/content"

// Question is a question with its category resolved.
type Question struct {
	Index    int
	Category int
	Prompt   string
	Answers  [content.AnswerCount]string
	Correct  int
}

// Scene is a scene with its links resolved.
type Scene struct {
	Index       int
	Type        content.SceneType
	Text        string
	Next        Ref
	TriggerQuiz Ref
	Question    Ref
	Background  int
	Music       int
}

// Quiz is a quiz with its category list resolved.
type Quiz struct {
	Index         int
	Name          string
	WrongLimit    int
	QuestionCount int
	Categories    []int
}

// Dangling records a non-empty reference that matched nothing.
type Dangling struct {
	Scene string
	Field string
	Ref   string
}

// Tables holds every resolved entity of one build in internal-index order.
type Tables struct {
	Categories []string
	Questions  []Question
	Scenes     []Scene
	Quizzes    []Quiz
	Dangling   []Dangling
}

// Resolve interns categories, builds the ID spaces and resolves every link.
func Resolve(set content.Set) Tables {
	questionCategories := make([]string, len(set.Questions))
	questionIDs := make([]string, len(set.Questions))
	for i, q := range set.Questions {
		questionCategories[i] = q.Category
		questionIDs[i] = q.ID
	}
	var quizCategories []string
	quizIDs := make([]string, len(set.Quizzes))
	for i, quiz := range set.Quizzes {
		quizCategories = append(quizCategories, quiz.Categories...)
		quizIDs[i] = quiz.ID
	}
	sceneIDs := make([]string, len(set.Scenes))
	for i, scene := range set.Scenes {
		sceneIDs[i] = scene.ID
	}

	categories := InternCategories(questionCategories, quizCategories)
	questionMap := NewIDMap(questionIDs)
	sceneMap := NewIDMap(sceneIDs)
	quizMap := NewIDMap(quizIDs)

	tables := Tables{
		Categories: categories.Names(),
		Questions:  make([]Question, len(set.Questions)),
		Scenes:     make([]Scene, len(set.Scenes)),
		Quizzes:    make([]Quiz, len(set.Quizzes)),
	}
	for i, q := range set.Questions {
		// Every question category was interned above.
		category, _ := categories.Lookup(q.Category)
		tables.Questions[i] = Question{
			Index:    i,
			Category: category,
			Prompt:   q.Prompt,
			Answers:  q.Answers,
			Correct:  q.Correct,
		}
	}
	for i, scene := range set.Scenes {
		link := func(field, ref string, ids IDMap) Ref {
			resolved := ids.Resolve(ref)
			if ref != "" && !resolved.Valid() {
				tables.Dangling = append(tables.Dangling, Dangling{Scene: scene.ID, Field: field, Ref: ref})
			}
			return resolved
		}
		tables.Scenes[i] = Scene{
			Index:       i,
			Type:        scene.Type,
			Text:        scene.Text,
			Next:        link("next", scene.Next, sceneMap),
			TriggerQuiz: link("trigger_quiz", scene.TriggerQuiz, quizMap),
			Question:    link("question_id", scene.QuestionID, questionMap),
			Background:  scene.Background,
			Music:       scene.Music,
		}
	}
	for i, quiz := range set.Quizzes {
		indices := make([]int, 0, len(quiz.Categories))
		for _, name := range quiz.Categories {
			// Quiz categories are part of the interned union, so lookup cannot miss.
			category, _ := categories.Lookup(name)
			indices = append(indices, category)
		}
		tables.Quizzes[i] = Quiz{
			Index:         i,
			Name:          quiz.Name,
			WrongLimit:    quiz.WrongLimit,
			QuestionCount: quiz.QuestionCount,
			Categories:    indices,
		}
	}
	return tables
}
