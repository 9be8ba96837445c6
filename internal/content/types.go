package content

// SceneType classifies how the runtime presents a scene.
type SceneType int

const (
	SceneNormal SceneType = iota
	SceneQuizTrigger
	SceneGoodEnding
	SceneBadEnding
)

var sceneTypeNames = map[string]SceneType{
	"normal":       SceneNormal,
	"quiz_trigger": SceneQuizTrigger,
	"good_ending":  SceneGoodEnding,
	"bad_ending":   SceneBadEnding,
}

// String returns the source spelling of the scene type.
func (t SceneType) String() string {
	switch t {
	case SceneQuizTrigger:
		return "quiz_trigger"
	case SceneGoodEnding:
		return "good_ending"
	case SceneBadEnding:
		return "bad_ending"
	default:
		return "normal"
	}
}

// Scene is a normalized scene record. Link fields still hold external IDs.
type Scene struct {
	ID          string
	Line        int
	Type        SceneType
	Text        string
	Next        string
	TriggerQuiz string
	QuestionID  string
	Background  int
	Music       int
	Extra       map[string]string
}

// AnswerCount is the number of answer slots per question.
const AnswerCount = 3

// Question is a normalized question row.
type Question struct {
	ID       string
	Line     int
	Category string
	Prompt   string
	Answers  [AnswerCount]string
	Correct  int
	Extra    map[string]string
}

// Quiz is a normalized quiz record.
type Quiz struct {
	ID            string
	Line          int
	Name          string
	WrongLimit    int
	QuestionCount int
	Categories    []string
	Extra         map[string]string
}

// Set bundles the three normalized inputs of one build.
type Set struct {
	Scenes    []Scene
	Questions []Question
	Quizzes   []Quiz
}
