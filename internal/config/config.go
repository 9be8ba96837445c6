package config

// Config controls how source files are read and what the generated file includes.
type Config struct {
	Version   int          `yaml:"version" env:"VERSION"`
	Scenes    BlockConfig  `yaml:"scenes" envPrefix:"SCENES_"`
	Quizzes   BlockConfig  `yaml:"quizzes" envPrefix:"QUIZZES_"`
	Questions TableConfig  `yaml:"questions" envPrefix:"QUESTIONS_"`
	Text      TextConfig   `yaml:"text" envPrefix:"TEXT_"`
	Output    OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`
}

// BlockConfig describes a block-format source.
type BlockConfig struct {
	Marker string `yaml:"marker" env:"MARKER"`
}

// TableConfig describes the tabular question source.
type TableConfig struct {
	Delimiter string `yaml:"delimiter" env:"DELIMITER"`
}

// TextConfig holds in-field separators.
type TextConfig struct {
	Newline       string `yaml:"newline" env:"NEWLINE"`
	ListSeparator string `yaml:"list_separator" env:"LIST_SEPARATOR"`
}

// OutputConfig controls the generated file preamble.
type OutputConfig struct {
	Includes []string `yaml:"includes" env:"INCLUDES"`
}

// Defaults used when a field is left empty.
const (
	CurrentVersion       = 1
	DefaultSceneMarker   = "SCENE"
	DefaultQuizMarker    = "QUIZ"
	DefaultDelimiter     = ","
	DefaultNewline       = "|"
	DefaultListSeparator = ","
	EnvPrefix            = "CONTENTC_"
)

// DefaultIncludes are the runtime headers the generated file depends on.
func DefaultIncludes() []string {
	return []string{"<genesis.h>", "data_types.h", "data_load.h"}
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	cfg := Config{Version: CurrentVersion}
	Normalize(&cfg)
	return cfg
}

// DelimiterRune returns the question table delimiter. Validate guarantees a single rune.
func (cfg Config) DelimiterRune() rune {
	for _, r := range cfg.Questions.Delimiter {
		return r
	}
	return ','
}
