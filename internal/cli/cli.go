package cli

import (
	"flag"
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usageLine = "contentc [flags] <scenes.txt> <questions.csv> <quizzes.txt> <out.c>"

const summary = "Compile scene, question and quiz sources into generated C data tables."

// positionalArgs is the number of file arguments the compiler takes.
const positionalArgs = 4

// options holds parsed command-line flags.
type options struct {
	configPath   string
	manifestPath string
	exportDB     string
	color        string
	verbose      bool
}

func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("contentc", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {}
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML build config")
	flags.StringVar(&opts.manifestPath, "manifest", "", "Write a YAML build manifest to this path")
	flags.StringVar(&opts.exportDB, "export-db", "", "Export resolved tables to a DuckDB database at this path")
	flags.StringVar(&opts.color, "color", "auto", "Verbose output styling (auto|always|never)")
	flags.BoolVar(&opts.verbose, "v", false, "Print a build summary to stderr")
	return flags
}

// Run parses arguments, compiles the content and returns a process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(stdout)
			return ExitOK
		}
		fmt.Fprintln(stderr)
		printUsage(stderr)
		return ExitUsage
	}
	if flags.NArg() != positionalArgs {
		fmt.Fprintf(stderr, "expected %d arguments, got %d\n\n", positionalArgs, flags.NArg())
		printUsage(stderr)
		return ExitUsage
	}
	color, err := resolveColorMode(opts.color, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n\n", err)
		printUsage(stderr)
		return ExitUsage
	}

	positional := flags.Args()
	return runCompile(compileParams{
		ScenesPath:    positional[0],
		QuestionsPath: positional[1],
		QuizzesPath:   positional[2],
		OutputPath:    positional[3],
		Options:       opts,
		Color:         color,
	}, stdout, stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine)
	fmt.Fprintf(w, "\n%s\n\nFlags:\n", summary)
	var opts options
	flags := newFlagSet(&opts, w)
	flags.PrintDefaults()
}
