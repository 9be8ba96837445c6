package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"contentc/internal/compiler"
	"contentc/internal/config"
	"contentc/internal/duckdb"
	"contentc/internal/manifest"
)

type compileParams struct {
	ScenesPath    string
	QuestionsPath string
	QuizzesPath   string
	OutputPath    string
	Options       options
	Color         colorDecision
}

var exportDB = duckdb.ExportFile

// runCompile builds everything in memory before the first file is written.
// The generated source is committed last, so any failure leaves no output file.
func runCompile(params compileParams, stdout, stderr io.Writer) int {
	logger := newVerboseLogger(params.Options.verbose, stderr, params.Color)

	cfg, configPath, err := loadConfig(params)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid config:\n%v\n", err)
		return ExitError
	}
	if configPath != "" {
		logger.logf(styleDefault, "config %s", configPath)
	}

	sources, err := compiler.ReadSources(params.ScenesPath, params.QuestionsPath, params.QuizzesPath)
	if err != nil {
		fmt.Fprintf(stderr, "Build failed: %v\n", err)
		return ExitError
	}
	build, err := compiler.Compile(cfg, sources)
	if err != nil {
		fmt.Fprintf(stderr, "Build failed: %v\n", err)
		return ExitError
	}

	var manifestData []byte
	if params.Options.manifestPath != "" {
		manifestData, err = manifest.Marshal(manifest.FromBuild(build, params.OutputPath))
		if err != nil {
			fmt.Fprintf(stderr, "Build failed: %v\n", err)
			return ExitError
		}
	}

	code := writeArtifacts(params, build, manifestData, stderr)
	if code != ExitOK {
		return code
	}

	logger.logBuildSummary(build)
	fmt.Fprintf(stdout, "Wrote %s\n", params.OutputPath)
	return ExitOK
}

// loadConfig uses -config when given, otherwise a contentc.yml found from the scene script up to the repository root.
func loadConfig(params compileParams) (config.Config, string, error) {
	if path := params.Options.configPath; path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	return config.Discover(filepath.Dir(params.ScenesPath))
}

// writeArtifacts stages every file next to its destination, then commits the
// manifest and database before the generated source.
func writeArtifacts(params compileParams, build *compiler.Build, manifestData []byte, stderr io.Writer) int {
	var staged []*compiler.Staged
	discard := func() {
		for _, s := range staged {
			s.Discard()
		}
	}

	if manifestData != nil {
		s, err := compiler.StageArtifact(params.Options.manifestPath, manifestData)
		if err != nil {
			discard()
			fmt.Fprintf(stderr, "Write failed: %v\n", err)
			return ExitError
		}
		staged = append(staged, s)
	}
	if params.Options.exportDB != "" {
		s, err := compiler.ReservePath(params.Options.exportDB)
		if err != nil {
			discard()
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		staged = append(staged, s)
		if err := exportDB(context.Background(), s.TempPath(), build); err != nil {
			discard()
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
	}
	output, err := compiler.StageArtifact(params.OutputPath, build.Output)
	if err != nil {
		discard()
		fmt.Fprintf(stderr, "Write failed: %v\n", err)
		return ExitError
	}
	staged = append(staged, output)

	for i, s := range staged {
		if err := s.Commit(); err != nil {
			for _, rest := range staged[i+1:] {
				rest.Discard()
			}
			fmt.Fprintf(stderr, "Write failed: %v\n", err)
			return ExitError
		}
	}
	return ExitOK
}
