package compiler

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staged is an artifact held at a temp path in its destination directory until
// Commit renames it into place.
type Staged struct {
	path    string
	tmpPath string
}

// Path returns the final destination.
func (s *Staged) Path() string {
	return s.path
}

// TempPath returns where the staged content currently lives.
func (s *Staged) TempPath() string {
	return s.tmpPath
}

// Commit renames the staged file onto its destination.
func (s *Staged) Commit() error {
	if err := os.Rename(s.tmpPath, s.path); err != nil {
		s.Discard()
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}

// Discard removes the staged file and any sidecar files created next to it.
func (s *Staged) Discard() {
	_ = os.Remove(s.tmpPath)
	_ = os.Remove(s.tmpPath + ".wal")
}

// ReservePath stages an empty slot for writers that create the file themselves.
// Nothing exists at TempPath until the caller writes it.
func ReservePath(path string) (*Staged, error) {
	staged, err := createTemp(path)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(staged.tmpPath); err != nil {
		return nil, fmt.Errorf("reserve %s: %w", path, err)
	}
	return staged, nil
}

// StageArtifact writes data to a temp file next to path. Missing parent
// directories are created.
func StageArtifact(path string, data []byte) (*Staged, error) {
	staged, err := createTemp(path)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(staged.tmpPath, data, 0o644); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return staged, nil
}

// WriteArtifact writes data to path through a temp file in the same directory and
// renames it into place. Missing parent directories are created.
func WriteArtifact(path string, data []byte) error {
	staged, err := StageArtifact(path, data)
	if err != nil {
		return err
	}
	return staged.Commit()
}

func createTemp(path string) (*Staged, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	staged := &Staged{path: path, tmpPath: tmp.Name()}
	if err := tmp.Close(); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(staged.tmpPath, 0o644); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("chmod %s: %w", path, err)
	}
	return staged, nil
}
