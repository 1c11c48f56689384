package launcher

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// StepEnsureDir creates a Step that ensures a directory exists.
// Skips if the directory already exists.
func StepEnsureDir(path string) Step {
	return Step{
		Name: fmt.Sprintf("Create %s", filepath.Base(path)),
		Action: func() StepResult {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return Skipped("already exists")
			}
			if err := os.MkdirAll(path, 0755); err != nil {
				return Failed(fmt.Errorf("create directory: %w", err))
			}
			return Success("")
		},
	}
}

// StepWriteFile creates a Step that writes content to path.
// Skips if the file already has identical content, so reruns of the
// setup tool leave untouched files untouched.
func StepWriteFile(path string, content []byte) Step {
	return Step{
		Name: fmt.Sprintf("Write %s", filepath.Base(path)),
		Action: func() StepResult {
			if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
				return Skipped("up to date")
			}
			if err := os.WriteFile(path, content, 0644); err != nil {
				return Failed(fmt.Errorf("write file: %w", err))
			}
			return Success("")
		},
	}
}
