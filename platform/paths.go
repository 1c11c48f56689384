package platform

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory containing the current executable,
// with symlinks resolved. The launcher anchors its working directory
// here so the monitor's relative paths (script, config, logs) resolve
// next to the binaries no matter how the process was started.
func ExecutableDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		// Fall back to the unresolved path; a dangling symlink is
		// better reported by the later chdir than masked here.
		resolved = exePath
	}
	return filepath.Dir(resolved), nil
}
