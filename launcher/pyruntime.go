package launcher

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// Runtime identifies the Python interpreter that will execute the
// monitor script.
type Runtime struct {
	// Exe is the resolved interpreter command.
	Exe string

	// Version is the interpreter's self-reported version, e.g.
	// "Python 3.11.4". Empty when the version probe failed; that is
	// diagnostic only and never blocks the launch.
	Version string
}

// DetectPython locates a Python interpreter on PATH and probes its
// version. On Windows the py launcher is preferred over a bare python,
// matching how the monitor is documented to be run.
func DetectPython() (Runtime, error) {
	for _, candidate := range pythonCandidates() {
		path, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}
		version, _ := pythonVersion(path)
		return Runtime{Exe: path, Version: version}, nil
	}
	return Runtime{}, errors.New("no python interpreter found in PATH")
}

// DefaultPythonCommand is the interpreter command used when detection
// failed. Starting the child with it surfaces the real launch error to
// the reporter instead of aborting early.
func DefaultPythonCommand() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

func pythonCandidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python"}
	}
	return []string{"python3", "python"}
}

// pythonVersion runs "exe --version" and returns the reported string.
// Python 2 printed the version on stderr, Python 3 prints it on stdout;
// accept either.
func pythonVersion(exe string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(exe, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return parseVersionOutput(stdout.String(), stderr.String())
}

func parseVersionOutput(stdout, stderr string) (string, error) {
	out := strings.TrimSpace(stdout)
	if out == "" {
		out = strings.TrimSpace(stderr)
	}
	if out == "" {
		return "", errors.New("interpreter reported no version")
	}
	// First line only; some distributions append build notes.
	if idx := strings.IndexAny(out, "\r\n"); idx >= 0 {
		out = out[:idx]
	}
	return out, nil
}
