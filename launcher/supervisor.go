package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// Result describes how the monitored child process finished.
type Result struct {
	// Code is the child's exit code, or ExitLaunchFailure when the
	// child never started.
	Code int

	// StartErr is non-nil when the child could not be started at all
	// (missing interpreter, missing script). It distinguishes "never
	// ran" from "ran and failed" in the reported message.
	StartErr error
}

// RunAndWait starts the target program as a foreground child of the
// current console, so its output streams directly to the user, and
// blocks until it terminates. There is no timeout: the monitor runs
// until the user closes it.
func RunAndWait(name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{Code: ExitOK}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Code: exitErr.ExitCode()}
	}

	// Run failed before the child existed.
	return Result{Code: ExitLaunchFailure, StartErr: err}
}
