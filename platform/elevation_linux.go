//go:build linux

package platform

import (
	"errors"
	"os"
	"os/exec"
)

// IsElevated reports whether the current process is running as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// RelaunchElevated starts a new instance of the current executable with
// root privileges. Under a graphical session it uses pkexec, which shows
// the desktop authentication dialog and is not waited on. Otherwise it
// falls back to sudo, which owns the terminal for its password prompt
// and therefore runs to completion before this returns. Either way the
// caller's next move is to exit: the elevated copy owns all further work.
//
// Returns ErrElevationDeclined if the user dismissed the pkexec dialog
// or failed sudo authentication.
func RelaunchElevated() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}

	if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		if pkexec, lookErr := exec.LookPath("pkexec"); lookErr == nil {
			cmd := exec.Command(pkexec, exePath)
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Start(); err != nil {
				return err
			}
			return nil
		}
	}

	sudo, err := exec.LookPath("sudo")
	if err != nil {
		return errors.New("neither pkexec nor sudo is available")
	}

	// sudo prompts on the inherited terminal, so it runs to completion:
	// if this process exited first, the shell would reclaim the
	// terminal's foreground process group and sudo's password read
	// would stop on SIGTTIN. The elevated copy does all the work before
	// Run returns; spawn-and-exit applies to the graphical prompts only.
	cmd := exec.Command(sudo, exePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		// sudo exits 1 when authentication fails or is abandoned.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return ErrElevationDeclined
		}
		return err
	}
	return nil
}
