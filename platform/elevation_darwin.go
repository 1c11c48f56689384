//go:build darwin

package platform

import (
	"os"
	"os/exec"
)

// IsElevated reports whether the current process is running as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// RelaunchElevated starts a new instance of the current executable with
// root privileges, using osascript to show the native macOS
// authentication dialog. It does not wait for the new instance: on
// success the caller is expected to exit.
func RelaunchElevated() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}

	script := `do shell script "\"` + exePath + `\"" with administrator privileges`

	cmd := exec.Command("osascript", "-e", script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}
