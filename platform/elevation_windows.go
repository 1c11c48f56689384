//go:build windows

package platform

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process is running with
// administrator privileges. If the process token cannot be queried the
// answer is false, so callers fail toward requesting elevation rather
// than silently running unprivileged.
func IsElevated() bool {
	elevated, err := isElevated()
	if err != nil {
		return false
	}
	return elevated
}

// RelaunchElevated starts a new instance of the current executable with
// the "runas" verb, triggering the UAC prompt. It does not wait for the
// new instance: on success the caller is expected to exit, handing the
// console and all further work to the elevated copy.
//
// Returns ErrElevationDeclined if the user rejects the UAC prompt.
func RelaunchElevated() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}

	err = windows.ShellExecute(0,
		windows.StringToUTF16Ptr("runas"),
		windows.StringToUTF16Ptr(exePath),
		nil,
		nil,
		windows.SW_SHOWNORMAL,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_CANCELLED) {
			return ErrElevationDeclined
		}
		return err
	}
	return nil
}

// isElevated checks the TOKEN_ELEVATION flag of the process token.
func isElevated() (bool, error) {
	token := windows.Token(0)
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, err
	}
	defer token.Close()

	type tokenElevation struct {
		TokenIsElevated uint32
	}

	var elevation tokenElevation
	var outLen uint32
	if err := windows.GetTokenInformation(
		token,
		windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)),
		uint32(unsafe.Sizeof(elevation)),
		&outLen,
	); err != nil {
		return false, err
	}

	return elevation.TokenIsElevated != 0, nil
}
