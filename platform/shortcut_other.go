//go:build !windows

package platform

import "fmt"

// Shortcut describes a Windows shortcut (.lnk file).
// On non-Windows platforms shortcuts are not supported.
type Shortcut struct {
	Target      string
	Arguments   string
	WorkingDir  string
	Description string
	IconPath    string
	IconIndex   int
}

// CreateShortcut is not supported on non-Windows platforms.
func CreateShortcut(lnkPath string, s Shortcut) error {
	return fmt.Errorf("shortcuts not supported on this platform")
}

// DeleteShortcut is not supported on non-Windows platforms.
func DeleteShortcut(lnkPath string) error {
	return fmt.Errorf("shortcuts not supported on this platform")
}

// CreateUserDesktopShortcut is not supported on non-Windows platforms.
func CreateUserDesktopShortcut(name string, s Shortcut) error {
	return fmt.Errorf("shortcuts not supported on this platform")
}

// DeleteUserDesktopShortcut is not supported on non-Windows platforms.
func DeleteUserDesktopShortcut(name string) error {
	return fmt.Errorf("shortcuts not supported on this platform")
}
