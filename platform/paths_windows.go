//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// DesktopPath returns the path to the common (all users) Desktop folder.
// Example: C:\Users\Public\Desktop
func DesktopPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_PublicDesktop, 0)
}

// UserDesktopPath returns the path to the current user's Desktop folder.
// Example: C:\Users\<user>\Desktop
func UserDesktopPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_Desktop, 0)
}
