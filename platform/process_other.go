//go:build !windows

package platform

// FindProcessesByName is only implemented on Windows, where the setup
// tool warns about a monitor that is still running. Elsewhere it returns
// no matches.
func FindProcessesByName(exeName string) []uint32 {
	return nil
}

// IsProcessRunning checks if any process with the given executable name
// is running. Always false outside Windows.
func IsProcessRunning(exeName string) bool {
	return false
}
