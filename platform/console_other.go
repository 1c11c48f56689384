//go:build !windows

package platform

// SetConsoleTitle is a no-op outside Windows. Terminal emulators manage
// their own titles and the launcher has no business overriding them.
func SetConsoleTitle(title string) {}
