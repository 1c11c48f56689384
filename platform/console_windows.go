//go:build windows

package platform

import "golang.org/x/sys/windows"

// SetConsoleTitle sets the title of the console window hosting the
// current process. Best effort: failures are ignored because the process
// may not own a console at all.
func SetConsoleTitle(title string) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	windows.SetConsoleTitle(p)
}
