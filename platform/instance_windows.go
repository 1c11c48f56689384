//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// AcquireSingleInstance takes a named mutex so only one launcher runs at
// a time, no matter which session double-clicked it. The name must be
// unique to the application (e.g., "CraftedTech.MonitorLaunch").
//
// On success it returns true plus a release function for when the run
// is over. It returns false when another instance already holds the
// mutex. Any other mutex error is ignored and counts as acquired: a
// broken lock should not keep the monitor from starting.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	// Session-global namespace, so a launcher started by another logged-in
	// user still counts as a duplicate.
	mutexName, _ := windows.UTF16PtrFromString("Global\\" + name)

	handle, err := windows.CreateMutex(nil, false, mutexName)
	if err == windows.ERROR_ALREADY_EXISTS {
		// CreateMutex still hands back a reference to the existing
		// mutex; drop it.
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return nil, false
	}

	return func() { windows.CloseHandle(handle) }, true
}
