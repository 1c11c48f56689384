// Package platform provides the OS-specific primitives the launcher and
// setup tool are built on.
//
// # Features
//
//   - Elevation: detect administrator privileges and relaunch the current
//     executable elevated (UAC on Windows, pkexec/sudo on Linux, osascript
//     on macOS)
//   - Console: interactive-terminal detection, single-keypress wait,
//     console window title
//   - Paths: executable directory, common shell folders (Windows)
//   - Process: find running processes by executable name (Windows)
//   - Single Instance: prevent a second launcher from starting (Windows)
//   - Shortcuts: create and delete desktop shortcuts (.lnk files, Windows)
//
// # Example Usage
//
//	if !platform.IsElevated() {
//	    err := platform.RelaunchElevated()
//	    if errors.Is(err, platform.ErrElevationDeclined) {
//	        // User rejected the prompt; nothing further to do.
//	        os.Exit(0)
//	    }
//	    if err == nil {
//	        // Elevated copy is starting; this process is done.
//	        os.Exit(0)
//	    }
//	}
package platform
