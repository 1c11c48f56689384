package launcher

// Launcher exit codes. The monitor's own exit code is propagated
// verbatim, so the reserved values live outside the range the monitor
// uses in practice.
const (
	// ExitOK covers success, a declined elevation prompt, and the
	// handoff to the elevated copy.
	ExitOK = 0

	// ExitDirFailure is returned when the working directory cannot be
	// switched to the launcher's location. The monitor is never started
	// in that case because its relative paths would resolve elsewhere.
	ExitDirFailure = 101

	// ExitElevationFailure is returned when the elevation request
	// itself could not be made (ShellExecute error, no sudo/pkexec).
	// Distinct from a declined prompt, which exits ExitOK.
	ExitElevationFailure = 102

	// ExitLaunchFailure is returned when the monitor could not be
	// started at all, mirroring the shell convention for a missing
	// command. Distinct from the monitor starting and then failing.
	ExitLaunchFailure = 127
)
