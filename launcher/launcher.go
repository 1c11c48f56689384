package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crafted-tech/monitorlaunch/platform"
)

// Flow runs the elevated launch sequence for the monitor. The zero
// value is not usable; construct it with New and override individual
// stages as needed (tests inject fakes here).
type Flow struct {
	// Name and Version appear in the console banner and window title.
	Name    string
	Version string

	// Script is the monitor script launched in the normalized working
	// directory, e.g. "monitoramento.py".
	Script string

	Out io.Writer

	IsElevated       func() bool
	RelaunchElevated func() error
	WorkDir          func() (string, error)
	Chdir            func(dir string) error
	ProbeRuntime     func() (Runtime, error)
	Supervise        func(name string, args ...string) Result
	Reporter         *Reporter

	// AcquireInstance guards against a second monitor. It is consulted
	// only on the elevated branch: the non-elevated parent must never
	// hold the lock, or it would race the elevated copy it just
	// spawned and make it bail out as a "duplicate". Nil disables the
	// guard.
	AcquireInstance func() (release func(), ok bool)
}

// New returns a Flow wired to the real platform: token/uid privilege
// probe, UAC (or pkexec/osascript) relaunch, executable-directory
// normalization, and a console-inheriting child process.
func New(name, version, script string) *Flow {
	return &Flow{
		Name:             name,
		Version:          version,
		Script:           script,
		Out:              os.Stdout,
		IsElevated:       platform.IsElevated,
		RelaunchElevated: platform.RelaunchElevated,
		WorkDir:          platform.ExecutableDir,
		Chdir:            os.Chdir,
		ProbeRuntime:     DetectPython,
		Supervise:        RunAndWait,
		Reporter:         &Reporter{Out: os.Stdout, Hold: platform.WaitForKey},
	}
}

// Run executes the launch sequence and returns the process exit code.
//
// The elevation branch is terminal: when the process is not elevated,
// exactly one elevated relaunch is requested and Run returns ExitOK
// without ever touching the working directory or the monitor. The
// elevated copy starts from the top and takes the other branch. A
// declined prompt is an accepted outcome, not an error — the relaunch
// simply never happens and nothing further runs. Only a relaunch
// request that could not even be made exits nonzero
// (ExitElevationFailure).
func (f *Flow) Run() int {
	if !f.IsElevated() {
		err := f.RelaunchElevated()
		if err != nil && !errors.Is(err, platform.ErrElevationDeclined) {
			fmt.Fprintf(f.Out, "Could not request administrator privileges: %v\n", err)
			if f.Reporter.Hold != nil {
				f.Reporter.Hold()
			}
			return ExitElevationFailure
		}
		return ExitOK
	}

	if f.AcquireInstance != nil {
		release, ok := f.AcquireInstance()
		if !ok {
			fmt.Fprintln(f.Out, "The monitor launcher is already running.")
			return ExitOK
		}
		defer release()
	}

	platform.SetConsoleTitle(f.Name)
	fmt.Fprintln(f.Out, "Administrator privileges confirmed.")
	fmt.Fprintln(f.Out, strings.Repeat("=", bannerWidth))
	fmt.Fprintf(f.Out, "%s v%s\n", f.Name, f.Version)
	fmt.Fprintln(f.Out, strings.Repeat("=", bannerWidth))

	// The UAC relaunch starts the elevated copy in a system directory,
	// so anchor relative paths to the executable before anything else.
	dir, err := f.WorkDir()
	if err == nil {
		err = f.Chdir(dir)
	}
	if err != nil {
		fmt.Fprintf(f.Out, "Cannot switch to the launcher directory: %v\n", err)
		return ExitDirFailure
	}

	rt, rtErr := f.ProbeRuntime()
	switch {
	case rtErr != nil:
		fmt.Fprintln(f.Out, "Python runtime: not detected")
	case rt.Version == "":
		fmt.Fprintf(f.Out, "Python runtime: %s (version unknown)\n", rt.Exe)
	default:
		fmt.Fprintf(f.Out, "Python runtime: %s\n", rt.Version)
	}

	exe := rt.Exe
	if exe == "" {
		// Let the supervisor produce the real launch error.
		exe = DefaultPythonCommand()
	}

	return f.Reporter.Report(f.Supervise(exe, f.Script))
}
