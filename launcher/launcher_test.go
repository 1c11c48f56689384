package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crafted-tech/monitorlaunch/platform"
)

// flowRecorder wires a Flow to fakes and records which stages ran.
type flowRecorder struct {
	out bytes.Buffer

	relaunches int
	chdirs     []string
	supervised [][]string
	holds      int
}

func (r *flowRecorder) flow(elevated bool, childResult Result) *Flow {
	f := &Flow{
		Name:    "Network Monitor Professional",
		Version: "2.0",
		Script:  "monitoramento.py",
		Out:     &r.out,
		IsElevated: func() bool {
			return elevated
		},
		RelaunchElevated: func() error {
			r.relaunches++
			return nil
		},
		WorkDir: func() (string, error) {
			return "/opt/monitor", nil
		},
		Chdir: func(dir string) error {
			r.chdirs = append(r.chdirs, dir)
			return nil
		},
		ProbeRuntime: func() (Runtime, error) {
			return Runtime{Exe: "python3", Version: "Python 3.11.4"}, nil
		},
		Supervise: func(name string, args ...string) Result {
			r.supervised = append(r.supervised, append([]string{name}, args...))
			return childResult
		},
	}
	f.Reporter = &Reporter{Out: &r.out, Hold: func() { r.holds++ }}
	return f
}

func TestRunNotElevatedRequestsRelaunchAndStops(t *testing.T) {
	// Scenario A: the original instance hands off and never runs the
	// monitor itself.
	r := &flowRecorder{}
	f := r.flow(false, Result{})

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 1, r.relaunches)
	assert.Empty(t, r.chdirs)
	assert.Empty(t, r.supervised)
	assert.Zero(t, r.holds)
}

func TestRunElevatedNeverRelaunches(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{})

	f.Run()

	assert.Zero(t, r.relaunches, "an already-elevated instance must not re-trigger elevation")
}

func TestRunElevationDeclinedIsQuietSuccess(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(false, Result{})
	f.RelaunchElevated = func() error {
		return platform.ErrElevationDeclined
	}

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, r.supervised)
	assert.Zero(t, r.holds)
}

func TestRunRelaunchErrorHasDistinctExitCode(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(false, Result{})
	f.RelaunchElevated = func() error {
		return errors.New("shell refused")
	}

	code := f.Run()

	assert.Equal(t, ExitElevationFailure, code, "a failed elevation request must be distinguishable from success/declined")
	assert.Contains(t, r.out.String(), "shell refused")
	assert.Equal(t, 1, r.holds)
	assert.Empty(t, r.supervised)
}

func TestRunInstanceGuardOnlyOnElevatedBranch(t *testing.T) {
	// The non-elevated parent must never take the lock: the elevated
	// copy it spawns would find the mutex held and bail out as a
	// duplicate.
	r := &flowRecorder{}
	f := r.flow(false, Result{})
	acquires := 0
	f.AcquireInstance = func() (func(), bool) {
		acquires++
		return func() {}, true
	}

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 1, r.relaunches)
	assert.Zero(t, acquires, "instance lock consulted before the elevation handoff")
}

func TestRunInstanceGuardElevated(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: 0})
	releases := 0
	f.AcquireInstance = func() (func(), bool) {
		return func() { releases++ }, true
	}

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	require.Len(t, r.supervised, 1)
	assert.Equal(t, 1, releases, "lock released when the run finishes")
}

func TestRunInstanceGuardDuplicateStopsQuietly(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{})
	f.AcquireInstance = func() (func(), bool) {
		return nil, false
	}

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, r.out.String(), "already running")
	assert.Empty(t, r.supervised)
	assert.Zero(t, r.holds)
}

func TestRunChildSuccess(t *testing.T) {
	// Scenario B: clean run, no pause, silent success.
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: 0})

	code := f.Run()

	require.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"/opt/monitor"}, r.chdirs, "directory normalized exactly once")
	require.Len(t, r.supervised, 1)
	assert.Equal(t, []string{"python3", "monitoramento.py"}, r.supervised[0])
	assert.Zero(t, r.holds)
	assert.NotContains(t, r.out.String(), "ERROR")
}

func TestRunChildFailurePausesAndPropagatesCode(t *testing.T) {
	// Scenario C: the child's code is shown verbatim and propagated.
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: 1})

	code := f.Run()

	assert.Equal(t, 1, code)
	assert.Contains(t, r.out.String(), "exited with code 1")
	assert.Contains(t, r.out.String(), "Press any key")
	assert.Equal(t, 1, r.holds)
}

func TestRunChdirFailureIsFatalBeforeLaunch(t *testing.T) {
	// Scenario D: the monitor must never start in the wrong directory.
	r := &flowRecorder{}
	f := r.flow(true, Result{})
	f.Chdir = func(dir string) error {
		return fmt.Errorf("chdir %s: permission denied", dir)
	}

	code := f.Run()

	assert.Equal(t, ExitDirFailure, code)
	assert.Empty(t, r.supervised)
	assert.Contains(t, r.out.String(), "permission denied")
}

func TestRunWorkDirFailureIsFatalBeforeLaunch(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{})
	f.WorkDir = func() (string, error) {
		return "", errors.New("executable path unavailable")
	}

	code := f.Run()

	assert.Equal(t, ExitDirFailure, code)
	assert.Empty(t, r.chdirs)
	assert.Empty(t, r.supervised)
}

func TestRunChildLaunchFailureIsDistinct(t *testing.T) {
	// Scenario E: "never started" is worded differently from "ran and
	// failed" but still reaches the pause-and-report path.
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: ExitLaunchFailure, StartErr: errors.New(`exec: "python3": executable file not found`)})

	code := f.Run()

	assert.Equal(t, ExitLaunchFailure, code)
	assert.Contains(t, r.out.String(), "could not be started")
	assert.Equal(t, 1, r.holds)
}

func TestRunRuntimeProbeFailureIsDiagnosticOnly(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: 0})
	f.ProbeRuntime = func() (Runtime, error) {
		return Runtime{}, errors.New("no python interpreter found in PATH")
	}

	code := f.Run()

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, r.out.String(), "Python runtime: not detected")
	require.Len(t, r.supervised, 1, "launch still attempted so the real error surfaces")
	assert.Equal(t, DefaultPythonCommand(), r.supervised[0][0])
}

func TestRunBannerContents(t *testing.T) {
	r := &flowRecorder{}
	f := r.flow(true, Result{Code: 0})

	f.Run()

	out := r.out.String()
	assert.Contains(t, out, "Administrator privileges confirmed.")
	assert.Contains(t, out, "Network Monitor Professional v2.0")
	assert.Contains(t, out, "Python runtime: Python 3.11.4")
}
