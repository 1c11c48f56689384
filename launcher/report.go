package launcher

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 60

// Reporter turns a child Result into console output and the launcher's
// own exit code. On failure it holds the console open for a single
// acknowledgment so the message survives a double-click launch, where
// the window would otherwise close instantly.
type Reporter struct {
	Out io.Writer

	// Hold blocks until the user acknowledges the failure output.
	// A nil Hold disables the pause (non-interactive harnesses) without
	// changing the exit-code contract.
	Hold func()
}

// Report prints nothing and returns ExitOK for a successful child.
// For any failure it prints the literal exit code, waits for one
// acknowledgment, and returns the code for the launcher to exit with.
func (r *Reporter) Report(res Result) int {
	if res.Code == ExitOK && res.StartErr == nil {
		return ExitOK
	}

	fmt.Fprintln(r.Out, strings.Repeat("=", bannerWidth))
	if res.StartErr != nil {
		fmt.Fprintf(r.Out, "ERROR: the monitor could not be started: %v (exit code %d)\n", res.StartErr, res.Code)
	} else {
		fmt.Fprintf(r.Out, "ERROR: the monitor exited with code %d\n", res.Code)
	}
	fmt.Fprintln(r.Out, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(r.Out, "Press any key to continue...")

	if r.Hold != nil {
		r.Hold()
	}
	return res.Code
}
