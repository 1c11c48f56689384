package platform

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to an interactive
// terminal. When it is not (pipes, CI, test harnesses), callers should
// skip any blocking keypress prompt.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WaitForKey blocks until a single key is pressed on stdin. The terminal
// is switched to raw mode for the read so no Enter is required, matching
// the classic "press any key to continue" behavior.
//
// Returns immediately when stdin is not an interactive terminal or raw
// mode cannot be entered.
func WaitForKey() {
	if !IsInteractive() {
		return
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Line mode fallback: consume up to one line.
		buf := make([]byte, 1)
		os.Stdin.Read(buf)
		return
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	os.Stdin.Read(buf)
}
