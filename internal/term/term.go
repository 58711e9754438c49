// Package term detects whether the process is attached to a genuine
// interactive terminal. Raw-mode acquisition and guaranteed restore are owned
// by the TUI runtime; this package only answers "may we enter raw mode at
// all", which has to work inside containers and pseudo-tty environments where
// a naive file-type check lies.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// Interactive reports whether stdin supports an interactive raw-mode session.
//
// The probes run in order, first success wins:
//  1. a POSIX termios ioctl, independent of any higher-level abstraction;
//  2. a TTY device-type check (covers Cygwin/msys pipes on Windows);
//  3. actually entering raw mode and immediately restoring, treating success
//     as proof of capability.
func Interactive() bool {
	return interactiveFd(int(os.Stdin.Fd()))
}

func interactiveFd(fd int) bool {
	if termiosProbe(fd) {
		return true
	}
	if isatty.IsTerminal(uintptr(fd)) || isatty.IsCygwinTerminal(uintptr(fd)) {
		return true
	}
	return rawProbe(fd)
}

func rawProbe(fd int) bool {
	st, err := xterm.MakeRaw(fd)
	if err != nil {
		return false
	}
	_ = xterm.Restore(fd, st)
	return true
}
