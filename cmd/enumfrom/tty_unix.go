//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// isatty reports whether diagnostics are written to a terminal, which can
// render ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}
