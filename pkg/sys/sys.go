// Package sys provides system utilities for the terminal front end, with the
// same API across OSes.
//
// The subpackage eunix provides Unix-specific utilities.
package sys

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns (-1, -1) if the size cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// WaitForRead blocks until the given file is ready to be read or the timeout
// expires, and returns whether it is ready. A negative timeout means no
// timeout. A file at end of input counts as ready.
func WaitForRead(timeout time.Duration, file *os.File) (bool, error) {
	return waitForRead(timeout, file)
}
