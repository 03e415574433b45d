//go:build !(linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd)

package cli

import (
	"errors"
	"fmt"
	"os"
)

func setupTerminal(in *os.File) (func() error, error) {
	return nil, fmt.Errorf("can't set up terminal %s: %w", in.Name(), errors.ErrUnsupported)
}
