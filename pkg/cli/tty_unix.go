//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package cli

import (
	"os"

	"src.lined.dev/pkg/sys/eunix"
)

func setupTerminal(in *os.File) (func() error, error) {
	return eunix.MakeRaw(int(in.Fd()))
}
