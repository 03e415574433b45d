//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

// Package eunix provides terminal utilities for Unix systems.
package eunix

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Termios represents terminal attributes.
type Termios unix.Termios

// TermiosForFd returns the terminal attributes of the given file descriptor.
func TermiosForFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	return (*Termios)(term), err
}

// ApplyToFd applies the attributes to the given file descriptor.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetVTime sets the timeout in deciseconds for noncanonical read.
func (term *Termios) SetVTime(v uint8) { term.Cc[unix.VTIME] = v }

// SetVMin sets the minimal number of characters for noncanonical read.
func (term *Termios) SetVMin(v uint8) { term.Cc[unix.VMIN] = v }

// SetICanon sets the canonical flag.
func (term *Termios) SetICanon(v bool) { setFlag(&term.Lflag, unix.ICANON, v) }

// SetEcho sets the echo flag.
func (term *Termios) SetEcho(v bool) { setFlag(&term.Lflag, unix.ECHO, v) }

// SetISig sets the flag that turns Ctrl-C and Ctrl-Z into signals.
func (term *Termios) SetISig(v bool) { setFlag(&term.Lflag, unix.ISIG, v) }

// SetIExten sets the flag for implementation-defined input processing, which
// includes Ctrl-V.
func (term *Termios) SetIExten(v bool) { setFlag(&term.Lflag, unix.IEXTEN, v) }

// SetICRNL sets the CRNL iflag bit.
func (term *Termios) SetICRNL(v bool) { setFlag(&term.Iflag, unix.ICRNL, v) }

// ICanon reports whether the canonical flag is set.
func (term *Termios) ICanon() bool { return term.Lflag&unix.ICANON != 0 }

// Echo reports whether the echo flag is set.
func (term *Termios) Echo() bool { return term.Lflag&unix.ECHO != 0 }

func setFlag[T uint32 | uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &^= mask
	}
}

// MakeRaw puts the terminal referred to by fd into the mode used by the line
// editor: no line buffering, no echo, no signal keys, one byte per read, CR
// translated to NL. It returns a function that restores the previous mode.
func MakeRaw(fd int) (restore func() error, err error) {
	term, err := TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	saved := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetISig(false)
	term.SetIExten(false)
	term.SetVMin(1)
	term.SetVTime(0)
	// Enter arrives as '\n' regardless of what the terminal sends.
	term.SetICRNL(true)

	if err := term.ApplyToFd(fd); err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}
	return func() error { return saved.ApplyToFd(fd) }, nil
}
