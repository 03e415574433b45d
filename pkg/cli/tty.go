package cli

import (
	"os"

	"src.lined.dev/pkg/cli/term"
	"src.lined.dev/pkg/sys"
)

// TTY is the type the terminal dependency of the editor needs to satisfy.
type TTY interface {
	// Setup sets up the terminal for the editor. It returns a function that
	// can be used to restore the original terminal config.
	Setup() (restore func() error, err error)
	// ReadKey reads a key from the terminal.
	ReadKey() (term.Key, error)
	// Repaint shows the prompt and the content, with the cursor at the dot.
	// Content wider than the terminal is scrolled to keep the dot visible.
	Repaint(prompt, content string, dot int) error
	// Newline moves to the start of the next row.
	Newline() error
	// ClearScreen clears the terminal.
	ClearScreen() error
}

type aTTY struct {
	in, out *os.File
	r       *term.Reader
	w       *term.Writer
}

// NewTTY returns a new TTY from input and output terminal files.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in, out, term.NewFileReader(in), term.NewWriter(out)}
}

func (t *aTTY) Setup() (func() error, error) {
	if !sys.IsATTY(t.in) {
		// Input from a pipe or file is read as it is.
		return func() error { return nil }, nil
	}
	return setupTerminal(t.in)
}

func (t *aTTY) ReadKey() (term.Key, error) { return t.r.ReadKey() }

func (t *aTTY) Repaint(prompt, content string, dot int) error {
	_, width := sys.WinSize(t.out)
	return t.w.Repaint(prompt, content, dot, width)
}

func (t *aTTY) Newline() error { return t.w.Newline() }

func (t *aTTY) ClearScreen() error { return t.w.ClearScreen() }
