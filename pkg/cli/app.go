// Package cli implements an interactive single-line editor on top of the
// lineedit engine.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"src.lined.dev/pkg/cli/term"
	"src.lined.dev/pkg/lineedit"
	"src.lined.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[cli] ")

// App represents a CLI app.
type App interface {
	// ReadLine reads one line from the terminal by running an event loop.
	// It returns io.EOF when the user asks to end input on an empty line or
	// the input is exhausted. This function is not re-entrant.
	ReadLine() (string, error)
	// Engine returns the editing engine, which keeps the history across
	// calls to ReadLine.
	Engine() *lineedit.Engine
}

// AppSpec specifies the configuration and initial state for an App.
type AppSpec struct {
	TTY    TTY
	Prompt string
	Engine *lineedit.Engine
}

type app struct {
	tty    TTY
	prompt string
	engine *lineedit.Engine
}

// NewApp creates a new App from the given specification.
func NewApp(spec AppSpec) App {
	a := &app{spec.TTY, spec.Prompt, spec.Engine}
	if a.tty == nil {
		a.tty = NewTTY(os.Stdin, os.Stderr)
	}
	if a.engine == nil {
		a.engine = lineedit.New()
	}
	return a
}

func (a *app) Engine() *lineedit.Engine { return a.engine }

func (a *app) ReadLine() (line string, err error) {
	restore, err := a.tty.Setup()
	if err != nil {
		return "", err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil {
			err = errors.Join(err, fmt.Errorf("can't restore terminal: %w", restoreErr))
		}
	}()

	e := a.engine
	for {
		if err := a.tty.Repaint(a.prompt, e.Content(), e.Dot()); err != nil {
			return "", err
		}
		k, err := a.tty.ReadKey()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				logger.Println("ignoring key:", err)
				continue
			}
			if err == io.EOF && !e.IsEmpty() {
				// The last line of the input lacks a newline.
				return a.submit()
			}
			return "", err
		}

		cmds, action := DefaultBinding(k)
		switch action {
		case Unbound:
			logger.Println("unbound key:", k)
			continue
		case EOFIfEmpty:
			if e.IsEmpty() {
				if err := a.tty.Newline(); err != nil {
					return "", err
				}
				return "", io.EOF
			}
		}
		e.Run(cmds...)

		switch action {
		case Submit:
			return a.submit()
		case Abort:
			e.Run(lineedit.Clear{})
			if err := a.tty.Newline(); err != nil {
				return "", err
			}
		case ClearScreen:
			if err := a.tty.ClearScreen(); err != nil {
				return "", err
			}
		}
	}
}

// Shows the line in full, records it in the history and clears it.
func (a *app) submit() (string, error) {
	e := a.engine
	line := e.Content()
	if err := a.tty.Repaint(a.prompt, line, len(line)); err != nil {
		return "", err
	}
	e.Run(lineedit.AppendToHistory{}, lineedit.Clear{})
	return line, a.tty.Newline()
}
