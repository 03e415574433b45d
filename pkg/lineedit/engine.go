// Package lineedit implements the editing engine of a single-line editor.
//
// An Engine owns a line buffer, a kill buffer holding the most recently cut
// text, and a bounded history of submitted lines. It is driven by batches of
// Commands passed to Run; the caller reads back the content and the dot to
// repaint after each batch.
//
// Commands never fail: a command whose preconditions do not hold, such as
// Backspace at the start of the line, does nothing.
package lineedit

import (
	"fmt"

	"src.lined.dev/pkg/histutil"
	"src.lined.dev/pkg/linebuf"
	"src.lined.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[lineedit] ")

// HistoryCapacity is the default number of history entries kept.
const HistoryCapacity = 100

// Options configures an Engine.
type Options struct {
	// Maximum number of history entries. If not positive, HistoryCapacity is
	// used.
	HistoryLimit int
}

// Engine is the state of a line editor. It is not safe for concurrent use.
type Engine struct {
	buf  linebuf.Buffer
	kill string

	history *histutil.List
	// Index of the history entry being shown, or -1 when not browsing.
	historyCursor int
	hasHistory    bool
	// The line being edited when browsing started.
	live string
}

// New returns an Engine with an empty line and the default history capacity.
func New() *Engine {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an Engine with an empty line configured by opts.
func NewWithOptions(opts Options) *Engine {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = HistoryCapacity
	}
	return &Engine{
		history:       histutil.NewList(opts.HistoryLimit),
		historyCursor: -1,
	}
}

// Run applies the commands in order. Each command completes before the next
// one starts.
func (e *Engine) Run(cmds ...Command) {
	for _, cmd := range cmds {
		e.run(cmd)
	}
}

func (e *Engine) run(cmd Command) {
	b := &e.buf
	switch cmd := cmd.(type) {
	case MoveToStart:
		b.MoveToStart()
	case MoveToEnd:
		b.MoveToEnd()
	case MoveLeft:
		b.StepLeft()
	case MoveRight:
		b.StepRight()
	case MoveWordLeft:
		b.WordLeft()
	case MoveWordRight:
		b.WordRight()
	case InsertChar:
		b.InsertRune(b.Dot(), cmd.Rune)
		// A combining rune joins the cluster before the dot.
		b.AlignDot()
	case Backspace:
		e.backspace()
	case Delete:
		e.delete()
	case AppendToHistory:
		e.appendToHistory()
	case PreviousHistory:
		e.previousHistory()
	case NextHistory:
		e.nextHistory()
	case Clear:
		b.Clear()
		b.MoveToStart()
	case CutToEnd:
		e.cutToEnd()
	case InsertCutBuffer:
		dot := b.Dot()
		b.InsertString(dot, e.kill)
		b.SetDot(dot + len(e.kill))
		// The inserted text may fuse with the cluster after it.
		b.AlignDotRight()
	default:
		panic(fmt.Sprintf("lineedit: unknown command %T", cmd))
	}
}

func (e *Engine) backspace() {
	b := &e.buf
	if b.Dot() == 0 {
		return
	}
	from, to := b.ClusterBefore()
	b.RemoveRange(from, to)
	b.SetDot(from)
	// The clusters on either side may have fused into one.
	b.AlignDot()
}

func (e *Engine) delete() {
	b := &e.buf
	if b.Dot() >= b.Len() {
		return
	}
	b.RemoveRange(b.ClusterAfter())
	b.AlignDot()
}

func (e *Engine) cutToEnd() {
	b := &e.buf
	tail := b.Suffix(b.Dot())
	if tail == "" {
		return
	}
	e.kill = tail
	b.Truncate(b.Dot())
}

// Content returns the content of the line.
func (e *Engine) Content() string { return e.buf.Content() }

// Dot returns the position of the dot as a byte index into the content.
func (e *Engine) Dot() int { return e.buf.Dot() }

// Len returns the length of the line in bytes.
func (e *Engine) Len() int { return e.buf.Len() }

// IsEmpty returns whether the line is empty.
func (e *Engine) IsEmpty() bool { return e.buf.IsEmpty() }

// Suffix returns the content of the line from the byte index from.
func (e *Engine) Suffix(from int) string { return e.buf.Suffix(from) }

// KillBuffer returns the most recently cut text.
func (e *Engine) KillBuffer() string { return e.kill }
