package cli

import (
	"unicode"

	"src.lined.dev/pkg/cli/term"
	"src.lined.dev/pkg/lineedit"
)

// Action is what the App does after running the commands bound to a key.
type Action int

// Possible values of Action.
const (
	// NoAction only runs the commands.
	NoAction Action = iota
	// Submit ends ReadLine with the current line.
	Submit
	// EOFIfEmpty ends ReadLine with io.EOF if the line is empty; otherwise
	// the commands are run.
	EOFIfEmpty
	// Abort abandons the current line and starts over on a new row.
	Abort
	// ClearScreen clears the terminal before repainting.
	ClearScreen
	// Unbound means that no binding exists for the key.
	Unbound
)

type binding struct {
	cmds   []lineedit.Command
	action Action
}

func cmds(c ...lineedit.Command) binding { return binding{cmds: c} }

var defaultBindings = map[term.Key]binding{
	term.K(term.Left):             cmds(lineedit.MoveLeft{}),
	term.K('B', term.Ctrl):        cmds(lineedit.MoveLeft{}),
	term.K(term.Right):            cmds(lineedit.MoveRight{}),
	term.K('F', term.Ctrl):        cmds(lineedit.MoveRight{}),
	term.K('b', term.Alt):         cmds(lineedit.MoveWordLeft{}),
	term.K(term.Left, term.Ctrl):  cmds(lineedit.MoveWordLeft{}),
	term.K('f', term.Alt):         cmds(lineedit.MoveWordRight{}),
	term.K(term.Right, term.Ctrl): cmds(lineedit.MoveWordRight{}),
	term.K(term.Home):             cmds(lineedit.MoveToStart{}),
	term.K('A', term.Ctrl):        cmds(lineedit.MoveToStart{}),
	term.K(term.End):              cmds(lineedit.MoveToEnd{}),
	term.K('E', term.Ctrl):        cmds(lineedit.MoveToEnd{}),

	term.K(term.Backspace): cmds(lineedit.Backspace{}),
	term.K('H', term.Ctrl): cmds(lineedit.Backspace{}),
	term.K(term.Delete):    cmds(lineedit.Delete{}),
	term.K('D', term.Ctrl): {[]lineedit.Command{lineedit.Delete{}}, EOFIfEmpty},

	term.K(term.Up):        cmds(lineedit.PreviousHistory{}),
	term.K('P', term.Ctrl): cmds(lineedit.PreviousHistory{}),
	term.K(term.Down):      cmds(lineedit.NextHistory{}),
	term.K('N', term.Ctrl): cmds(lineedit.NextHistory{}),

	term.K('K', term.Ctrl): cmds(lineedit.CutToEnd{}),
	term.K('Y', term.Ctrl): cmds(lineedit.InsertCutBuffer{}),
	term.K('U', term.Ctrl): cmds(lineedit.MoveToStart{}, lineedit.CutToEnd{}),

	term.K(term.Tab):       cmds(lineedit.InsertChar{Rune: '\t'}, lineedit.MoveRight{}),
	term.K(term.Enter):     {action: Submit},
	term.K('M', term.Ctrl): {action: Submit},
	term.K('C', term.Ctrl): {action: Abort},
	term.K('L', term.Ctrl): {action: ClearScreen},
}

// DefaultBinding returns the commands bound to a key and the action that
// follows them. An unmodified printable rune inserts itself and moves past
// it. Keys with no binding return Unbound.
func DefaultBinding(k term.Key) ([]lineedit.Command, Action) {
	if b, ok := defaultBindings[k]; ok {
		return b.cmds, b.action
	}
	if k.Mod == 0 && isInsertable(k.Rune) {
		return []lineedit.Command{lineedit.InsertChar{Rune: k.Rune}, lineedit.MoveRight{}}, NoAction
	}
	return nil, Unbound
}

// Printable runes, and the joiner that glues emoji sequences together.
func isInsertable(r rune) bool {
	return r >= 0 && (unicode.IsPrint(r) || unicode.Is(unicode.Join_Control, r))
}
