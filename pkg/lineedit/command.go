package lineedit

// Command is an edit command understood by Engine.Run. The set of commands
// is closed: only the types in this file implement it.
type Command interface{ isCommand() }

// MoveToStart moves the dot to the start of the line.
type MoveToStart struct{}

// MoveToEnd moves the dot to the end of the line.
type MoveToEnd struct{}

// MoveLeft moves the dot left by one grapheme cluster.
type MoveLeft struct{}

// MoveRight moves the dot right by one grapheme cluster.
type MoveRight struct{}

// MoveWordLeft moves the dot left by one word.
type MoveWordLeft struct{}

// MoveWordRight moves the dot right by one word.
type MoveWordRight struct{}

// InsertChar inserts a rune at the dot without advancing the dot. Follow it
// with MoveRight to advance.
type InsertChar struct{ Rune rune }

// Backspace deletes the grapheme cluster before the dot.
type Backspace struct{}

// Delete deletes the grapheme cluster after the dot.
type Delete struct{}

// AppendToHistory records the current line in the history.
type AppendToHistory struct{}

// PreviousHistory replaces the line with the next older history entry.
type PreviousHistory struct{}

// NextHistory replaces the line with the next newer history entry, or with
// the line being edited before browsing started.
type NextHistory struct{}

// Clear empties the line.
type Clear struct{}

// CutToEnd moves the text from the dot to the end of the line into the kill
// buffer.
type CutToEnd struct{}

// InsertCutBuffer inserts the content of the kill buffer at the dot and
// moves the dot after it.
type InsertCutBuffer struct{}

func (MoveToStart) isCommand()     {}
func (MoveToEnd) isCommand()       {}
func (MoveLeft) isCommand()        {}
func (MoveRight) isCommand()       {}
func (MoveWordLeft) isCommand()    {}
func (MoveWordRight) isCommand()   {}
func (InsertChar) isCommand()      {}
func (Backspace) isCommand()       {}
func (Delete) isCommand()          {}
func (AppendToHistory) isCommand() {}
func (PreviousHistory) isCommand() {}
func (NextHistory) isCommand()     {}
func (Clear) isCommand()           {}
func (CutToEnd) isCommand()        {}
func (InsertCutBuffer) isCommand() {}
