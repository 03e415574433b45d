// Package histutil provides the in-memory command history used by the line
// editor.
package histutil

import "errors"

// ErrEndOfHistory is returned when an index does not refer to any entry.
var ErrEndOfHistory = errors.New("end of history")

// List is a bounded, most-recent-first sequence of history entries. When a
// new entry is added to a full List, the oldest entry is dropped.
type List struct {
	capacity int
	// Stored oldest-first so that adding is an append; indices seen by
	// callers count from the newest entry.
	entries []string
}

// NewList returns an empty List holding at most capacity entries. It panics
// if capacity is not positive.
func NewList(capacity int) *List {
	if capacity <= 0 {
		panic("histutil: capacity must be positive")
	}
	return &List{capacity: capacity, entries: make([]string, 0, capacity)}
}

// Cap returns the maximum number of entries.
func (l *List) Cap() int { return l.capacity }

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Add makes text the newest entry. It reports whether the oldest entry was
// dropped to make room.
func (l *List) Add(text string) (evicted bool) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = text
		return true
	}
	l.entries = append(l.entries, text)
	return false
}

// Get returns the entry at index i, where 0 is the newest entry.
func (l *List) Get(i int) (string, error) {
	if i < 0 || i >= len(l.entries) {
		return "", ErrEndOfHistory
	}
	return l.entries[len(l.entries)-1-i], nil
}

// All returns a copy of all entries, newest first.
func (l *List) All() []string {
	all := make([]string, len(l.entries))
	for i, text := range l.entries {
		all[len(all)-1-i] = text
	}
	return all
}
