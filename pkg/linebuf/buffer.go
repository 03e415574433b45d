// Package linebuf implements the text buffer of a single-line editor.
//
// A Buffer holds the content as a Go string and the position of the dot
// (more commonly known as the cursor) as a byte index into the content.
// Movements of the dot are aware of grapheme clusters, so that the dot never
// lands in the middle of a user-perceived character.
package linebuf

import (
	"fmt"
	"unicode/utf8"
)

// Buffer is a single line of text with a dot. The zero value is an empty
// buffer with the dot at 0.
type Buffer struct {
	content string
	dot     int
}

// New returns a Buffer with the given content and the dot at the end.
func New(content string) *Buffer {
	return &Buffer{content, len(content)}
}

// Content returns the content of the buffer.
func (b *Buffer) Content() string { return b.content }

// Dot returns the position of the dot, as a byte index into the content.
func (b *Buffer) Dot() int { return b.dot }

// Len returns the length of the content in bytes.
func (b *Buffer) Len() int { return len(b.content) }

// IsEmpty returns whether the content is empty.
func (b *Buffer) IsEmpty() bool { return b.content == "" }

// Suffix returns the content from the byte index from to the end. It is used
// to repaint only the part of the line after an edit. An out-of-range index
// is clamped.
func (b *Buffer) Suffix(from int) string {
	if from < 0 {
		from = 0
	} else if from > len(b.content) {
		from = len(b.content)
	}
	return b.content[from:]
}

// SetDot sets the dot. The position is not validated; callers are
// responsible for passing a grapheme cluster boundary.
func (b *Buffer) SetDot(pos int) { b.dot = pos }

// Set replaces the content. The dot is clamped to the new content but not
// otherwise moved.
func (b *Buffer) Set(content string) {
	b.content = content
	b.clampDot()
}

// InsertRune inserts r at the byte index pos. The dot is not moved.
func (b *Buffer) InsertRune(pos int, r rune) {
	b.InsertString(pos, string(r))
}

// InsertString inserts s at the byte index pos. The dot is not moved.
//
// It panics if pos is not a rune boundary within [0, Len()].
func (b *Buffer) InsertString(pos int, s string) {
	b.mustBeRuneBoundary("InsertString", pos, len(b.content))
	b.content = b.content[:pos] + s + b.content[pos:]
}

// RemoveRune removes the single rune starting at the byte index pos and
// returns it. The dot is clamped to the new content but not otherwise moved.
//
// It panics if pos is not a rune boundary within [0, Len()).
func (b *Buffer) RemoveRune(pos int) rune {
	b.mustBeRuneBoundary("RemoveRune", pos, len(b.content)-1)
	r, w := utf8.DecodeRuneInString(b.content[pos:])
	b.content = b.content[:pos] + b.content[pos+w:]
	b.clampDot()
	return r
}

// RemoveRange removes the text in the byte range [from, to). The dot is
// clamped to the new content but not otherwise moved.
func (b *Buffer) RemoveRange(from, to int) {
	b.mustBeRuneBoundary("RemoveRange", from, len(b.content))
	b.mustBeRuneBoundary("RemoveRange", to, len(b.content))
	if from >= to {
		return
	}
	b.content = b.content[:from] + b.content[to:]
	b.clampDot()
}

// PopRune removes the last rune of the content and returns it. It always
// moves the dot to the end of the remaining content. The second return
// value is false if the buffer was empty.
func (b *Buffer) PopRune() (rune, bool) {
	defer b.MoveToEnd()
	if b.content == "" {
		return 0, false
	}
	r, w := utf8.DecodeLastRuneInString(b.content)
	b.content = b.content[:len(b.content)-w]
	return r, true
}

// Truncate discards the content from the byte index pos to the end.
func (b *Buffer) Truncate(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(b.content) {
		return
	}
	b.content = b.content[:pos]
	b.clampDot()
}

// Clear empties the content. It does not touch the dot.
func (b *Buffer) Clear() { b.content = "" }

func (b *Buffer) clampDot() {
	if b.dot > len(b.content) {
		b.dot = len(b.content)
	}
}

// Panics unless pos is a rune boundary within [0, max].
func (b *Buffer) mustBeRuneBoundary(op string, pos, max int) {
	if pos < 0 || pos > max {
		panic(fmt.Sprintf("linebuf: %s: position %d out of range [0, %d]", op, pos, max))
	}
	if pos < len(b.content) && !utf8.RuneStart(b.content[pos]) {
		panic(fmt.Sprintf("linebuf: %s: position %d is inside a rune", op, pos))
	}
}
