package linebuf

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MoveToStart moves the dot to the start of the content.
func (b *Buffer) MoveToStart() { b.dot = 0 }

// MoveToEnd moves the dot to the end of the content.
func (b *Buffer) MoveToEnd() { b.dot = len(b.content) }

// StepRight moves the dot to the first grapheme cluster boundary after it, or
// to the end of the content if there is none.
func (b *Buffer) StepRight() {
	b.dot = nextBoundary(b.content, b.dot)
}

// StepLeft moves the dot to the start of the grapheme cluster before it, or
// to 0 if there is none.
func (b *Buffer) StepLeft() {
	b.dot = prevBoundary(b.content, b.dot)
}

// ClusterBefore returns the byte range of the grapheme cluster that ends at
// or contains the position immediately before the dot. It returns (dot, dot)
// if the dot is at the start.
func (b *Buffer) ClusterBefore() (from, to int) {
	return prevBoundary(b.content, b.dot), b.dot
}

// ClusterAfter returns the byte range of the grapheme cluster that starts at
// the dot. It returns (dot, dot) if the dot is at the end.
func (b *Buffer) ClusterAfter() (from, to int) {
	return b.dot, nextBoundary(b.content, b.dot)
}

// AlignDot moves the dot back to the start of the grapheme cluster that
// contains it. It does nothing if the dot is already on a boundary.
func (b *Buffer) AlignDot() {
	if b.dot <= 0 || b.dot >= len(b.content) {
		return
	}
	if start := prevBoundary(b.content, b.dot+1); start < b.dot {
		b.dot = start
	}
}

// AlignDotRight moves the dot forward to the end of the grapheme cluster that
// contains it. It does nothing if the dot is already on a boundary.
func (b *Buffer) AlignDotRight() {
	b.dot = alignRight(b.content, b.dot)
}

// WordLeft moves the dot one word to the left. Only spaces and tabs separate
// words.
//
// The dot lands right after the last separator that lies before the rune
// preceding the dot; a separator immediately left of the dot is skipped, so
// that repeated calls keep moving when the dot is already at the start of a
// word. Without such a separator the dot moves to 0.
func (b *Buffer) WordLeft() {
	if b.dot <= 1 {
		b.dot = 0
		return
	}
	i := strings.LastIndexAny(b.content[:b.dot-1], wordSeparators)
	if i < 0 {
		b.dot = 0
		return
	}
	b.dot = alignRight(b.content, i+1)
}

// WordRight moves the dot one word to the right: right after the first
// separator that lies strictly after the dot, or to the end of the content.
func (b *Buffer) WordRight() {
	if b.dot+1 >= len(b.content) {
		b.dot = len(b.content)
		return
	}
	i := strings.IndexAny(b.content[b.dot+1:], wordSeparators)
	if i < 0 {
		b.dot = len(b.content)
		return
	}
	b.dot = alignRight(b.content, b.dot+1+i+1)
}

const wordSeparators = " \t"

// Calls f with the byte range of each grapheme cluster of s, stopping when f
// returns false.
func eachCluster(s string, f func(from, to int) bool) {
	state := -1
	pos := 0
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !f(pos, pos+len(cluster)) {
			return
		}
		pos += len(cluster)
	}
}

func nextBoundary(s string, dot int) int {
	next := len(s)
	eachCluster(s, func(_, to int) bool {
		if to > dot {
			next = to
			return false
		}
		return true
	})
	return next
}

func prevBoundary(s string, dot int) int {
	prev := 0
	eachCluster(s, func(from, _ int) bool {
		if from >= dot {
			return false
		}
		prev = from
		return true
	})
	return prev
}

// Moves pos forward to the nearest grapheme cluster boundary at or after it.
func alignRight(s string, pos int) int {
	if pos <= 0 || pos >= len(s) {
		return pos
	}
	return nextBoundary(s, pos-1)
}
