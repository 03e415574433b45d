package term

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	eraseToEOL  = "\033[K"
	clearScreen = "\033[H\033[2J"
)

// Writer paints the line being edited on a terminal.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w}
}

// Repaint redraws the current terminal line as the prompt followed by the
// content, and places the cursor at the dot, a byte index into content.
//
// If width is positive, it is the number of columns of the terminal; a line
// that does not fit is scrolled horizontally to keep the dot visible.
//
// Tabs are shown as single spaces.
func (w *Writer) Repaint(prompt, content string, dot, width int) error {
	content = strings.ReplaceAll(content, "\t", " ")
	if width > 0 {
		// The last column is left for the cursor.
		content, dot = fitToWidth(content, dot, width-runewidth.StringWidth(prompt)-1)
	}
	var buf bytes.Buffer
	buf.WriteString(hideCursor)
	buf.WriteString("\r" + prompt + content + eraseToEOL)
	buf.WriteString("\r")
	if col := runewidth.StringWidth(prompt + content[:dot]); col > 0 {
		fmt.Fprintf(&buf, "\033[%dC", col)
	}
	buf.WriteString(showCursor)
	_, err := w.w.Write(buf.Bytes())
	return err
}

// Returns the part of content that fits in the given number of columns and
// contains the dot, and the dot within that part. Clusters are dropped from
// the start until the text before the dot fits; then the clusters after the
// dot are kept as long as they fit.
func fitToWidth(content string, dot, cols int) (string, int) {
	if runewidth.StringWidth(content) <= cols {
		return content, dot
	}
	if cols < 1 {
		cols = 1
	}
	start := 0
	for start < dot && runewidth.StringWidth(content[start:dot]) > cols {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(content[start:], -1)
		start += len(cluster)
	}
	end, used := dot, runewidth.StringWidth(content[start:dot])
	for end < len(content) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(content[end:], -1)
		w := runewidth.StringWidth(cluster)
		if used+w > cols {
			break
		}
		end += len(cluster)
		used += w
	}
	return content[start:end], dot - start
}

// Newline moves the cursor to the start of the next row.
func (w *Writer) Newline() error {
	_, err := io.WriteString(w.w, "\r\n")
	return err
}

// ClearScreen clears the terminal and moves the cursor to the top left corner.
func (w *Writer) ClearScreen() error {
	_, err := io.WriteString(w.w, clearScreen)
	return err
}
