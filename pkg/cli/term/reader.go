// Package term decodes keys typed on a terminal and paints the line being
// edited.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"src.lined.dev/pkg/sys"
)

// Reader decodes keys from the bytes a terminal sends.
//
// A Reader made by NewReader expects the byte sequence a terminal sends for
// a single key, such as "\033[A" for Up, to arrive in one read; an Escape not
// followed by buffered bytes is taken as a lone Escape. A Reader made by
// NewFileReader instead waits a short time for the rest of a sequence.
type Reader struct {
	rd *bufio.Reader
	// Reports whether more input arrives within the timeout. May be nil.
	wait func(time.Duration) bool
}

// Time to wait for the next byte of a key sequence.
var keySeqTimeout = 10 * time.Millisecond

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{rd: bufio.NewReader(r)}
}

// NewFileReader returns a Reader that reads from f, which is typically a
// terminal.
func NewFileReader(f *os.File) *Reader {
	wait := func(timeout time.Duration) bool {
		ready, err := sys.WaitForRead(timeout, f)
		return ready && err == nil
	}
	return &Reader{rd: bufio.NewReader(f), wait: wait}
}

type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// IsReadErrorRecoverable returns whether the error returned by ReadKey only
// affects the key being read, so that more keys can be read afterwards.
func IsReadErrorRecoverable(err error) bool {
	var seqErr seqError
	return errors.As(err, &seqErr)
}

// Used by readPending to signal the end of the current sequence.
const runeEndOfSeq rune = -1

// ReadKey reads and decodes one key. It returns io.EOF when the input is
// exhausted.
func (rd *Reader) ReadKey() (k Key, err error) {
	r, size, err := rd.rd.ReadRune()
	if err != nil {
		return Key{}, err
	}
	currentSeq := string(r)
	if r == utf8.RuneError && size == 1 {
		return Key{}, seqError{"invalid UTF-8", currentSeq}
	}

	// Reads a rune that is already buffered or arrives within keySeqTimeout,
	// returning runeEndOfSeq if there is none.
	readPending := func() rune {
		if rd.rd.Buffered() == 0 && (rd.wait == nil || !rd.wait(keySeqTimeout)) {
			return runeEndOfSeq
		}
		r, _, err := rd.rd.ReadRune()
		if err != nil {
			return runeEndOfSeq
		}
		currentSeq += string(r)
		return r
	}
	badSeq := func(msg string) (Key, error) {
		return Key{}, seqError{msg, currentSeq}
	}

	if r != 0x1b {
		return ctrlModify(r), nil
	}

	r2 := readPending()
	// rxvt and derivatives prepend another ESC to a CSI-style or G3-style
	// sequence to signal Alt.
	hasTwoLeadingESC := false
	if r2 == 0x1b {
		hasTwoLeadingESC = true
		r2 = readPending()
	}
	switch r2 {
	case runeEndOfSeq:
		// Nothing follows. Taken as a lone Escape.
		return K('[', Ctrl), nil
	case '[':
		r = readPending()
		if r == runeEndOfSeq {
			return K('[', Alt), nil
		}
		var nums []int
		cur, hasCur := 0, false
		for ; r == ';' || ('0' <= r && r <= '9'); r = readPending() {
			if r == ';' {
				nums = append(nums, cur)
				cur, hasCur = 0, false
			} else {
				cur, hasCur = cur*10+int(r-'0'), true
			}
		}
		if hasCur || len(nums) > 0 {
			nums = append(nums, cur)
		}
		if r == runeEndOfSeq {
			return badSeq("incomplete CSI")
		}
		k, ok := parseCSI(nums, r)
		if !ok {
			return badSeq("bad CSI")
		}
		if hasTwoLeadingESC {
			k.Mod |= Alt
		}
		return k, nil
	case 'O':
		r = readPending()
		if r == runeEndOfSeq {
			// Alt-O, which looks like the start of a G3-style key.
			return K('O', Alt), nil
		}
		k, ok := g3Seq[r]
		if !ok {
			return badSeq("bad G3")
		}
		if hasTwoLeadingESC {
			k.Mod |= Alt
		}
		return k, nil
	default:
		// Something other than '[' or 'O' follows. Taken as an Alt-modified
		// key, possibly also modified by Ctrl.
		k := ctrlModify(r2)
		k.Mod |= Alt
		return k, nil
	}
}

// Determines whether a rune corresponds to a Ctrl-modified key and returns
// the Key the rune represents.
func ctrlModify(r rune) Key {
	switch r {
	case 0x0:
		return K('`', Ctrl) // ^@
	case 0x1e:
		return K('6', Ctrl) // ^^
	case 0x1f:
		return K('/', Ctrl) // ^_
	case Tab, Enter, Backspace: // ^I ^J ^?
		// Ambiguous Ctrl keys; prefer the non-Ctrl form as they are more likely.
		return K(r)
	default:
		if 0x1 <= r && r <= 0x1d {
			return K(r+0x40, Ctrl)
		}
	}
	return K(r)
}

func parseCSI(nums []int, last rune) (Key, bool) {
	if last == '~' {
		if len(nums) != 1 && len(nums) != 2 {
			return Key{}, false
		}
		r, ok := csiSeqTilde[nums[0]]
		if !ok {
			return Key{}, false
		}
		k := K(r)
		if len(nums) == 2 {
			return xtermModify(k, nums[1])
		}
		return k, true
	}
	k, ok := csiSeqByLast[last]
	if !ok {
		return Key{}, false
	}
	switch {
	case len(nums) == 0:
		return k, true
	case len(nums) == 2 && nums[0] == 1:
		return xtermModify(k, nums[1])
	}
	return Key{}, false
}

// Applies a modifier argument of an xterm-style key sequence, which is one
// plus a bitmask of Shift (1), Alt (2) and Ctrl (4).
func xtermModify(k Key, mod int) (Key, bool) {
	if mod == 0 || mod == 1 {
		return k, true
	}
	bits := mod - 1
	if bits >= 8 {
		return Key{}, false
	}
	if bits&1 != 0 {
		k.Mod |= Shift
	}
	if bits&2 != 0 {
		k.Mod |= Alt
	}
	if bits&4 != 0 {
		k.Mod |= Ctrl
	}
	return k, true
}

// G3-style key sequences: \eO followed by exactly one character.
var g3Seq = map[rune]Key{
	'A': K(Up), 'B': K(Down), 'C': K(Right), 'D': K(Left),
	'H': K(Home), 'F': K(End),
	// urxvt
	'a': K(Up, Ctrl), 'b': K(Down, Ctrl), 'c': K(Right, Ctrl), 'd': K(Left, Ctrl),
	'P': K(F1), 'Q': K(F2), 'R': K(F3), 'S': K(F4),
}

// CSI-style key sequences identified by the last rune. When modified, two
// numerical arguments are added, the first always being 1 and the second
// identifying the modifier. For instance, \e[1;5C is Ctrl-Right.
var csiSeqByLast = map[rune]Key{
	'A': K(Up), 'B': K(Down), 'C': K(Right), 'D': K(Left),
	'H': K(Home), 'F': K(End),
	'Z': K(Tab, Shift),
}

// CSI-style key sequences ending with '~', with one or two numerical
// arguments. The first argument identifies the key, and the optional second
// argument identifies the modifier. For instance, \e[3~ is Delete.
var csiSeqTilde = map[int]rune{
	1: Home, 7: Home,
	2: Insert,
	3: Delete,
	4: End, 8: End,
	5: PageUp, 6: PageDown,
	11: F1, 12: F2, 13: F3, 14: F4,
}
