package lineedit

import (
	"testing"

	"src.lined.dev/pkg/linebuf"
	"src.lined.dev/pkg/testutil"
)

const (
	bowingWoman = "\U0001F647\u200D\u2640\uFE0F" // one cluster, 13 bytes
	eAcute      = "e\u0301"
	// Two regional indicators form one flag cluster when adjacent.
	flagU = "\U0001F1FA"
	flagS = "\U0001F1F8"
)

// Returns an Engine whose line has the given content and dot.
func engineWith(content string, dot int) *Engine {
	e := New()
	e.buf = *linebuf.New(content)
	e.buf.SetDot(dot)
	return e
}

type state struct {
	content string
	dot     int
}

func stateOf(e *Engine) state { return state{e.Content(), e.Dot()} }

var runTests = []struct {
	name   string
	before state
	cmds   []Command
	after  state
}{
	{"MoveToStart", state{"abc", 2}, []Command{MoveToStart{}}, state{"abc", 0}},
	{"MoveToEnd", state{"abc", 1}, []Command{MoveToEnd{}}, state{"abc", 3}},
	{"MoveLeft over cluster", state{"a" + bowingWoman, 14}, []Command{MoveLeft{}}, state{"a" + bowingWoman, 1}},
	{"MoveRight over cluster", state{"a" + bowingWoman, 1}, []Command{MoveRight{}}, state{"a" + bowingWoman, 14}},
	{"MoveLeft at start", state{"abc", 0}, []Command{MoveLeft{}}, state{"abc", 0}},
	{"MoveRight at end", state{"abc", 3}, []Command{MoveRight{}}, state{"abc", 3}},
	{"MoveWordLeft", state{"foo bar", 7}, []Command{MoveWordLeft{}}, state{"foo bar", 4}},
	{"MoveWordRight", state{"foo bar", 0}, []Command{MoveWordRight{}}, state{"foo bar", 4}},
	{"MoveWordLeft twice", state{"foo bar baz", 11},
		[]Command{MoveWordLeft{}, MoveWordLeft{}}, state{"foo bar baz", 4}},
	{"MoveWordLeft thrice", state{"foo bar baz", 11},
		[]Command{MoveWordLeft{}, MoveWordLeft{}, MoveWordLeft{}}, state{"foo bar baz", 0}},

	{"InsertChar does not advance", state{"ac", 1}, []Command{InsertChar{'b'}}, state{"abc", 1}},
	{"InsertChar then MoveRight", state{"", 0}, []Command{InsertChar{'a'}, MoveRight{}}, state{"a", 1}},
	{"InsertChar multibyte then MoveRight", state{"ab", 1},
		[]Command{InsertChar{'日'}, MoveRight{}}, state{"a日b", 4}},
	{"InsertChar combining mark joins previous cluster", state{"e", 1},
		[]Command{InsertChar{'\u0301'}}, state{eAcute, 0}},
	{"InsertChar combining mark then MoveRight", state{"e", 1},
		[]Command{InsertChar{'\u0301'}, MoveRight{}}, state{eAcute, 3}},

	{"Backspace at end", state{"abc", 3}, []Command{Backspace{}}, state{"ab", 2}},
	{"Backspace in middle", state{"abc", 2}, []Command{Backspace{}}, state{"ac", 1}},
	{"Backspace at start", state{"abc", 0}, []Command{Backspace{}}, state{"abc", 0}},
	{"Backspace on empty line", state{"", 0}, []Command{Backspace{}}, state{"", 0}},
	{"Backspace removes whole cluster at end", state{"a" + bowingWoman, 14},
		[]Command{Backspace{}}, state{"a", 1}},
	{"Backspace removes whole cluster in middle", state{"a" + eAcute + "b", 4},
		[]Command{Backspace{}}, state{"ab", 1}},
	{"Backspace fusing neighbours", state{flagU + "x" + flagS, 5},
		[]Command{Backspace{}}, state{flagU + flagS, 0}},
	{"Backspace multibyte rune", state{"日本", 6}, []Command{Backspace{}}, state{"日", 3}},

	{"Delete in middle", state{"abc", 1}, []Command{Delete{}}, state{"ac", 1}},
	{"Delete at start", state{"abc", 0}, []Command{Delete{}}, state{"bc", 0}},
	{"Delete at end", state{"abc", 3}, []Command{Delete{}}, state{"abc", 3}},
	{"Delete removes whole cluster", state{"a" + bowingWoman + "b", 1},
		[]Command{Delete{}}, state{"ab", 1}},
	{"Delete fusing neighbours", state{flagU + "x" + flagS, 4},
		[]Command{Delete{}}, state{flagU + flagS, 0}},

	{"Clear", state{"abc", 2}, []Command{Clear{}}, state{"", 0}},

	{"CutToEnd", state{"hello world", 5}, []Command{CutToEnd{}}, state{"hello", 5}},
	{"CutToEnd at end", state{"hello", 5}, []Command{CutToEnd{}}, state{"hello", 5}},
	{"CutToEnd then InsertCutBuffer", state{"hello world", 5},
		[]Command{CutToEnd{}, InsertCutBuffer{}}, state{"hello world", 11}},
	{"clear to start", state{"hello world", 6},
		[]Command{MoveToStart{}, CutToEnd{}}, state{"", 0}},
	{"yank at start", state{"hello world", 6},
		[]Command{CutToEnd{}, MoveToStart{}, InsertCutBuffer{}}, state{"worldhello ", 5}},
	{"InsertCutBuffer fusing with next cluster", state{flagS + "x" + flagU, 5},
		[]Command{CutToEnd{}, MoveLeft{}, Delete{}, MoveToStart{}, InsertCutBuffer{}},
		state{flagU + flagS, 8}},
	{"InsertCutBuffer with empty kill buffer", state{"abc", 1},
		[]Command{InsertCutBuffer{}}, state{"abc", 1}},

	{"empty batch", state{"abc", 1}, nil, state{"abc", 1}},
}

func TestRun(t *testing.T) {
	for _, test := range runTests {
		t.Run(test.name, func(t *testing.T) {
			e := engineWith(test.before.content, test.before.dot)
			e.Run(test.cmds...)
			if got := stateOf(e); got != test.after {
				t.Errorf("got %+v, want %+v", got, test.after)
			}
		})
	}
}

func TestRun_BackspaceAtStartIsNoOp(t *testing.T) {
	for _, content := range []string{"", "a", bowingWoman, "hello world"} {
		e := engineWith(content, 0)
		for i := 0; i < 3; i++ {
			e.Run(Backspace{})
		}
		if got := stateOf(e); got != (state{content, 0}) {
			t.Errorf("Backspace at start of %q changed state to %+v", content, got)
		}
	}
}

func TestRun_TypingAndEditing(t *testing.T) {
	e := New()
	for _, r := range "helo" {
		e.Run(InsertChar{r}, MoveRight{})
	}
	e.Run(MoveLeft{}, InsertChar{'l'}, MoveRight{}, MoveToEnd{})
	for _, r := range " wörld" {
		e.Run(InsertChar{r}, MoveRight{})
	}
	if got, want := stateOf(e), (state{"hello wörld", len("hello wörld")}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	e.Run(MoveWordLeft{}, Backspace{}, MoveToEnd{})
	if got := e.Content(); got != "hellowörld" {
		t.Errorf("content = %q, want %q", got, "hellowörld")
	}
}

func TestKillBuffer(t *testing.T) {
	e := engineWith("one two three", 8)
	e.Run(CutToEnd{})
	if e.KillBuffer() != "three" {
		t.Errorf("kill buffer = %q, want %q", e.KillBuffer(), "three")
	}

	// Cutting replaces instead of appending.
	e.Run(MoveToStart{}, MoveWordRight{}, CutToEnd{})
	if e.KillBuffer() != "two " {
		t.Errorf("kill buffer = %q, want %q", e.KillBuffer(), "two ")
	}

	// Cutting nothing keeps the kill buffer.
	e.Run(MoveToEnd{}, CutToEnd{})
	if e.KillBuffer() != "two " {
		t.Errorf("kill buffer = %q after empty cut, want %q", e.KillBuffer(), "two ")
	}

	// The kill buffer survives Clear and can be yanked many times.
	e.Run(Clear{}, InsertCutBuffer{}, InsertCutBuffer{})
	if got, want := stateOf(e), (state{"two two ", 8}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAccessors(t *testing.T) {
	e := engineWith("hello world", 6)
	if e.Len() != 11 || e.IsEmpty() || e.Suffix(e.Dot()) != "world" {
		t.Errorf("Len() = %d, IsEmpty() = %v, Suffix = %q",
			e.Len(), e.IsEmpty(), e.Suffix(e.Dot()))
	}
	if !New().IsEmpty() {
		t.Errorf("new engine is not empty")
	}
}

type bogusCommand struct{ Command }

func TestRun_UnknownCommandPanics(t *testing.T) {
	if testutil.Recover(func() { New().Run(bogusCommand{}) }) == nil {
		t.Errorf("Run did not panic on unknown command")
	}
}
