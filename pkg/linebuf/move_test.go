package linebuf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.lined.dev/pkg/tt"
)

const (
	// Each of these is a single grapheme cluster.
	bowingWoman = "\U0001F647\u200D\u2640\uFE0F" // 13 bytes
	eAcute      = "e\u0301"
	flagJP      = "\U0001F1EF\U0001F1F5"
	rofl        = "\U0001F923"
)

func TestNextBoundary(t *testing.T) {
	tt.Test(t, tt.Fn("nextBoundary", nextBoundary), tt.Table{
		tt.Args("", 0).Rets(0),
		tt.Args("ab", 0).Rets(1),
		tt.Args("ab", 1).Rets(2),
		tt.Args("ab", 2).Rets(2),
		tt.Args("a"+bowingWoman+"b", 1).Rets(14),
		tt.Args("a"+bowingWoman+"b", 14).Rets(15),
		tt.Args(eAcute+"x", 0).Rets(3),
		// A dot inside a cluster moves to the end of that cluster.
		tt.Args(eAcute+"x", 1).Rets(3),
		tt.Args(flagJP, 0).Rets(8),
	})
}

func TestPrevBoundary(t *testing.T) {
	tt.Test(t, tt.Fn("prevBoundary", prevBoundary), tt.Table{
		tt.Args("", 0).Rets(0),
		tt.Args("ab", 2).Rets(1),
		tt.Args("ab", 1).Rets(0),
		tt.Args("ab", 0).Rets(0),
		tt.Args("a"+bowingWoman+"b", 15).Rets(14),
		tt.Args("a"+bowingWoman+"b", 14).Rets(1),
		tt.Args("a"+bowingWoman, 14).Rets(1),
		tt.Args(eAcute+"x", 3).Rets(0),
		tt.Args(eAcute+"x", 2).Rets(0),
	})
}

func TestAlignRight(t *testing.T) {
	tt.Test(t, tt.Fn("alignRight", alignRight), tt.Table{
		tt.Args("ab", 1).Rets(1),
		tt.Args(eAcute+"x", 1).Rets(3),
		tt.Args(eAcute+"x", 3).Rets(3),
		tt.Args("ab", 2).Rets(2),
	})
}

func TestStepRight_VisitsClusterBoundaries(t *testing.T) {
	content := "a" + bowingWoman + rofl + eAcute + flagJP + "z"
	want := []int{1, 14, 18, 21, 29, 30}

	b := &Buffer{content: content}
	var got []int
	for i := 0; i < len(want); i++ {
		b.StepRight()
		got = append(got, b.Dot())
	}
	assertDots(t, "StepRight", got, want)

	b.StepRight()
	if b.Dot() != len(content) {
		t.Errorf("StepRight at end moved dot to %d", b.Dot())
	}
}

func TestStepLeft_ReversesStepRight(t *testing.T) {
	content := "a" + bowingWoman + rofl + eAcute + flagJP + "z"
	want := []int{29, 21, 18, 14, 1, 0}

	b := New(content)
	var got []int
	for i := 0; i < len(want); i++ {
		b.StepLeft()
		got = append(got, b.Dot())
	}
	assertDots(t, "StepLeft", got, want)

	b.StepLeft()
	if b.Dot() != 0 {
		t.Errorf("StepLeft at start moved dot to %d", b.Dot())
	}
}

func TestStepLeftRight_EmptyBuffer(t *testing.T) {
	b := &Buffer{}
	b.StepLeft()
	b.StepRight()
	if b.Dot() != 0 {
		t.Errorf("dot = %d, want 0", b.Dot())
	}
}

func TestWordLeft(t *testing.T) {
	b := New("foo bar baz")
	var got []int
	for i := 0; i < 4; i++ {
		b.WordLeft()
		got = append(got, b.Dot())
	}
	assertDots(t, "WordLeft", got, []int{8, 4, 0, 0})
}

func TestWordRight(t *testing.T) {
	b := &Buffer{content: "foo bar baz"}
	var got []int
	for i := 0; i < 4; i++ {
		b.WordRight()
		got = append(got, b.Dot())
	}
	assertDots(t, "WordRight", got, []int{4, 8, 11, 11})
}

var wordMoveTests = []struct {
	name    string
	content string
	dot     int
	move    func(*Buffer)
	wantDot int
}{
	{"left over tab", "ls\t-l", 5, (*Buffer).WordLeft, 3},
	{"left from word start", "foo bar", 4, (*Buffer).WordLeft, 0},
	{"left from after trailing space", "foo ", 4, (*Buffer).WordLeft, 0},
	{"left ignores punctuation", "a.b,c", 5, (*Buffer).WordLeft, 0},
	{"left with multibyte words", "日本 語", 7, (*Buffer).WordLeft, 0},
	{"left with multibyte words from end", "日本 語", 10, (*Buffer).WordLeft, 7},
	{"right from separator", "foo bar baz", 3, (*Buffer).WordRight, 8},
	{"right over tab", "ls\t-l", 0, (*Buffer).WordRight, 3},
	{"right ignores punctuation", "a.b,c", 0, (*Buffer).WordRight, 5},
	{"right on empty buffer", "", 0, (*Buffer).WordRight, 0},
	{"left on empty buffer", "", 0, (*Buffer).WordLeft, 0},
	{"right aligns to cluster", "a \u0301b", 0, (*Buffer).WordRight, 4},
}

func TestWordMoves(t *testing.T) {
	for _, test := range wordMoveTests {
		t.Run(test.name, func(t *testing.T) {
			b := &Buffer{test.content, test.dot}
			test.move(b)
			if b.Dot() != test.wantDot {
				t.Errorf("dot = %d, want %d", b.Dot(), test.wantDot)
			}
		})
	}
}

func TestClusterBeforeAfter(t *testing.T) {
	b := &Buffer{"a" + eAcute + "b", 1}
	if from, to := b.ClusterAfter(); from != 1 || to != 4 {
		t.Errorf("ClusterAfter() -> (%d, %d), want (1, 4)", from, to)
	}
	b.SetDot(4)
	if from, to := b.ClusterBefore(); from != 1 || to != 4 {
		t.Errorf("ClusterBefore() -> (%d, %d), want (1, 4)", from, to)
	}
	b.SetDot(0)
	if from, to := b.ClusterBefore(); from != 0 || to != 0 {
		t.Errorf("ClusterBefore() at start -> (%d, %d), want (0, 0)", from, to)
	}
}

func TestAlignDot(t *testing.T) {
	b := &Buffer{"a" + eAcute, 2}
	b.AlignDot()
	if b.Dot() != 1 {
		t.Errorf("dot = %d, want 1", b.Dot())
	}
	b.AlignDot()
	if b.Dot() != 1 {
		t.Errorf("dot moved from a boundary to %d", b.Dot())
	}
}

func TestAlignDotRight(t *testing.T) {
	b := &Buffer{"a" + eAcute + "b", 2}
	b.AlignDotRight()
	if b.Dot() != 4 {
		t.Errorf("dot = %d, want 4", b.Dot())
	}
	b.AlignDotRight()
	if b.Dot() != 4 {
		t.Errorf("dot moved from a boundary to %d", b.Dot())
	}
}

func assertDots(t *testing.T, what string, got, want []int) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s visited wrong positions (-want +got):\n%s", what, diff)
	}
}
