package rope

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEmptyRope(t *testing.T) {
	r := New()

	if !r.IsEmpty() {
		t.Error("new rope should be empty")
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
	if r.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	text := "Hello, World!"
	r := FromString(text)

	if r.String() != text {
		t.Errorf("expected %q, got %q", text, r.String())
	}
	if r.Len() != len(text) {
		t.Errorf("expected length %d, got %d", len(text), r.Len())
	}
}

func TestRuneLengthMultibyte(t *testing.T) {
	text := "héllo, wörld — 日本語"
	r := FromString(text)

	want := utf8.RuneCountInString(text)
	if r.Len() != want {
		t.Errorf("expected %d runes, got %d", want, r.Len())
	}
	if r.ByteLen() != len(text) {
		t.Errorf("expected %d bytes, got %d", len(text), r.ByteLen())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		offset int
		text   string
		want   string
	}{
		{"into empty", "", 0, "abc", "abc"},
		{"at start", "world", 0, "hello ", "hello world"},
		{"at end", "hello", 5, " world", "hello world"},
		{"in middle", "held", 2, "llo wor", "hello world"},
		{"multibyte at middle", "aé", 1, "ü", "aüé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.base).Insert(tt.offset, tt.text)
			if r.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, r.String())
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"from start", "hello world", 0, 6, "world"},
		{"from end", "hello world", 5, 11, "hello"},
		{"from middle", "hello cruel world", 5, 11, "hello world"},
		{"everything", "hello", 0, 5, ""},
		{"multibyte", "aüé", 1, 2, "aé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.base).Delete(tt.start, tt.end)
			if r.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, r.String())
			}
		})
	}
}

func TestReplace(t *testing.T) {
	r := FromString("hello world").Replace(6, 11, "rope")
	if r.String() != "hello rope" {
		t.Errorf("expected %q, got %q", "hello rope", r.String())
	}
}

func TestImmutability(t *testing.T) {
	r := FromString("original")
	_ = r.Insert(0, "x")
	_ = r.Delete(0, 3)

	if r.String() != "original" {
		t.Errorf("rope was mutated: %q", r.String())
	}
}

func TestSlice(t *testing.T) {
	r := FromString("héllo wörld")

	if got := r.Slice(0, 5); got != "héllo" {
		t.Errorf("expected %q, got %q", "héllo", got)
	}
	if got := r.Slice(6, 11); got != "wörld" {
		t.Errorf("expected %q, got %q", "wörld", got)
	}
	if got := r.Slice(3, 3); got != "" {
		t.Errorf("expected empty slice, got %q", got)
	}
}

func TestRuneAt(t *testing.T) {
	r := FromString("aüé")

	for i, want := range []rune{'a', 'ü', 'é'} {
		got, ok := r.RuneAt(i)
		if !ok || got != want {
			t.Errorf("RuneAt(%d): expected %q, got %q (ok=%v)", i, want, got, ok)
		}
	}
	if _, ok := r.RuneAt(3); ok {
		t.Error("RuneAt past end should report not ok")
	}
}

func TestLineOffsets(t *testing.T) {
	r := FromString("one\ntwo\nthree")

	if r.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", r.LineCount())
	}

	starts := []int{0, 4, 8}
	ends := []int{3, 7, 13}
	for i := range starts {
		if got := r.LineStartOffset(i); got != starts[i] {
			t.Errorf("LineStartOffset(%d): expected %d, got %d", i, starts[i], got)
		}
		if got := r.LineEndOffset(i); got != ends[i] {
			t.Errorf("LineEndOffset(%d): expected %d, got %d", i, ends[i], got)
		}
	}

	if got := r.LineText(1); got != "two" {
		t.Errorf("expected %q, got %q", "two", got)
	}
	if got := r.LineLen(2); got != 5 {
		t.Errorf("expected line length 5, got %d", got)
	}
}

func TestTrailingNewline(t *testing.T) {
	r := FromString("one\n")

	if r.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", r.LineCount())
	}
	if got := r.LineText(1); got != "" {
		t.Errorf("expected empty last line, got %q", got)
	}
	if got := r.LineStartOffset(1); got != 4 {
		t.Errorf("expected line 1 to start at 4, got %d", got)
	}
}

func TestOffsetToPoint(t *testing.T) {
	r := FromString("one\ntwö\nthree")

	tests := []struct {
		offset int
		want   Point
	}{
		{0, Point{0, 0}},
		{3, Point{0, 3}},
		{4, Point{1, 0}},
		{7, Point{1, 3}},
		{8, Point{2, 0}},
		{13, Point{2, 5}},
	}

	for _, tt := range tests {
		if got := r.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d): expected %v, got %v", tt.offset, tt.want, got)
		}
	}
}

func TestPointOffsetRoundTrip(t *testing.T) {
	r := FromString("fn main() {\n    println!(\"héllo\");\n}\n")

	for o := 0; o <= r.Len(); o++ {
		p := r.OffsetToPoint(o)
		if back := r.PointToOffset(p); back != o {
			t.Errorf("offset %d -> %v -> %d", o, p, back)
		}
	}
}

func TestLargeTextRebalance(t *testing.T) {
	// Enough single-rune inserts to force leaf splits and rebalances.
	r := New()
	var want strings.Builder
	for i := 0; i < 5000; i++ {
		ch := string(rune('a' + i%26))
		if i%80 == 79 {
			ch = "\n"
		}
		r = r.Insert(r.Len(), ch)
		want.WriteString(ch)
	}

	if r.String() != want.String() {
		t.Fatal("content mismatch after many inserts")
	}
	if r.LineCount() != strings.Count(want.String(), "\n")+1 {
		t.Errorf("line count mismatch: got %d", r.LineCount())
	}
	if r.root.height >= rebalanceHeight {
		t.Errorf("tree not rebalanced, height %d", r.root.height)
	}

	// Delete interior ranges and verify consistency.
	r = r.Delete(100, 4000)
	text := want.String()
	wantDeleted := text[:100] + text[4000:]
	if r.String() != wantDeleted {
		t.Error("content mismatch after delete")
	}
}

func TestSplitConcat(t *testing.T) {
	r := FromString("hello world")
	left, right := r.Split(5)

	if left.String() != "hello" || right.String() != " world" {
		t.Errorf("split mismatch: %q / %q", left.String(), right.String())
	}
	if joined := left.Concat(right); joined.String() != "hello world" {
		t.Errorf("concat mismatch: %q", joined.String())
	}
}
