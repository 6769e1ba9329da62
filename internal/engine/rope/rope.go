package rope

import (
	"fmt"
	"strings"
)

// Point is a line/column position. Both fields are 0-indexed and the
// column counts runes from the start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Rope is an immutable rope over Unicode text. The zero value is not
// usable; construct with New or FromString.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeaf("")}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return Rope{root: buildBalanced(buildLeaves(s))}
}

// Len returns the total length in runes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Runes
}

// ByteLen returns the total length in UTF-8 bytes.
func (r Rope) ByteLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Newlines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.summary.Bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end).
// Out-of-range bounds are clamped.
func (r Rope) Slice(start, end int) string {
	if r.root == nil || start >= end {
		return ""
	}
	if start < 0 {
		start = 0
	}
	var sb strings.Builder
	r.root.textInRange(&sb, start, end)
	return sb.String()
}

// RuneAt returns the rune at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) RuneAt(offset int) (rune, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.runeAt(offset), true
}

// Insert inserts text at the given rune offset.
// Returns a new rope; the original is unchanged.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.root.split(offset)
	mid := buildBalanced(buildLeaves(text))
	return Rope{root: concat(concat(left, mid), right)}
}

// Delete removes text in the rune range [start, end).
// Returns a new rope; the original is unchanged.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end {
		return r
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start == 0 && end == r.Len() {
		return New()
	}

	left, rest := r.root.split(start)
	_, right := rest.split(end - start)
	return Rope{root: concat(left, right)}
}

// Replace replaces text in the rune range [start, end) with new text.
func (r Rope) Replace(start, end int, text string) Rope {
	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Delete(start, end)
	}
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at offset, returning [0, offset) and [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// LineStartOffset returns the rune offset of the start of the given
// 0-indexed line. Lines past the end map to the rope length.
func (r Rope) LineStartOffset(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.summary.Newlines {
		return r.Len()
	}
	return r.root.offsetAfterNewline(line)
}

// LineEndOffset returns the rune offset of the end of the given line,
// not including the newline.
func (r Rope) LineEndOffset(line int) int {
	if r.root == nil || line < 0 {
		return 0
	}
	if line >= r.root.summary.Newlines {
		return r.Len()
	}
	// Start of the next line minus the newline itself.
	return r.root.offsetAfterNewline(line+1) - 1
}

// LineLen returns the length of the given line in runes, without the
// trailing newline.
func (r Rope) LineLen(line int) int {
	return r.LineEndOffset(line) - r.LineStartOffset(line)
}

// LineText returns the text of the given line, without the newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// OffsetToPoint converts a rune offset to a line/column position.
// Offsets past the end map to the end position.
func (r Rope) OffsetToPoint(offset int) Point {
	if r.root == nil || offset <= 0 {
		return Point{}
	}
	if offset > r.Len() {
		offset = r.Len()
	}
	line := r.root.newlinesBefore(offset)
	return Point{Line: line, Column: offset - r.LineStartOffset(line)}
}

// PointToOffset converts a line/column position to a rune offset.
// The column is clamped to the line's end-of-line position; lines past
// the end map to the rope length.
func (r Rope) PointToOffset(p Point) int {
	if r.root == nil || p.Line < 0 {
		return 0
	}
	if p.Line >= r.LineCount() {
		return r.Len()
	}
	start := r.LineStartOffset(p.Line)
	col := p.Column
	if col < 0 {
		col = 0
	}
	if max := r.LineEndOffset(p.Line) - start; col > max {
		col = max
	}
	return start + col
}
