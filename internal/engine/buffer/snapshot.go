package buffer

import (
	"github.com/kestrel-edit/kestrel/internal/engine/rope"
)

// Snapshot provides a read-only view of a buffer at a specific point in
// time. It is safe for concurrent access and will not change even if
// the original buffer is modified.
type Snapshot struct {
	rope       rope.Rope
	revisionID RevisionID
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.rope.String()
}

// TextRange returns text in the given rune range.
func (s *Snapshot) TextRange(start, end Offset) string {
	return s.rope.Slice(start, end)
}

// Len returns the total rune length of the snapshot.
func (s *Snapshot) Len() Offset {
	return s.rope.Len()
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.rope.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line int) string {
	return s.rope.LineText(line)
}

// LineLen returns the length of a specific line in runes (without newline).
func (s *Snapshot) LineLen(line int) int {
	return s.rope.LineLen(line)
}

// RuneAt returns the rune at the given offset.
func (s *Snapshot) RuneAt(offset Offset) (rune, bool) {
	return s.rope.RuneAt(offset)
}

// OffsetToPosition converts a rune offset to line/column.
func (s *Snapshot) OffsetToPosition(offset Offset) Position {
	p := s.rope.OffsetToPoint(offset)
	return Position{Line: p.Line, Column: p.Column}
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}
