package buffer

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/kestrel-edit/kestrel/internal/engine/rope"
)

// Errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange reports an offset or position beyond the content.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid reports a malformed start/end pair.
	ErrRangeInvalid = errors.New("invalid range")
)

// Buffer owns the mutable text content. It wraps an immutable rope and
// exposes the edit primitives and coordinate conversion the rest of
// the engine builds on. Methods are guarded for single-writer use; the
// engine assumes one command at a time (the dispatcher serializes).
type Buffer struct {
	mu         sync.RWMutex
	rope       rope.Rope
	revisionID RevisionID
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		rope:       rope.New(),
		revisionID: NewRevisionID(),
	}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	return &Buffer{
		rope:       rope.FromString(s),
		revisionID: NewRevisionID(),
	}
}

// Read operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// TextRange returns text in the given rune range.
func (b *Buffer) TextRange(start, end Offset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Slice(start, end)
}

// Len returns the total length of the buffer in runes.
func (b *Buffer) Len() Offset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Len()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineText(line)
}

// LineLen returns the length of a specific line in runes (without newline).
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineLen(line)
}

// RuneAt returns the rune at the given offset.
// Returns 0 and false if offset is out of range.
func (b *Buffer) RuneAt(offset Offset) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.RuneAt(offset)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.IsEmpty()
}

// Coordinate conversion

// OffsetToPosition converts a rune offset to line/column.
// Total over [0, Len]; out-of-range offsets clamp to the end position.
func (b *Buffer) OffsetToPosition(offset Offset) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p := b.rope.OffsetToPoint(offset)
	return Position{Line: p.Line, Column: p.Column}
}

// PositionToOffset converts line/column to a rune offset.
// Fails with ErrOffsetOutOfRange if the line exceeds the line count or
// the column exceeds that line's length. The end-of-line position (one
// past the last character) is a valid column.
func (b *Buffer) PositionToOffset(p Position) (Offset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p.Line < 0 || p.Column < 0 || p.Line >= b.rope.LineCount() {
		return 0, ErrOffsetOutOfRange
	}
	if p.Column > b.rope.LineLen(p.Line) {
		return 0, ErrOffsetOutOfRange
	}
	return b.rope.LineStartOffset(p.Line) + p.Column, nil
}

// ClampPosition returns the closest valid position to p.
// The line is clamped first, then the column.
func (b *Buffer) ClampPosition(p Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p.Line < 0 {
		p.Line = 0
	}
	if max := b.rope.LineCount() - 1; p.Line > max {
		p.Line = max
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if max := b.rope.LineLen(p.Line); p.Column > max {
		p.Column = max
	}
	return p
}

// Write operations

// Insert splices text in at the given offset.
// Fails with ErrOffsetOutOfRange if the offset is past the end.
func (b *Buffer) Insert(at Offset, text string) (Change, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if at < 0 || at > b.rope.Len() {
		return Change{}, ErrOffsetOutOfRange
	}

	b.rope = b.rope.Insert(at, text)
	b.revisionID = NewRevisionID()

	return Change{
		Type:     ChangeInsert,
		Range:    Range{Start: at, End: at},
		NewRange: Range{Start: at, End: at + utf8.RuneCountInString(text)},
		NewText:  text,
	}, nil
}

// Delete removes the runes in [start, end).
// Fails with ErrRangeInvalid if start > end or end > Len.
func (b *Buffer) Delete(start, end Offset) (Change, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.rope.Len() {
		return Change{}, ErrRangeInvalid
	}

	oldText := b.rope.Slice(start, end)
	b.rope = b.rope.Delete(start, end)
	b.revisionID = NewRevisionID()

	return Change{
		Type:     ChangeDelete,
		Range:    Range{Start: start, End: end},
		NewRange: Range{Start: start, End: start},
		OldText:  oldText,
	}, nil
}

// Replace replaces the runes in [start, end) with new text.
func (b *Buffer) Replace(start, end Offset, text string) (Change, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.rope.Len() {
		return Change{}, ErrRangeInvalid
	}

	oldText := b.rope.Slice(start, end)
	b.rope = b.rope.Replace(start, end, text)
	b.revisionID = NewRevisionID()

	return Change{
		Type:     ChangeReplace,
		Range:    Range{Start: start, End: end},
		NewRange: Range{Start: start, End: start + utf8.RuneCountInString(text)},
		OldText:  oldText,
		NewText:  text,
	}, nil
}

// Apply applies an edit to the buffer.
// Used by history to re-apply recorded changes.
func (b *Buffer) Apply(edit Edit) (Change, error) {
	if edit.Range.IsEmpty() {
		return b.Insert(edit.Range.Start, edit.NewText)
	}
	if edit.NewText == "" {
		return b.Delete(edit.Range.Start, edit.Range.End)
	}
	return b.Replace(edit.Range.Start, edit.Range.End, edit.NewText)
}

// SetText replaces the entire content.
// Resets the buffer as if freshly created from the given text.
func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rope = rope.FromString(text)
	b.revisionID = NewRevisionID()
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe to retain across later edits; the underlying rope is immutable.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{
		rope:       b.rope,
		revisionID: b.revisionID,
	}
}
