package cursor

import (
	"fmt"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is a range of selected text. Anchor is the fixed end where
// the selection started; Head is the end that moves with further
// extension. When Anchor == Head the selection is empty.
// Selection is an immutable value type.
type Selection struct {
	Anchor Offset
	Head   Offset
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Offset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the length of the selection in runes.
func (s Selection) Len() Offset {
	if s.Anchor <= s.Head {
		return s.Head - s.Anchor
	}
	return s.Anchor - s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Offset {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() Offset {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Range returns the selection as a forward range (Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// IsBackward returns true if the selection extends backward.
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Extend returns a selection with the head moved to the given offset.
// The anchor stays fixed.
func (s Selection) Extend(offset Offset) Selection {
	return Selection{Anchor: s.Anchor, Head: offset}
}

// Contains returns true if the given offset is within the selection.
// Empty selections contain nothing.
func (s Selection) Contains(offset Offset) bool {
	return offset >= s.Start() && offset < s.End()
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Head)
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}
