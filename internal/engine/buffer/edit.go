package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Edit specifies a range to replace and the new text.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit creates an Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at an offset.
func NewInsert(offset Offset, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end Offset) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// NewTextLen returns the rune length of the replacement text.
func (e Edit) NewTextLen() Offset {
	return utf8.RuneCountInString(e.NewText)
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() Offset {
	return e.NewTextLen() - e.Range.Len()
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// ChangeType categorizes a committed change.
type ChangeType uint8

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

// String returns a string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change records a single committed change to the buffer. It carries
// everything needed to re-apply or invert the change exactly.
type Change struct {
	Type     ChangeType
	Range    Range  // range that was affected, pre-change coordinates
	NewRange Range  // resulting range, post-change coordinates
	OldText  string // text that was removed (delete/replace)
	NewText  string // text that was added (insert/replace)
}

// Invert returns the inverse change that would undo this change.
func (c Change) Invert() Change {
	switch c.Type {
	case ChangeInsert:
		return Change{
			Type:     ChangeDelete,
			Range:    c.NewRange,
			NewRange: Range{Start: c.NewRange.Start, End: c.NewRange.Start},
			OldText:  c.NewText,
		}
	case ChangeDelete:
		return Change{
			Type:     ChangeInsert,
			Range:    Range{Start: c.Range.Start, End: c.Range.Start},
			NewRange: c.Range,
			NewText:  c.OldText,
		}
	case ChangeReplace:
		return Change{
			Type:     ChangeReplace,
			Range:    c.NewRange,
			NewRange: c.Range,
			OldText:  c.NewText,
			NewText:  c.OldText,
		}
	default:
		return c
	}
}

// ToEdit converts a Change to an Edit for reapplication.
func (c Change) ToEdit() Edit {
	return Edit{Range: c.Range, NewText: c.NewText}
}

// Delta returns the change in buffer length.
func (c Change) Delta() Offset {
	return utf8.RuneCountInString(c.NewText) - c.Range.Len()
}
