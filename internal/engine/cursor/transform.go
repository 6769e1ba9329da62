package cursor

import (
	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// TransformOffset remaps an offset through a committed change.
//
// Rules:
//   - offsets at or after an insertion point shift by the inserted length
//   - offsets inside a deleted range collapse to the range start
//   - offsets after a deleted range shift back by the deleted length
func TransformOffset(offset Offset, ch buffer.Change) Offset {
	switch ch.Type {
	case buffer.ChangeInsert:
		if offset >= ch.Range.Start {
			return offset + ch.NewRange.Len()
		}
		return offset

	case buffer.ChangeDelete:
		if offset <= ch.Range.Start {
			return offset
		}
		if offset < ch.Range.End {
			return ch.Range.Start
		}
		return offset - ch.Range.Len()

	case buffer.ChangeReplace:
		if offset <= ch.Range.Start {
			return offset
		}
		if offset < ch.Range.End {
			return ch.NewRange.End
		}
		return offset + ch.Delta()

	default:
		return offset
	}
}

// TransformSelection remaps a selection through a committed change.
// Anchor and head are transformed independently.
func TransformSelection(sel Selection, ch buffer.Change) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, ch),
		Head:   TransformOffset(sel.Head, ch),
	}
}
