package cursor

import (
	"unicode"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// Cursor tracks the insertion point, an optional selection, and the
// sticky column used for vertical movement.
type Cursor struct {
	head   Offset
	anchor Offset
	hasSel bool

	// sticky is the last explicitly chosen column. Vertical movement
	// targets it on the destination line; a clamp on a shorter line
	// does not reduce it.
	sticky int
}

// State is a snapshot of cursor state, used by history to restore the
// cursor exactly around undo and redo.
type State struct {
	Head         Offset
	Anchor       Offset
	HasSelection bool
	StickyColumn int
}

// New creates a cursor at the start of the buffer.
func New() *Cursor {
	return &Cursor{}
}

// Offset returns the head offset.
func (c *Cursor) Offset() Offset {
	return c.head
}

// Position returns the head position in the given buffer.
func (c *Cursor) Position(buf *buffer.Buffer) Position {
	return buf.OffsetToPosition(c.head)
}

// StickyColumn returns the sticky column.
func (c *Cursor) StickyColumn() int {
	return c.sticky
}

// Selection returns the active selection and true, or a zero selection
// and false when no non-empty selection exists.
func (c *Cursor) Selection() (Selection, bool) {
	if !c.hasSel || c.anchor == c.head {
		return Selection{}, false
	}
	return Selection{Anchor: c.anchor, Head: c.head}, true
}

// State captures the cursor state for later restoration.
func (c *Cursor) State() State {
	return State{
		Head:         c.head,
		Anchor:       c.anchor,
		HasSelection: c.hasSel,
		StickyColumn: c.sticky,
	}
}

// Restore resets the cursor to a previously captured state.
func (c *Cursor) Restore(s State) {
	c.head = s.Head
	c.anchor = s.Anchor
	c.hasSel = s.HasSelection
	c.sticky = s.StickyColumn
}

// beginMove establishes the anchor when extension starts.
func (c *Cursor) beginMove(extend bool) {
	if extend && !c.hasSel {
		c.anchor = c.head
		c.hasSel = true
	}
}

// finishMove commits the head and collapses the selection for plain
// (non-extending) movement.
func (c *Cursor) finishMove(extend bool, offset Offset, sticky int) {
	c.head = offset
	c.sticky = sticky
	if !extend {
		c.anchor = offset
		c.hasSel = false
	}
}

// MoveLeft moves one character left, crossing to the end of the
// previous line at column 0.
func (c *Cursor) MoveLeft(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	offset := c.head
	if offset > 0 {
		offset--
	}
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// MoveRight moves one character right, crossing to the start of the
// next line at end-of-line.
func (c *Cursor) MoveRight(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	offset := c.head
	if offset < buf.Len() {
		offset++
	}
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// MoveUp moves to the sticky column on the previous line, clamped to
// that line's length. The sticky column itself is preserved.
func (c *Cursor) MoveUp(buf *buffer.Buffer, extend bool) {
	c.moveVertical(buf, extend, -1)
}

// MoveDown moves to the sticky column on the next line, clamped to
// that line's length. The sticky column itself is preserved.
func (c *Cursor) MoveDown(buf *buffer.Buffer, extend bool) {
	c.moveVertical(buf, extend, 1)
}

func (c *Cursor) moveVertical(buf *buffer.Buffer, extend bool, delta int) {
	c.beginMove(extend)

	pos := buf.OffsetToPosition(c.head)
	line := pos.Line + delta
	if line < 0 || line >= buf.LineCount() {
		c.finishMove(extend, c.head, c.sticky)
		return
	}

	col := c.sticky
	if max := buf.LineLen(line); col > max {
		col = max
	}
	offset, err := buf.PositionToOffset(Position{Line: line, Column: col})
	if err != nil {
		offset = c.head
	}

	// The clamp must not reduce the sticky column: returning to a
	// longer line restores the original column.
	sticky := c.sticky
	c.finishMove(extend, offset, sticky)
	c.sticky = sticky
}

// MoveWordLeft retreats to the previous word-class transition.
func (c *Cursor) MoveWordLeft(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	offset := PrevWordOffset(buf, c.head)
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// MoveWordRight advances to the next word-class transition.
func (c *Cursor) MoveWordRight(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	offset := NextWordOffset(buf, c.head)
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// MoveLineStart implements soft/hard home: from any non-zero column it
// moves to column 0; a repeated press at column 0 toggles to the first
// non-whitespace column when that differs from 0.
func (c *Cursor) MoveLineStart(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)

	pos := buf.OffsetToPosition(c.head)
	col := 0
	if pos.Column == 0 {
		if soft := firstNonWhitespace(buf, pos.Line); soft != 0 {
			col = soft
		}
	}

	offset, err := buf.PositionToOffset(Position{Line: pos.Line, Column: col})
	if err != nil {
		offset = c.head
	}
	c.finishMove(extend, offset, col)
}

// MoveLineEnd moves to the end-of-line position.
func (c *Cursor) MoveLineEnd(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)

	pos := buf.OffsetToPosition(c.head)
	col := buf.LineLen(pos.Line)
	offset, err := buf.PositionToOffset(Position{Line: pos.Line, Column: col})
	if err != nil {
		offset = c.head
	}
	c.finishMove(extend, offset, col)
}

// MoveDocumentStart moves to the start of the buffer.
func (c *Cursor) MoveDocumentStart(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.finishMove(extend, 0, 0)
}

// MoveDocumentEnd moves to the end of the buffer.
func (c *Cursor) MoveDocumentEnd(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	offset := buf.Len()
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// MovePage moves up to the given number of lines in the given
// direction (negative is up), preserving the sticky column.
func (c *Cursor) MovePage(buf *buffer.Buffer, lines int, extend bool) {
	if lines == 0 {
		return
	}
	delta := 1
	if lines < 0 {
		delta = -1
		lines = -lines
	}
	for i := 0; i < lines; i++ {
		before := c.head
		c.moveVertical(buf, extend, delta)
		if c.head == before {
			break
		}
	}
}

// MoveTo moves the head to the given position, clamped to valid
// bounds.
func (c *Cursor) MoveTo(buf *buffer.Buffer, pos Position, extend bool) {
	c.beginMove(extend)

	pos = buf.ClampPosition(pos)
	offset, err := buf.PositionToOffset(pos)
	if err != nil {
		offset = c.head
		pos = buf.OffsetToPosition(offset)
	}
	c.finishMove(extend, offset, pos.Column)
}

// MoveToOffset moves the head to the given offset, clamped to
// [0, length].
func (c *Cursor) MoveToOffset(buf *buffer.Buffer, offset Offset, extend bool) {
	c.beginMove(extend)
	if offset < 0 {
		offset = 0
	}
	if max := buf.Len(); offset > max {
		offset = max
	}
	c.finishMove(extend, offset, buf.OffsetToPosition(offset).Column)
}

// StartSelection anchors a selection at the current head.
func (c *Cursor) StartSelection() {
	c.anchor = c.head
	c.hasSel = true
}

// ClearSelection collapses the selection to the head.
func (c *Cursor) ClearSelection() {
	c.anchor = c.head
	c.hasSel = false
}

// SetSelection sets an explicit selection. The head moves to the
// selection head.
func (c *Cursor) SetSelection(sel Selection, buf *buffer.Buffer) {
	c.anchor = sel.Anchor
	c.head = sel.Head
	c.hasSel = true
	c.sticky = buf.OffsetToPosition(c.head).Column
}

// SelectAll selects the entire buffer.
func (c *Cursor) SelectAll(buf *buffer.Buffer) {
	c.SetSelection(Selection{Anchor: 0, Head: buf.Len()}, buf)
}

// SelectLine selects the cursor's line, including the trailing
// newline when present so deleting the selection removes the whole
// line.
func (c *Cursor) SelectLine(buf *buffer.Buffer) {
	pos := buf.OffsetToPosition(c.head)
	start, err := buf.PositionToOffset(Position{Line: pos.Line})
	if err != nil {
		return
	}

	var end Offset
	if pos.Line+1 < buf.LineCount() {
		end, err = buf.PositionToOffset(Position{Line: pos.Line + 1})
		if err != nil {
			return
		}
	} else {
		end = buf.Len()
	}
	c.SetSelection(Selection{Anchor: start, Head: end}, buf)
}

// SelectWord selects the same-class character run containing the
// cursor. No-op on an empty buffer.
func (c *Cursor) SelectWord(buf *buffer.Buffer) {
	r := WordRangeAt(buf, c.head)
	if r.IsEmpty() {
		return
	}
	c.SetSelection(Selection{Anchor: r.Start, Head: r.End}, buf)
}

// ApplyChange remaps the cursor through a committed buffer edit. The
// remap is exact: offsets at or after an insertion shift right, offsets
// inside a deletion collapse to its start, offsets past a deletion
// shift left. A selection that collapses to nothing is dropped.
func (c *Cursor) ApplyChange(buf *buffer.Buffer, ch buffer.Change) {
	c.head = clampOffset(TransformOffset(c.head, ch), buf.Len())
	c.anchor = clampOffset(TransformOffset(c.anchor, ch), buf.Len())
	if c.anchor == c.head {
		c.hasSel = false
	}
	c.sticky = buf.OffsetToPosition(c.head).Column
}

func clampOffset(offset, max Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// firstNonWhitespace returns the column of the first non-whitespace
// rune on the line, or 0 for a blank line.
func firstNonWhitespace(buf *buffer.Buffer, line int) int {
	col := 0
	for _, r := range buf.LineText(line) {
		if !unicode.IsSpace(r) {
			return col
		}
		col++
	}
	return 0
}
