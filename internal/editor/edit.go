package editor

import (
	"fmt"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
)

// commit finalizes a committed buffer change: the cursor collapses to
// the end of the new text, history records the change with cursor
// state on both sides, and observers are notified.
func (e *Editor) commit(ch buffer.Change, before preEditState) {
	e.cur.MoveToOffset(e.buf, ch.NewRange.End, false)
	e.hist.Record(ch, before.state, e.cur.State())
	e.emitText(ch)
	e.emitCursor()
	e.emitSelection(before.sel, before.selActive)
}

// preEditState snapshots everything commit needs from before the
// edit.
type preEditState struct {
	state     cursor.State
	sel       cursor.Selection
	selActive bool
}

func (e *Editor) snapshotCursor() preEditState {
	sel, active := e.cur.Selection()
	return preEditState{
		state:     e.cur.State(),
		sel:       sel,
		selActive: active,
	}
}

// insert inserts text at the cursor, replacing the active selection
// if one exists.
func (e *Editor) insert(text string) error {
	before := e.snapshotCursor()

	var ch buffer.Change
	var err error
	if before.selActive {
		r := before.sel.Range()
		ch, err = e.buf.Replace(r.Start, r.End, text)
	} else {
		ch, err = e.buf.Insert(e.cur.Offset(), text)
	}
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	e.commit(ch, before)
	return nil
}

// deleteRange deletes [start, end). An empty range is a no-op, not an
// error.
func (e *Editor) deleteRange(start, end buffer.Offset) error {
	if start == end {
		return nil
	}
	before := e.snapshotCursor()

	ch, err := e.buf.Delete(start, end)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	e.commit(ch, before)
	return nil
}

// deleteBackward removes the selection if active, otherwise the
// character before the cursor. At offset 0 it is a no-op.
func (e *Editor) deleteBackward() error {
	if sel, ok := e.cur.Selection(); ok {
		return e.deleteRange(sel.Start(), sel.End())
	}
	off := e.cur.Offset()
	if off == 0 {
		return nil
	}
	return e.deleteRange(off-1, off)
}

// deleteForward removes the selection if active, otherwise the
// character after the cursor. At the end of the document it is a
// no-op.
func (e *Editor) deleteForward() error {
	if sel, ok := e.cur.Selection(); ok {
		return e.deleteRange(sel.Start(), sel.End())
	}
	off := e.cur.Offset()
	if off >= e.buf.Len() {
		return nil
	}
	return e.deleteRange(off, off+1)
}

// deleteSelection removes the active selection.
func (e *Editor) deleteSelection() error {
	sel, ok := e.cur.Selection()
	if !ok {
		return ErrNoSelection
	}
	return e.deleteRange(sel.Start(), sel.End())
}

// deleteLine removes the cursor's whole line including its trailing
// newline. On the last line the preceding newline goes instead so the
// line count shrinks by one.
func (e *Editor) deleteLine() error {
	pos := e.cur.Position(e.buf)
	start, err := e.buf.PositionToOffset(buffer.Position{Line: pos.Line})
	if err != nil {
		return err
	}

	if pos.Line+1 < e.buf.LineCount() {
		end, err := e.buf.PositionToOffset(buffer.Position{Line: pos.Line + 1})
		if err != nil {
			return err
		}
		return e.deleteRange(start, end)
	}

	// Last line: also take the newline before it, if any.
	if start > 0 {
		start--
	}
	return e.deleteRange(start, e.buf.Len())
}

func (e *Editor) deleteToLineStart() error {
	pos := e.cur.Position(e.buf)
	start, err := e.buf.PositionToOffset(buffer.Position{Line: pos.Line})
	if err != nil {
		return err
	}
	return e.deleteRange(start, e.cur.Offset())
}

func (e *Editor) deleteToLineEnd() error {
	pos := e.cur.Position(e.buf)
	end, err := e.buf.PositionToOffset(buffer.Position{Line: pos.Line, Column: e.buf.LineLen(pos.Line)})
	if err != nil {
		return err
	}
	return e.deleteRange(e.cur.Offset(), end)
}

// undo reverts the most recent history entry. With nothing to undo it
// leaves the document alone and reports history.ErrNothingToUndo.
func (e *Editor) undo() error {
	entry, err := e.hist.Undo()
	if err != nil {
		return err
	}

	selBefore, selActive := e.cur.Selection()
	for _, ch := range entry.Inverse() {
		applied, err := e.buf.Apply(ch.ToEdit())
		if err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		e.emitText(applied)
	}
	e.cur.Restore(entry.CursorBefore())
	e.emitCursor()
	e.emitSelection(selBefore, selActive)
	return nil
}

// redo re-applies the most recently undone entry. With nothing to
// redo it leaves the document alone and reports history.ErrNothingToRedo.
func (e *Editor) redo() error {
	entry, err := e.hist.Redo()
	if err != nil {
		return err
	}

	selBefore, selActive := e.cur.Selection()
	for _, ch := range entry.Changes() {
		applied, err := e.buf.Apply(ch.ToEdit())
		if err != nil {
			return fmt.Errorf("redo: %w", err)
		}
		e.emitText(applied)
	}
	e.cur.Restore(entry.CursorAfter())
	e.emitCursor()
	e.emitSelection(selBefore, selActive)
	return nil
}

// setText replaces the whole document and resets cursor and history.
// The replacement is not undoable.
func (e *Editor) setText(text string) error {
	before := e.snapshotCursor()

	ch, err := e.buf.Replace(0, e.buf.Len(), text)
	if err != nil {
		return fmt.Errorf("set text: %w", err)
	}

	e.cur.MoveToOffset(e.buf, 0, false)
	e.hist.Clear()
	e.pattern = ""
	e.emitText(ch)
	e.emitCursor()
	e.emitSelection(before.sel, before.selActive)
	return nil
}
