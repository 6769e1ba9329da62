package history

import (
	"testing"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
)

// apply records an insert against the buffer and history together,
// keeping cursor states consistent the way the editor does.
func apply(t *testing.T, h *History, buf *buffer.Buffer, c *cursor.Cursor, text string) {
	t.Helper()
	before := c.State()
	ch, err := buf.Insert(c.Offset(), text)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	c.ApplyChange(buf, ch)
	h.Record(ch, before, c.State())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "hello")
	h.Break()
	apply(t, h, buf, c, " world")

	if got := buf.Text(); got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}

	entry, err := h.Undo()
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	for _, ch := range entry.Inverse() {
		if _, err := buf.Apply(ch.ToEdit()); err != nil {
			t.Fatalf("apply inverse failed: %v", err)
		}
	}
	if got := buf.Text(); got != "hello" {
		t.Errorf("expected %q after undo, got %q", "hello", got)
	}

	entry, err = h.Redo()
	if err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	for _, ch := range entry.Changes() {
		if _, err := buf.Apply(ch.ToEdit()); err != nil {
			t.Fatalf("apply redo failed: %v", err)
		}
	}
	if got := buf.Text(); got != "hello world" {
		t.Errorf("expected %q after redo, got %q", "hello world", got)
	}
}

func TestCoalescesTypingRun(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	for _, r := range "abc" {
		apply(t, h, buf, c, string(r))
	}

	if got := h.UndoDepth(); got != 1 {
		t.Fatalf("expected 1 coalesced entry, got %d", got)
	}

	entry, err := h.Undo()
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	for _, ch := range entry.Inverse() {
		if _, err := buf.Apply(ch.ToEdit()); err != nil {
			t.Fatalf("apply inverse failed: %v", err)
		}
	}
	if got := buf.Text(); got != "" {
		t.Errorf("expected empty buffer, got %q", got)
	}
}

// applyDelete records a deletion against the buffer and history
// together, the way the editor commits backspace and delete.
func applyDelete(t *testing.T, h *History, buf *buffer.Buffer, c *cursor.Cursor, start, end buffer.Offset) {
	t.Helper()
	before := c.State()
	ch, err := buf.Delete(start, end)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	c.ApplyChange(buf, ch)
	h.Record(ch, before, c.State())
}

func TestCoalescesBackspaceRun(t *testing.T) {
	buf := buffer.FromString("abc")
	c := cursor.New()
	h := New(0)
	c.MoveToOffset(buf, 3, false)

	applyDelete(t, h, buf, c, 2, 3)
	applyDelete(t, h, buf, c, 1, 2)
	applyDelete(t, h, buf, c, 0, 1)

	if got := h.UndoDepth(); got != 1 {
		t.Fatalf("expected 1 coalesced entry, got %d", got)
	}

	entry, err := h.Undo()
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	for _, ch := range entry.Inverse() {
		if _, err := buf.Apply(ch.ToEdit()); err != nil {
			t.Fatalf("apply inverse failed: %v", err)
		}
	}
	if got := buf.Text(); got != "abc" {
		t.Errorf("expected %q after undo, got %q", "abc", got)
	}
}

func TestCoalescesDeleteForwardRun(t *testing.T) {
	buf := buffer.FromString("abc")
	c := cursor.New()
	h := New(0)

	applyDelete(t, h, buf, c, 0, 1)
	applyDelete(t, h, buf, c, 0, 1)
	applyDelete(t, h, buf, c, 0, 1)

	if got := h.UndoDepth(); got != 1 {
		t.Fatalf("expected 1 coalesced entry, got %d", got)
	}

	entry, err := h.Undo()
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	for _, ch := range entry.Inverse() {
		if _, err := buf.Apply(ch.ToEdit()); err != nil {
			t.Fatalf("apply inverse failed: %v", err)
		}
	}
	if got := buf.Text(); got != "abc" {
		t.Errorf("expected %q after undo, got %q", "abc", got)
	}
}

func TestDeleteDirectionChangeBreaksCoalescing(t *testing.T) {
	buf := buffer.FromString("abcd")
	c := cursor.New()
	h := New(0)
	c.MoveToOffset(buf, 3, false)

	// Two backspaces settle a backward run.
	applyDelete(t, h, buf, c, 2, 3)
	applyDelete(t, h, buf, c, 1, 2)
	// Forward delete at the same point starts a fresh entry.
	applyDelete(t, h, buf, c, 1, 2)

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("expected 2 entries after direction change, got %d", got)
	}
}

func TestNewlineDeleteBreaksCoalescing(t *testing.T) {
	buf := buffer.FromString("a\nb")
	c := cursor.New()
	h := New(0)
	c.MoveToOffset(buf, 3, false)

	applyDelete(t, h, buf, c, 2, 3)
	applyDelete(t, h, buf, c, 1, 2)
	applyDelete(t, h, buf, c, 0, 1)

	if got := h.UndoDepth(); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
}

func TestInsertAndDeleteDoNotCoalesce(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "a")
	apply(t, h, buf, c, "b")
	applyDelete(t, h, buf, c, 1, 2)

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
}

func TestBreakEndsCoalescing(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "a")
	h.Break()
	apply(t, h, buf, c, "b")

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("expected 2 entries after break, got %d", got)
	}
}

func TestNewlineBreaksCoalescing(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "a")
	apply(t, h, buf, c, "\n")
	apply(t, h, buf, c, "b")

	if got := h.UndoDepth(); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
}

func TestNonAdjacentInsertBreaksCoalescing(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "a")
	c.MoveToOffset(buf, 0, false)
	apply(t, h, buf, c, "b")

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
}

func TestRecordClearsRedo(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "a")
	if _, err := h.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}

	apply(t, h, buf, c, "b")
	if h.CanRedo() {
		t.Error("expected redo cleared by new edit")
	}
}

func TestDepthLimitEvictsOldest(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(2)

	apply(t, h, buf, c, "a")
	h.Break()
	apply(t, h, buf, c, "b")
	h.Break()
	apply(t, h, buf, c, "c")

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("expected depth 2, got %d", got)
	}

	// The surviving entries are the two most recent.
	entry, _ := h.Undo()
	if got := entry.Changes()[0].NewText; got != "c" {
		t.Errorf("expected %q, got %q", "c", got)
	}
}

func TestEmptyStacks(t *testing.T) {
	h := New(0)

	if _, err := h.Undo(); err != ErrNothingToUndo {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if _, err := h.Redo(); err != ErrNothingToRedo {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestUndoRestoresCursor(t *testing.T) {
	buf := buffer.FromString("")
	c := cursor.New()
	h := New(0)

	apply(t, h, buf, c, "hello")

	entry, err := h.Undo()
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	c.Restore(entry.CursorBefore())
	if c.Offset() != 0 {
		t.Errorf("expected cursor at 0, got %d", c.Offset())
	}
}
