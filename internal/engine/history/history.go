package history

import (
	"errors"
	"sync"
	"time"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxDepth bounds the undo stack when no explicit depth is
// configured.
const DefaultMaxDepth = 1000

// History manages the undo and redo stacks for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*Entry
	redoStack []*Entry

	// open marks the top undo entry as an active typing session that
	// further single-character insertions may join.
	open bool

	maxDepth int
}

// New creates a history with the given maximum depth. Non-positive
// depths fall back to DefaultMaxDepth.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Record adds a committed change to the undo stack and clears the redo
// stack. Adjacent single-character insertions and same-direction
// single-character deletions coalesce into the open entry; any other
// change starts a new one.
func (h *History) Record(ch buffer.Change, before, after cursor.State) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.redoStack = nil

	run := classifyRun(ch)
	if h.open && len(h.undoStack) > 0 {
		top := h.undoStack[len(h.undoStack)-1]
		if top.canCoalesce(ch) {
			top.coalesce(ch, after)
			return
		}
	}

	h.undoStack = append(h.undoStack, &Entry{
		changes: []buffer.Change{ch},
		before:  before,
		after:   after,
		at:      time.Now(),
		run:     run,
	})
	h.open = run != runNone

	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
}

// Break ends the current coalescing session. Navigation, selection
// changes, and explicit boundary commands call this so the next
// insertion starts a fresh entry.
func (h *History) Break() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.open = false
}

// Undo pops the most recent entry and moves it to the redo stack. The
// caller applies Entry.Inverse to the buffer and restores
// Entry.CursorBefore.
func (h *History) Undo() (*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.open = false
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry)
	return entry, nil
}

// Redo pops the most recently undone entry and moves it back to the
// undo stack. The caller applies Entry.Changes and restores
// Entry.CursorAfter.
func (h *History) Redo() (*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.open = false
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)
	return entry, nil
}

// CanUndo reports whether an undo entry exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo entry exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoDepth returns the number of undoable entries.
func (h *History) UndoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoDepth returns the number of redoable entries.
func (h *History) RedoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
	h.open = false
}
