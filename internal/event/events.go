// Package event defines the editor's notification events and the
// ordered synchronous bus that delivers them.
//
// Observers run in registration order, in the publisher's goroutine,
// strictly after the state change they describe has committed. The
// bus itself performs no queuing or concurrency; reentrancy policy is
// the publisher's concern.
package event

import (
	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
)

// Event is implemented by all editor events.
type Event interface {
	event()
}

// TextChanged reports a committed buffer mutation.
type TextChanged struct {
	// Change describes the committed edit.
	Change buffer.Change

	// Revision identifies the buffer content after the edit.
	Revision buffer.RevisionID
}

// CursorMoved reports the cursor's new position.
type CursorMoved struct {
	Position buffer.Position
	Offset   buffer.Offset
}

// SelectionChanged reports the new selection state. Active is false
// when the selection was cleared.
type SelectionChanged struct {
	Selection cursor.Selection
	Active    bool
}

func (TextChanged) event()      {}
func (CursorMoved) event()      {}
func (SelectionChanged) event() {}
