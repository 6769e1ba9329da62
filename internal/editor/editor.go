// Package editor is the command dispatcher that owns the buffer,
// cursor, and history and keeps them consistent.
//
// Every command is applied atomically: the buffer, cursor, and
// history mutate together or not at all, and observers are notified
// strictly after the commit. The editor is single-writer; a
// multi-threaded host must serialize calls to Dispatch. Observers run
// synchronously and may not dispatch new commands from inside a
// callback.
package editor

import (
	"errors"
	"fmt"

	"github.com/kestrel-edit/kestrel/internal/clipboard"
	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
	"github.com/kestrel-edit/kestrel/internal/engine/history"
	"github.com/kestrel-edit/kestrel/internal/event"
)

// Command errors.
var (
	ErrNoSelection       = errors.New("no active selection")
	ErrReentrantDispatch = errors.New("dispatch from observer callback")
	ErrNoPattern         = errors.New("no search pattern")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrNeedsText         = errors.New("command requires text input")
)

// DefaultPageSize is the page movement distance in lines.
const DefaultPageSize = 20

// Editor owns one document's state and applies commands to it.
// Dispatch must be serialized by the host; the editor does not lock
// across a command.
type Editor struct {
	buf  *buffer.Buffer
	cur  *cursor.Cursor
	hist *history.History
	bus  *event.Bus
	clip clipboard.Provider

	pageSize int
	pattern  string

	// dispatching guards against observers issuing commands while a
	// commit is still in flight.
	dispatching bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithClipboard sets the clipboard provider.
func WithClipboard(p clipboard.Provider) Option {
	return func(e *Editor) { e.clip = p }
}

// WithUndoDepth bounds the undo stack.
func WithUndoDepth(depth int) Option {
	return func(e *Editor) { e.hist = history.New(depth) }
}

// WithPageSize sets the page movement distance in lines.
func WithPageSize(lines int) Option {
	return func(e *Editor) {
		if lines > 0 {
			e.pageSize = lines
		}
	}
}

// WithText sets the initial document content.
func WithText(text string) Option {
	return func(e *Editor) { e.buf = buffer.FromString(text) }
}

// New creates an editor with an empty document, an in-memory
// clipboard, and default limits.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:      buffer.New(),
		cur:      cursor.New(),
		hist:     history.New(0),
		bus:      event.NewBus(),
		clip:     clipboard.NewMemory(),
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers an observer for editor events.
func (e *Editor) Subscribe(fn event.Observer) event.Handle {
	return e.bus.Subscribe(fn)
}

// Unsubscribe removes an observer.
func (e *Editor) Unsubscribe(h event.Handle) {
	e.bus.Unsubscribe(h)
}

// Dispatch applies one command. Commands from observer callbacks are
// rejected with ErrReentrantDispatch.
func (e *Editor) Dispatch(cmd Command) error {
	if e.dispatching {
		return ErrReentrantDispatch
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	return e.apply(cmd)
}

// DispatchNamed resolves a keymap command name and applies it. Names
// that require a text payload report ErrNeedsText; the host collects
// the payload and dispatches a built command instead.
func (e *Editor) DispatchNamed(name string) error {
	cmd, ok := CommandByName(name)
	if !ok {
		if NeedsText(name) {
			return fmt.Errorf("%w: %q", ErrNeedsText, name)
		}
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return e.Dispatch(cmd)
}

func (e *Editor) apply(cmd Command) error {
	switch cmd.Op {
	// Text mutation
	case OpInsertChar:
		return e.insert(string(cmd.Rune))
	case OpInsertText:
		return e.insert(cmd.Text)
	case OpDeleteBackward:
		return e.deleteBackward()
	case OpDeleteForward:
		return e.deleteForward()
	case OpDeleteLine:
		return e.deleteLine()
	case OpDeleteSelection:
		return e.deleteSelection()
	case OpDeleteWordBackward:
		return e.deleteRange(cursor.PrevWordOffset(e.buf, e.cur.Offset()), e.cur.Offset())
	case OpDeleteWordForward:
		return e.deleteRange(e.cur.Offset(), cursor.NextWordOffset(e.buf, e.cur.Offset()))
	case OpDeleteToLineStart:
		return e.deleteToLineStart()
	case OpDeleteToLineEnd:
		return e.deleteToLineEnd()

	// Navigation
	case OpMoveLeft:
		return e.navigate(func() { e.cur.MoveLeft(e.buf, cmd.Extend) })
	case OpMoveRight:
		return e.navigate(func() { e.cur.MoveRight(e.buf, cmd.Extend) })
	case OpMoveUp:
		return e.navigate(func() { e.cur.MoveUp(e.buf, cmd.Extend) })
	case OpMoveDown:
		return e.navigate(func() { e.cur.MoveDown(e.buf, cmd.Extend) })
	case OpMoveWordLeft:
		return e.navigate(func() { e.cur.MoveWordLeft(e.buf, cmd.Extend) })
	case OpMoveWordRight:
		return e.navigate(func() { e.cur.MoveWordRight(e.buf, cmd.Extend) })
	case OpMoveLineStart:
		return e.navigate(func() { e.cur.MoveLineStart(e.buf, cmd.Extend) })
	case OpMoveLineEnd:
		return e.navigate(func() { e.cur.MoveLineEnd(e.buf, cmd.Extend) })
	case OpMoveDocumentStart:
		return e.navigate(func() { e.cur.MoveDocumentStart(e.buf, cmd.Extend) })
	case OpMoveDocumentEnd:
		return e.navigate(func() { e.cur.MoveDocumentEnd(e.buf, cmd.Extend) })
	case OpPageUp:
		return e.navigate(func() { e.cur.MovePage(e.buf, -e.pageSize, cmd.Extend) })
	case OpPageDown:
		return e.navigate(func() { e.cur.MovePage(e.buf, e.pageSize, cmd.Extend) })
	case OpMoveTo:
		// Navigation requests clamp rather than error.
		return e.navigate(func() { e.cur.MoveTo(e.buf, cmd.Pos, cmd.Extend) })

	// Selection
	case OpSelectionStart:
		return e.navigate(func() { e.cur.StartSelection() })
	case OpSelectionEnd:
		return e.navigate(func() {})
	case OpSelectionClear:
		return e.navigate(func() { e.cur.ClearSelection() })
	case OpSelectAll:
		return e.navigate(func() { e.cur.SelectAll(e.buf) })
	case OpSelectLine:
		return e.navigate(func() { e.cur.SelectLine(e.buf) })
	case OpSelectWord:
		return e.navigate(func() { e.cur.SelectWord(e.buf) })

	// History
	case OpUndo:
		return e.undo()
	case OpRedo:
		return e.redo()

	// Clipboard
	case OpCopy:
		return e.copySelection()
	case OpCut:
		return e.cutSelection()
	case OpPaste:
		return e.paste()

	// Search
	case OpFind:
		return e.find(cmd.Text)
	case OpFindNext:
		return e.findNext()
	case OpFindPrevious:
		return e.findPrevious()
	case OpReplace:
		return e.replace(cmd.Text, cmd.Replacement)
	case OpReplaceAll:
		return e.replaceAll(cmd.Text, cmd.Replacement)

	// Lifecycle
	case OpSetText:
		return e.setText(cmd.Text)
	case OpClear:
		return e.setText("")

	default:
		return fmt.Errorf("%w: op %d", ErrUnknownCommand, cmd.Op)
	}
}

// Accessors.

// Text returns the document content.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Len returns the document length in characters.
func (e *Editor) Len() buffer.Offset {
	return e.buf.Len()
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// CursorPosition returns the cursor's line/column position.
func (e *Editor) CursorPosition() buffer.Position {
	return e.cur.Position(e.buf)
}

// CursorOffset returns the cursor's character offset.
func (e *Editor) CursorOffset() buffer.Offset {
	return e.cur.Offset()
}

// Selection returns the active selection, if any.
func (e *Editor) Selection() (cursor.Selection, bool) {
	return e.cur.Selection()
}

// SelectionText returns the selected text, or "" without a selection.
func (e *Editor) SelectionText() string {
	sel, ok := e.cur.Selection()
	if !ok {
		return ""
	}
	return e.buf.TextRange(sel.Start(), sel.End())
}

// Snapshot returns a read-only view of the current document.
func (e *Editor) Snapshot() *buffer.Snapshot {
	return e.buf.Snapshot()
}

// CanUndo reports whether an undo entry exists.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether a redo entry exists.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// Event emission.

func (e *Editor) emitText(ch buffer.Change) {
	e.bus.Publish(event.TextChanged{Change: ch, Revision: e.buf.RevisionID()})
}

func (e *Editor) emitCursor() {
	e.bus.Publish(event.CursorMoved{
		Position: e.cur.Position(e.buf),
		Offset:   e.cur.Offset(),
	})
}

func (e *Editor) emitSelection(before cursor.Selection, beforeActive bool) {
	after, active := e.cur.Selection()
	if active != beforeActive || (active && !after.Equals(before)) {
		e.bus.Publish(event.SelectionChanged{Selection: after, Active: active})
	}
}

// navigate runs a cursor-only command: no history entry, but the
// coalescing session ends.
func (e *Editor) navigate(fn func()) error {
	selBefore, selActive := e.cur.Selection()
	fn()
	e.hist.Break()
	e.emitCursor()
	e.emitSelection(selBefore, selActive)
	return nil
}
