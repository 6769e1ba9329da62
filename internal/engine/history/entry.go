package history

import (
	"time"
	"unicode/utf8"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
)

// Entry is one undoable unit. It holds the forward changes in
// application order plus the cursor state before the first change and
// after the last.
type Entry struct {
	changes []buffer.Change
	before  cursor.State
	after   cursor.State
	at      time.Time

	// run classifies the typing session this entry collects while it
	// is the open top of the undo stack.
	run int
}

// Changes returns the forward changes in application order.
func (e *Entry) Changes() []buffer.Change {
	return e.changes
}

// Inverse returns the changes that undo this entry, in the order they
// must be applied (reverse of the forward order, each inverted).
func (e *Entry) Inverse() []buffer.Change {
	inv := make([]buffer.Change, 0, len(e.changes))
	for i := len(e.changes) - 1; i >= 0; i-- {
		inv = append(inv, e.changes[i].Invert())
	}
	return inv
}

// CursorBefore returns the cursor state prior to the entry.
func (e *Entry) CursorBefore() cursor.State {
	return e.before
}

// CursorAfter returns the cursor state following the entry.
func (e *Entry) CursorAfter() cursor.State {
	return e.after
}

// Typing run kinds. A run collects adjacent single-rune edits of one
// kind; a change of kind or delete direction ends it. A lone delete is
// direction-neutral until a neighbor settles it.
const (
	runNone = iota
	runInsert
	runDelete
	runDeleteBackward
	runDeleteForward
)

// classifyRun reports the typing run ch could open or continue.
// Newlines never join or start a run.
func classifyRun(ch buffer.Change) int {
	switch ch.Type {
	case buffer.ChangeInsert:
		if utf8.RuneCountInString(ch.NewText) == 1 && ch.NewText != "\n" {
			return runInsert
		}
	case buffer.ChangeDelete:
		if utf8.RuneCountInString(ch.OldText) == 1 && ch.OldText != "\n" {
			return runDelete
		}
	}
	return runNone
}

// canCoalesce reports whether ch continues this entry's typing run: a
// single non-newline rune inserted immediately after the previous
// insertion, or a single non-newline rune deleted adjacent to the
// previous deletion in the same direction. A backward run shrinks
// toward the left (each delete ends where the previous one started); a
// forward run consumes in place (each delete starts where the previous
// one started).
func (e *Entry) canCoalesce(ch buffer.Change) bool {
	if len(e.changes) == 0 || classifyRun(ch) == runNone {
		return false
	}
	last := e.changes[len(e.changes)-1]
	if ch.Type != last.Type {
		return false
	}
	switch ch.Type {
	case buffer.ChangeInsert:
		return e.run == runInsert && ch.Range.Start == last.NewRange.End
	case buffer.ChangeDelete:
		if (e.run == runDelete || e.run == runDeleteBackward) && ch.Range.End == last.Range.Start {
			return true
		}
		if (e.run == runDelete || e.run == runDeleteForward) && ch.Range.Start == last.Range.Start {
			return true
		}
	}
	return false
}

// coalesce folds an adjacent single-rune edit into the entry's last
// change. The first coalesced delete settles the run's direction.
func (e *Entry) coalesce(ch buffer.Change, after cursor.State) {
	last := &e.changes[len(e.changes)-1]
	switch ch.Type {
	case buffer.ChangeInsert:
		last.NewText += ch.NewText
		last.NewRange.End = ch.NewRange.End
	case buffer.ChangeDelete:
		if ch.Range.End == last.Range.Start {
			e.run = runDeleteBackward
			last.Range.Start = ch.Range.Start
			last.OldText = ch.OldText + last.OldText
			last.NewRange = buffer.Range{Start: ch.Range.Start, End: ch.Range.Start}
		} else {
			e.run = runDeleteForward
			last.Range.End += ch.Range.End - ch.Range.Start
			last.OldText += ch.OldText
		}
	}
	e.after = after
	e.at = time.Now()
}
