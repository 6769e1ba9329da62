// Package history provides undo and redo over invertible buffer
// changes.
//
// Every committed edit is recorded together with the cursor state on
// both sides, so undo restores the exact text and cursor. Consecutive
// single-character insertions coalesce into one entry until the
// session is broken by navigation, a selection change, undo, or a
// non-adjacent edit. The stacks are bounded; the oldest entries are
// evicted first.
package history
