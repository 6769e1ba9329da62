package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/kestrel-edit/kestrel/internal/engine/cursor"
	"github.com/kestrel-edit/kestrel/internal/engine/search"
)

// Matches returns every occurrence of pattern in the document without
// touching editor state.
func (e *Editor) Matches(pattern string) []search.Match {
	return search.FindAll(e.buf, pattern)
}

// selectMatch makes a match the active selection with the cursor at
// its end.
func (e *Editor) selectMatch(m search.Match) {
	selBefore, selActive := e.cur.Selection()
	e.cur.SetSelection(cursor.Selection{Anchor: m.Start, Head: m.End}, e.buf)
	e.hist.Break()
	e.emitCursor()
	e.emitSelection(selBefore, selActive)
}

// find stores the pattern and selects the first occurrence at or
// after the cursor, wrapping around. No occurrence leaves the cursor
// untouched.
func (e *Editor) find(pattern string) error {
	if pattern == "" {
		return ErrNoPattern
	}
	e.pattern = pattern

	m, ok := search.FindNext(e.buf, pattern, e.cur.Offset())
	if !ok {
		return nil
	}
	e.selectMatch(m)
	return nil
}

// findNext selects the next occurrence of the stored pattern,
// wrapping around the end of the document.
func (e *Editor) findNext() error {
	if e.pattern == "" {
		return ErrNoPattern
	}

	// Start past the current match so repeated FindNext advances.
	from := e.cur.Offset()
	if sel, ok := e.cur.Selection(); ok {
		from = sel.End()
	}

	m, ok := search.FindNext(e.buf, e.pattern, from)
	if !ok {
		return nil
	}
	e.selectMatch(m)
	return nil
}

// findPrevious selects the previous occurrence of the stored pattern,
// wrapping around the start of the document.
func (e *Editor) findPrevious() error {
	if e.pattern == "" {
		return ErrNoPattern
	}

	from := e.cur.Offset()
	if sel, ok := e.cur.Selection(); ok {
		from = sel.Start()
	}

	m, ok := search.FindPrevious(e.buf, e.pattern, from)
	if !ok {
		return nil
	}
	e.selectMatch(m)
	return nil
}

// replace replaces the selected occurrence of pattern and selects the
// next one. If the selection is not an occurrence, it only selects
// the next occurrence without editing.
func (e *Editor) replace(pattern, replacement string) error {
	if pattern == "" {
		return ErrNoPattern
	}
	e.pattern = pattern

	sel, ok := e.cur.Selection()
	if ok && e.buf.TextRange(sel.Start(), sel.End()) == pattern {
		before := e.snapshotCursor()
		ch, err := e.buf.Replace(sel.Start(), sel.End(), replacement)
		if err != nil {
			return fmt.Errorf("replace: %w", err)
		}
		e.commit(ch, before)
	}
	return e.findNext()
}

// replaceAll replaces every occurrence of pattern. Offsets are
// recomputed after each replacement since each edit invalidates the
// ones found before it; the scan resumes at the end of the previous
// replacement text. Each replacement is its own history entry.
func (e *Editor) replaceAll(pattern, replacement string) error {
	if pattern == "" {
		return ErrNoPattern
	}
	e.pattern = pattern
	replacementLen := utf8.RuneCountInString(replacement)

	offset := 0
	for {
		m, ok := search.FindNext(e.buf, pattern, offset)
		if !ok || m.Start < offset {
			break
		}

		before := e.snapshotCursor()
		ch, err := e.buf.Replace(m.Start, m.End, replacement)
		if err != nil {
			return fmt.Errorf("replace all: %w", err)
		}
		e.commit(ch, before)
		e.hist.Break()

		offset = m.Start + replacementLen
	}
	return nil
}
