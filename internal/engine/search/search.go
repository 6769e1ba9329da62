// Package search finds literal pattern occurrences in a buffer.
//
// strings.Index does the scanning; byte indexes are converted to rune
// offsets so results line up with buffer addressing. Directional
// lookups wrap around the document.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// Match is one occurrence of a pattern.
type Match = buffer.Range

// FindAll returns every non-overlapping occurrence of pattern in
// document order. An empty pattern matches nothing.
func FindAll(buf *buffer.Buffer, pattern string) []Match {
	if pattern == "" {
		return nil
	}

	text := buf.Text()
	patternRunes := utf8.RuneCountInString(pattern)

	var matches []Match
	runeOffset := 0
	for {
		idx := strings.Index(text, pattern)
		if idx == -1 {
			break
		}
		runeOffset += utf8.RuneCountInString(text[:idx])
		matches = append(matches, buffer.NewRange(runeOffset, runeOffset+patternRunes))

		// Advance past the whole match so occurrences never overlap.
		text = text[idx+len(pattern):]
		runeOffset += patternRunes
	}
	return matches
}

// FindNext returns the first occurrence starting at or after from,
// wrapping to the start of the document when nothing follows. The
// second return is false when the pattern does not occur at all.
func FindNext(buf *buffer.Buffer, pattern string, from buffer.Offset) (Match, bool) {
	matches := FindAll(buf, pattern)
	if len(matches) == 0 {
		return Match{}, false
	}
	for _, m := range matches {
		if m.Start >= from {
			return m, true
		}
	}
	return matches[0], true
}

// FindPrevious returns the last occurrence ending at or before from,
// wrapping to the end of the document when nothing precedes. The
// second return is false when the pattern does not occur at all.
func FindPrevious(buf *buffer.Buffer, pattern string, from buffer.Offset) (Match, bool) {
	matches := FindAll(buf, pattern)
	if len(matches) == 0 {
		return Match{}, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].End <= from {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}

// Count returns the number of non-overlapping occurrences.
func Count(buf *buffer.Buffer, pattern string) int {
	return len(FindAll(buf, pattern))
}
