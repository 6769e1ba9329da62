package cursor

import (
	"unicode"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// charClass partitions characters for word movement. A word boundary
// is a transition between classes.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWord                 // letters and digits
	classPunct                // everything else: punctuation and symbols
)

// classOf returns the movement class of a rune.
func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// NextWordOffset returns the offset reached by one word-right step:
// skip the run of the current class, then any whitespace run, landing
// at the next class transition.
func NextWordOffset(buf *buffer.Buffer, offset Offset) Offset {
	length := buf.Len()
	if offset >= length {
		return length
	}

	r, _ := buf.RuneAt(offset)
	cls := classOf(r)
	for offset < length {
		r, _ = buf.RuneAt(offset)
		if classOf(r) != cls {
			break
		}
		offset++
	}
	for offset < length {
		r, _ = buf.RuneAt(offset)
		if classOf(r) != classWhitespace {
			break
		}
		offset++
	}
	return offset
}

// PrevWordOffset returns the offset reached by one word-left step:
// skip any whitespace run backward, then the run of the class of the
// character before the cursor, landing at its start.
func PrevWordOffset(buf *buffer.Buffer, offset Offset) Offset {
	if offset <= 0 {
		return 0
	}

	for offset > 0 {
		r, _ := buf.RuneAt(offset - 1)
		if classOf(r) != classWhitespace {
			break
		}
		offset--
	}
	if offset == 0 {
		return 0
	}

	r, _ := buf.RuneAt(offset - 1)
	cls := classOf(r)
	for offset > 0 {
		r, _ = buf.RuneAt(offset - 1)
		if classOf(r) != cls {
			break
		}
		offset--
	}
	return offset
}

// WordRangeAt returns the run of same-class characters containing the
// given offset. At the end of the buffer the character before the
// offset is used. Returns an empty range for an empty buffer.
func WordRangeAt(buf *buffer.Buffer, offset Offset) Range {
	length := buf.Len()
	if length == 0 {
		return Range{}
	}
	if offset >= length {
		offset = length - 1
	}

	r, _ := buf.RuneAt(offset)
	cls := classOf(r)

	start := offset
	for start > 0 {
		r, _ = buf.RuneAt(start - 1)
		if classOf(r) != cls {
			break
		}
		start--
	}

	end := offset + 1
	for end < length {
		r, _ = buf.RuneAt(end)
		if classOf(r) != cls {
			break
		}
		end++
	}

	return Range{Start: start, End: end}
}
