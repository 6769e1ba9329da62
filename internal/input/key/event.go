package key

import (
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && (unicode.IsPrint(e.Rune) || e.Rune == '\t')
}

// IsModified returns true if any modifier other than Shift is
// pressed. For character events Shift is part of the character
// itself, so a shifted letter still counts as plain text input.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta|ModPrimary) != 0
}

// Resolve returns the event with its Primary pseudo-modifier rewritten
// for the platform.
func (e Event) Resolve(metaPrimary bool) Event {
	e.Modifiers = e.Modifiers.Resolve(metaPrimary)
	return e
}

// Chord returns the canonical chord string for the event, e.g.
// "ctrl+shift+z", "alt+left", "a". Letter runes are lowercased so a
// shifted letter and an explicit shift modifier produce the same
// chord.
func (e Event) Chord() string {
	var b strings.Builder
	if mods := e.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteByte('+')
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		b.WriteString("space")
	case e.Key == KeyRune:
		b.WriteRune(unicode.ToLower(e.Rune))
	default:
		b.WriteString(e.Key.String())
	}
	return b.String()
}

// String returns the canonical chord string.
func (e Event) String() string {
	return e.Chord()
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}
