package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a chord specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "z", "1", "@"
//   - Key names: "enter", "escape", "left", "f5", "space"
//   - With modifiers: "ctrl+z", "primary+shift+z", "alt+backspace"
//
// Names are case-insensitive; letter characters are lowercased.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")

	// A trailing empty part means the key itself is "+", as in
	// "ctrl++".
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) >= 2 {
		keyPart = "+"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(keyPart, mods)
}

// MustParse is Parse for statically known specs; it panics on error.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	if k := FromName(keyPart); k != KeyNone {
		return Event{Key: k, Modifiers: mods}, nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(strings.ToLower(keyPart))
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
