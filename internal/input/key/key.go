package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace

	// KeyRune is used for character keys (letters, numbers,
	// punctuation). The actual character is stored in Event.Rune.
	KeyRune
)

// keyNames maps each key to its canonical lowercase name.
var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeySpace:     "space",
}

// keyAliases maps accepted spelling variants to keys, on top of the
// canonical names.
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"ins":    KeyInsert,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
}

// keyNameMap is the reverse lookup, built from keyNames plus aliases.
var keyNameMap = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[name] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// String returns the canonical name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsNavigationKey returns true if this is an arrow, home, end, or
// page key.
func (k Key) IsNavigationKey() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
