package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModPrimary is the platform-dependent primary shortcut modifier.
	// It only appears in parsed bindings; Resolve rewrites it to
	// ModMeta or ModCtrl before any matching happens.
	ModPrimary
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Resolve rewrites the Primary pseudo-modifier to the concrete
// modifier for the platform: Meta when metaPrimary is true, Ctrl
// otherwise.
func (m Modifier) Resolve(metaPrimary bool) Modifier {
	if !m.Has(ModPrimary) {
		return m
	}
	m = m.Without(ModPrimary)
	if metaPrimary {
		return m.With(ModMeta)
	}
	return m.With(ModCtrl)
}

// String returns the canonical representation, modifiers in fixed
// order: "ctrl+alt+shift+meta". Primary renders as "primary".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModPrimary) {
		parts = append(parts, "primary")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"win":     ModMeta,
	"super":   ModMeta,
	"primary": ModPrimary,
}

// ModifierFromName returns the Modifier for a given name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	name = strings.ToLower(strings.TrimSpace(name))
	if m, ok := modifierNameMap[name]; ok {
		return m
	}
	return ModNone
}
