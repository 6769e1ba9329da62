package keymap

import (
	"fmt"
	"sync"

	"github.com/kestrel-edit/kestrel/internal/input/key"
)

// Table resolves key events to command names for one platform.
//
// Two layers are kept: portable bindings and overrides installed for
// this platform specifically. Both are keyed by the normalized chord
// string, so matching requires the exact modifier set.
type Table struct {
	mu sync.RWMutex

	platform  Platform
	portable  map[string]string
	overrides map[string]string
}

// NewTable creates an empty table for the given platform.
func NewTable(platform Platform) *Table {
	return &Table{
		platform:  platform,
		portable:  make(map[string]string),
		overrides: make(map[string]string),
	}
}

// NewDefaultTable creates a table for the platform preloaded with the
// default bindings.
func NewDefaultTable(platform Platform) *Table {
	t := NewTable(platform)
	for _, b := range DefaultBindings {
		// Defaults are static and known to parse.
		if err := t.Add(b); err != nil {
			panic(fmt.Sprintf("default binding %q: %v", b.Chord, err))
		}
	}
	return t
}

// Platform returns the platform this table was built for.
func (t *Table) Platform() Platform {
	return t.platform
}

// normalize parses a chord spec and returns its canonical string with
// Primary resolved for this platform.
func (t *Table) normalize(chord string) (string, error) {
	ev, err := key.Parse(chord)
	if err != nil {
		return "", fmt.Errorf("parsing chord %q: %w", chord, err)
	}
	return ev.Resolve(t.platform.MetaPrimary()).Chord(), nil
}

// Add installs a binding. Platform-specific bindings for other
// platforms are ignored; for this platform they land in the override
// layer. A later Add for the same chord in the same layer replaces
// the earlier one.
func (t *Table) Add(b Binding) error {
	if b.Platform != "" && b.Platform != t.platform {
		return nil
	}

	chord, err := t.normalize(b.Chord)
	if err != nil {
		return err
	}
	if b.Command == "" {
		return fmt.Errorf("chord %q: empty command", b.Chord)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if b.Platform == t.platform && b.Platform != "" {
		t.overrides[chord] = b.Command
	} else {
		t.portable[chord] = b.Command
	}
	return nil
}

// Bind installs a portable binding.
func (t *Table) Bind(chord, command string) error {
	return t.Add(Binding{Chord: chord, Command: command})
}

// Unbind removes a chord from both layers. Removing an absent chord
// is a no-op.
func (t *Table) Unbind(chord string) error {
	normalized, err := t.normalize(chord)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.portable, normalized)
	delete(t.overrides, normalized)
	return nil
}

// Resolve maps a key event to a command, a literal character, or
// unhandled. Overrides win over portable bindings; if nothing matches
// and the event is a printable character without Ctrl, Alt, or Meta,
// the character is returned as a literal.
func (t *Table) Resolve(ev key.Event) Result {
	chord := ev.Resolve(t.platform.MetaPrimary()).Chord()

	t.mu.RLock()
	cmd, ok := t.overrides[chord]
	if !ok {
		cmd, ok = t.portable[chord]
	}
	t.mu.RUnlock()

	if ok {
		return Result{Kind: ResolvedCommand, Command: cmd}
	}
	if ev.IsChar() && !ev.IsModified() {
		return Result{Kind: ResolvedLiteral, Rune: ev.Rune}
	}
	return Result{Kind: ResolvedUnhandled}
}

// Bindings returns the installed bindings with normalized chords,
// overrides marked with the table's platform. Order is unspecified.
func (t *Table) Bindings() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding, 0, len(t.portable)+len(t.overrides))
	for chord, cmd := range t.portable {
		out = append(out, Binding{Chord: chord, Command: cmd})
	}
	for chord, cmd := range t.overrides {
		out = append(out, Binding{Chord: chord, Command: cmd, Platform: t.platform})
	}
	return out
}

// Len returns the number of installed bindings across both layers.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.portable) + len(t.overrides)
}
