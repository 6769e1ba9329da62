// Package keymap maps key chords to editor command names.
//
// A Table holds portable bindings keyed by normalized chord plus a
// layer of platform-specific overrides that win on the platform they
// target. The logical Primary modifier in binding specs is resolved
// to the platform's concrete modifier when the binding is installed,
// so matching is always an exact modifier-set lookup.
//
// Bindings are data: defaults live in a table, and whole keymaps can
// be loaded from and saved to JSON.
package keymap
