// Package key provides key event types and chord parsing for the
// input system.
//
//   - Key: identifies a keyboard key (special keys, function keys, or
//     a character via KeyRune)
//   - Modifier: a bitmask of Ctrl, Alt, Shift, Meta, plus the
//     platform-dependent Primary pseudo-modifier
//   - Event: a single key press with modifiers
//
// Chord specifications are written as "+"-joined modifier names
// followed by a key name: "ctrl+z", "primary+shift+z", "alt+left",
// "f5", "a". Names are case-insensitive. Primary resolves to Meta on
// macOS-style platforms and Ctrl elsewhere; the resolution is a data
// transformation, never an OS probe.
package key
