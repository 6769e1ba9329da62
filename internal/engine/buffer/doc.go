// Package buffer provides the text buffer for the editing engine.
//
// A Buffer owns the text content and is the single point of truth for
// edits: cursor tracking and history never mutate text directly. All
// coordinates are character-granular. Offset is a rune index into the
// buffer's linear content; Position is a (line, column) pair where the
// column counts runes since line start. Both conversions are exposed
// only through the Buffer and run in O(log n).
//
// Invalid positions and ranges are rejected with errors rather than
// silently clamped, so callers can decide clamp-versus-report per
// operation.
package buffer
