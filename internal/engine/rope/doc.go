// Package rope implements an immutable rope for text storage.
//
// All offsets are rune (Unicode scalar value) indexes, never byte
// indexes. The rope tracks bytes, runes, and newlines per subtree, so
// offset arithmetic, slicing, and line lookups run in O(log n) without
// ever splitting a multi-byte sequence.
//
// Operations return new Rope values; the original is never modified.
// This makes snapshots free and concurrent reads safe.
package rope
