// Package cursor tracks the cursor and selection over a buffer.
//
// A Cursor holds a head offset, an optional selection anchor, and a
// sticky column. All movement is character-granular and clamps at line
// and document boundaries. After every buffer edit the cursor remaps
// its offsets through the edit delta so it never points past the new
// length or into the interior of a multi-byte sequence.
package cursor
