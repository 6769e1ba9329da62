package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

func TestFindAll(t *testing.T) {
	buf := buffer.FromString("the cat and the dog and the bird")

	matches := FindAll(buf, "the")
	require.Len(t, matches, 3)
	assert.Equal(t, buffer.NewRange(0, 3), matches[0])
	assert.Equal(t, buffer.NewRange(12, 15), matches[1])
	assert.Equal(t, buffer.NewRange(24, 27), matches[2])
}

func TestFindAllNoOverlap(t *testing.T) {
	buf := buffer.FromString("aaaa")

	matches := FindAll(buf, "aa")
	require.Len(t, matches, 2)
	assert.Equal(t, buffer.NewRange(0, 2), matches[0])
	assert.Equal(t, buffer.NewRange(2, 4), matches[1])
}

func TestFindAllEmptyPattern(t *testing.T) {
	buf := buffer.FromString("hello")
	assert.Empty(t, FindAll(buf, ""))
}

func TestFindAllRuneOffsets(t *testing.T) {
	// Multi-byte characters before a match must not skew the offsets.
	buf := buffer.FromString("héllo wörld hello")

	matches := FindAll(buf, "hello")
	require.Len(t, matches, 1)
	assert.Equal(t, buffer.NewRange(12, 17), matches[0])
}

func TestFindNext(t *testing.T) {
	buf := buffer.FromString("one two one two")

	m, ok := FindNext(buf, "one", 0)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)

	m, ok = FindNext(buf, "one", 1)
	require.True(t, ok)
	assert.Equal(t, 8, m.Start)
}

func TestFindNextWrapsAround(t *testing.T) {
	buf := buffer.FromString("one two one two")

	m, ok := FindNext(buf, "one", 9)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)
}

func TestFindPrevious(t *testing.T) {
	buf := buffer.FromString("one two one two")

	m, ok := FindPrevious(buf, "one", 8)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)
}

func TestFindPreviousWrapsAround(t *testing.T) {
	buf := buffer.FromString("one two one two")

	m, ok := FindPrevious(buf, "one", 2)
	require.True(t, ok)
	assert.Equal(t, 8, m.Start)
}

func TestFindAbsent(t *testing.T) {
	buf := buffer.FromString("hello world")

	_, ok := FindNext(buf, "missing", 0)
	assert.False(t, ok)
	_, ok = FindPrevious(buf, "missing", 5)
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	buf := buffer.FromString("ab ab ab")
	assert.Equal(t, 3, Count(buf, "ab"))
	assert.Equal(t, 0, Count(buf, "zz"))
}
