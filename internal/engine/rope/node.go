package rope

import (
	"strings"
	"unicode/utf8"
)

// Leaf size constants control the granularity of text storage.
const (
	// MaxLeafSize is the maximum bytes per leaf before splitting.
	MaxLeafSize = 256

	// rebalanceHeight is the tree height that triggers a rebuild.
	rebalanceHeight = 32
)

// Summary holds aggregated metrics for a subtree.
type Summary struct {
	Bytes    int // UTF-8 byte length
	Runes    int // Unicode scalar value count
	Newlines int // '\n' count
}

// add accumulates another summary into this one.
func (s Summary) add(other Summary) Summary {
	return Summary{
		Bytes:    s.Bytes + other.Bytes,
		Runes:    s.Runes + other.Runes,
		Newlines: s.Newlines + other.Newlines,
	}
}

// computeSummary calculates metrics for a string.
func computeSummary(s string) Summary {
	return Summary{
		Bytes:    len(s),
		Runes:    utf8.RuneCountInString(s),
		Newlines: strings.Count(s, "\n"),
	}
}

// node is a rope tree node. Leaves (height == 0) hold text; internal
// nodes hold exactly two children. Nodes are immutable after creation.
type node struct {
	height  int
	summary Summary

	// Internal node fields (height > 0)
	left  *node
	right *node

	// Leaf node field (height == 0)
	data string
}

// newLeaf creates a leaf node for the given text.
func newLeaf(s string) *node {
	return &node{data: s, summary: computeSummary(s)}
}

// newInternal creates an internal node over two children.
func newInternal(left, right *node) *node {
	h := left.height
	if right.height > h {
		h = right.height
	}
	return &node{
		height:  h + 1,
		summary: left.summary.add(right.summary),
		left:    left,
		right:   right,
	}
}

// isLeaf returns true for leaf nodes.
func (n *node) isLeaf() bool {
	return n.height == 0
}

// runeIndexToByte returns the byte index of the given rune index in s.
// Assumes 0 <= runeIdx <= rune count of s.
func runeIndexToByte(s string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	i := 0
	for b := range s {
		if i == runeIdx {
			return b
		}
		i++
	}
	return len(s)
}

// buildLeaves splits a string into leaf nodes of bounded size, keeping
// splits on UTF-8 boundaries.
func buildLeaves(s string) []*node {
	if len(s) == 0 {
		return nil
	}

	var leaves []*node
	for len(s) > MaxLeafSize {
		split := MaxLeafSize
		for split > 0 && !utf8.RuneStart(s[split]) {
			split--
		}
		leaves = append(leaves, newLeaf(s[:split]))
		s = s[split:]
	}
	leaves = append(leaves, newLeaf(s))
	return leaves
}

// buildBalanced builds a balanced tree over the given leaves.
func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return newLeaf("")
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newInternal(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// collectLeaves appends every leaf in the subtree to out, in order.
func (n *node) collectLeaves(out []*node) []*node {
	if n.isLeaf() {
		if len(n.data) > 0 {
			out = append(out, n)
		}
		return out
	}
	out = n.left.collectLeaves(out)
	return n.right.collectLeaves(out)
}

// concat joins two subtrees, rebuilding when the result grows too tall.
func concat(left, right *node) *node {
	if left.summary.Runes == 0 {
		return right
	}
	if right.summary.Runes == 0 {
		return left
	}

	// Merge small adjacent leaves instead of growing the tree.
	if left.isLeaf() && right.isLeaf() && left.summary.Bytes+right.summary.Bytes <= MaxLeafSize {
		return newLeaf(left.data + right.data)
	}

	joined := newInternal(left, right)
	if joined.height >= rebalanceHeight {
		return buildBalanced(joined.collectLeaves(nil))
	}
	return joined
}

// split divides the subtree at the given rune offset.
// Returns the left part [0, offset) and the right part [offset, end).
func (n *node) split(offset int) (*node, *node) {
	if n.isLeaf() {
		b := runeIndexToByte(n.data, offset)
		return newLeaf(n.data[:b]), newLeaf(n.data[b:])
	}

	leftRunes := n.left.summary.Runes
	if offset < leftRunes {
		ll, lr := n.left.split(offset)
		return ll, concat(lr, n.right)
	}
	if offset > leftRunes {
		rl, rr := n.right.split(offset - leftRunes)
		return concat(n.left, rl), rr
	}
	return n.left, n.right
}

// appendTo writes the subtree's text to the builder.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.data)
		return
	}
	n.left.appendTo(sb)
	n.right.appendTo(sb)
}

// textInRange collects the text in the rune range [start, end).
func (n *node) textInRange(sb *strings.Builder, start, end int) {
	if start >= end || start >= n.summary.Runes {
		return
	}
	if end > n.summary.Runes {
		end = n.summary.Runes
	}

	if n.isLeaf() {
		bs := runeIndexToByte(n.data, start)
		be := runeIndexToByte(n.data, end)
		sb.WriteString(n.data[bs:be])
		return
	}

	leftRunes := n.left.summary.Runes
	if start < leftRunes {
		n.left.textInRange(sb, start, end)
	}
	if end > leftRunes {
		rs := start - leftRunes
		if rs < 0 {
			rs = 0
		}
		n.right.textInRange(sb, rs, end-leftRunes)
	}
}

// runeAt returns the rune at the given rune offset.
func (n *node) runeAt(offset int) rune {
	if n.isLeaf() {
		b := runeIndexToByte(n.data, offset)
		r, _ := utf8.DecodeRuneInString(n.data[b:])
		return r
	}
	leftRunes := n.left.summary.Runes
	if offset < leftRunes {
		return n.left.runeAt(offset)
	}
	return n.right.runeAt(offset - leftRunes)
}

// newlinesBefore counts '\n' runes in the rune range [0, offset).
func (n *node) newlinesBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.summary.Runes {
		return n.summary.Newlines
	}

	if n.isLeaf() {
		b := runeIndexToByte(n.data, offset)
		return strings.Count(n.data[:b], "\n")
	}

	leftRunes := n.left.summary.Runes
	if offset <= leftRunes {
		return n.left.newlinesBefore(offset)
	}
	return n.left.summary.Newlines + n.right.newlinesBefore(offset-leftRunes)
}

// offsetAfterNewline returns the rune offset just past the i-th newline
// (1-indexed). The caller guarantees 1 <= i <= total newline count.
func (n *node) offsetAfterNewline(i int) int {
	if n.isLeaf() {
		count := 0
		runeIdx := 0
		for _, r := range n.data {
			runeIdx++
			if r == '\n' {
				count++
				if count == i {
					return runeIdx
				}
			}
		}
		return n.summary.Runes
	}

	if i <= n.left.summary.Newlines {
		return n.left.offsetAfterNewline(i)
	}
	return n.left.summary.Runes + n.right.offsetAfterNewline(i-n.left.summary.Newlines)
}
