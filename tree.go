package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs the Huffman tree for the given alphabet.  The two
// slices pair a symbol with its frequency, index by index, and must be
// non-empty and of equal length.  Symbols must be distinct and
// non-negative; violating either is a programmer error and panics.
//
// The returned root owns every node of the tree.  One leaf exists per
// input pair, created up front; every internal node is created by one
// merge step and its children never change afterward.  For a single-pair
// input the sole leaf is the whole tree — see EmitCodes for the code
// assigned in that case.
//
// Extraction order is significant: the first extraction yields the global
// minimum and becomes the left child, the second becomes the right.  With
// the heap's no-swap-on-ties rule the tree shape is deterministic for a
// fixed input order.  Reordering equal-frequency inputs may move symbols
// between subtrees but never changes the multiset of code lengths.
func BuildTree(symbols []Symbol, freqs []uint32) *Node {
	assert.Assertf(len(symbols) > 0, "cannot build a Huffman tree for 0 symbols")
	assert.Assertf(len(symbols) == len(freqs), "have %d symbols but %d frequencies", len(symbols), len(freqs))

	leaves := make([]*Node, len(symbols))
	seen := make(map[Symbol]struct{}, len(symbols))
	for i, sym := range symbols {
		assert.Assertf(sym >= 0, "negative symbol %d at index %d", sym, i)
		_, dup := seen[sym]
		assert.Assertf(!dup, "duplicate symbol %d at index %d", sym, i)
		seen[sym] = struct{}{}
		leaves[i] = NewLeaf(sym, freqs[i])
	}

	h := HeapFromNodes(leaves)
	for h.Len() > 1 {
		left := h.ExtractMin()
		right := h.ExtractMin()

		// Compute the merged frequency using saturating addition.
		sum := left.Freq + right.Freq
		if sum < left.Freq {
			sum = math.MaxUint32
		}

		h.Insert(&Node{
			Sym:   InvalidSymbol,
			Freq:  sum,
			Left:  left,
			Right: right,
		})
	}
	return h.ExtractMin()
}
