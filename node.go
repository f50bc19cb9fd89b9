package huffman

// Node is one node of a Huffman tree: either a leaf carrying a symbol of
// the alphabet, or an internal node produced by merging the two
// lowest-frequency subtrees.  Internal nodes carry InvalidSymbol and
// always have exactly two children; leaves have none.
//
// Ownership is tree-structured: each node belongs to exactly one parent,
// and the root owns the whole tree.  Children never change once assigned.
type Node struct {
	Sym   Symbol
	Freq  uint32
	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf node for one (symbol, frequency) input pair.
func NewLeaf(sym Symbol, freq uint32) *Node {
	return &Node{Sym: sym, Freq: freq}
}

// IsLeaf reports whether n carries a symbol of the alphabet.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An absent subtree has height 0, so a lone leaf has height 1.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	lh := n.Left.Height()
	rh := n.Right.Height()
	if rh > lh {
		lh = rh
	}
	return 1 + lh
}
