package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode bounds code length to what Code.Bits can hold.
const maxBitsPerCode = 32

// SymbolCode pairs a leaf's symbol with its derived code.
type SymbolCode struct {
	Sym  Symbol
	Code Code
}

// EmitCodes walks the tree depth-first in pre-order and calls visit once
// per leaf with that leaf's symbol and its root-to-leaf path as a Code: 0
// for each left edge taken and 1 for each right edge, in the order the
// edges were walked.  Leaves are reported in traversal order, which is
// neither frequency order nor alphabetical order.
//
// A tree consisting of a single leaf has no edges, so the natural
// traversal would assign its symbol an empty code.  That symbol receives
// the one-bit code "0" instead: every symbol of a valid alphabet gets at
// least one bit.
func EmitCodes(root *Node, visit func(Symbol, Code)) {
	assert.Assertf(root != nil, "cannot emit codes for an absent tree")

	if root.IsLeaf() {
		visit(root.Sym, MakeCode(1, 0))
		return
	}

	// The path buffer needs one slot per edge on the longest
	// root-to-leaf path.
	maxLen := root.Height() - 1
	assert.Assertf(maxLen <= maxBitsPerCode, "code length %d exceeds %d bits", maxLen, maxBitsPerCode)

	cw := codeWalker{
		path:  make([]byte, 0, maxLen),
		visit: visit,
	}
	cw.walk(root)
}

// Codes collects every leaf's code in traversal order.
func Codes(root *Node) []SymbolCode {
	out := make([]SymbolCode, 0, countLeaves(root))
	EmitCodes(root, func(sym Symbol, hc Code) {
		out = append(out, SymbolCode{sym, hc})
	})
	return out
}

// Dump writes a programmer-readable listing of every symbol's code, in
// traversal order, to the given writer.
func Dump(w io.Writer, root *Node) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("HuffmanCodes{\n")
	EmitCodes(root, func(sym Symbol, hc Code) {
		fmt.Fprintf(&buf, "\t%d -> %s\n", sym, hc)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type codeWalker {{{

// codeWalker shares one path buffer across the whole recursive descent.
// Each edge pushes its bit on the way down and pops it on the way back
// up, so sibling subtrees never see each other's bits.
type codeWalker struct {
	path  []byte
	visit func(Symbol, Code)
}

func (cw *codeWalker) walk(n *Node) {
	if n.IsLeaf() {
		cw.visit(n.Sym, pathCode(cw.path))
		return
	}
	if n.Left != nil {
		cw.push(0)
		cw.walk(n.Left)
		cw.pop()
	}
	if n.Right != nil {
		cw.push(1)
		cw.walk(n.Right)
		cw.pop()
	}
}

func (cw *codeWalker) push(bit byte) {
	cw.path = append(cw.path, bit)
}

func (cw *codeWalker) pop() {
	cw.path = cw.path[:len(cw.path)-1]
}

// pathCode packs the 0/1 path bits into a Code, first edge first.
func pathCode(path []byte) Code {
	var bits uint32
	for _, b := range path {
		bits = bits<<1 | uint32(b)
	}
	return MakeCode(byte(len(path)), bits)
}

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	return countLeaves(n.Left) + countLeaves(n.Right)
}

// }}}
