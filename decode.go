package huffman

import (
	"fmt"
)

// AppendCodeBits appends each bit of hc to dst as a 0 or 1 byte value,
// first edge first, and returns the extended slice.
func AppendCodeBits(dst []byte, hc Code) []byte {
	for i := 0; i < int(hc.Size); i++ {
		dst = append(dst, hc.Bit(i))
	}
	return dst
}

// DecodeBits walks the tree over a sequence of unpacked bits (one byte
// per bit, each 0 or 1) and returns the symbols those bits spell out.
// Each bit descends one edge, 0 left and 1 right; reaching a leaf emits
// that leaf's symbol and the walk restarts at the root.
//
// A tree consisting of a single leaf mirrors the EmitCodes policy: each
// "0" bit decodes to the sole symbol.
//
// Unlike tree construction, the bit sequence is data rather than program
// state, so malformed input is reported as an error: a byte other than 0
// or 1, a trailing partial code, or any set bit against a single-leaf
// tree.
func DecodeBits(root *Node, bits []byte) ([]Symbol, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot decode with an absent tree")
	}

	var out []Symbol
	n := root
	for i, b := range bits {
		switch {
		case b > 1:
			return nil, fmt.Errorf("invalid bit value %d at offset %d", b, i)
		case root.IsLeaf():
			if b != 0 {
				return nil, fmt.Errorf("invalid bit value %d at offset %d for a one-symbol alphabet", b, i)
			}
			out = append(out, root.Sym)
			continue
		case b == 0:
			n = n.Left
		default:
			n = n.Right
		}
		if n.IsLeaf() {
			out = append(out, n.Sym)
			n = root
		}
	}
	if n != root {
		return nil, fmt.Errorf("truncated input: %d bits end in the middle of a code", len(bits))
	}
	return out, nil
}
