package huffman

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols
// are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol marks nodes that carry no symbol of their own, i.e. the
// internal merge nodes of a Huffman tree.
const InvalidSymbol = Symbol(-1)
