package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit of Bits is the first bit, so the bits appear in the
	// order the tree edges were walked.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of this Code, counting from the root edge.
func (hc Code) Bit(i int) byte {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range for %d-bit code", i, hc.Size)
	return byte(hc.Bits>>(uint(hc.Size)-1-uint(i))) & 1
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
