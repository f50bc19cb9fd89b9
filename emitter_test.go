package huffman

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitCodesClassic(t *testing.T) {
	root := BuildTree(classicSymbols(), classicFreqs)

	// Leaves appear in traversal order, not frequency or symbol order.
	expect := []SymbolCode{
		{5, MakeCode(1, 0x0)},
		{2, MakeCode(3, 0x4)},
		{3, MakeCode(3, 0x5)},
		{0, MakeCode(4, 0xc)},
		{1, MakeCode(4, 0xd)},
		{4, MakeCode(3, 0x7)},
	}
	assert.Equal(t, expect, Codes(root))
}

func TestEmitCodesLongestPairDiffersInFinalBit(t *testing.T) {
	root := BuildTree(classicSymbols(), classicFreqs)

	codeBySym := make(map[Symbol]Code)
	EmitCodes(root, func(sym Symbol, hc Code) {
		codeBySym[sym] = hc
	})

	// The two rarest symbols share the longest length and differ only
	// in their final bit; the most frequent symbol gets a single bit.
	a, b := codeBySym[0], codeBySym[1]
	assert.Equal(t, a.Size, b.Size)
	assert.Equal(t, uint32(1), a.Bits^b.Bits)
	assert.Equal(t, byte(1), codeBySym[5].Size)
}

func TestEmitCodesSingleSymbol(t *testing.T) {
	root := BuildTree([]Symbol{3}, []uint32{10})
	codes := Codes(root)
	require.Len(t, codes, 1)
	assert.Equal(t, SymbolCode{3, MakeCode(1, 0)}, codes[0])
}

func TestEmitCodesAbsentTreePanics(t *testing.T) {
	require.Panics(t, func() { EmitCodes(nil, func(Symbol, Code) {}) })
}

func TestCodesPrefixFree(t *testing.T) {
	inputs := [][]uint32{
		{5, 9, 12, 13, 16, 45},
		{1, 1, 1, 1},
		{1, 2, 4, 8, 16, 32, 64},
		{7, 7, 7, 1, 1},
		{1, 1},
	}
	for _, freqs := range inputs {
		codes := Codes(BuildTree(sequentialSymbols(len(freqs)), freqs))
		require.Len(t, codes, len(freqs))
		for i := range codes {
			for j := range codes {
				if i == j {
					continue
				}
				assert.False(t, isCodePrefix(codes[i].Code, codes[j].Code),
					"%s is a prefix of %s", codes[i].Code, codes[j].Code)
			}
		}
	}
}

func isCodePrefix(a, b Code) bool {
	if a.Size > b.Size {
		return false
	}
	return a.Bits == b.Bits>>(uint(b.Size)-uint(a.Size))
}

func TestCodesOptimal(t *testing.T) {
	inputs := [][]uint32{
		{5, 9, 12, 13, 16, 45},
		{1, 1},
		{3, 1, 4, 1, 5},
		{10, 10, 10, 10},
		{1, 2, 3, 4, 5, 6},
	}
	for _, freqs := range inputs {
		codes := Codes(BuildTree(sequentialSymbols(len(freqs)), freqs))

		var cost uint64
		for _, sc := range codes {
			cost += uint64(freqs[sc.Sym]) * uint64(sc.Code.Size)
		}
		assert.Equal(t, minWeightedLength(freqs), cost, "freqs %v", freqs)
	}
}

// minWeightedLength exhaustively tries every pairwise merge order, which
// covers every full binary tree shape over the given frequencies.  Only
// usable for small alphabets.
func minWeightedLength(freqs []uint32) uint64 {
	if len(freqs) <= 1 {
		return 0
	}
	best := uint64(math.MaxUint64)
	for i := 0; i < len(freqs); i++ {
		for j := i + 1; j < len(freqs); j++ {
			merged := make([]uint32, 0, len(freqs)-1)
			for k, f := range freqs {
				if k != i && k != j {
					merged = append(merged, f)
				}
			}
			merged = append(merged, freqs[i]+freqs[j])
			cost := uint64(freqs[i]) + uint64(freqs[j]) + minWeightedLength(merged)
			if cost < best {
				best = cost
			}
		}
	}
	return best
}

func TestDump(t *testing.T) {
	root := BuildTree(classicSymbols(), classicFreqs)

	expectDump := strings.Join([]string{
		"HuffmanCodes{\n",
		"\t5 -> \"0\"\n",
		"\t2 -> \"100\"\n",
		"\t3 -> \"101\"\n",
		"\t0 -> \"1100\"\n",
		"\t1 -> \"1101\"\n",
		"\t4 -> \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = Dump(&buf, root)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
