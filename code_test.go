package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	type testRow struct {
		size byte
		bits uint32
		str  string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, str: `""`},
		{size: 1, bits: 0x00, str: `"0"`},
		{size: 1, bits: 0x01, str: `"1"`},
		{size: 3, bits: 0x05, str: `"101"`},
		{size: 4, bits: 0x0c, str: `"1100"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.str, func(t *testing.T) {
			assert.Equal(t, row.str, hc.String())
		})
	}
}

func TestCodeBit(t *testing.T) {
	hc := MakeCode(4, 0x0c) // "1100"
	got := []byte{hc.Bit(0), hc.Bit(1), hc.Bit(2), hc.Bit(3)}
	assert.Equal(t, []byte{1, 1, 0, 0}, got)
}

func TestCodeBitOutOfRangePanics(t *testing.T) {
	hc := MakeCode(2, 0x02)
	require.Panics(t, func() { hc.Bit(2) })
	require.Panics(t, func() { hc.Bit(-1) })
}
