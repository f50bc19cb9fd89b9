// Command huffman-codes builds the Huffman tree for a fixed demonstration
// alphabet and prints each symbol's code as space-separated digits.
package main

import (
	"fmt"

	huffman "github.com/Prabhas1273/huffman-encoding"
)

func main() {
	data := []rune{'a', 'b', 'c', 'd', 'e', 'f'}
	freq := []uint32{5, 9, 12, 13, 16, 45}

	symbols := make([]huffman.Symbol, len(data))
	for i, r := range data {
		symbols[i] = huffman.Symbol(r)
	}

	root := huffman.BuildTree(symbols, freq)
	huffman.EmitCodes(root, func(sym huffman.Symbol, hc huffman.Code) {
		fmt.Printf("%c ->", rune(sym))
		for i := 0; i < int(hc.Size); i++ {
			fmt.Printf(" %d", hc.Bit(i))
		}
		fmt.Println()
	})
}
