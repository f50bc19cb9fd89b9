// Package huffman derives prefix-free binary codes for a fixed alphabet of
// symbols from their relative frequencies, using the classical greedy
// Huffman construction: a min-heap of (symbol, frequency) nodes is merged
// two at a time into a binary tree, and each leaf's root-to-leaf path
// becomes that symbol's code.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
