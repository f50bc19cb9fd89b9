package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// MinHeap is a binary min-heap of tree nodes ordered by frequency.  The
// backing array has a fixed capacity chosen at construction and the heap
// never grows past it.
//
// The heap's implicit array shape (children of index i live at 2i+1 and
// 2i+2) and the Huffman tree being assembled from its contents are
// unrelated structures that merely share node payloads.
type MinHeap struct {
	nodes []*Node
}

// NewMinHeap returns an empty heap that can hold up to capacity nodes.
func NewMinHeap(capacity int) *MinHeap {
	assert.Assertf(capacity > 0, "heap capacity %d is not positive", capacity)
	return &MinHeap{nodes: make([]*Node, 0, capacity)}
}

// HeapFromNodes takes ownership of nodes as the heap's initial storage and
// restores the min-heap property bottom-up, sifting down at every index
// from the last parent to the root.  This builds a valid heap in O(n),
// versus O(n log n) for n sequential Inserts; both construction paths
// yield a valid min-heap over the same elements.
func HeapFromNodes(nodes []*Node) *MinHeap {
	assert.Assertf(len(nodes) > 0, "cannot build a heap from 0 nodes")
	h := &MinHeap{nodes: nodes}
	for i := (len(nodes) - 2) / 2; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len returns the number of live entries.
func (h *MinHeap) Len() int {
	return len(h.nodes)
}

// Cap returns the fixed capacity chosen at construction.
func (h *MinHeap) Cap() int {
	return cap(h.nodes)
}

// Insert adds a node, sifting it up until its array parent's frequency is
// no greater than its own.  Equal frequencies do not swap, so insertion
// order among ties is preserved only incidentally.  Inserting into a full
// heap is a programmer error and panics.
func (h *MinHeap) Insert(n *Node) {
	assert.Assertf(len(h.nodes) < cap(h.nodes), "heap overflow: capacity %d", cap(h.nodes))
	h.nodes = append(h.nodes, n)
	h.siftUp(len(h.nodes) - 1)
}

// ExtractMin removes and returns the lowest-frequency node.  The last
// live entry takes over the root slot and sifts down to restore the heap
// property.  Extracting from an empty heap is a programmer error and
// panics.
func (h *MinHeap) ExtractMin() *Node {
	assert.Assertf(len(h.nodes) > 0, "heap underflow")
	top := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes[last] = nil
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top
}

// siftUp swaps index i with its array parent (i-1)/2 while the parent's
// frequency is strictly greater.
func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].Freq <= h.nodes[i].Freq {
			break
		}
		h.nodes[parent], h.nodes[i] = h.nodes[i], h.nodes[parent]
		i = parent
	}
}

// siftDown restores the heap property below index i: pick the smallest of
// i and its two array children by frequency, ties toward i, swap, and
// descend into the affected subtree until no swap is needed.
func (h *MinHeap) siftDown(i int) {
	n := len(h.nodes)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.nodes[left].Freq < h.nodes[smallest].Freq {
			smallest = left
		}
		if right < n && h.nodes[right].Freq < h.nodes[smallest].Freq {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.nodes[i], h.nodes[smallest] = h.nodes[smallest], h.nodes[i]
		i = smallest
	}
}
