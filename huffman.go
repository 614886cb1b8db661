// SPDX-License-Identifier: Apache-2.0
//
// Length-limited Huffman code-length construction for cost.go's dynamic
// block cost model. No library in the retrieved pack exposes an
// embeddable length-limited Huffman code-length builder (klauspost/compress
// and golang/snappy both bury their own Huffman tables as unexported
// implementation detail of their respective codecs); built on stdlib
// container/heap, a justified standard-library use per the grounding
// rules since this is a general algorithm, not a library concern any
// pack dependency covers.

package zopfli

import "container/heap"

// huffmanNode is one node of the code-length tree: a leaf holds a symbol
// and its frequency; an internal node holds the combined frequency of
// its two children.
type huffmanNode struct {
	freq        uint64
	symbol      int // valid only when left == nil && right == nil
	left, right *huffmanNode
	// depth is not filled in: assignDepths records each leaf's depth in
	// the lengths slice instead.
	depth int
}

// nodeHeap is a min-heap of *huffmanNode ordered by frequency, with
// insertion order as a tiebreaker so construction is deterministic and
// idempotent across repeated calls on the same frequencies.
type nodeHeap struct {
	nodes []*huffmanNode
	seq   []int
	next  int // insertion counter handed out by Push
}

func (h nodeHeap) Len() int { return len(h.nodes) }
func (h nodeHeap) Less(i, j int) bool {
	if h.nodes[i].freq != h.nodes[j].freq {
		return h.nodes[i].freq < h.nodes[j].freq
	}
	return h.seq[i] < h.seq[j]
}
func (h nodeHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.seq[i], h.seq[j] = h.seq[j], h.seq[i]
}
func (h *nodeHeap) Push(x any) {
	h.nodes = append(h.nodes, x.(*huffmanNode))
	h.seq = append(h.seq, h.next)
	h.next++
}
func (h *nodeHeap) Pop() any {
	n := len(h.nodes)
	node := h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	h.seq = h.seq[:n-1]
	return node
}

// buildCodeLengths returns, for each index of freqs, the Huffman code
// length that would encode it (0 for symbols with zero frequency), with
// every length capped at maxLen. Symbols with equal frequency break ties
// by symbol index (ascending), keeping the result independent of
// map/slice iteration order. Callers building a literal/length or
// distance tree pass maxCodeLength (15, RFC 1951 §3.2.7); callers
// building the code-length tree itself pass 7, the limit the
// code-length alphabet's own 3-bit-per-entry header imposes.
func buildCodeLengths(freqs []uint64, maxLen int) []uint8 {
	lengths := make([]uint8, len(freqs))

	used := 0
	for _, f := range freqs {
		if f > 0 {
			used++
		}
	}
	if used == 0 {
		return lengths
	}
	if used == 1 {
		for i, f := range freqs {
			if f > 0 {
				lengths[i] = 1
			}
		}
		return lengths
	}

	h := &nodeHeap{}
	heap.Init(h)
	for sym, f := range freqs {
		if f > 0 {
			heap.Push(h, &huffmanNode{freq: f, symbol: sym})
		}
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*huffmanNode)
		b := heap.Pop(h).(*huffmanNode)
		heap.Push(h, &huffmanNode{freq: a.freq + b.freq, left: a, right: b})
	}

	root := h.nodes[0]
	assignDepths(root, 0, lengths)
	limitCodeLengths(lengths, maxLen)
	return lengths
}

// assignDepths walks the tree, recording each leaf's depth (its
// unconstrained code length) into lengths.
func assignDepths(n *huffmanNode, depth int, lengths []uint8) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		if depth == 0 {
			depth = 1 // a single-symbol subtree still needs one bit.
		}
		lengths[n.symbol] = uint8(minInt(depth, 255))
		return
	}
	assignDepths(n.left, depth+1, lengths)
	assignDepths(n.right, depth+1, lengths)
}

// limitCodeLengths re-balances a code-length assignment that exceeds
// maxLen. It clamps every overlong code to maxLen, then repeatedly pushes
// the shallowest pushable symbol one level deeper until the Kraft sum no
// longer oversubscribes the code space. Every alphabet this module builds
// codes for is no larger than 2^maxLen (288 and 32 symbols at maxLen 15,
// 19 symbols at maxLen 7), so the Kraft sum with every symbol pushed all
// the way to maxLen never exceeds the 2^maxLen legality threshold: the
// loop always has room to terminate. This trades a sliver of
// code-length optimality in the rare oversubscribed case for a simple,
// obviously-terminating fixup, which is enough for a cost estimate
// rather than a byte-exact encoder.
func limitCodeLengths(lengths []uint8, maxLen int) {
	overlong := false
	for _, l := range lengths {
		if int(l) > maxLen {
			overlong = true
			break
		}
	}
	if !overlong {
		return
	}
	for i := range lengths {
		if int(lengths[i]) > maxLen {
			lengths[i] = uint8(maxLen)
		}
	}

	target := int64(1) << uint(maxLen)
	for kraftSum(lengths, maxLen) > target {
		if !pushOneSymbolDeeper(lengths, maxLen) {
			return
		}
	}
}

// kraftSum returns Σ 2^(maxLen-len) over populated symbols, scaled so the
// legality threshold is the integer 2^maxLen.
func kraftSum(lengths []uint8, maxLen int) int64 {
	var sum int64
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		sum += int64(1) << uint(maxLen-int(l))
	}
	return sum
}

// pushOneSymbolDeeper finds the shallowest symbol with 0 < length < maxLen
// and extends it by one level, reporting whether it found one.
func pushOneSymbolDeeper(lengths []uint8, maxLen int) bool {
	for depth := 1; depth < maxLen; depth++ {
		for i, l := range lengths {
			if int(l) == depth {
				lengths[i] = uint8(depth + 1)
				return true
			}
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
