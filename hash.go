// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Hash is the sliding-window hash chain: a 3-byte rolling hash seeds two
// lock-step hash-chain triples, a primary one keyed purely on the next
// three bytes, and a secondary one that additionally folds in the length
// of the run of identical bytes at the position, letting
// FindLongestMatch jump past long constant-byte plateaus.
//
// All ring-indexed arrays are sized WindowSize and addressed by
// pos & WindowMask; head is addressed by the folded hash value itself.
// Grounded on WoozyMasta-lzo/sliding_window.go's ring-buffer / hash-chain
// shape, generalized to the two-triple model ZopfliFindLongestMatch
// (original_source/src/zopfli/lz77.c) requires.
type Hash struct {
	head [hashSize]int32 // most recent ring position with this hash, or -1
	prev [WindowSize]int32
	hashval [WindowSize]int32
	same [WindowSize]uint16 // capped forward run length of identical bytes

	head2 [hashSize]int32
	prev2 [WindowSize]int32
	hashval2 [WindowSize]int32

	val  int32 // current folded primary hash
	val2 int32 // current folded secondary hash
}

const (
	hashBits = 15
	hashMask = (1 << hashBits) - 1
	hashSize = 1 << hashBits

	// sameCap bounds the "same" run-length counter so it fits uint16 with
	// headroom for the +1 extension step in updateSame.
	sameCap = 0xfffe
)

// NewHash allocates a Hash with empty chains, ready for Warmup.
func NewHash() *Hash {
	h := &Hash{}
	h.Reset()
	return h
}

// Reset reinitializes h to the empty state, for pool reuse (pool.go).
func (h *Hash) Reset() {
	for i := range h.head {
		h.head[i] = -1
		h.head2[i] = -1
	}
	for i := range h.prev {
		h.prev[i] = -1
		h.prev2[i] = -1
		h.hashval[i] = -1
		h.hashval2[i] = -1
		h.same[i] = 0
	}
	h.val = 0
	h.val2 = 0
}

// foldHash folds one byte into a 15-bit rolling hash, keyed purely on
// the next three bytes. It keeps exactly 3 folds' worth of state since
// each fold shifts by 5 and 3*5 == hashBits, so the mask discards the
// oldest byte automatically.
func foldHash(val int32, b byte) int32 {
	return ((val << 5) ^ int32(b)) & hashMask
}

// Warmup seeds the rolling primary hash from the byte at start (and the
// next, if available) without touching the chains.
func (h *Hash) Warmup(input []byte, start, end int) {
	val := int32(0)
	if start < end && start < len(input) {
		val = foldHash(val, input[start])
	}
	if start+1 < end && start+1 < len(input) {
		val = foldHash(val, input[start+1])
	}
	h.val = val
}

// Update folds in the third byte of the triple starting at pos, inserts
// pos into both hash chains, and refreshes same[pos].
func (h *Hash) Update(input []byte, pos, end int) {
	third := pos + 2
	if third >= end {
		third = end - 1
	}
	var b byte
	if third >= 0 && third < len(input) {
		b = input[third]
	}
	h.val = foldHash(h.val, b)

	hpos := int32(pos & WindowMask)
	hval := h.val

	h.prev[hpos] = h.head[hval]
	h.head[hval] = hpos
	h.hashval[hpos] = hval

	h.updateSame(input, pos, end, hpos)

	val2 := (int32(h.same[hpos]) << 7) ^ h.val
	val2 &= hashMask
	h.val2 = val2

	h.prev2[hpos] = h.head2[val2]
	h.head2[val2] = hpos
	h.hashval2[hpos] = val2
}

// updateSame extends the run-length counter forward from pos, continuing
// the previous position's run minus one step and then scanning ahead
// while bytes keep matching, capped at sameCap. This is what lets the
// match finder and the greedy producer skip across long constant-byte
// regions in O(1) amortized per position.
func (h *Hash) updateSame(input []byte, pos, end int, hpos int32) {
	var amount uint16
	if pos > 0 {
		prevSame := h.same[(pos-1)&WindowMask]
		if prevSame > 1 {
			amount = prevSame - 1
		}
	}
	for pos+int(amount)+1 < end &&
		input[pos] == input[pos+int(amount)+1] &&
		amount < sameCap {
		amount++
	}
	h.same[hpos] = amount
}
