// SPDX-License-Identifier: Apache-2.0
// Grounded on original_source/src/zopfli/lz77.c (TryGetFromLongestMatchCache,
// StoreInLongestMatchCache), expressed in the Go idiom of
// WoozyMasta-lzo/sliding_window_pool.go's pooled-state types.

package zopfli

// LongestMatchCache memoizes FindLongestMatch results per block-relative
// position. Slots are write-once: an explicit populated bool replaces
// the original's length==1&&dist==0 sentinel, since a populated bit is
// unambiguous and a legal match can never have length 1 anyway.
type LongestMatchCache struct {
	length    []uint16
	dist      []uint16
	populated []bool

	// sublen packs, for each cached position, the distance at which a
	// match of each length 3..length[k] was seen, flattened into one
	// slice indexed by k*maxSublenPerSlot + (length-MinMatch).
	sublen []uint16
}

// maxSublenPerSlot bounds how many sublen entries are cached per
// position: MaxMatch-MinMatch+1 covers every length the match finder can
// report.
const maxSublenPerSlot = MaxMatch - MinMatch + 1

// NewLongestMatchCache allocates a cache for a block of blockSize bytes.
func NewLongestMatchCache(blockSize int) *LongestMatchCache {
	lmc := &LongestMatchCache{}
	lmc.Reset(blockSize)
	return lmc
}

// Reset resizes and clears lmc for a new block, so one cache can be
// reused across blocks.
func (lmc *LongestMatchCache) Reset(blockSize int) {
	if cap(lmc.length) < blockSize {
		lmc.length = make([]uint16, blockSize)
		lmc.dist = make([]uint16, blockSize)
		lmc.populated = make([]bool, blockSize)
		lmc.sublen = make([]uint16, blockSize*maxSublenPerSlot)
	} else {
		lmc.length = lmc.length[:blockSize]
		lmc.dist = lmc.dist[:blockSize]
		lmc.populated = lmc.populated[:blockSize]
		lmc.sublen = lmc.sublen[:blockSize*maxSublenPerSlot]
		for i := range lmc.populated {
			lmc.populated[i] = false
		}
	}
}

// get returns the cached (length, dist) for lmcpos and whether it was
// ever stored.
func (lmc *LongestMatchCache) get(lmcpos int) (length, dist uint16, ok bool) {
	if !lmc.populated[lmcpos] {
		return 0, 0, false
	}
	return lmc.length[lmcpos], lmc.dist[lmcpos], true
}

// sublenAt returns the cached distance for a given match length at
// lmcpos, or 0 if the slot holds no sublen data for that length.
func (lmc *LongestMatchCache) sublenAt(lmcpos int, length int) uint16 {
	if length < MinMatch {
		return 0
	}
	idx := lmcpos*maxSublenPerSlot + (length - MinMatch)
	if idx < 0 || idx >= len(lmc.sublen) {
		return 0
	}
	return lmc.sublen[idx]
}

// maxCachedSublen returns the longest length for which sublenAt has a
// nonzero entry, i.e. how much of the cached sublen table is usable.
// The Go equivalent of ZopfliMaxCachedSublen.
func (lmc *LongestMatchCache) maxCachedSublen(lmcpos int, length int) int {
	maxLen := MinMatch - 1
	for l := MinMatch; l <= length; l++ {
		if lmc.sublenAt(lmcpos, l) == 0 {
			break
		}
		maxLen = l
	}
	return maxLen
}

// store populates lmc's slot for lmcpos, once, with the match finder's
// result and, if a sublen table was computed for the unconstrained
// (limit==MaxMatch) search, the per-length distances. Matches
// StoreInLongestMatchCache's "only store for an unconstrained, unfilled
// slot" rule: a cache entry built from a truncated search would poison
// later unconstrained lookups.
func (lmc *LongestMatchCache) store(lmcpos int, limit int, sublen []uint16, dist, length uint16) {
	if limit != MaxMatch || sublen == nil || lmc.populated[lmcpos] {
		return
	}

	if length < MinMatch {
		lmc.length[lmcpos] = 0
		lmc.dist[lmcpos] = 0
	} else {
		lmc.length[lmcpos] = length
		lmc.dist[lmcpos] = dist
	}
	lmc.populated[lmcpos] = true

	for l := MinMatch; l <= int(length) && l <= MaxMatch; l++ {
		idx := lmcpos*maxSublenPerSlot + (l - MinMatch)
		lmc.sublen[idx] = sublen[l]
	}
}
