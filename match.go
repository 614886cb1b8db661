// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "encoding/binary"

// FindLongestMatch returns, for a position and a soft length limit, the
// best (length, distance) within the 32 KiB window, optionally filling
// sublen with the smallest distance at which a match of each length was
// seen.
//
// length==0 and dist==0 together signal "no match"; otherwise
// length is in [MinMatch, MaxMatch] and dist is in [1, WindowSize].
//
// lmc and lmcpos are optional (lmc may be nil): when present, a cache hit
// short-circuits the search, and a fresh result is stored back for later
// callers at the same block-relative position.
//
// Grounded on original_source/src/zopfli/lz77.c's ZopfliFindLongestMatch,
// TryGetFromLongestMatchCache and StoreInLongestMatchCache; the Go
// calling convention (single struct-free multi-return instead of
// out-parameters) follows WoozyMasta-lzo/match.go's
// advanceMatchFinder/adjustMatchForOffsetClass shape.
func FindLongestMatch(h *Hash, input []byte, pos, size, limit int, sublen []uint16, lmc *LongestMatchCache, lmcpos int, maxChainHits int) (length, dist uint16, err error) {
	if limit < MinMatch || limit > MaxMatch {
		return 0, 0, ErrMatchOutOfRange
	}
	if pos >= size {
		return 0, 0, ErrMatchOutOfRange
	}

	if lmc != nil {
		if cachedLen, cachedDist, ok := lmc.get(lmcpos); ok {
			cachedSublen := 0
			if sublen != nil {
				cachedSublen = lmc.maxCachedSublen(lmcpos, int(cachedLen))
			}
			cacheUsable := cachedLen == 0 || cachedDist != 0
			limitOKForCache := cacheUsable &&
				(limit == MaxMatch || int(cachedLen) <= limit || (sublen != nil && cachedSublen >= limit))

			if limitOKForCache {
				if sublen == nil || int(cachedLen) <= cachedSublen {
					l := int(cachedLen)
					if l > limit {
						l = limit
					}
					d := cachedDist
					if sublen != nil {
						fillSublenFromCache(lmc, lmcpos, l, sublen)
						d = sublen[l]
					}
					return uint16(l), d, nil
				}
				limit = int(cachedLen)
			}
		}
	}

	if size-pos < MinMatch {
		return 0, 0, nil
	}
	storeLimit := limit
	if pos+limit > size {
		limit = size - pos
	}

	bestLength, bestDist := findBestMatchOnChains(h, input, pos, size, limit, sublen, maxChainHits)
	if bestDist == 0 {
		// No candidate distance was ever found: normalize to the
		// contractual "no match" pair rather than the internal search
		// seed of bestLength==1.
		bestLength = 0
	}

	if lmc != nil {
		// storeLimit is the limit before the end-of-input clamp: the
		// caller's limit if no cache hit narrowed it, or the cache's stored
		// length if it did. A caller- or cache-narrowed search skips storing
		// (the guard in lmc.store checks limit == MaxMatch); a search cut
		// short only by the end of input is complete for this position, so
		// it is stored.
		lmc.store(lmcpos, storeLimit, sublen, uint16(bestDist), uint16(bestLength))
	}

	return uint16(bestLength), uint16(bestDist), nil
}

// fillSublenFromCache reconstructs sublen[3..=len] from the cache's
// packed per-length distances.
func fillSublenFromCache(lmc *LongestMatchCache, lmcpos, length int, sublen []uint16) {
	for l := MinMatch; l <= length; l++ {
		sublen[l] = lmc.sublenAt(lmcpos, l)
	}
}

// findBestMatchOnChains walks the primary hash chain, switching to the
// secondary, same-run-aware chain once it becomes more efficient, and
// accumulates the best (length, distance) seen.
func findBestMatchOnChains(h *Hash, input []byte, pos, size, limit int, sublen []uint16, maxChainHits int) (bestLength, bestDist int) {
	bestLength = 1
	bestDist = 0

	hpos := int32(pos & WindowMask)
	arrayEnd := pos + limit

	useSecondary := false
	hval := h.hashval[hpos]

	pp := h.head[hval]
	if pp < 0 {
		return bestLength, bestDist
	}
	p := h.prev[pp]
	if p < 0 {
		return bestLength, bestDist
	}
	dist := wrapDelta(pp, p)

	chainHits := maxChainHits
	if chainHits <= 0 {
		chainHits = maxChainHitsDefault
	}

	for dist < WindowSize {
		currentLength := 0

		if dist > 0 {
			candidatePos := pos - dist
			scan := pos
			match := candidatePos

			if pos+bestLength >= size || input[scan+bestLength] == input[match+bestLength] {
				same0 := h.same[pos&WindowMask]
				if same0 > 2 && input[scan] == input[match] {
					same1 := h.same[candidatePos&WindowMask]
					same := same0
					if same1 < same {
						same = same1
					}
					if int(same) > limit {
						same = uint16(limit)
					}
					scan += int(same)
					match += int(same)
				}

				currentLength = scan + longestCommonPrefix(input, scan, match, arrayEnd) - pos
			}

			if currentLength > bestLength {
				bestDist = dist
				if sublen != nil {
					for j := bestLength + 1; j <= currentLength; j++ {
						sublen[j] = uint16(dist)
					}
				}
				bestLength = currentLength
				if currentLength >= limit {
					break
				}
			}
		}

		if !useSecondary && bestLength >= int(h.same[hpos]) && h.val2 == h.hashval2[p] {
			useSecondary = true
		}

		pp = p
		if useSecondary {
			p = h.prev2[p]
		} else {
			p = h.prev[p]
		}
		if p == pp || p < 0 {
			break
		}
		dist += wrapDelta(pp, p)

		chainHits--
		if chainHits <= 0 {
			break
		}
	}

	return bestLength, bestDist
}

// wrapDelta computes the wraparound distance rule: dist accumulates
// old-new when the ring index decreases, or old-new+W when it wraps.
func wrapDelta(oldPos, newPos int32) int {
	if newPos < oldPos {
		return int(oldPos - newPos)
	}
	return int(oldPos-newPos) + WindowSize
}

// longestCommonPrefix returns how many bytes of input[scan:end] and
// input[match:] agree, where end = scan's search boundary, compared
// 8 bytes at a time where possible. Grounded on
// original_source/src/zopfli/lz77.c's GetMatch, expressed as a plain
// byte-slice primitive instead of raw pointer arithmetic.
func longestCommonPrefix(input []byte, scan, match, end int) int {
	start := scan
	for end-scan >= 8 {
		a := binary.LittleEndian.Uint64(input[scan : scan+8])
		b := binary.LittleEndian.Uint64(input[match : match+8])
		if a != b {
			break
		}
		scan += 8
		match += 8
	}
	for scan < end && input[scan] == input[match] {
		scan++
		match++
	}
	return scan - start
}
