// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Greedy walks input[start:end], calling FindLongestMatch at every
// position, scoring candidates against a length-vs-distance heuristic,
// and emitting literals/back-references into store with one-step lazy
// matching.
//
// h must already be usable at start (callers typically get a fresh Hash
// from NewHash/the pool and let Greedy warm it up itself, see below).
// lmc is optional; when non-nil it must be sized for end-start and
// indexed relative to start (a block-relative lmcpos).
//
// Grounded on original_source/src/zopfli/lz77.c's ZopfliLZ77Greedy for
// the exact lazy-matching branch structure, and on
// WoozyMasta-lzo/compress9x.go's compress9x main loop for the Go
// control-flow shape.
func Greedy(opts *Options, h *Hash, input []byte, start, end int, store *LZ77Store, lmc *LongestMatchCache) error {
	if start == end {
		return nil
	}

	maxChainHits := maxChainHitsDefault
	if opts != nil && opts.MaxChainHits > 0 {
		maxChainHits = opts.MaxChainHits
	}

	windowStart := 0
	if start > WindowSize {
		windowStart = start - WindowSize
	}

	h.Warmup(input, windowStart, end)
	for i := windowStart; i < start; i++ {
		h.Update(input, i, end)
	}

	var (
		matchAvailable bool
		prevLength     uint16
		prevDist       uint16
	)

	// dummySublen is scratch space for FindLongestMatch: the greedy
	// producer never reads per-length distances itself, but LMC.store
	// only populates a slot when a sublen array was supplied (it cannot
	// tell "caller doesn't want sublen" apart from "caller wants it but
	// this call is a truncated search" otherwise). Grounded on
	// ZopfliLZ77Greedy's dummysublen[259].
	var dummySublen [MaxMatch + 1]uint16

	for i := start; i < end; i++ {
		h.Update(input, i, end)

		length, dist, err := FindLongestMatch(h, input, i, end, MaxMatch, dummySublen[:], lmc, i-start, maxChainHits)
		if err != nil {
			return err
		}
		score := lengthScore(length, dist)

		// emitCurrent tracks whether control should fall through to the
		// shared "add to output" code below using (length, dist, score)
		// for the *current* position i. The lazy-matching branch below
		// intentionally falls through rather than always continuing; see
		// the inline note.
		emitCurrent := true

		if matchAvailable {
			matchAvailable = false
			prevScore := lengthScore(prevLength, prevDist)

			if score > prevScore+1 {
				store.storeLitLenDist(uint16(input[i-1]), 0)
				if score >= MinMatch && length < MaxMatch {
					matchAvailable = true
					prevLength = length
					prevDist = dist
					emitCurrent = false
				}
				// Else: the deferred literal for i-1 was emitted above,
				// but the current position's own (length, dist, score)
				// still needs handling, so fall through to the shared
				// add-to-output code instead of skipping it. This
				// fallthrough is exactly what ZopfliLZ77Greedy does and
				// is load-bearing for ratio parity.
			} else {
				length = prevLength
				dist = prevDist
				if err := verifyMatch(input, end, i-1, dist, length); err != nil {
					return err
				}
				store.storeLitLenDist(length, dist)
				for j := 2; j < int(length); j++ {
					i++
					h.Update(input, i, end)
				}
				emitCurrent = false
			}
		} else if score >= MinMatch && length < MaxMatch {
			matchAvailable = true
			prevLength = length
			prevDist = dist
			emitCurrent = false
		}

		if !emitCurrent {
			continue
		}

		if score >= MinMatch {
			if err := verifyMatch(input, end, i, dist, length); err != nil {
				return err
			}
			store.storeLitLenDist(length, dist)
		} else {
			length = 1
			store.storeLitLenDist(uint16(input[i]), 0)
		}
		for j := 1; j < int(length); j++ {
			i++
			h.Update(input, i, end)
		}
	}

	return nil
}

// lengthScore is GetLengthScore: a match at a distance over 1024 scores
// one less than its length, whatever that length is. This drops a
// length-3 match at such a distance below MinMatch, since its extra
// distance bits rarely pay for themselves. A heuristic only; the
// block-size estimator in cost.go is the accurate model.
func lengthScore(length, dist uint16) int {
	if dist > 1024 {
		return int(length) - 1
	}
	return int(length)
}

// verifyMatch checks the universal invariant that a back-reference must
// reproduce the bytes it claims to. Always run, even though a release
// build could elide it: the cost of skipping it on a producer bug is a
// silently corrupt LZ77 stream, so this module always pays it.
func verifyMatch(input []byte, end int, pos int, dist, length uint16) error {
	if dist == 0 || length == 0 {
		return nil
	}
	if pos+int(length) > end {
		return ErrInvariantViolation
	}
	src := pos - int(dist)
	if src < 0 {
		return ErrInvariantViolation
	}
	for k := 0; k < int(length); k++ {
		if input[src+k] != input[pos+k] {
			return ErrInvariantViolation
		}
	}
	return nil
}
