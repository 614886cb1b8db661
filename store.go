// SPDX-License-Identifier: Apache-2.0
// Grounded on original_source/src/zopfli/lz77.c's ZopfliStoreLitLenDist.

package zopfli

// LZ77Store is the parallel (litlens, dists) sequence: if dists[i]==0,
// position i is a literal byte whose value is litlens[i]; otherwise it
// is a back-reference of length litlens[i] and distance dists[i]. The
// store grows by Go's native amortized-doubling append, replacing the
// original's manual realloc-on-power-of-two-size trick.
type LZ77Store struct {
	litlens []uint16
	dists   []uint16
}

// NewLZ77Store returns an empty store.
func NewLZ77Store() *LZ77Store {
	return &LZ77Store{}
}

// Reset empties the store while keeping its backing array, for pool
// reuse across compressions.
func (s *LZ77Store) Reset() {
	s.litlens = s.litlens[:0]
	s.dists = s.dists[:0]
}

// Len returns the number of symbols stored.
func (s *LZ77Store) Len() int { return len(s.litlens) }

// LitLens returns the store's length/literal sequence, read-only for
// callers (the splitter and cost estimator never mutate it).
func (s *LZ77Store) LitLens() []uint16 { return s.litlens }

// Dists returns the store's distance sequence.
func (s *LZ77Store) Dists() []uint16 { return s.dists }

// storeLitLenDist appends one symbol: dist==0 means litlen is a literal
// byte value, otherwise (litlen, dist) is a back-reference.
func (s *LZ77Store) storeLitLenDist(litlen, dist uint16) {
	s.litlens = append(s.litlens, litlen)
	s.dists = append(s.dists, dist)
}
