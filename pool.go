// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "sync"

// hashPool recycles Hash values across compressions. Grounded directly on
// WoozyMasta-lzo/sliding_window_pool.go's acquire/release pair; the hash
// chain arrays are large enough (roughly 830 KiB per Hash) that reuse
// matters for callers compressing many small inputs back to back.
var hashPool = sync.Pool{
	New: func() any {
		return &Hash{}
	},
}

// acquireHash gets a Hash from the pool, reset to the empty state.
func acquireHash() *Hash {
	h := hashPool.Get().(*Hash)
	h.Reset()
	return h
}

// releaseHash returns h to the pool.
func releaseHash(h *Hash) {
	if h == nil {
		return
	}
	hashPool.Put(h)
}

// lz77StorePool recycles LZ77Store values (and their backing arrays)
// across compressions.
var lz77StorePool = sync.Pool{
	New: func() any {
		return &LZ77Store{}
	},
}

// acquireLZ77Store gets an empty LZ77Store from the pool.
func acquireLZ77Store() *LZ77Store {
	s := lz77StorePool.Get().(*LZ77Store)
	s.Reset()
	return s
}

// releaseLZ77Store returns s to the pool.
func releaseLZ77Store(s *LZ77Store) {
	if s == nil {
		return
	}
	lz77StorePool.Put(s)
}
