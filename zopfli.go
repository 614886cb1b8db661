// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package zopfli

// Core bundles an Options value with the pooled resources a compression
// needs, mirroring the shape of WoozyMasta-lzo's top-level Compress
// entry point (a single dispatcher call configured by options) adapted
// to this module's scope: instead of picking a compression level, Core
// runs the match-finder/producer/splitter pipeline and hands back the
// LZ77 store plus split points for a downstream emitter to consume.
type Core struct {
	opts *Options
}

// NewCore returns a Core configured with opts. A nil opts uses
// DefaultOptions.
func NewCore(opts *Options) *Core {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Core{opts: opts}
}

// Result is everything a downstream emitter needs: the LZ77 symbol
// stream and the byte offsets at which to start new DEFLATE blocks.
type Result struct {
	Store       *LZ77Store
	SplitPoints []int
}

// Run executes the full core pipeline over input[start:end]: greedy LZ77
// production, then (unless Options.BlockSplitting is false) block
// splitting. The returned Store is caller-owned; pass it to
// ReleaseResult when done to return pooled buffers.
func (c *Core) Run(input []byte, start, end int) (*Result, error) {
	h := acquireHash()
	defer releaseHash(h)

	store := acquireLZ77Store()

	if err := Greedy(c.opts, h, input, start, end, store, nil); err != nil {
		releaseLZ77Store(store)
		return nil, err
	}

	maxBlocks := 0
	if c.opts != nil {
		maxBlocks = c.opts.BlockSplittingMax
	}

	var points []int
	if c.opts == nil || c.opts.BlockSplitting {
		lz77points, err := BlockSplitLZ77(c.opts, store, maxBlocks)
		if err != nil {
			releaseLZ77Store(store)
			return nil, err
		}
		points = lz77pointsToBytePoints(store, start, lz77points)
	}

	return &Result{Store: store, SplitPoints: points}, nil
}

// ReleaseResult returns r.Store's backing arrays to the pool. Callers
// that want to keep the store alive past this call should not call it.
func ReleaseResult(r *Result) {
	if r == nil {
		return
	}
	releaseLZ77Store(r.Store)
}

// lz77pointsToBytePoints is the LZ77-index to byte-offset conversion
// used by both BlockSplit and Core.Run, so Core.Run can reuse the store
// it already produced instead of having BlockSplit re-run Greedy from
// scratch.
func lz77pointsToBytePoints(store *LZ77Store, start int, lz77points []int) []int {
	if len(lz77points) == 0 {
		return nil
	}
	litlens := store.LitLens()
	dists := store.Dists()

	bytePoints := make([]int, 0, len(lz77points))
	pos := start
	npos := 0
	for i := 0; i < store.Len() && npos < len(lz77points); i++ {
		if lz77points[npos] == i {
			bytePoints = append(bytePoints, pos)
			npos++
		}
		if dists[i] == 0 {
			pos++
		} else {
			pos += int(litlens[i])
		}
	}
	return bytePoints
}
