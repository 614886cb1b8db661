// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package zopfli implements the core of a DEFLATE-compatible (RFC 1951),
maximum-compression LZ77 entropy compressor of the "zopfli" family: a
sliding-window hash-chain match finder with a per-block longest-match
cache, a greedy LZ77 producer with one-step lazy matching, and a
cost-driven recursive block splitter.

This package is single-shot over a fully buffered input and single-
threaded by contract; it does not decompress, stream, or parallelize
across blocks. Container framing (gzip/zlib), the final dynamic-Huffman
bitstream emission, and any CLI belong to a caller built on top of this
package.

# Producing an LZ77 stream

	opts := zopfli.DefaultOptions()
	h := zopfli.NewHash()
	store := zopfli.NewLZ77Store()
	if err := zopfli.Greedy(opts, h, input, 0, len(input), store, nil); err != nil {
		// handle err
	}

# Splitting into blocks

	points, err := zopfli.BlockSplit(opts, input, 0, len(input), opts.BlockSplittingMax)
	// points are byte offsets into input, strictly increasing, each interior to (0, len(input))

# One call for both stages

	core := zopfli.NewCore(zopfli.DefaultOptions())
	result, err := core.Run(input, 0, len(input))
	// result.SplitPoints are byte offsets; result.Store is the LZ77 stream
	defer zopfli.ReleaseResult(result)
*/
package zopfli
