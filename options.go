// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Options configures a compression run: the core's recognized options,
// plus the ambient-stack additions (Logger, MaxChainHits) this module
// carries on top of the upstream option set.
type Options struct {
	// Verbose, if set, makes the splitter report each accepted split point
	// to Logger, one SplitPoint call per point carrying its LZ77 symbol
	// index and byte position. The default logrus sink writes one line per
	// split point with both values in decimal; no single summary line and
	// no hex positions are written.
	Verbose bool
	// VerboseMore is accepted for interface parity with the upstream
	// option table but unused by the core.
	VerboseMore bool
	// NumIterations is accepted for interface parity with the upstream
	// option table but unused by the core (consumed by an out-of-scope
	// iterative cost optimizer).
	NumIterations int
	// BlockSplitting, if false, skips the splitter entirely: BlockSplit
	// and BlockSplitLZ77 return an empty split list.
	BlockSplitting bool
	// BlockSplittingLast is accepted for interface parity but unused by
	// the core (it orders splitting relative to other, out-of-scope
	// optimizations).
	BlockSplittingLast bool
	// BlockSplittingMax is passed as maxBlocks; 0 means unlimited.
	BlockSplittingMax int

	// MaxChainHits caps how many hash-chain nodes FindLongestMatch visits
	// per call before giving up on improving the current best match.
	MaxChainHits int

	// Logger receives verbose diagnostics. A nil Logger disables output
	// even when Verbose is set; DefaultOptions populates it with a
	// logrus-backed sink.
	Logger DiagnosticSink
}

// DefaultOptions returns sensible defaults: splitting enabled, at most 15
// blocks, a generous chain ceiling, and a logrus-backed diagnostic sink.
func DefaultOptions() *Options {
	return &Options{
		NumIterations:      15,
		BlockSplitting:     true,
		BlockSplittingMax:  15,
		MaxChainHits:       maxChainHitsDefault,
		Logger:             NewLogrusSink(),
	}
}
