// SPDX-License-Identifier: Apache-2.0
//
// Cost-driven recursive block splitter. Grounded directly on
// original_source/src/zopfli/blocksplitter.c's FindMinimum, SplitCost,
// AddSorted, FindLargestSplittableBlock, ZopfliBlockSplitLZ77 and
// ZopfliBlockSplit; the Go expression replaces the C file's out-parameter
// size_t** bookkeeping with slices and replaces its manual insertion sort
// with sort.Search.

package zopfli

import (
	"sort"

	"github.com/pkg/errors"
)

// minSplittableBlock is the smallest lstart..lend span FindLargestSplittableBlock
// will still offer up; below this, splitting can't pay for its own
// overhead (blocksplitter.c's hardcoded 10).
const minSplittableBlock = 10

// minLLSizeForSplitting is the smallest LZ77 symbol count BlockSplitLZ77
// will attempt to split at all (blocksplitter.c: "This code fails on tiny
// files").
const minLLSizeForSplitting = 10

// findMinimumBracket is NUM in blocksplitter.c's FindMinimum: the number
// of probe points used per bracketing iteration.
const findMinimumBracket = 9

// linearScanThreshold is blocksplitter.c's FindMinimum cutover: below
// this span width, a linear scan beats bracketed search.
const linearScanThreshold = 1024

// splitCostFunc evaluates the cost of splitting at i.
type splitCostFunc func(i int) uint64

// findMinimum returns the position in [start, end) minimizing f, using a
// linear scan for small ranges and, for larger ranges, a repeated
// 9-point bracketing search that narrows the interval each round.
func findMinimum(f splitCostFunc, start, end int) int {
	if end-start < linearScanThreshold {
		best := uint64(1<<64 - 1)
		result := start
		for i := start; i < end; i++ {
			v := f(i)
			if v < best {
				best = v
				result = i
			}
		}
		return result
	}

	var p [findMinimumBracket]int
	var vp [findMinimumBracket]uint64
	lastBest := uint64(1<<64 - 1)
	pos := start

	for {
		if end-start <= findMinimumBracket {
			break
		}
		for i := 0; i < findMinimumBracket; i++ {
			p[i] = start + (i+1)*((end-start)/(findMinimumBracket+1))
			vp[i] = f(p[i])
		}
		bestI := 0
		best := vp[0]
		for i := 1; i < findMinimumBracket; i++ {
			if vp[i] < best {
				best = vp[i]
				bestI = i
			}
		}
		if best > lastBest {
			break
		}

		if bestI != 0 {
			start = p[bestI-1]
		}
		if bestI != findMinimumBracket-1 {
			end = p[bestI+1]
		}

		pos = p[bestI]
		lastBest = best
	}
	return pos
}

// estimateSplitCost is SplitCost from blocksplitter.c: the combined cost
// of the two blocks a split at i would produce.
func estimateSplitCost(litlens, dists []uint16, start, end, i int) uint64 {
	return EstimateBlockCost(litlens, dists, start, i) + EstimateBlockCost(litlens, dists, i, end)
}

// addSorted inserts value into points, which is kept sorted ascending,
// replacing blocksplitter.c's AddSorted manual insertion with sort.SearchInts.
func addSorted(points []int, value int) []int {
	i := sort.SearchInts(points, value)
	points = append(points, 0)
	copy(points[i+1:], points[i:])
	points[i] = value
	return points
}

// findLargestSplittableBlock scans the splitpoints found so far (plus
// the implicit 0 and llsize-1 boundaries) and returns the largest span
// not yet marked done, per blocksplitter.c's FindLargestSplittableBlock.
// ok is false once every span is done.
func findLargestSplittableBlock(llsize int, done []bool, splitpoints []int) (lstart, lend int, ok bool) {
	longest := 0
	for i := 0; i <= len(splitpoints); i++ {
		start := 0
		if i != 0 {
			start = splitpoints[i-1]
		}
		end := llsize - 1
		if i != len(splitpoints) {
			end = splitpoints[i]
		}
		if !done[start] && end-start > longest {
			lstart, lend = start, end
			ok = true
			longest = end - start
		}
	}
	return lstart, lend, ok
}

// BlockSplitLZ77 takes an already-produced LZ77 sequence and chooses up
// to maxBlocks-1 interior split points (LZ77 symbol indices, not byte
// offsets) that minimize total estimated dynamic-block cost.
// maxBlocks<=0 means unlimited.
//
// Grounded on blocksplitter.c's ZopfliBlockSplitLZ77.
func BlockSplitLZ77(opts *Options, store *LZ77Store, maxBlocks int) ([]int, error) {
	if opts != nil && !opts.BlockSplitting {
		return nil, nil
	}

	litlens := store.LitLens()
	dists := store.Dists()
	llsize := len(litlens)

	if llsize < minLLSizeForSplitting {
		return nil, nil
	}

	done := make([]bool, llsize)
	var splitpoints []int
	numBlocks := 1
	lstart, lend := 0, llsize

	sink := sinkOrNoop(optsLogger(opts))

	for {
		if maxBlocks > 0 && numBlocks >= maxBlocks {
			break
		}
		if lstart >= lend {
			return nil, errors.Wrapf(ErrInvariantViolation, "block range [%d, %d) is not ordered", lstart, lend)
		}
		if lend-lstart <= 1 {
			return nil, errors.Wrapf(ErrEmptyRange, "block range [%d, %d) has no interior split position", lstart, lend)
		}

		start, end := lstart, lend
		llpos := findMinimum(func(i int) uint64 {
			return estimateSplitCost(litlens, dists, start, end, i)
		}, lstart+1, lend)

		if llpos <= lstart || llpos >= lend {
			return nil, errors.Wrapf(ErrInvariantViolation, "bracketed search returned %d outside (%d, %d)", llpos, lstart, lend)
		}

		splitCost := estimateSplitCost(litlens, dists, lstart, lend, llpos)
		origCost := EstimateBlockCost(litlens, dists, lstart, lend)

		if splitCost > origCost || llpos == lstart+1 || llpos == lend {
			done[lstart] = true
		} else {
			splitpoints = addSorted(splitpoints, llpos)
			numBlocks++
		}

		next, nextEnd, ok := findLargestSplittableBlock(llsize, done, splitpoints)
		if !ok {
			break
		}
		lstart, lend = next, nextEnd

		if lend-lstart < minSplittableBlock {
			break
		}
	}

	if opts != nil && opts.Verbose {
		pos := 0
		npos := 0
		for i := 0; i < llsize && npos < len(splitpoints); i++ {
			length := 1
			if dists[i] != 0 {
				length = int(litlens[i])
			}
			if splitpoints[npos] == i {
				sink.SplitPoint(i, pos)
				npos++
			}
			pos += length
		}
	}

	return splitpoints, nil
}

// BlockSplit is the top-level entry point: produce a greedy LZ77
// sequence for input[start:end] purely to measure split costs, then
// translate the resulting LZ77-index split points into input-byte
// offsets. Grounded on blocksplitter.c's ZopfliBlockSplit, including its
// comment that a plain greedy pass (not the optimal parse) gives better
// block boundaries than an optimal one would.
func BlockSplit(opts *Options, input []byte, start, end, maxBlocks int) ([]int, error) {
	if opts != nil && !opts.BlockSplitting {
		return nil, nil
	}

	h := acquireHash()
	defer releaseHash(h)
	store := acquireLZ77Store()
	defer releaseLZ77Store(store)

	if err := Greedy(opts, h, input, start, end, store, nil); err != nil {
		return nil, err
	}

	lz77points, err := BlockSplitLZ77(opts, store, maxBlocks)
	if err != nil {
		return nil, err
	}

	return lz77pointsToBytePoints(store, start, lz77points), nil
}

// optsLogger extracts opts.Logger, tolerating a nil Options.
func optsLogger(opts *Options) DiagnosticSink {
	if opts == nil {
		return nil
	}
	return opts.Logger
}
