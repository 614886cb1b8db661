package zopfli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateBlockCost_EmptyRangeStillCostsTheEndOfBlockSymbol(t *testing.T) {
	// Even a block with no literals or matches still has to code the
	// end-of-block symbol and describe a (degenerate) tree for it, so
	// its cost is small but not zero.
	litlens := []uint16{}
	dists := []uint16{}
	require.Positive(t, EstimateBlockCost(litlens, dists, 0, 0))
}

func TestEstimateBlockCost_PositiveForNonEmptyRange(t *testing.T) {
	litlens := []uint16{'a', 'b', 'c', 'a', 'b', 'c'}
	dists := []uint16{0, 0, 0, 0, 0, 0}
	require.Positive(t, EstimateBlockCost(litlens, dists, 0, len(litlens)))
}

func TestEstimateBlockCost_RepetitiveDataCostsLessPerSymbol(t *testing.T) {
	uniform := make([]uint16, 1000)
	for i := range uniform {
		uniform[i] = 'x'
	}
	uniformDists := make([]uint16, len(uniform))

	varied := make([]uint16, 1000)
	for i := range varied {
		varied[i] = uint16(i % 256)
	}
	variedDists := make([]uint16, len(varied))

	uniformCost := EstimateBlockCost(uniform, uniformDists, 0, len(uniform))
	variedCost := EstimateBlockCost(varied, variedDists, 0, len(varied))

	require.Less(t, uniformCost, variedCost)
}

func TestEstimateBlockCost_SubadditiveOverASplit(t *testing.T) {
	// Two halves with disjoint, individually-homogeneous symbols cost far
	// less split (each gets a near-trivial one-symbol tree) than combined
	// (one tree diluted across both symbols lengthens every code), easily
	// outweighing the extra tree-header bits the split now has to pay for
	// twice.
	litlens := make([]uint16, 2000)
	dists := make([]uint16, 2000)
	for i := 0; i < 1000; i++ {
		litlens[i] = 'a'
	}
	for i := 1000; i < 2000; i++ {
		litlens[i] = 'z'
	}

	combined := EstimateBlockCost(litlens, dists, 0, 2000)
	split := EstimateBlockCost(litlens, dists, 0, 1000) + EstimateBlockCost(litlens, dists, 1000, 2000)

	require.Less(t, split, combined)
}

func TestEstimateBlockCost_HomogeneousSplitCostsMoreThanCombined(t *testing.T) {
	// Splitting data that is equally homogeneous on both sides buys
	// nothing entropy-wise but still pays for a second tree header and a
	// second end-of-block symbol, so the split must cost strictly more.
	litlens := make([]uint16, 2000)
	for i := range litlens {
		litlens[i] = 'x'
	}
	dists := make([]uint16, 2000)

	combined := EstimateBlockCost(litlens, dists, 0, 2000)
	split := EstimateBlockCost(litlens, dists, 0, 1000) + EstimateBlockCost(litlens, dists, 1000, 2000)

	require.Greater(t, split, combined)
}

func TestEstimateBlockCost_AccountsForMatchExtraBits(t *testing.T) {
	// A long-distance match needs more distance extra bits than a
	// short-distance one of the same length, and extra bits are counted
	// regardless of the (degenerate, single-symbol) Huffman tree.
	length := []uint16{10}
	costFar := EstimateBlockCost(length, []uint16{20000}, 0, 1)
	costNear := EstimateBlockCost(length, []uint16{1}, 0, 1)
	require.Greater(t, costFar, costNear)
}
