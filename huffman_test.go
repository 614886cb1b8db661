package zopfli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCodeLengths_AllZeroFrequenciesYieldZeroLengths(t *testing.T) {
	lengths := buildCodeLengths(make([]uint64, 10), maxCodeLength)
	for _, l := range lengths {
		require.Zero(t, l)
	}
}

func TestBuildCodeLengths_SingleSymbolGetsLengthOne(t *testing.T) {
	freqs := make([]uint64, 5)
	freqs[2] = 100
	lengths := buildCodeLengths(freqs, maxCodeLength)
	require.EqualValues(t, 1, lengths[2])
	require.Zero(t, lengths[0])
}

func TestBuildCodeLengths_SatisfiesKraftInequality(t *testing.T) {
	freqs := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	lengths := buildCodeLengths(freqs, maxCodeLength)

	var kraft float64
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		kraft += 1.0 / float64(uint64(1)<<l)
	}
	require.LessOrEqual(t, kraft, 1.0+1e-9)
}

func TestBuildCodeLengths_RespectsMaxCodeLength(t *testing.T) {
	// A heavily skewed Fibonacci-like distribution forces deep codes
	// without the length-limiting pass.
	freqs := make([]uint64, 40)
	a, b := uint64(1), uint64(1)
	for i := range freqs {
		freqs[i] = a
		a, b = b, a+b
	}
	lengths := buildCodeLengths(freqs, maxCodeLength)
	for _, l := range lengths {
		require.LessOrEqual(t, int(l), maxCodeLength)
	}
}

func TestBuildCodeLengths_ShorterCodesForMoreFrequentSymbols(t *testing.T) {
	freqs := []uint64{1000, 1, 1, 1, 1, 1, 1, 1}
	lengths := buildCodeLengths(freqs, maxCodeLength)
	for i := 1; i < len(freqs); i++ {
		require.LessOrEqual(t, lengths[0], lengths[i])
	}
}

func TestBuildCodeLengths_DeterministicAcrossCalls(t *testing.T) {
	freqs := []uint64{5, 5, 3, 3, 3, 1, 1, 1, 1}
	a := buildCodeLengths(append([]uint64(nil), freqs...), maxCodeLength)
	b := buildCodeLengths(append([]uint64(nil), freqs...), maxCodeLength)
	require.Equal(t, a, b)
}
