package zopfli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func warmAndAdvance(t *testing.T, h *Hash, input []byte, upto int) {
	t.Helper()
	h.Warmup(input, 0, len(input))
	for i := 0; i <= upto; i++ {
		h.Update(input, i, len(input))
	}
}

func TestFindLongestMatch_NoPriorOccurrenceReturnsNoMatch(t *testing.T) {
	input := []byte("xyz")
	h := NewHash()
	warmAndAdvance(t, h, input, 0)

	length, dist, err := FindLongestMatch(h, input, 0, len(input), MaxMatch, nil, nil, 0, maxChainHitsDefault)
	require.NoError(t, err)
	require.EqualValues(t, 0, length)
	require.EqualValues(t, 0, dist)
}

func TestFindLongestMatch_FindsRepeatedTriple(t *testing.T) {
	input := []byte("ABCABCABCABC")
	h := NewHash()
	for i := 0; i < len(input); i++ {
		if i == 0 {
			h.Warmup(input, 0, len(input))
		}
		h.Update(input, i, len(input))
	}

	// At position 3 the bytes "ABCABCABCABC"[3:] repeat what started at 0.
	length, dist, err := FindLongestMatch(h, input, 3, len(input), MaxMatch, nil, nil, 3, maxChainHitsDefault)
	require.NoError(t, err)
	require.EqualValues(t, 3, dist)
	require.GreaterOrEqual(t, length, uint16(MinMatch))
	require.LessOrEqual(t, int(length), len(input)-3)

	verifyBackReference(t, input, 3, dist, length)
}

func TestFindLongestMatch_SublenPopulatedUpToReportedLength(t *testing.T) {
	input := bytes.Repeat([]byte{0x55}, 300)
	h := NewHash()
	for i := range input {
		if i == 0 {
			h.Warmup(input, 0, len(input))
		}
		h.Update(input, i, len(input))
	}

	sublen := make([]uint16, MaxMatch+1)
	length, dist, err := FindLongestMatch(h, input, 200, len(input), MaxMatch, sublen, nil, 0, maxChainHitsDefault)
	require.NoError(t, err)
	require.Greater(t, length, uint16(MinMatch))
	require.EqualValues(t, 1, dist)

	for l := MinMatch; l <= int(length); l++ {
		require.NotZero(t, sublen[l], "sublen[%d] must be populated up to the reported length", l)
	}
}

func TestFindLongestMatch_RejectsOutOfRangeLimit(t *testing.T) {
	input := []byte("hello")
	h := NewHash()
	h.Warmup(input, 0, len(input))
	h.Update(input, 0, len(input))

	_, _, err := FindLongestMatch(h, input, 0, len(input), 1, nil, nil, 0, maxChainHitsDefault)
	require.ErrorIs(t, err, ErrMatchOutOfRange)

	_, _, err = FindLongestMatch(h, input, 0, len(input), MaxMatch+1, nil, nil, 0, maxChainHitsDefault)
	require.ErrorIs(t, err, ErrMatchOutOfRange)
}

func TestFindLongestMatch_PopulatesLMCOnUnconstrainedSearch(t *testing.T) {
	input := []byte("ABCABCABCABC")
	h := NewHash()
	for i := range input {
		if i == 0 {
			h.Warmup(input, 0, len(input))
		}
		h.Update(input, i, len(input))
	}

	lmc := NewLongestMatchCache(len(input))
	sublen := make([]uint16, MaxMatch+1)
	length, dist, err := FindLongestMatch(h, input, 3, len(input), MaxMatch, sublen, lmc, 3, maxChainHitsDefault)
	require.NoError(t, err)

	cachedLength, cachedDist, ok := lmc.get(3)
	require.True(t, ok)
	require.Equal(t, length, cachedLength)
	require.Equal(t, dist, cachedDist)
}

// verifyBackReference checks the universal invariant of spec property 1
// directly, independent of greedy.go's verifyMatch.
func verifyBackReference(t *testing.T, input []byte, pos int, dist, length uint16) {
	t.Helper()
	require.GreaterOrEqual(t, dist, uint16(1))
	require.LessOrEqual(t, int(dist), pos)
	for k := 0; k < int(length); k++ {
		require.Equal(t, input[pos-int(dist)+k], input[pos+k])
	}
}
