package zopfli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestMatchCache_UnpopulatedSlotMissesCache(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	_, _, ok := lmc.get(4)
	require.False(t, ok)
}

func TestLongestMatchCache_StoreThenGetRoundTrips(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	var sublen [MaxMatch + 1]uint16
	for l := MinMatch; l <= 10; l++ {
		sublen[l] = uint16(100 + l)
	}

	lmc.store(5, MaxMatch, sublen[:], 42, 10)

	length, dist, ok := lmc.get(5)
	require.True(t, ok)
	require.EqualValues(t, 10, length)
	require.EqualValues(t, 42, dist)

	require.EqualValues(t, 103, lmc.sublenAt(5, 3))
	require.EqualValues(t, 110, lmc.sublenAt(5, 10))
}

func TestLongestMatchCache_WriteOnce(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	var sublen [MaxMatch + 1]uint16
	for l := MinMatch; l <= 5; l++ {
		sublen[l] = uint16(l)
	}
	lmc.store(2, MaxMatch, sublen[:], 7, 5)

	// A second store attempt at the same slot must be ignored.
	var sublen2 [MaxMatch + 1]uint16
	for l := MinMatch; l <= 8; l++ {
		sublen2[l] = uint16(900 + l)
	}
	lmc.store(2, MaxMatch, sublen2[:], 99, 8)

	length, dist, ok := lmc.get(2)
	require.True(t, ok)
	require.EqualValues(t, 5, length)
	require.EqualValues(t, 7, dist)
}

func TestLongestMatchCache_SkipsStoreWhenLimitNarrowed(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	var sublen [MaxMatch + 1]uint16
	lmc.store(0, 50, sublen[:], 3, 5) // limit != MaxMatch: must not store.
	_, _, ok := lmc.get(0)
	require.False(t, ok)
}

func TestLongestMatchCache_SkipsStoreWithoutSublen(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	lmc.store(0, MaxMatch, nil, 3, 5)
	_, _, ok := lmc.get(0)
	require.False(t, ok)
}

func TestLongestMatchCache_NoMatchStillPopulates(t *testing.T) {
	lmc := NewLongestMatchCache(16)
	var sublen [MaxMatch + 1]uint16
	lmc.store(1, MaxMatch, sublen[:], 0, 0)

	length, dist, ok := lmc.get(1)
	require.True(t, ok)
	require.EqualValues(t, 0, length)
	require.EqualValues(t, 0, dist)
}

func TestLongestMatchCache_ResetGrowsAndClears(t *testing.T) {
	lmc := NewLongestMatchCache(4)
	var sublen [MaxMatch + 1]uint16
	lmc.store(1, MaxMatch, sublen[:], 3, 5)

	lmc.Reset(32)
	require.Len(t, lmc.populated, 32)
	for i := range lmc.populated {
		require.False(t, lmc.populated[i])
	}
}
