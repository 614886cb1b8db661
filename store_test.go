package zopfli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZ77Store_StoreAppendsInOrder(t *testing.T) {
	s := NewLZ77Store()
	s.storeLitLenDist('a', 0)
	s.storeLitLenDist(5, 120)
	s.storeLitLenDist('b', 0)

	require.Equal(t, 3, s.Len())
	require.Equal(t, []uint16{'a', 5, 'b'}, s.LitLens())
	require.Equal(t, []uint16{0, 120, 0}, s.Dists())
}

func TestLZ77Store_ResetEmptiesButKeepsCapacity(t *testing.T) {
	s := NewLZ77Store()
	for i := 0; i < 100; i++ {
		s.storeLitLenDist(uint16(i), 0)
	}
	cap1 := cap(s.litlens)

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.Equal(t, cap1, cap(s.litlens))
}
