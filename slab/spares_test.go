package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparesLengthOne(t *testing.T) {
	s := newSpares[int](1)
	require.Equal(t, 1, s.Size())

	_, ok := s.TryGet()
	require.False(t, ok)

	b := NewBlock[int](2)
	require.True(t, s.TryPut(b))
	require.False(t, s.TryPut(NewBlock[int](2)))
	require.Equal(t, 1, s.Count())

	got, ok := s.TryGet()
	require.True(t, ok)
	require.Same(t, b, got)
	require.Equal(t, 0, s.Count())
}
