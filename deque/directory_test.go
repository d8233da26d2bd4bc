package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/blockdeque/slab"
)

func TestLocate(t *testing.T) {
	d := &Deque[int]{start: 40}

	type testCase struct {
		name   string
		index  int
		block  int
		offset int
	}

	cases := []testCase{
		{name: "First", index: 0, block: 1, offset: 8},
		{name: "EndOfBlock", index: 23, block: 1, offset: 31},
		{name: "NextBlock", index: 24, block: 2, offset: 0},
		{name: "Far", index: 100, block: 4, offset: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			block, offset := d.locate(tc.index)
			require.Equal(t, tc.block, block)
			require.Equal(t, tc.offset, offset)
		})
	}
}

func TestGrowBack(t *testing.T) {
	d := newTestDeque[int](t)
	pushBack(t, d, sequence(BlockSize)...)
	require.Equal(t, 1, d.Blocks())
	require.Equal(t, 0, d.start)

	first := d.blocks[0]

	require.NoError(t, d.PushBack(BlockSize))
	require.Equal(t, 3, d.Blocks())
	require.Equal(t, BlockSize, d.start)

	// The occupied block is moved into the middle third, not copied.
	require.Same(t, first, d.blocks[1])
	require.Equal(t, sequence(BlockSize+1), d.Slice())
}

func TestGrowFront(t *testing.T) {
	d := newTestDeque[int](t)

	require.NoError(t, d.PushFront(0))
	require.Equal(t, 3, d.Blocks())
	require.Equal(t, BlockSize-1, d.start)

	for i := 1; i < BlockSize; i++ {
		require.NoError(t, d.PushFront(i))
	}

	require.Equal(t, 0, d.start)
	require.Equal(t, 3, d.Blocks())

	// Only one block is in use, so the directory is rebuilt with that block in the middle and the others released.
	require.NoError(t, d.PushFront(BlockSize))
	require.Equal(t, 3, d.Blocks())
	require.Equal(t, BlockSize-1, d.start)
	require.Equal(t, 2, d.alloc.Spares())

	for i := 0; i <= BlockSize; i++ {
		require.Equal(t, BlockSize-i, d.Get(i))
	}
}

func TestGrowPreservesUnalignedStart(t *testing.T) {
	d := newTestDeque[int](t)
	pushBack(t, d, sequence(3*BlockSize)...)

	// Pop a few from the front so that the first element isn't at the start of a block, then fill the tail.
	for i := 0; i < 5; i++ {
		_, ok := d.PopFront()
		require.True(t, ok)
	}

	for d.start+d.size < len(d.blocks)*BlockSize {
		require.NoError(t, d.PushBack(d.size+5))
	}

	offset := d.start % BlockSize
	require.NotZero(t, offset)

	n := d.size + 5
	require.NoError(t, d.PushBack(n))
	require.Equal(t, offset, d.start%BlockSize)

	expected := make([]int, 0, n-4)
	for i := 5; i <= n; i++ {
		expected = append(expected, i)
	}

	require.Equal(t, expected, d.Slice())
}

func TestGrowEmptyAfterPops(t *testing.T) {
	d := newTestDeque[int](t)
	pushBack(t, d, sequence(BlockSize)...)

	for !d.Empty() {
		_, ok := d.PopFront()
		require.True(t, ok)
	}

	// All the slots are behind the (empty) occupied range, the next push must grow.
	require.Equal(t, BlockSize, d.start)
	require.NoError(t, d.PushBack(1))
	require.Equal(t, 3, d.Blocks())
	require.Equal(t, []int{1}, d.Slice())
}

func TestGrowMixed(t *testing.T) {
	var (
		d        = newTestDeque[int](t)
		expected []int
	)

	for i := 0; i < 2000; i++ {
		switch i % 5 {
		case 0, 1:
			require.NoError(t, d.PushFront(i))
			expected = append([]int{i}, expected...)
		case 2, 3:
			require.NoError(t, d.PushBack(i))
			expected = append(expected, i)
		default:
			if i%2 == 0 {
				_, ok := d.PopFront()
				require.True(t, ok)
				expected = expected[1:]
			} else {
				_, ok := d.PopBack()
				require.True(t, ok)
				expected = expected[:len(expected)-1]
			}
		}

		require.LessOrEqual(t, 0, d.start)
		require.LessOrEqual(t, d.start+d.size, d.Cap())
	}

	require.Equal(t, expected, d.Slice())
	require.Equal(t, len(expected), d.End().Diff(d.Begin()))
}

func TestGrowAllocationFailure(t *testing.T) {
	d, err := NewWithSize[int](3*BlockSize, Options[int]{BlockLimit: 3})
	require.NoError(t, err)
	require.Equal(t, 3, d.Blocks())

	for i := 0; i < d.Len(); i++ {
		d.Set(i, i)
	}

	require.ErrorIs(t, d.PushBack(-1), slab.ErrAllocation)
	require.ErrorIs(t, d.PushFront(-1), slab.ErrAllocation)
	require.ErrorIs(t, d.Insert(d.Begin(), -1), slab.ErrAllocation)

	require.Equal(t, sequence(3*BlockSize), d.Slice())
	require.Equal(t, 3, d.Blocks())
	require.Equal(t, 0, d.start)

	// Making room at the front doesn't need a new block.
	_, ok := d.PopFront()
	require.True(t, ok)
	require.NoError(t, d.PushFront(0))
	require.Equal(t, sequence(3*BlockSize), d.Slice())
}

func TestGrowReusesReleasedBlocks(t *testing.T) {
	d, err := NewWithSize[int](3*BlockSize, Options[int]{})
	require.NoError(t, err)

	// Empty the head block, growing from the tail leaves it unused so it's released for reuse.
	for i := 0; i < BlockSize; i++ {
		_, ok := d.PopFront()
		require.True(t, ok)
	}

	head := d.blocks[0]

	require.NoError(t, d.PushBack(0))
	require.Equal(t, 6, d.Blocks())
	require.Equal(t, 1, d.alloc.Spares())

	for !d.tailExhausted() {
		require.NoError(t, d.PushBack(0))
	}

	require.NoError(t, d.PushBack(0))
	require.Equal(t, 12, d.Blocks())
	require.Equal(t, 2, d.alloc.Spares())

	found := false

	for _, b := range d.blocks {
		found = found || b == head
	}

	require.True(t, found)
}
