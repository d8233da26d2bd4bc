package deque

import (
	"github.com/couchbase/blockdeque/maths"
	"github.com/couchbase/blockdeque/slab"
)

// cursor is the position shared by every iterator type, a block within a snapshot of the block directory and an offset
// within that block. The offset is always in the range [0, BlockSize), the block may be outside the directory for
// positions which must not be dereferenced (e.g. 'End()' when the last block is full).
type cursor[T any] struct {
	blocks []*slab.Block[T]
	block  int
	offset int
}

// add returns the cursor moved n slots, crossing block boundaries in either direction.
func (c cursor[T]) add(n int) cursor[T] {
	slot := c.offset + n

	c.block += maths.FloorDiv(slot, BlockSize)
	c.offset = maths.Mod(slot, BlockSize)

	return c
}

// diff returns the number of slots between the two cursors.
func (c cursor[T]) diff(other cursor[T]) int {
	return (c.block-other.block)*BlockSize + c.offset - other.offset
}

// compare returns -1, 0 or 1 depending on whether c is before, at or after other.
func (c cursor[T]) compare(other cursor[T]) int {
	switch {
	case c.block < other.block:
		return -1
	case c.block > other.block:
		return 1
	case c.offset < other.offset:
		return -1
	case c.offset > other.offset:
		return 1
	default:
		return 0
	}
}

// slot returns a pointer to the slot the cursor is at.
func (c cursor[T]) slot() *T {
	return c.blocks[c.block].At(c.offset)
}

// within returns whether the cursor was taken from the given block directory.
func (c cursor[T]) within(blocks []*slab.Block[T]) bool {
	if len(c.blocks) != len(blocks) {
		return false
	}

	return len(blocks) == 0 || &c.blocks[0] == &blocks[0]
}
