package deque

import (
	"fmt"

	"github.com/couchbase/blockdeque/maths"
	"github.com/couchbase/blockdeque/slab"
)

// locate maps the logical index onto the block, and the offset within that block, which holds it.
func (d *Deque[T]) locate(index int) (int, int) {
	slot := d.start + index
	return slot / BlockSize, slot % BlockSize
}

// slot returns a pointer to the slot for the given logical index.
func (d *Deque[T]) slot(index int) *T {
	block, offset := d.locate(index)
	return d.blocks[block].At(offset)
}

// construct places v into the slot for the given logical index.
func (d *Deque[T]) construct(index int, v T) {
	block, offset := d.locate(index)
	d.blocks[block].Construct(offset, v)
}

// destroy empties the slot for the given logical index, returning the element it held.
func (d *Deque[T]) destroy(index int) T {
	block, offset := d.locate(index)
	return d.blocks[block].Destroy(offset)
}

// zeroAllocation allocates the first block, it must only be used when the deque owns no blocks.
func (d *Deque[T]) zeroAllocation() error {
	blocks, err := d.alloc.Allocate(1, 0)
	if err != nil {
		return fmt.Errorf("could not allocate initial block: %w", err)
	}

	d.blocks = blocks
	d.start = 0

	d.logger.Tracef("(Deque) Allocated initial block")

	return nil
}

// headExhausted returns whether there is no free slot before the first element.
func (d *Deque[T]) headExhausted() bool {
	return d.start == 0
}

// tailExhausted returns whether there is no free slot after the last element.
func (d *Deque[T]) tailExhausted() bool {
	return d.start+d.size == len(d.blocks)*BlockSize
}

// reserveFront ensures there's a free slot before the first element.
func (d *Deque[T]) reserveFront() error {
	if len(d.blocks) == 0 {
		if err := d.zeroAllocation(); err != nil {
			return err
		}
	}

	if !d.headExhausted() {
		return nil
	}

	return d.grow()
}

// reserveBack ensures there's a free slot after the last element.
func (d *Deque[T]) reserveBack() error {
	if len(d.blocks) == 0 {
		if err := d.zeroAllocation(); err != nil {
			return err
		}
	}

	if !d.tailExhausted() {
		return nil
	}

	return d.grow()
}

// grow triples the number of blocks spanned by the elements and moves those blocks into the middle third, leaving the
// same number of free blocks either side. Blocks which held no elements are released.
//
// NOTE: Blocks are only released once the new blocks have been obtained, a failed allocation leaves the deque
// unchanged.
func (d *Deque[T]) grow() error {
	var (
		first  = d.start / BlockSize
		kept   = 0
		offset = 0
	)

	if d.size > 0 {
		kept = (d.start+d.size-1)/BlockSize - first + 1
		offset = d.start % BlockSize
	}

	// An empty deque still needs a block to hold the element which is about to be pushed.
	used := maths.Max(1, kept)

	fresh, err := d.alloc.Allocate(3*used-kept, kept)
	if err != nil {
		return fmt.Errorf("could not grow block directory: %w", err)
	}

	blocks := make([]*slab.Block[T], 0, 3*used)
	blocks = append(blocks, fresh[:used]...)

	if kept > 0 {
		blocks = append(blocks, d.blocks[first:first+kept]...)
	} else {
		blocks = append(blocks, fresh[used:2*used]...)
	}

	blocks = append(blocks, fresh[len(fresh)-used:]...)

	d.alloc.Release(d.blocks[:first]...)
	d.alloc.Release(d.blocks[first+kept:]...)

	previous := len(d.blocks)

	d.blocks = blocks
	d.start = used*BlockSize + offset

	d.logger.Debugf("(Deque) Grew block directory from %d to %d blocks, first element is now at slot %d, %d spare blocks",
		previous, len(d.blocks), d.start, d.alloc.Spares())

	return nil
}
