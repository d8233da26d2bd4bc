package slab

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when a block can't be obtained because doing so would exceed the allocator's block limit.
var ErrAllocation = errors.New("block allocation failed")

// Options encapsulates the available options which can be used when creating an allocator.
type Options struct {
	// BlockSize is the number of slots in each block, required.
	BlockSize int

	// Limit is the maximum number of blocks which may be owned at once by the user of the allocator, zero means there is
	// no limit.
	Limit int

	// Spares is the maximum number of released blocks retained for reuse. Defaults to 4, a negative value disables
	// reuse.
	Spares int
}

func (o *Options) defaults() {
	if o.Spares == 0 {
		o.Spares = 4
	}

	if o.Spares < 0 {
		o.Spares = 0
	}
}

// Allocator hands out blocks of a fixed size, reusing released blocks where possible.
//
// NOTE: The allocator doesn't track which blocks are owned, callers tell it how many blocks they own when requesting
// more so that the limit can be enforced before anything is handed out.
type Allocator[T any] struct {
	opts   Options
	spares spares[T]
}

// NewAllocator returns an allocator for blocks of T.
func NewAllocator[T any](opts Options) *Allocator[T] {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	return &Allocator[T]{opts: opts, spares: newSpares[T](opts.Spares)}
}

// BlockSize returns the number of slots in each block handed out by the allocator.
func (a *Allocator[T]) BlockSize() int {
	return a.opts.BlockSize
}

// Check returns an error if a caller would exceed the block limit by owning total blocks.
func (a *Allocator[T]) Check(total int) error {
	if a.opts.Limit == 0 || total <= a.opts.Limit {
		return nil
	}

	return fmt.Errorf("%w: %d blocks would exceed the limit of %d", ErrAllocation, total, a.opts.Limit)
}

// Allocate returns n empty blocks to a caller which currently owns 'owned' blocks. Either all n blocks are returned or
// none are.
func (a *Allocator[T]) Allocate(n, owned int) ([]*Block[T], error) {
	if err := a.Check(owned + n); err != nil {
		return nil, err
	}

	blocks := make([]*Block[T], n)

	for i := range blocks {
		if b, ok := a.spares.TryGet(); ok {
			blocks[i] = b
			continue
		}

		blocks[i] = NewBlock[T](a.opts.BlockSize)
	}

	return blocks, nil
}

// Release returns blocks to the allocator, any live elements they hold are discarded without being destroyed so
// callers must destroy them first.
func (a *Allocator[T]) Release(blocks ...*Block[T]) {
	for _, b := range blocks {
		if b == nil {
			continue
		}

		// Blocks which can't be retained are left for the garbage collector.
		if a.spares.Count() >= a.spares.Size() {
			return
		}

		b.Reset()
		a.spares.TryPut(b)
	}
}

// Spares returns the number of released blocks currently held for reuse.
func (a *Allocator[T]) Spares() int {
	return a.spares.Count()
}
