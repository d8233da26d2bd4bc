// Package deque provides a double ended queue built over a directory of fixed size blocks.
//
// Pushing and popping at either end is amortized constant time, and elements may be accessed by index, or traversed
// using random access iterators, in constant time.
package deque

import (
	"fmt"

	"github.com/couchbase/blockdeque/errdefs"
	"github.com/couchbase/blockdeque/log"
	"github.com/couchbase/blockdeque/maths"
	"github.com/couchbase/blockdeque/slab"
)

// BlockSize is the number of element slots in each block.
const BlockSize = 32

// IterFunc is a function which will be executed for every element in the deque.
type IterFunc[T any] func(v T)

// Deque is a double-ended queue. It has efficient (i.e. amortized constant time) pop and push to both ends along with
// constant time random access.
//
// Elements are stored in a directory of blocks which are never shrunk, the occupied elements are the logical slots
// [start, start+size) of the directory.
//
// NOTE: Deque is not safe for concurrent use, any growth of the block directory invalidates all iterators.
type Deque[T any] struct {
	opts   Options[T]
	alloc  *slab.Allocator[T]
	logger log.WrappedLogger

	blocks []*slab.Block[T]
	size   int
	start  int
}

// newDeque returns a deque which owns no blocks.
func newDeque[T any](opts Options[T]) *Deque[T] {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	return &Deque[T]{
		opts: opts,
		alloc: slab.NewAllocator[T](slab.Options{
			BlockSize: BlockSize,
			Limit:     opts.BlockLimit,
			Spares:    opts.SpareBlocks,
		}),
		logger: log.NewWrappedLogger(opts.Logger),
	}
}

// New creates an empty deque of Ts which owns a single block.
func New[T any](opts Options[T]) (*Deque[T], error) {
	d := newDeque(opts)

	if err := d.zeroAllocation(); err != nil {
		return nil, err
	}

	return d, nil
}

// NewWithSize creates a deque of n default constructed Ts. If constructing any element fails, those already constructed
// are destroyed and the error is returned.
func NewWithSize[T any](n int, opts Options[T]) (*Deque[T], error) {
	d := newDeque(opts)

	if err := d.fill(n, d.opts.Construct); err != nil {
		return nil, err
	}

	return d, nil
}

// NewFilled creates a deque of n copies of value. If copying any element fails, those already copied are destroyed and
// the error is returned.
func NewFilled[T any](n int, value T, opts Options[T]) (*Deque[T], error) {
	d := newDeque(opts)

	if err := d.fill(n, func() (T, error) { return d.opts.Copy(value) }); err != nil {
		return nil, err
	}

	return d, nil
}

// fill allocates exactly enough blocks for n elements and constructs them in order.
func (d *Deque[T]) fill(n int, construct func() (T, error)) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	blocks, err := d.alloc.Allocate(maths.CeilDiv(n, BlockSize), 0)
	if err != nil {
		return err
	}

	d.blocks = blocks

	for i := 0; i < n; i++ {
		v, err := construct()
		if err != nil {
			return d.rollback(fmt.Errorf("%w %d: %w", ErrConstruct, i, err))
		}

		d.construct(d.size, v)
		d.size++
	}

	return nil
}

// Clone returns a deep copy of the deque, where each element is copied using the 'Copy' option. The copy has the same
// layout as the original. If copying any element fails, those already copied are destroyed and the error is returned.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	return d.copyWith(d.opts)
}

// copyWith returns a deep copy of the deque which uses the given options, elements are copied with 'opts.Copy' and the
// blocks count towards 'opts.BlockLimit'.
func (d *Deque[T]) copyWith(opts Options[T]) (*Deque[T], error) {
	c := newDeque(opts)

	blocks, err := c.alloc.Allocate(len(d.blocks), 0)
	if err != nil {
		return nil, err
	}

	c.blocks = blocks
	c.start = d.start

	for i := 0; i < d.size; i++ {
		v, err := c.opts.Copy(d.Get(i))
		if err != nil {
			return nil, c.rollback(fmt.Errorf("%w %d: %w", ErrConstruct, i, err))
		}

		c.construct(i, v)
		c.size++
	}

	return c, nil
}

// Assign replaces the contents of the deque with a copy of src. Elements are copied using this deque's options, which
// are kept. Either the assignment succeeds, or the deque is left exactly as it was.
func (d *Deque[T]) Assign(src *Deque[T]) error {
	if d == src {
		return nil
	}

	tmp, err := src.copyWith(d.opts)
	if err != nil {
		return err
	}

	d.swapContents(tmp)

	// The assignment has already succeeded, failing to destroy the previous contents isn't reported to the caller.
	if err := tmp.close(); err != nil {
		d.logger.Warnf("(Deque) Failed to destroy replaced elements: %v", err)
	}

	return nil
}

// Swap exchanges the contents, and options, of the two deques.
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

// swapContents exchanges the elements of the two deques along with the blocks, and allocator, holding them.
func (d *Deque[T]) swapContents(other *Deque[T]) {
	d.alloc, other.alloc = other.alloc, d.alloc
	d.blocks, other.blocks = other.blocks, d.blocks
	d.size, other.size = other.size, d.size
	d.start, other.start = other.start, d.start
}

// rollback destroys any constructed elements and releases every block before returning cause along with any cleanup
// failures.
func (d *Deque[T]) rollback(cause error) error {
	err := d.close()
	if err == nil {
		return cause
	}

	d.logger.Warnf("(Deque) Failed to cleanup after construction failure: %v", err)

	errs := &errdefs.MultiError{}
	errs.Add(cause)
	errs.Add(err)

	return errs
}

// destroyAll destroys every element, all elements are dropped even if destroying some fail.
func (d *Deque[T]) destroyAll() error {
	errs := &errdefs.MultiError{Prefix: "failed to destroy elements: "}

	for i := 0; i < d.size; i++ {
		v := d.destroy(i)

		if d.opts.Destroy == nil {
			continue
		}

		if err := d.opts.Destroy(v); err != nil {
			errs.Add(fmt.Errorf("element %d: %w", i, err))
		}
	}

	d.size = 0

	return errs.ErrOrNil()
}

// releaseAll returns every block to the allocator.
func (d *Deque[T]) releaseAll() {
	d.alloc.Release(d.blocks...)
	d.blocks = nil
	d.start = 0
}

// Close destroys every element and releases every block. The deque may be reused afterwards, in which case it behaves
// as if it had never allocated.
//
// NOTE: Every element is dropped even if destroying some of them fails, the failures are returned as a
// 'errdefs.MultiError'.
func (d *Deque[T]) Close() error {
	err := d.close()
	if err != nil {
		d.logger.Errorf("(Deque) Failed to destroy elements whilst closing: %v", err)
	}

	return err
}

// close destroys every element and releases every block.
func (d *Deque[T]) close() error {
	err := d.destroyAll()
	d.releaseAll()

	return err
}

// Clear destroys every element, retaining the blocks for reuse.
func (d *Deque[T]) Clear() error {
	err := d.destroyAll()

	// Recentre so that there's room to grow in either direction without reallocating.
	d.start = len(d.blocks) / 2 * BlockSize

	return err
}

// Len returns the number of elements currently in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Empty returns whether there are no elements in the deque.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Blocks returns the number of blocks currently owned by the deque.
func (d *Deque[T]) Blocks() int {
	return len(d.blocks)
}

// Cap returns the number of element slots in the blocks owned by the deque.
func (d *Deque[T]) Cap() int {
	return len(d.blocks) * d.alloc.BlockSize()
}

// Iter calls fn on each element in the deque, starting from the front.
func (d *Deque[T]) Iter(fn IterFunc[T]) {
	for i := 0; i < d.size; i++ {
		fn(d.Get(i))
	}
}

// ReverseIter calls fn on each element in the deque, starting from the back.
func (d *Deque[T]) ReverseIter(fn IterFunc[T]) {
	for i := d.size - 1; i >= 0; i-- {
		fn(d.Get(i))
	}
}

// Slice returns the elements of the deque, in order, as a newly allocated slice.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.size)
	d.Iter(func(v T) { s = append(s, v) })

	return s
}
