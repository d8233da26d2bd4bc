package deque

import "fmt"

// PushBack adds v to the end of the deque. An error is only returned if a block couldn't be allocated, in which case
// the deque is unchanged.
func (d *Deque[T]) PushBack(v T) error {
	if err := d.reserveBack(); err != nil {
		return err
	}

	d.construct(d.size, v)
	d.size++

	return nil
}

// PushFront adds v to the start of the deque. An error is only returned if a block couldn't be allocated, in which case
// the deque is unchanged.
func (d *Deque[T]) PushFront(v T) error {
	if err := d.reserveFront(); err != nil {
		return err
	}

	d.start--
	d.size++
	d.construct(0, v)

	return nil
}

// PopBack pops an element from the back of the deque, returning the default value and false if it is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.size == 0 {
		return *new(T), false
	}

	v := d.destroy(d.size - 1)
	d.size--

	return v, true
}

// PopFront pops an element from the front of the deque, returning the default value and false if it is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.size == 0 {
		return *new(T), false
	}

	v := d.destroy(0)
	d.start++
	d.size--

	return v, true
}

// position returns the logical index pos points at, checking that it's an iterator for this deque's current block
// directory and that the index is in the range [0, limit].
func (d *Deque[T]) position(pos Iterator[T], limit int) (int, error) {
	if !pos.c.within(d.blocks) {
		return 0, fmt.Errorf("%w: iterator does not belong to the current block directory", ErrInvalidIterator)
	}

	index := pos.Diff(d.Begin())
	if index < 0 || index > limit {
		return 0, fmt.Errorf("%w: position %d for deque of length %d", ErrInvalidIterator, index, d.size)
	}

	return index, nil
}

// Insert adds v before the element pos points at, pos may be 'End()' in which case v is added at the back. Every
// element from pos onwards is shifted one slot towards the back.
//
// NOTE: Inserting may grow the block directory, invalidating every iterator.
func (d *Deque[T]) Insert(pos Iterator[T], v T) error {
	index, err := d.position(pos, d.size)
	if err != nil {
		return err
	}

	if err := d.reserveBack(); err != nil {
		return err
	}

	// Growth invalidates iterators, so pos must be recomputed.
	pos = d.iteratorAt(index)

	for it := d.End(); it.Greater(pos); it = it.Prev() {
		it.Set(it.Prev().Value())
	}

	pos.Set(v)
	d.size++

	return nil
}

// Erase removes, and returns, the element pos points at. Every element after pos is shifted one slot towards the front.
func (d *Deque[T]) Erase(pos Iterator[T]) (T, error) {
	if _, err := d.position(pos, d.size-1); err != nil {
		return *new(T), err
	}

	var (
		v    = pos.Value()
		last = d.End().Prev()
	)

	for it := pos; it.Less(last); it = it.Next() {
		it.Set(it.Next().Value())
	}

	d.destroy(d.size - 1)
	d.size--

	return v, nil
}
