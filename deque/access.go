package deque

import "fmt"

// Get returns the element at the given index.
//
// NOTE: The index isn't checked, the behavior is undefined (and may panic) if it's not in the range [0, Len()). Use
// 'At' when the index may be out of range.
func (d *Deque[T]) Get(index int) T {
	return *d.slot(index)
}

// Set replaces the element at the given index, the index isn't checked.
func (d *Deque[T]) Set(index int, v T) {
	*d.slot(index) = v
}

// Ptr returns a pointer to the element at the given index, the index isn't checked.
//
// NOTE: The pointer is only valid until the deque is next modified.
func (d *Deque[T]) Ptr(index int) *T {
	return d.slot(index)
}

// checkIndex returns an error if the index isn't in the range [0, Len()).
func (d *Deque[T]) checkIndex(index int) error {
	if index < 0 || index >= d.size {
		return fmt.Errorf("%w: index %d for deque of length %d", ErrOutOfRange, index, d.size)
	}

	return nil
}

// At returns the element at the given index, or an 'ErrOutOfRange' error if it's not in the range [0, Len()).
func (d *Deque[T]) At(index int) (T, error) {
	if err := d.checkIndex(index); err != nil {
		return *new(T), err
	}

	return d.Get(index), nil
}

// SetAt replaces the element at the given index, returning an 'ErrOutOfRange' error if it's not in the range
// [0, Len()), in which case the deque is unchanged.
func (d *Deque[T]) SetAt(index int, v T) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}

	d.Set(index, v)

	return nil
}

// PtrAt returns a pointer to the element at the given index, or an 'ErrOutOfRange' error if it's not in the range
// [0, Len()).
func (d *Deque[T]) PtrAt(index int) (*T, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}

	return d.slot(index), nil
}

// Front returns the first element, returning the default value and false if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		return *new(T), false
	}

	return d.Get(0), true
}

// Back returns the last element, returning the default value and false if the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		return *new(T), false
	}

	return d.Get(d.size - 1), true
}
