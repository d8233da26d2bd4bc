package deque

// ReverseIterator traverses a deque from back to front. It wraps a forward iterator, the base, and points at the
// element before it; so 'RBegin()' wraps 'End()' and points at the last element.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the wrapped forward iterator, which points one element after the reverse iterator.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

// Add returns a reverse iterator n elements closer to the front of the deque.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub returns a reverse iterator n elements closer to the back of the deque.
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(n)}
}

// Next returns a reverse iterator to the preceding element of the deque.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return r.Add(1)
}

// Prev returns a reverse iterator to the following element of the deque.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return r.Add(-1)
}

// Diff returns the number of steps between other and r.
func (r ReverseIterator[T]) Diff(other ReverseIterator[T]) int {
	return other.base.Diff(r.base)
}

// Compare returns -1, 0 or 1 depending on whether r is before, at or after other in the reverse traversal.
func (r ReverseIterator[T]) Compare(other ReverseIterator[T]) int {
	return other.base.Compare(r.base)
}

// Equal returns whether both iterators point at the same position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.Compare(other) == 0
}

// Less returns whether r is before other in the reverse traversal.
func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return r.Compare(other) < 0
}

// Value returns the element the iterator points at.
func (r ReverseIterator[T]) Value() T {
	return r.base.Prev().Value()
}

// Set replaces the element the iterator points at.
func (r ReverseIterator[T]) Set(v T) {
	r.base.Prev().Set(v)
}

// Ptr returns a pointer to the element the iterator points at.
func (r ReverseIterator[T]) Ptr() *T {
	return r.base.Prev().Ptr()
}

// ReadOnly returns a read-only reverse iterator at the same position.
func (r ReverseIterator[T]) ReadOnly() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.ReadOnly()}
}

// ConstReverseIterator is the read-only equivalent of 'ReverseIterator'.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Base returns the wrapped forward iterator, which points one element after the reverse iterator.
func (r ConstReverseIterator[T]) Base() ConstIterator[T] {
	return r.base
}

// Add returns a reverse iterator n elements closer to the front of the deque.
func (r ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub returns a reverse iterator n elements closer to the back of the deque.
func (r ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Add(n)}
}

// Next returns a reverse iterator to the preceding element of the deque.
func (r ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return r.Add(1)
}

// Prev returns a reverse iterator to the following element of the deque.
func (r ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return r.Add(-1)
}

// Diff returns the number of steps between other and r.
func (r ConstReverseIterator[T]) Diff(other ConstReverseIterator[T]) int {
	return other.base.Diff(r.base)
}

// Compare returns -1, 0 or 1 depending on whether r is before, at or after other in the reverse traversal.
func (r ConstReverseIterator[T]) Compare(other ConstReverseIterator[T]) int {
	return other.base.Compare(r.base)
}

// Equal returns whether both iterators point at the same position.
func (r ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool {
	return r.Compare(other) == 0
}

// Less returns whether r is before other in the reverse traversal.
func (r ConstReverseIterator[T]) Less(other ConstReverseIterator[T]) bool {
	return r.Compare(other) < 0
}

// Value returns the element the iterator points at.
func (r ConstReverseIterator[T]) Value() T {
	return r.base.Prev().Value()
}

// RBegin returns a reverse iterator to the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.End()}
}

// REnd returns a reverse iterator one before the first element, it must not be dereferenced.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.Begin()}
}

// CRBegin returns a read-only reverse iterator to the last element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] {
	return d.RBegin().ReadOnly()
}

// CREnd returns a read-only reverse iterator one before the first element, it must not be dereferenced.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] {
	return d.REnd().ReadOnly()
}
