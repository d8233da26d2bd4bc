package deque

// Iterator is a random access position within a deque, which may be used to read and modify the element it points at.
//
// NOTE: Iterators are invalidated whenever the deque's block directory grows and must not outlive the deque. The zero
// value isn't a valid iterator.
type Iterator[T any] struct {
	c cursor[T]
}

// Add returns an iterator n elements after it, n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{c: it.c.add(n)}
}

// Sub returns an iterator n elements before it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return Iterator[T]{c: it.c.add(-n)}
}

// Next returns an iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Diff returns the number of elements between other and it, such that 'other.Add(it.Diff(other))' is equal to it.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.c.diff(other.c)
}

// Compare returns -1, 0 or 1 depending on whether it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return it.c.compare(other.c)
}

// Equal returns whether both iterators point at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.Compare(other) == 0
}

// Less returns whether it is before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Compare(other) < 0
}

// LessEqual returns whether it is before, or at, other.
func (it Iterator[T]) LessEqual(other Iterator[T]) bool {
	return it.Compare(other) <= 0
}

// Greater returns whether it is after other.
func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.Compare(other) > 0
}

// GreaterEqual returns whether it is after, or at, other.
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool {
	return it.Compare(other) >= 0
}

// Value returns the element the iterator points at.
func (it Iterator[T]) Value() T {
	return *it.c.slot()
}

// Set replaces the element the iterator points at.
func (it Iterator[T]) Set(v T) {
	*it.c.slot() = v
}

// Ptr returns a pointer to the element the iterator points at.
func (it Iterator[T]) Ptr() *T {
	return it.c.slot()
}

// ReadOnly returns a read-only iterator at the same position.
func (it Iterator[T]) ReadOnly() ConstIterator[T] {
	return ConstIterator[T]{c: it.c}
}

// ConstIterator is a random access position within a deque which may only be used to read the element it points at.
// It has the same arithmetic, and is invalidated in the same way, as 'Iterator'.
type ConstIterator[T any] struct {
	c cursor[T]
}

// Add returns an iterator n elements after it, n may be negative.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{c: it.c.add(n)}
}

// Sub returns an iterator n elements before it.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{c: it.c.add(-n)}
}

// Next returns an iterator to the following element.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return it.Add(1)
}

// Prev returns an iterator to the preceding element.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return it.Add(-1)
}

// Diff returns the number of elements between other and it.
func (it ConstIterator[T]) Diff(other ConstIterator[T]) int {
	return it.c.diff(other.c)
}

// Compare returns -1, 0 or 1 depending on whether it is before, at or after other.
func (it ConstIterator[T]) Compare(other ConstIterator[T]) int {
	return it.c.compare(other.c)
}

// Equal returns whether both iterators point at the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.Compare(other) == 0
}

// Less returns whether it is before other.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.Compare(other) < 0
}

// LessEqual returns whether it is before, or at, other.
func (it ConstIterator[T]) LessEqual(other ConstIterator[T]) bool {
	return it.Compare(other) <= 0
}

// Greater returns whether it is after other.
func (it ConstIterator[T]) Greater(other ConstIterator[T]) bool {
	return it.Compare(other) > 0
}

// GreaterEqual returns whether it is after, or at, other.
func (it ConstIterator[T]) GreaterEqual(other ConstIterator[T]) bool {
	return it.Compare(other) >= 0
}

// Value returns the element the iterator points at.
func (it ConstIterator[T]) Value() T {
	return *it.c.slot()
}

// iteratorAt returns an iterator at the given logical index.
func (d *Deque[T]) iteratorAt(index int) Iterator[T] {
	block, offset := d.locate(index)
	return Iterator[T]{c: cursor[T]{blocks: d.blocks, block: block, offset: offset}}
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return d.iteratorAt(0)
}

// End returns an iterator one past the last element, it must not be dereferenced.
func (d *Deque[T]) End() Iterator[T] {
	return d.iteratorAt(d.size)
}

// CBegin returns a read-only iterator to the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return d.Begin().ReadOnly()
}

// CEnd returns a read-only iterator one past the last element, it must not be dereferenced.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return d.End().ReadOnly()
}
