// Package slab provides fixed capacity blocks of element slots along with an allocator which hands them out.
//
// Blocks do not track which of their slots hold live elements, that's the responsibility of the owner which constructs
// and destroys elements explicitly.
package slab

// Block is a fixed capacity region of slots of type T.
//
// NOTE: Slots which don't hold a live element contain the zero value of T so that anything they previously referenced
// may be garbage collected.
type Block[T any] struct {
	slots []T
}

// NewBlock returns a block with the given number of slots.
func NewBlock[T any](size int) *Block[T] {
	return &Block[T]{slots: make([]T, size)}
}

// Construct places v into slot i.
func (b *Block[T]) Construct(i int, v T) {
	b.slots[i] = v
}

// Destroy empties slot i returning the value which it held.
func (b *Block[T]) Destroy(i int) T {
	v := b.slots[i]
	b.slots[i] = *new(T)

	return v
}

// At returns a pointer to slot i.
func (b *Block[T]) At(i int) *T {
	return &b.slots[i]
}

// Reset empties every slot in the block.
func (b *Block[T]) Reset() {
	var zero T

	for i := range b.slots {
		b.slots[i] = zero
	}
}
