package slab

// spares is a bounded list of released blocks which may be handed out again instead of allocating new ones. It has the
// advantage over sync.Pool that the number of retained blocks is controlled.
//
// NOTE: Unlike a channel backed free list this isn't thread-safe, blocks are only ever shared by a single owner.
type spares[T any] struct {
	blocks []*Block[T]
	size   int
}

// newSpares creates a list which retains at most size blocks.
func newSpares[T any](size int) spares[T] {
	return spares[T]{blocks: make([]*Block[T], 0, size), size: size}
}

// TryGet returns a spare block if there is one available, the bool return value indicates whether there was a block
// available. If the bool is false then the block should not be used in any way.
func (s *spares[T]) TryGet() (*Block[T], bool) {
	if len(s.blocks) == 0 {
		return nil, false
	}

	b := s.blocks[len(s.blocks)-1]
	s.blocks[len(s.blocks)-1] = nil
	s.blocks = s.blocks[:len(s.blocks)-1]

	return b, true
}

// TryPut retains b if there is room returning whether it was retained.
func (s *spares[T]) TryPut(b *Block[T]) bool {
	if len(s.blocks) >= s.size {
		return false
	}

	s.blocks = append(s.blocks, b)

	return true
}

// Count returns the number of spare blocks currently retained.
func (s *spares[T]) Count() int {
	return len(s.blocks)
}

// Size returns the maximum number of blocks that can be retained.
func (s *spares[T]) Size() int {
	return s.size
}
