package deque

import "github.com/couchbase/blockdeque/log"

// Options encapsulates the available options which can be used when creating a deque.
//
// The zero value is ready for use; elements are default constructed as the zero value of T, copied by assignment and
// dropped without any further action.
type Options[T any] struct {
	// BlockLimit is the maximum number of blocks the deque may own at once, an operation which would need more fails
	// with 'slab.ErrAllocation' leaving the deque unchanged. Zero means there is no limit.
	BlockLimit int

	// SpareBlocks is the number of released blocks retained for reuse by later growth. Defaults to 4, a negative value
	// disables reuse.
	SpareBlocks int

	// Construct default constructs a single element, it's used when creating a deque of a given size. Defaults to
	// returning the zero value of T.
	Construct func() (T, error)

	// Copy copy constructs a single element, it's used when filling a deque with a value and when copying a deque.
	// Defaults to returning v.
	Copy func(v T) (T, error)

	// Destroy is called for every element dropped by the deque itself, that is when clearing, closing or rolling back a
	// failed construction. Elements handed back to the caller, for example by 'PopBack', are not destroyed.
	Destroy func(v T) error

	// Logger is used to report growth of the block directory and cleanup failures. Defaults to a no-op logger.
	Logger log.Logger
}

func (o *Options[T]) defaults() {
	if o.Construct == nil {
		o.Construct = func() (T, error) { return *new(T), nil }
	}

	if o.Copy == nil {
		o.Copy = func(v T) (T, error) { return v, nil }
	}
}
