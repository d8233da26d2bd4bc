package deque

import "errors"

var (
	// ErrOutOfRange is returned by the bounds checked accessors when the index isn't in the range [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidIterator is returned when a positional operation is given an iterator which doesn't point into the
	// deque, either because it belongs to another deque, it has been invalidated by growth or it's out of range.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrConstruct is returned when constructing or copying an element fails.
	ErrConstruct = errors.New("failed to construct element")

	// ErrInvalidSize is returned when creating a deque with a negative number of elements.
	ErrInvalidSize = errors.New("invalid size")
)
