package zclist

// Sequence is the capability a View consumes from its backing
// container: indexable by integer position, reports a length, supports
// assignment by position. Exactly one physical container backs any
// family of views; the views share it, they never own it.
type Sequence[T any] interface {
	// Len reports the current number of elements.
	Len() int

	// At returns the element at position i. The caller must ensure
	// 0 <= i < Len(); implementations index directly and panic
	// otherwise, like a plain slice.
	At(i int) T

	// SetAt replaces the element at position i. Same precondition
	// as At.
	SetAt(i int, x T)
}

// SliceSeq adapts an ordinary Go slice into a Sequence so that views
// can be taken directly over it. It holds a pointer to the slice
// rather than the slice itself: append may reallocate, and a view has
// to observe the slice's current backing array and length, not the
// ones it had when the view was created.
type SliceSeq[T any] struct {
	elems *[]T
}

// WrapSlice wraps a pointer to a slice as a Sequence. The slice stays
// owned by the caller; a mutation through the returned sequence (or
// through any view over it) is visible in the original slice, and
// vice versa.
func WrapSlice[T any](s *[]T) (*SliceSeq[T], error) {
	if s == nil {
		return nil, ErrNilSource
	}
	return &SliceSeq[T]{elems: s}, nil
}

// Len reports the wrapped slice's current length.
func (s *SliceSeq[T]) Len() int { return len(*s.elems) }

// At returns the element at position i of the wrapped slice.
func (s *SliceSeq[T]) At(i int) T { return (*s.elems)[i] }

// SetAt replaces the element at position i of the wrapped slice.
func (s *SliceSeq[T]) SetAt(i int, x T) { (*s.elems)[i] = x }
