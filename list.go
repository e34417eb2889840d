package zclist

import "fmt"

// List is a growable, ordered container that behaves like an ordinary
// sequence except for subrange extraction: Slice returns a zero-copy
// View over the container itself instead of a copied subsequence.
type List[T comparable] struct {
	elems []T
}

// NewList creates an empty list.
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// NewListFrom creates a list holding the elements of src. Elements are
// copied shallowly: src stays untouched and does not become backed by
// the list, but element values that are references keep referring to
// the same underlying objects.
func NewListFrom[T comparable](src []T) *List[T] {
	elems := make([]T, len(src))
	copy(elems, src)
	return &List[T]{elems: elems}
}

// Len reports the number of elements.
func (l *List[T]) Len() int { return len(l.elems) }

// At returns the element at position i. i must satisfy 0 <= i < Len();
// out-of-range positions panic, like a plain slice.
func (l *List[T]) At(i int) T { return l.elems[i] }

// SetAt replaces the element at position i. Same precondition as At.
func (l *List[T]) SetAt(i int, x T) { l.elems[i] = x }

// Slice returns a zero-copy view covering positions [i, j). This is
// the one place List departs from an ordinary sequence: nothing is
// copied, the view reads and writes through to this container, and
// NewView's resolution and validation rules apply to i and j.
func (l *List[T]) Slice(i, j int) (*View[T], error) {
	return NewView[T](l, i, j)
}

// Append adds elements to the end of the list.
func (l *List[T]) Append(xs ...T) {
	l.elems = append(l.elems, xs...)
}

// Insert inserts x at position i, shifting later elements up. i may
// equal Len(), making Insert equivalent to a single-element Append.
func (l *List[T]) Insert(i int, x T) error {
	if i < 0 || i > len(l.elems) {
		return ErrIndexOutOfRange
	}
	var zero T
	l.elems = append(l.elems, zero)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = x
	return nil
}

// RemoveAt removes and returns the element at position i, shifting
// later elements down.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.elems) {
		return zero, ErrIndexOutOfRange
	}
	x := l.elems[i]
	copy(l.elems[i:], l.elems[i+1:])
	l.elems[len(l.elems)-1] = zero
	l.elems = l.elems[:len(l.elems)-1]
	return x, nil
}

// Remove removes the first occurrence of x, or fails with an error
// wrapping ErrValueNotFound.
func (l *List[T]) Remove(x T) error {
	for i, e := range l.elems {
		if e == x {
			_, err := l.RemoveAt(i)
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrValueNotFound, x)
}

// Pop removes and returns the last element. An empty list fails with
// ErrIndexOutOfRange.
func (l *List[T]) Pop() (T, error) {
	return l.RemoveAt(len(l.elems) - 1)
}

// Clear removes all elements. Existing views over the list collapse to
// empty on their next operation.
func (l *List[T]) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

// Contains reports whether x occurs in the list.
func (l *List[T]) Contains(x T) bool {
	for _, e := range l.elems {
		if e == x {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of x.
func (l *List[T]) Count(x T) int {
	count := 0
	for _, e := range l.elems {
		if e == x {
			count++
		}
	}
	return count
}

// Index returns the position of the first occurrence of x, or an
// error wrapping ErrValueNotFound.
func (l *List[T]) Index(x T) (int, error) {
	for i, e := range l.elems {
		if e == x {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrValueNotFound, x)
}

// Elems returns the underlying element slice, shared rather than
// copied: writes to it are writes to the list. Appending to the
// returned slice does not grow the list.
func (l *List[T]) Elems() []T { return l.elems }

// Clone returns a copy of the list's elements as a plain slice.
func (l *List[T]) Clone() []T {
	out := make([]T, len(l.elems))
	copy(out, l.elems)
	return out
}

// String renders the list as a list literal, matching View's format.
func (l *List[T]) String() string {
	return render[T](l, 0, len(l.elems))
}
