package zclist

import (
	"fmt"
	"strings"
)

// View is a non-owning window [low, high) into a backing sequence. It
// never copies elements: reads and writes go straight through to the
// single shared backing sequence, so a mutation made through one view
// is immediately visible to the sequence's owner and to every other
// view whose window covers the same position.
//
// Bounds are fixed at creation and only ever narrow afterwards. If the
// backing sequence shrinks, the window is clipped (or collapsed to
// empty) by re-adjustment on the next operation; if the backing
// sequence grows past the window's upper bound, the window does not
// widen to cover the new elements.
type View[T comparable] struct {
	seq  Sequence[T]
	low  int
	high int
}

// NewView creates a view of seq covering positions [i, j). Negative
// values of i and j count back from the end of the sequence, as in a
// conventional slice expression. A resolved lower bound of 0 is always
// accepted, even over an empty sequence; any other bound falling
// outside the sequence fails with ErrIndexOutOfRange.
//
// No ordering between the resolved bounds is enforced here: a view
// whose lower bound exceeds its upper bound is permitted and behaves
// as empty on every subsequent operation.
func NewView[T comparable](seq Sequence[T], i, j int) (*View[T], error) {
	if seq == nil {
		return nil, ErrNilSequence
	}
	n := seq.Len()

	low := i
	if i < 0 {
		low = n + i
	}
	// A lower bound of 0 is accepted even when the sequence is
	// empty; that is the only way to build a view over nothing.
	if (low < 0 || low >= n) && low != 0 {
		return nil, ErrIndexOutOfRange
	}

	high := j
	if j < 0 {
		high = n + j
	}
	// The upper bound may sit one past the last position.
	if high < 0 || high > n {
		return nil, ErrIndexOutOfRange
	}

	return &View[T]{seq: seq, low: low, high: high}, nil
}

// NewSliceView creates a view directly over an ordinary slice. The
// pointer must stay valid for the life of the view; growth and
// shrinkage of the slice are observed through it.
func NewSliceView[T comparable](s *[]T, i, j int) (*View[T], error) {
	seq, err := WrapSlice(s)
	if err != nil {
		return nil, err
	}
	return NewView[T](seq, i, j)
}

// readjust clips the window to the backing sequence's current length.
// If the whole window now lies past the end, it collapses to the
// canonical empty window [0, 0). Runs at the top of every public
// operation; this is what lets a view tolerate shrinkage of the
// backing sequence without ever reading out of range.
func (v *View[T]) readjust() {
	n := v.seq.Len()
	if v.low >= n {
		v.low, v.high = 0, 0
		return
	}
	if v.high > n {
		v.high = n
	}
}

// resolve maps a window-relative index to an absolute position in the
// backing sequence. Non-negative indexes are anchored at the window's
// lower bound, negative indexes at its upper bound.
func (v *View[T]) resolve(i int) int {
	if i < 0 {
		return v.high + i
	}
	return v.low + i
}

// verifyIndex checks that an absolute position falls inside the
// window.
func (v *View[T]) verifyIndex(idx int) error {
	if idx < v.low || idx >= v.high {
		return ErrIndexOutOfRange
	}
	return nil
}

// verifyBounds checks an absolute [begin, end) pair against the
// window. begin must fall strictly inside the window; end may
// additionally sit one past its last position.
func (v *View[T]) verifyBounds(begin, end int) error {
	if begin < v.low || begin >= v.high {
		return ErrIndexOutOfRange
	}
	if end < v.low || end > v.high {
		return ErrIndexOutOfRange
	}
	return nil
}

// Len reports the window's current length. A window whose lower bound
// exceeds its upper bound reads as length 0.
func (v *View[T]) Len() int {
	v.readjust()
	if v.high < v.low {
		return 0
	}
	return v.high - v.low
}

// Bounds reports the window's current absolute bounds in the backing
// sequence.
func (v *View[T]) Bounds() (low, high int) {
	v.readjust()
	return v.low, v.high
}

// Get returns the element at window-relative index i. Negative indexes
// count back from the end of the window. The element itself is
// returned, not a copy of anything beyond the value: for reference
// element types both sides see the same referent.
func (v *View[T]) Get(i int) (T, error) {
	v.readjust()
	idx := v.resolve(i)
	if err := v.verifyIndex(idx); err != nil {
		var zero T
		return zero, err
	}
	return v.seq.At(idx), nil
}

// Set replaces the element at window-relative index i. The write goes
// through to the backing sequence before Set returns; a failed index
// check leaves the sequence untouched.
func (v *View[T]) Set(i int, x T) error {
	v.readjust()
	idx := v.resolve(i)
	if err := v.verifyIndex(idx); err != nil {
		return err
	}
	v.seq.SetAt(idx, x)
	return nil
}

// Slice creates a nested view covering window-relative positions
// [i, j). The result references the original backing sequence, not the
// parent view, so chains of sub-views stay one indirection deep.
func (v *View[T]) Slice(i, j int) (*View[T], error) {
	v.readjust()
	begin := v.resolve(i)
	end := v.resolve(j)
	if err := v.verifyBounds(begin, end); err != nil {
		return nil, err
	}
	return &View[T]{seq: v.seq, low: begin, high: end}, nil
}

// Contains reports whether x occurs within the window.
func (v *View[T]) Contains(x T) bool {
	v.readjust()
	for i := v.low; i < v.high; i++ {
		if v.seq.At(i) == x {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of x within the window.
// The scan never slices the backing sequence; nothing is copied.
func (v *View[T]) Count(x T) int {
	v.readjust()
	count := 0
	for i := v.low; i < v.high; i++ {
		if v.seq.At(i) == x {
			count++
		}
	}
	return count
}

// Index returns the position of the first occurrence of x within the
// window, or an error wrapping ErrValueNotFound if it does not occur.
// An empty window fails with ErrIndexOutOfRange: there is no valid
// start position to scan from.
func (v *View[T]) Index(x T) (int, error) {
	v.readjust()
	if err := v.verifyBounds(v.low, v.high); err != nil {
		return 0, err
	}
	return v.scan(x, v.low, v.high)
}

// IndexRange is Index restricted to window-relative positions
// [start, stop), resolved and validated the same way Slice resolves
// its bounds. The returned position is relative to the resolved start.
func (v *View[T]) IndexRange(x T, start, stop int) (int, error) {
	v.readjust()
	begin := v.resolve(start)
	end := v.resolve(stop)
	if err := v.verifyBounds(begin, end); err != nil {
		return 0, err
	}
	return v.scan(x, begin, end)
}

// scan searches absolute positions [begin, end) left to right.
func (v *View[T]) scan(x T, begin, end int) (int, error) {
	for i := begin; i < end; i++ {
		if v.seq.At(i) == x {
			return i - begin, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrValueNotFound, x)
}

// String renders the window as a list literal, e.g. "[4, 5, 6]". An
// empty window renders as "[]". Implements fmt.Stringer.
func (v *View[T]) String() string {
	v.readjust()
	return render[T](v.seq, v.low, v.high)
}

// render writes absolute positions [low, high) of seq as a list
// literal. Shared by View and List.
func render[T any](seq Sequence[T], low, high int) string {
	if low >= high {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := low; i < high; i++ {
		if i > low {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", seq.At(i))
	}
	b.WriteByte(']')
	return b.String()
}
