// Package zclist provides zero-copy views over mutable, growable
// sequences. A View is a window [low, high) into a backing sequence
// that reads and writes through to it without ever copying elements;
// a List is a growable container whose subrange operation hands out
// such views instead of copies. The backing sequence may grow or
// shrink at any time between a view's creation and its use: every
// view re-validates its bounds against the live length before each
// operation and degrades to a narrower (possibly empty) window rather
// than reading out of range.
//
// The package assumes cooperative single-threaded access. Callers that
// share a backing sequence across goroutines must provide their own
// synchronization covering the sequence and every view over it.
package zclist

import "errors"

// Bounds and index errors
var (
	// ErrIndexOutOfRange indicates that an index or bound resolves
	// outside the currently valid window or backing sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Argument errors
var (
	// ErrNilSequence indicates that a nil backing sequence was given.
	ErrNilSequence = errors.New("backing sequence is nil")

	// ErrNilSource indicates that a nil source slice pointer was given.
	ErrNilSource = errors.New("source slice pointer is nil")
)

// Search errors
var (
	// ErrValueNotFound indicates that a searched-for value does not
	// occur within the window.
	ErrValueNotFound = errors.New("value not in sequence")
)
