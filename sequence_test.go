package zclist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapSlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}
	seq, err := WrapSlice(&s)
	require.NoError(t, err)

	require.Equal(t, 3, seq.Len())
	require.Equal(t, 2, seq.At(1))

	seq.SetAt(1, 9)
	require.Equal(t, 9, s[1])
}

func TestWrapSliceNil(t *testing.T) {
	t.Parallel()

	_, err := WrapSlice[int](nil)
	require.ErrorIs(t, err, ErrNilSource)
}

// The adapter holds a pointer to the slice, so it tracks length
// changes and reallocation caused by append.
func TestWrapSliceObservesGrowth(t *testing.T) {
	t.Parallel()

	s := make([]int, 0, 2)
	seq, err := WrapSlice(&s)
	require.NoError(t, err)
	require.Equal(t, 0, seq.Len())

	// Grow past the original capacity to force a reallocation.
	s = append(s, 1, 2, 3, 4)
	require.Equal(t, 4, seq.Len())
	require.Equal(t, 4, seq.At(3))
}

func TestListImplementsSequence(t *testing.T) {
	t.Parallel()

	var seq Sequence[int] = NewListFrom([]int{1, 2, 3})
	require.Equal(t, 3, seq.Len())

	v, err := NewView(seq, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
}
