package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/stack"
)

func TestPopEmptyYieldsZero(t *testing.T) {
	s := stack.New(cell.W32)
	got := s.Pop()
	assert.True(t, got.IsZero())
}

func TestPushPopOrder(t *testing.T) {
	s := stack.New(cell.W32)
	for _, v := range []int64{1, 2, 3} {
		s.Push(cell.FromInt64(cell.W32, v))
	}
	for _, want := range []int64{3, 2, 1} {
		require.Equal(t, want, s.Pop().Int64())
	}
	assert.True(t, s.Pop().IsZero())
}

func TestStackStackRoundTrip(t *testing.T) {
	ss := stack.NewStackStack(cell.W32)
	for _, v := range []int64{1, 2, 3, 4, 5, 6} {
		ss.Push(cell.FromInt64(cell.W32, v))
	}

	ss.PushNewTop(3) // moves [4,5,6] to new top
	require.Equal(t, 2, ss.Depth())
	require.Equal(t, 3, ss.Top().Len())
	require.Equal(t, 3, ss.Second().Len())

	ss.PopTop(3) // moves them back
	require.Equal(t, 1, ss.Depth())
	require.Equal(t, 6, ss.Top().Len())

	for _, want := range []int64{6, 5, 4, 3, 2, 1} {
		require.Equal(t, want, ss.Pop().Int64())
	}
}

func TestStackStackNegativeTransfer(t *testing.T) {
	ss := stack.NewStackStack(cell.W32)
	ss.Push(cell.FromInt64(cell.W32, 9))

	ss.PushNewTop(-2) // two zeros on new top, old top untouched
	require.Equal(t, 2, ss.Top().Len())
	assert.True(t, ss.Pop().IsZero())
	assert.True(t, ss.Pop().IsZero())
	require.Equal(t, 2, ss.Depth())

	ss.PopTop(0)
	require.Equal(t, 1, ss.Depth())
	require.Equal(t, int64(9), ss.Pop().Int64())
}

func TestAutoHealOnEmpty(t *testing.T) {
	ss := stack.NewStackStack(cell.W32)
	ss.PopTop(0) // attempting to pop the only stack should not panic; depth stays >=1
	assert.Equal(t, 1, ss.Depth())
}
