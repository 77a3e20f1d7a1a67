package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/stack"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.Empty())
}

func TestStack_Empty(t *testing.T) {
	s := stack.New[string]()

	t.Run("pop on empty reports false", func(t *testing.T) {
		v, ok := s.Pop()
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("peek on empty reports false", func(t *testing.T) {
		v, ok := s.Peek()
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	assert.Equal(t, 0, s.Len())
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := stack.New[rune]()
	s.Push('(')
	s.Push('+')

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, '+', top)
	assert.Equal(t, 2, s.Len())
}

func TestStack_Drain(t *testing.T) {
	s := stack.New[float64]()
	s.Push(2)
	s.Push(3)
	s.Push(4)

	assert.Equal(t, []float64{2, 3, 4}, s.Drain())
	assert.True(t, s.Empty())
	assert.Empty(t, s.Drain())
}
