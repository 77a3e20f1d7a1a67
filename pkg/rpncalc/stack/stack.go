// Package stack provides a typed LIFO stack for the converter and evaluator.
package stack

import "github.com/edwingeng/deque"

// Stack is a last-in first-out container of T.
// The zero value is not usable; create stacks with New.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	d deque.Deque
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{d: deque.NewDeque()}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.d.PushBack(v)
}

// Pop removes and returns the top element.
// The second result is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.d.Empty() {
		var zero T
		return zero, false
	}
	return s.d.PopBack().(T), true
}

// Peek returns the top element without removing it.
// The second result is false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.d.Empty() {
		var zero T
		return zero, false
	}
	return s.d.Back().(T), true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.d.Len()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.d.Empty()
}

// Drain removes every element and returns them bottom first.
func (s *Stack[T]) Drain() []T {
	out := make([]T, 0, s.d.Len())
	for !s.d.Empty() {
		out = append(out, s.d.PopFront().(T))
	}
	return out
}
