// Package stack provides a bounded LIFO stack.
package stack

// Stack is a LIFO stack holding at most Cap() elements.  A zero or negative
// capacity means the stack is unbounded.
type Stack[T any] struct {
	xs  []T
	max int
}

func New[T any](n int) Stack[T] {
	if n < 0 {
		n = 0
	}
	return Stack[T]{make([]T, 0, n), n}
}

// Push pushes x onto the stack.  If the stack is already full x is dropped
// and Push reports false.
func (s *Stack[T]) Push(x T) bool {
	if s.Full() {
		return false
	}
	s.xs = append(s.xs, x)
	return true
}

func (s *Stack[T]) Pop() *T {
	if len(s.xs) == 0 {
		return nil
	}
	n := len(s.xs) - 1
	x := s.xs[n]
	s.xs = s.xs[:n]
	return &x
}

func (s Stack[T]) Len() int { return len(s.xs) }
func (s Stack[T]) Cap() int { return s.max }

func (s Stack[T]) Full() bool {
	return s.max > 0 && len(s.xs) >= s.max
}
