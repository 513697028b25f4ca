package stack

import "testing"

func assertPush[T comparable](t *testing.T, s Stack[T], x T) {
	y := s.xs[len(s.xs)-1]
	if x != y {
		t.Fatalf("Expected top of stack to be ‘%+v’ but got ‘%+v’", x, y)
	}
}

func TestPush(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	assertPush(t, s, 1)
	s.Push(69)
	assertPush(t, s, 69)
	s.Push(420)
	assertPush(t, s, 420)
}

func TestPushBounded(t *testing.T) {
	s := New[int](2)
	if !s.Push(1) || !s.Push(2) {
		t.Fatalf("Expected the first two pushes to succeed")
	}
	if s.Push(3) {
		t.Fatalf("Expected a push onto a full stack to be dropped")
	}
	if s.Len() != 2 {
		t.Fatalf("Expected len(s) == 2 but got %d", s.Len())
	}
	assertPush(t, s, 2)
	if !s.Full() {
		t.Fatalf("Expected the stack to be full")
	}
}
