package lexer

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNext(t *testing.T) {
	s := "¢ȠʗǱɓǇϴ¤Ίϑ'щƎcɛǩΟȏɁƅ"
	l := New(s)

	for _, x := range []rune(s) {
		if y := l.next(); x != y {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x, y)
		}
	}

	if r := l.next(); r != eof {
		t.Fatalf("Expected eof but got ‘%c’", r)
	}
}

func TestPeek(t *testing.T) {
	s := "#a+1"
	l := New(s)

	if r := l.peek(); r != '#' {
		t.Fatalf("Expected ‘#’ but got ‘%c’", r)
	}
	if r := l.peek(); r != '#' {
		t.Fatalf("Expected ‘#’ but got ‘%c’", r)
	}
	l.next()
	if r := l.peek(); r != 'a' {
		t.Fatalf("Expected ‘a’ but got ‘%c’", r)
	}
}
