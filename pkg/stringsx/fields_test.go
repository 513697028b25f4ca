package stringsx

import "testing"

func TestFields(t *testing.T) {
	xs := Fields(" bob and \t  Figment  are THE  Bombz  ")
	ys := []string{"bob", "and", "Figment", "are", "THE", "Bombz"}
	if len(xs) != len(ys) {
		t.Fatalf("Expected len(xs) == %d but got %d", len(ys), len(xs))
	}
	for i := range ys {
		if xs[i] != ys[i] {
			t.Fatalf("Expected xs[%d] == ‘%s’ but got ‘%s’", i, ys[i], xs[i])
		}
	}
}

func TestFieldsEmpty(t *testing.T) {
	if xs := Fields(" \t "); len(xs) != 0 {
		t.Fatalf("Expected no fields but got %q", xs)
	}
	if xs := Fields(""); len(xs) != 0 {
		t.Fatalf("Expected no fields but got %q", xs)
	}
}

func TestNth(t *testing.T) {
	s := " The  world  is coming to an end!"
	if x := Nth(s, 1); x != "The" {
		t.Fatalf("Expected ‘The’ but got ‘%s’", x)
	}
	if x := Nth(s, 7); x != "end!" {
		t.Fatalf("Expected ‘end!’ but got ‘%s’", x)
	}
	if x := Nth(s, 8); x != "" {
		t.Fatalf("Expected an empty string but got ‘%s’", x)
	}
	if x := Nth(s, 0); x != "" {
		t.Fatalf("Expected an empty string but got ‘%s’", x)
	}
}

func TestFieldsKeepsNewlines(t *testing.T) {
	xs := Fields("a\nb c")
	if len(xs) != 2 || xs[0] != "a\nb" || xs[1] != "c" {
		t.Fatalf("Expected [‘a\\nb’ ‘c’] but got %q", xs)
	}
}
