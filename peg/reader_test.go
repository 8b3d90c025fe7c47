package peg

import (
	"strings"
	"testing"
)

func TestReaderTokens(t *testing.T) {
	r := NewStringReader("ab\nc")

	want := []Token{
		{Value: "a", Line: 1, Start: 0, End: 1},
		{Value: "b", Line: 1, Start: 1, End: 2},
		{Value: "\n", Line: 2, Start: 2, End: 3},
		{Value: "c", Line: 2, Start: 3, End: 4},
	}

	for i, w := range want {
		tok, ok := r.Next()
		if !ok {
			t.Fatalf("token %d: unexpected end of input", i)
		}
		if tok != w {
			t.Errorf("token %d: got %v, want %v", i, tok, w)
		}
	}

	if _, ok := r.Next(); ok {
		t.Error("expected end of input")
	}
	// Exhaustion is sticky.
	if _, ok := r.Next(); ok {
		t.Error("expected end of input to persist")
	}
}

func TestReaderLineColumn(t *testing.T) {
	r := NewStringReader("ab\r\ncd")

	checks := []struct {
		line, column int
	}{
		{1, 1}, // a
		{1, 2}, // b
		{2, 0}, // \r
		{3, 0}, // \n
		{3, 1}, // c
		{3, 2}, // d
	}

	for i, c := range checks {
		if _, ok := r.Next(); !ok {
			t.Fatalf("char %d: unexpected end of input", i)
		}
		if r.Line() != c.line || r.Column() != c.column {
			t.Errorf("char %d: got %d:%d, want %d:%d", i, r.Line(), r.Column(), c.line, c.column)
		}
	}
}

func TestReaderNilSource(t *testing.T) {
	if _, err := NewReader(nil); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestReaderOptions(t *testing.T) {
	r, err := NewReader(strings.NewReader("hello"), WithName("greeting"), WithBufferSize(1))
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "greeting" {
		t.Errorf("got name %q, want %q", r.Name(), "greeting")
	}

	var got strings.Builder
	for {
		tok, ok := r.Next()
		if !ok {
			break
		}
		got.WriteString(tok.Value)
	}
	if got.String() != "hello" {
		t.Errorf("got %q, want %q", got.String(), "hello")
	}
	if r.Err() != nil {
		t.Errorf("unexpected read error: %v", r.Err())
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewStringReader("")
	if _, ok := r.Next(); ok {
		t.Error("expected immediate end of input")
	}
	if r.Line() != 1 {
		t.Errorf("got line %d, want 1", r.Line())
	}
}
