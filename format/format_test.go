package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/packrat/arith"
)

func parseTree(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	p, err := arith.ParseExpression(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	node := p.Parse()
	if node == nil {
		t.Fatalf("no match for %q", input)
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(node); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestJSONEncoder(t *testing.T) {
	buf := parseTree(t, "1 + 2")

	var got jsonNode
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Kind != "List" || got.Label != "Add" {
		t.Errorf("got root %s/%s, want List/Add", got.Kind, got.Label)
	}
	if len(got.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(got.Children))
	}
	left := got.Children[0]
	if left.Token == nil || left.Token.Value != "1" || left.Token.Start != 0 {
		t.Errorf("got left operand %+v", left.Token)
	}
}

func TestTextEncoder(t *testing.T) {
	p, err := arith.ParseExpression(strings.NewReader("1 * 2"))
	if err != nil {
		t.Fatal(err)
	}
	node := p.Parse()
	if node == nil {
		t.Fatal("expected match")
	}

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(node); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Mul\n", "\"1\"", "\"2\"", "\"*\""} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
