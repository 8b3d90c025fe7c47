package peg

import "fmt"

// Token is one matched unit of input: a single character pulled from
// the Reader, or a whole literal matched by ExpectString. Start and
// End are 0-based rune offsets into the input; Line is 1-based.
type Token struct {
	Value string
	Line  int
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%q line=%d %d-%d", t.Value, t.Line, t.Start, t.End)
}
