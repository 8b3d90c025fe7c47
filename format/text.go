package format

import (
	"io"

	"github.com/dhamidi/packrat/peg"
)

// TextEncoder writes the indented tree dump of a node.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node *peg.Node) error {
	_, err := io.WriteString(e.w, node.String())
	return err
}
