// Package format renders parse trees produced by the peg engine.
package format

import "github.com/dhamidi/packrat/peg"

// Encoder writes a parse tree to an output stream.
type Encoder interface {
	Encode(node *peg.Node) error
}
