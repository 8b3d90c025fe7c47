// Package objpath parses a tiny object-path language:
//
//	Path -> Path digit | Loc
//	Loc  -> Path '.' Ident | '$'
//
// Path and Loc are mutually left-recursive: each consumes the other
// on the left. The grammar exists to exercise the peg engine's
// seed-growing support for recursion through a cycle, where neither
// rule has a strictly non-recursive alternative of its own.
package objpath

import (
	"io"

	"github.com/dhamidi/packrat/peg"
)

type Option func(*Parser)

// WithName sets the input name used in diagnostics.
func WithName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}

type entryFunc func(*Parser) *peg.Node

// Parser parses one input starting from either Path or Loc.
type Parser struct {
	name  string
	p     *peg.Parser
	entry entryFunc
}

// ParsePath prepares a parser whose start symbol is Path.
func ParsePath(r io.Reader, opts ...Option) (*Parser, error) {
	return newParser(r, (*Parser).path, opts)
}

// ParseLoc prepares a parser whose start symbol is Loc.
func ParseLoc(r io.Reader, opts ...Option) (*Parser, error) {
	return newParser(r, (*Parser).loc, opts)
}

func newParser(r io.Reader, entry entryFunc, opts []Option) (*Parser, error) {
	o := &Parser{name: "<stream>", entry: entry}
	for _, opt := range opts {
		opt(o)
	}
	reader, err := peg.NewReader(r, peg.WithName(o.name))
	if err != nil {
		return nil, err
	}
	o.p = peg.NewParser(reader)
	// Neither rule has an alternative free of the cycle, but Loc
	// bottoms out at '$' while the partner's record still says "no
	// match", so the Loc alternative seeds Path and '$' seeds Loc.
	o.p.LeftRecursive("Path", o.pathLoc, o.pathIndex, o.pathLoc)
	o.p.LeftRecursive("Loc", o.locRoot, o.locField)
	return o, nil
}

// Parse evaluates the whole input against the start symbol. It
// returns nil when the input does not match.
func (o *Parser) Parse() *peg.Node {
	o.p.Reset(0)
	return o.p.Rule("Grammar", func() *peg.Node {
		pos := o.p.Mark()
		if path := o.entry(o); path != nil {
			if o.eof() != nil {
				return path
			}
		}
		o.p.Reset(pos)
		return nil
	})
}

// MemoEntries reports the size of the underlying memo table.
func (o *Parser) MemoEntries() int {
	return o.p.MemoEntries()
}

func (o *Parser) path() *peg.Node {
	return o.p.Grow("Path")
}

func (o *Parser) loc() *peg.Node {
	return o.p.Grow("Loc")
}

// pathIndex matches Path digit.
func (o *Parser) pathIndex() *peg.Node {
	pos := o.p.Mark()
	if path := o.path(); path != nil {
		if digit := o.p.ExpectRange(peg.CharRange{Lo: '0', Hi: '9'}); digit != nil {
			return peg.NewList("Index", path, digit)
		}
	}
	o.p.Reset(pos)
	return nil
}

// pathLoc is the Loc alternative of Path. It runs Loc's choice body
// directly rather than going through Loc's memo record: a Loc record
// finished during an earlier pass would freeze Path's growth at its
// stale end position.
func (o *Parser) pathLoc() *peg.Node {
	pos := o.p.Mark()
	if n := o.locField(); n != nil {
		return n
	}
	o.p.Reset(pos)
	if n := o.locRoot(); n != nil {
		return n
	}
	o.p.Reset(pos)
	return nil
}

// locField matches Path '.' Ident.
func (o *Parser) locField() *peg.Node {
	pos := o.p.Mark()
	if path := o.path(); path != nil {
		if dot := o.p.ExpectChar('.'); dot != nil {
			if id := o.ident(); id != nil {
				return peg.NewList("Field", path, dot, id)
			}
		}
	}
	o.p.Reset(pos)
	return nil
}

func (o *Parser) locRoot() *peg.Node {
	return o.p.ExpectChar('$')
}

func (o *Parser) ident() *peg.Node {
	return o.p.Rule("Ident", func() *peg.Node {
		letters := o.p.Repeat(1, o.letter)
		if letters == nil {
			return nil
		}
		letters.Label = "Ident"
		return letters
	})
}

func (o *Parser) letter() *peg.Node {
	return o.p.ExpectRange(
		peg.CharRange{Lo: 'a', Hi: 'z'},
		peg.CharRange{Lo: 'A', Hi: 'Z'},
	)
}

func (o *Parser) eof() *peg.Node {
	return o.p.Rule("EOF", func() *peg.Node {
		return o.p.Lookahead(false, o.p.ExpectAny)
	})
}
