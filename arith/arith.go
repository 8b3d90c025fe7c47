// Package arith parses arithmetic expressions over single-digit
// terms: left-associative '+'/'-' over '*'/'/' with parenthesized
// grouping and interleaved whitespace. The Expr and Mul productions
// are directly left-recursive, which makes this grammar the worked
// example for the peg engine's growth support.
package arith

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

// Parser parses one input. Each input needs its own Parser: the memo
// table and character cache belong to a single parse.
type Parser struct {
	name string
	p    *peg.Parser
}

// ParseExpression prepares a parser for the expression grammar:
//
//	Grammar -> Expr end-of-input
//	Expr    -> Expr '+' Mul | Expr '-' Mul | Mul
//	Mul     -> Mul '*' Term | Mul '/' Term | Term
//	Term    -> digit WS | '(' WS Expr ')' WS
func ParseExpression(r io.Reader, opts ...Option) (*Parser, error) {
	a := &Parser{name: "<stream>"}
	for _, opt := range opts {
		opt(a)
	}
	reader, err := peg.NewReader(r, peg.WithName(a.name))
	if err != nil {
		return nil, err
	}
	a.p = peg.NewParser(reader)
	a.p.LeftRecursive("Expr", a.exprMul, a.exprAdd, a.exprSub)
	a.p.LeftRecursive("Mul", a.mulTerm, a.mulMul, a.mulDiv)
	return a, nil
}

// Parse evaluates the whole input. It returns nil when the input is
// not a single complete expression. Re-evaluating is cheap: every
// result comes out of the memo table.
func (a *Parser) Parse() *peg.Node {
	a.p.Reset(0)
	return a.p.Rule("Grammar", func() *peg.Node {
		pos := a.p.Mark()
		if expr := a.expr(); expr != nil {
			if a.eof() != nil {
				return expr
			}
		}
		a.p.Reset(pos)
		return nil
	})
}

// MemoEntries reports the size of the underlying memo table.
func (a *Parser) MemoEntries() int {
	return a.p.MemoEntries()
}

func (a *Parser) expr() *peg.Node {
	return a.p.Grow("Expr")
}

func (a *Parser) exprAdd() *peg.Node {
	return a.binary("Add", a.expr, a.plus, a.mul)
}

func (a *Parser) exprSub() *peg.Node {
	return a.binary("Sub", a.expr, a.minus, a.mul)
}

func (a *Parser) exprMul() *peg.Node {
	return a.mul()
}

func (a *Parser) mul() *peg.Node {
	return a.p.Grow("Mul")
}

func (a *Parser) mulMul() *peg.Node {
	return a.binary("Mul", a.mul, a.star, a.term)
}

func (a *Parser) mulDiv() *peg.Node {
	return a.binary("Div", a.mul, a.slash, a.term)
}

func (a *Parser) mulTerm() *peg.Node {
	return a.term()
}

// binary matches left op right and labels the resulting node.
func (a *Parser) binary(label string, left, op, right peg.RuleFunc) *peg.Node {
	pos := a.p.Mark()
	if l := left(); l != nil {
		if o := op(); o != nil {
			if r := right(); r != nil {
				return peg.NewList(label, l, o, r)
			}
		}
	}
	a.p.Reset(pos)
	return nil
}

func (a *Parser) term() *peg.Node {
	return a.p.Rule("Term", func() *peg.Node {
		pos := a.p.Mark()
		if digit := a.p.ExpectRange(peg.CharRange{Lo: '0', Hi: '9'}); digit != nil {
			if a.ws() != nil {
				return digit
			}
		}
		a.p.Reset(pos)
		if lp := a.punct("LPAREN", '('); lp != nil {
			if expr := a.expr(); expr != nil {
				if rp := a.punct("RPAREN", ')'); rp != nil {
					return peg.NewList("Group", lp, expr, rp)
				}
			}
		}
		a.p.Reset(pos)
		return nil
	})
}

func (a *Parser) plus() *peg.Node  { return a.punct("PLUS", '+') }
func (a *Parser) minus() *peg.Node { return a.punct("MINUS", '-') }
func (a *Parser) star() *peg.Node  { return a.punct("STAR", '*') }
func (a *Parser) slash() *peg.Node { return a.punct("SLASH", '/') }

// punct matches a single punctuation character and chews the
// whitespace behind it.
func (a *Parser) punct(name string, c rune) *peg.Node {
	return a.p.Rule(name, func() *peg.Node {
		pos := a.p.Mark()
		if tok := a.p.ExpectChar(c); tok != nil {
			if a.ws() != nil {
				return tok
			}
		}
		a.p.Reset(pos)
		return nil
	})
}

func (a *Parser) ws() *peg.Node {
	return a.p.Rule("WS", func() *peg.Node {
		return a.p.Repeat(0, a.spacing)
	})
}

func (a *Parser) spacing() *peg.Node {
	for _, c := range " \r\n\t" {
		if tok := a.p.ExpectChar(c); tok != nil {
			return tok
		}
	}
	return nil
}

func (a *Parser) eof() *peg.Node {
	return a.p.Rule("EOF", func() *peg.Node {
		return a.p.Lookahead(false, a.p.ExpectAny)
	})
}
