// Package peg implements a packrat parsing engine: recursive-descent
// evaluation of ordered-choice (PEG) grammars where every (rule,
// position) result is memoized, plus seed-growing support for
// left-recursive rules after Warth et al.
//
// # Overview
//
// A Reader pulls characters one at a time from an io.Reader and
// stamps each with its line and rune offsets. The Parser caches those
// characters in a forward-growing buffer; backtracking is an integer
// cursor rewind into that cache, the source itself is never rewound.
//
// Grammars are ordinary Go methods composing the primitives:
//
//	func (g *grammar) term() *peg.Node {
//		return g.p.Rule("Term", func() *peg.Node {
//			return g.p.ExpectRange(peg.CharRange{Lo: '0', Hi: '9'})
//		})
//	}
//
// A rule signals "no match" by returning nil with the cursor back at
// its start position; there are no parse errors beyond that. Ordered
// choice is written as sequential attempts at the same mark, first
// success wins.
//
// # Left recursion
//
// A rule that consumes its own result on the left cannot be evaluated
// by plain recursion. Such rules register their alternatives up front
// with LeftRecursive, seed alternative first, and evaluate through
// Grow: the seed plants an initial match, then the recursive
// alternatives are re-run from the start position, observing the
// in-place updated memo record, until a pass no longer extends the
// match. This yields the left-associative parse PEG users expect from
//
//	Expr <- Expr '+' Mul / Expr '-' Mul / Mul
//
// Mutually left-recursive rules grow through each other: when one
// grow-set rule appears as an alternative of another, its grow-set
// entry references the alternative's choice body rather than the
// memoized rule, so a finished memo record from an earlier pass never
// freezes the partner's growth.
//
// The arith and objpath packages are worked examples of both forms.
package peg
