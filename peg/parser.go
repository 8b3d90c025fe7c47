package peg

import (
	"fmt"
	"unicode/utf8"
)

// RuleFunc produces one alternative of a production. It returns nil
// and leaves the cursor where it started when the alternative does
// not match.
type RuleFunc func() *Node

// CharRange is one inclusive range for ExpectRange.
type CharRange struct {
	Lo rune
	Hi rune
}

// Parser evaluates PEG rules over a lazily filled character cache.
// Every memoized (rule, position) pair is computed at most once, so a
// parse runs in time linear in the input for a fixed grammar. One
// Parser serves exactly one input; use a fresh Parser and Reader per
// parse.
type Parser struct {
	reader *Reader
	chars  []*Token // nil entry marks end of input
	pos    int
	memos  map[memoKey]*memoEntry
	grow   map[string][]RuleFunc
}

func NewParser(r *Reader) *Parser {
	return &Parser{
		reader: r,
		memos:  make(map[memoKey]*memoEntry),
		grow:   make(map[string][]RuleFunc),
	}
}

// LeftRecursive registers the grow-set for a left-recursive rule,
// evaluated by Grow. The first alternative is the seed: it must be
// able to match while the rule's own memo record still says "no
// match". The remaining alternatives are the recursive ones, in
// grammar order.
func (p *Parser) LeftRecursive(name string, alts ...RuleFunc) {
	if len(alts) == 0 {
		panic(fmt.Sprintf("peg: left-recursive rule %q needs at least a seed alternative", name))
	}
	p.grow[name] = alts
}

// Mark returns the current cursor.
func (p *Parser) Mark() int {
	return p.pos
}

// Reset rewinds the cursor to a position previously returned by Mark.
func (p *Parser) Reset(pos int) {
	p.pos = pos
}

// MemoEntries reports the memo table size.
func (p *Parser) MemoEntries() int {
	return len(p.memos)
}

// peekChar returns the character at the cursor without consuming it,
// pulling from the reader on first access past the cached range. The
// end-of-input sentinel (nil) is cached too, so peeking past the end
// is stable and cheap.
func (p *Parser) peekChar() *Token {
	if p.pos == len(p.chars) {
		if tok, ok := p.reader.Next(); ok {
			p.chars = append(p.chars, &tok)
		} else {
			p.chars = append(p.chars, nil)
		}
	}
	return p.chars[p.pos]
}

func (p *Parser) memoized(key memoKey, fn func() *Node) *Node {
	if m, ok := p.memos[key]; ok {
		p.pos = m.pos
		return m.result
	}
	result := fn()
	p.memos[key] = &memoEntry{result: result, pos: p.pos}
	return result
}

// Rule wraps a production body with plain memoization. On a hit the
// stored result is returned with the cursor at the stored end
// position, without re-running fn. fn must leave the cursor at its
// start position when it fails.
func (p *Parser) Rule(name string, fn RuleFunc) *Node {
	return p.memoized(memoKey{name: name, pos: p.pos}, fn)
}

// ExpectChar consumes one character equal to c.
func (p *Parser) ExpectChar(c rune) *Node {
	return p.memoized(memoKey{name: "char", arg: string(c), pos: p.pos}, func() *Node {
		if tok := p.peekChar(); tok != nil && tok.Value == string(c) {
			p.pos++
			return NewTokenNode(*tok)
		}
		return nil
	})
}

// ExpectAny consumes any one character; it fails only at end of
// input. Lookahead(false, p.ExpectAny) is the end-of-input check.
func (p *Parser) ExpectAny() *Node {
	return p.memoized(memoKey{name: "any", pos: p.pos}, func() *Node {
		if tok := p.peekChar(); tok != nil {
			p.pos++
			return NewTokenNode(*tok)
		}
		return nil
	})
}

// ExpectString consumes s verbatim and returns a single token
// spanning the whole literal. A mismatch or end of input anywhere
// inside the literal rewinds to the start and fails; no partial
// consumption survives.
func (p *Parser) ExpectString(s string) *Node {
	return p.memoized(memoKey{name: "string", arg: s, pos: p.pos}, func() *Node {
		pos := p.pos
		for _, c := range s {
			tok := p.peekChar()
			if tok == nil || tok.Value != string(c) {
				p.pos = pos
				return nil
			}
			p.pos++
		}
		line := p.reader.Line()
		if p.pos > pos {
			line = p.chars[pos].Line
		}
		return NewTokenNode(Token{Value: s, Line: line, Start: pos, End: p.pos})
	})
}

// ExpectRange consumes one character falling in any of the given
// inclusive ranges.
func (p *Parser) ExpectRange(ranges ...CharRange) *Node {
	tok := p.peekChar()
	if tok == nil {
		return nil
	}
	c, _ := utf8.DecodeRuneInString(tok.Value)
	for _, r := range ranges {
		if c >= r.Lo && c <= r.Hi {
			p.pos++
			return NewTokenNode(*tok)
		}
	}
	return nil
}

// Lookahead evaluates fn without consuming input; the cursor is
// always restored. It succeeds with an empty result iff fn's success
// equals positive.
func (p *Parser) Lookahead(positive bool, fn RuleFunc) *Node {
	pos := p.pos
	ok := fn() != nil
	p.pos = pos
	if ok == positive {
		return NewList("")
	}
	return nil
}

// Repeat evaluates fn until it fails or stops advancing the cursor,
// collecting the results. The progress check keeps zero-width matches
// from looping forever. min is 0 for star, 1 for plus; fewer than min
// repetitions rewinds to the start and fails.
func (p *Parser) Repeat(min int, fn RuleFunc) *Node {
	pos := p.pos
	last := p.pos
	list := NewList("")
	for {
		node := fn()
		if node == nil || p.pos <= last {
			break
		}
		list.Children = append(list.Children, node)
		last = p.pos
	}
	if len(list.Children) >= min {
		return list
	}
	p.pos = pos
	return nil
}

// Grow evaluates a left-recursive rule registered with LeftRecursive
// using the seed-growing algorithm: install a "no match" record so
// re-entrant calls at this position see the current partial result
// instead of recursing forever, plant the seed, then re-run the
// recursive alternatives from the start position until a pass stops
// extending the match. Within a pass the alternatives are ordered
// choice: the first success wins, earlier alternatives shadow later
// ones. Each improving pass strictly advances the recorded end
// position, which is bounded by the input length, so growth
// terminates.
func (p *Parser) Grow(name string) *Node {
	alts, registered := p.grow[name]
	if !registered {
		panic(fmt.Sprintf("peg: rule %q is not registered as left-recursive", name))
	}

	pos := p.pos
	key := memoKey{name: name, pos: pos}
	if m, ok := p.memos[key]; ok {
		p.pos = m.pos
		return m.result
	}

	m := &memoEntry{pos: pos}
	p.memos[key] = m

	seed := alts[0]()
	if seed == nil {
		return nil
	}
	m.result, m.pos = seed, p.pos

	for {
		p.pos = pos
		var result *Node
		for _, alt := range alts[1:] {
			if result = alt(); result != nil {
				break
			}
			p.pos = pos
		}
		if p.pos <= m.pos {
			p.pos = m.pos
			return m.result
		}
		m.result, m.pos = result, p.pos
	}
}
