package peg

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const defaultBufferSize = 4096

// Reader turns an io.Reader into a stream of single-character Tokens
// with line and column bookkeeping. Input must be UTF-8. Both '\r'
// and '\n' count as line terminators and reset the column counter.
type Reader struct {
	name    string
	bufsize int
	br      *bufio.Reader
	err     error
	eof     bool
	offset  int
	line    int
	column  int
}

type ReaderOption func(*Reader)

// WithName sets the source name used in diagnostics.
func WithName(name string) ReaderOption {
	return func(r *Reader) {
		r.name = name
	}
}

// WithBufferSize sets the refill size of the underlying buffer.
func WithBufferSize(n int) ReaderOption {
	return func(r *Reader) {
		r.bufsize = n
	}
}

// NewReader wraps src for character-at-a-time reading. The source is
// validated here; this is the only setup-time error the engine
// surfaces, everything later is a plain "no match".
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	if src == nil {
		return nil, errors.New("peg: source must not be nil")
	}
	r := &Reader{
		name:    "<stream>",
		bufsize: defaultBufferSize,
		line:    1,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.br = bufio.NewReaderSize(src, r.bufsize)
	return r, nil
}

// NewStringReader reads characters from an in-memory string.
func NewStringReader(s string) *Reader {
	r, _ := NewReader(strings.NewReader(s), WithName("<string>"))
	return r
}

func (r *Reader) Name() string {
	return r.name
}

// Line is the 1-based line number of the last character read.
func (r *Reader) Line() int {
	return r.line
}

// Column is the 1-based column of the last character read; it is 0
// immediately after a line terminator.
func (r *Reader) Column() int {
	return r.column
}

// Err reports the first read error other than io.EOF. A failed source
// looks like early end of input to the parser; callers that care
// check Err after parsing.
func (r *Reader) Err() error {
	return r.err
}

// Next pulls one character from the source. ok is false once the
// source is exhausted; after that Next keeps returning false.
func (r *Reader) Next() (tok Token, ok bool) {
	if r.eof {
		return Token{}, false
	}
	ch, _, err := r.br.ReadRune()
	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}
		return Token{}, false
	}
	if ch == '\r' || ch == '\n' {
		r.line++
		r.column = 0
	} else {
		r.column++
	}
	r.offset++
	return Token{
		Value: string(ch),
		Line:  r.line,
		Start: r.offset - 1,
		End:   r.offset,
	}, true
}
