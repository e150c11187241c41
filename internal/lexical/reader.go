package lexical

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/rdforder/internal/term"
)

const maxLineSize = 1024 * 1024

// Reader streams statements from an N-Triples document.
type Reader struct {
	scanner    *bufio.Scanner
	line       int
	blankScope string
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithBlankScope prefixes every blank node label read by the Reader, so
// documents loaded into one graph keep their anonymous resources apart.
func WithBlankScope(prefix string) ReaderOption {
	return func(r *Reader) {
		r.blankScope = prefix
	}
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	rd := &Reader{scanner: sc}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Next returns the next statement, skipping blank lines and comments.
// It returns io.EOF when the document is exhausted.
func (r *Reader) Next() (term.Statement, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimRight(r.scanner.Text(), "\r")
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		p := &parser{src: text, line: r.line, blankScope: r.blankScope}
		return p.statement()
	}
	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return term.Statement{}, &SyntaxError{Line: r.line + 1, Col: 1, Msg: "line too long", Err: err}
		}
		return term.Statement{}, fmt.Errorf("read line %d: %w", r.line+1, err)
	}
	return term.Statement{}, io.EOF
}

// ReadAll reads every remaining statement.
func (r *Reader) ReadAll() ([]term.Statement, error) {
	var sts []term.Statement
	for {
		st, err := r.Next()
		if errors.Is(err, io.EOF) {
			return sts, nil
		}
		if err != nil {
			return nil, err
		}
		sts = append(sts, st)
	}
}

// ReadStatements parses a whole N-Triples document.
func ReadStatements(r io.Reader, opts ...ReaderOption) ([]term.Statement, error) {
	return NewReader(r, opts...).ReadAll()
}
