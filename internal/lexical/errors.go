package lexical

import (
	"fmt"
)

// SyntaxError reports malformed N-Triples input.
type SyntaxError struct {
	Line int // 1-based; 0 when parsing a standalone term
	Col  int // 1-based byte column
	Msg  string
	Err  error // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("col %d: %s", e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValueError reports a lexical form that is not valid for its datatype.
type ValueError struct {
	Lexical  string
	Datatype string
	Err      error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid lexical form %q for <%s>: %v", e.Lexical, e.Datatype, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
