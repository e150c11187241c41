package lexical

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/roach88/rdforder/internal/term"
)

// ParseTerm parses a single N-Triples term. Surrounding whitespace is
// ignored; anything else after the term is an error.
func ParseTerm(s string) (term.Term, error) {
	p := &parser{src: s}
	p.skipSpace()
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after term", p.rest())
	}
	return t, nil
}

// ParseTermPrefix parses the term at the start of s, after optional
// whitespace, and returns it with the number of bytes consumed.
func ParseTermPrefix(s string) (term.Term, int, error) {
	p := &parser{src: s}
	p.skipSpace()
	t, err := p.term()
	if err != nil {
		return nil, 0, err
	}
	return t, p.pos, nil
}

// MustParseTerm is like ParseTerm but panics on error.
func MustParseTerm(s string) term.Term {
	t, err := ParseTerm(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseStatement parses one N-Triples statement line, with optional
// trailing comment.
func ParseStatement(line string) (term.Statement, error) {
	p := &parser{src: line}
	return p.statement()
}

// parser is a cursor over one line of input.
type parser struct {
	src        string
	pos        int
	line       int
	blankScope string
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) rest() string {
	return p.src[p.pos:]
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) advance(n int) {
	p.pos += n
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: p.line, Col: p.pos + 1, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) statement() (term.Statement, error) {
	p.skipSpace()
	subject, err := p.term()
	if err != nil {
		return term.Statement{}, err
	}
	if subject.Kind() == term.KindLiteral {
		return term.Statement{}, p.errorf("subject must be an IRI or blank node")
	}

	p.skipSpace()
	start := p.pos
	predicate, err := p.term()
	if err != nil {
		return term.Statement{}, err
	}
	if predicate.Kind() != term.KindIRI {
		p.pos = start
		return term.Statement{}, p.errorf("predicate must be an IRI")
	}

	p.skipSpace()
	object, err := p.term()
	if err != nil {
		return term.Statement{}, err
	}

	p.skipSpace()
	if p.eof() || p.peek() != '.' {
		return term.Statement{}, p.errorf("expected '.' to end statement")
	}
	p.advance(1)
	p.skipSpace()
	if !p.eof() && p.peek() != '#' {
		return term.Statement{}, p.errorf("unexpected %q after statement", p.rest())
	}
	return term.NewStatement(subject, predicate, object), nil
}

func (p *parser) term() (term.Term, error) {
	if p.eof() {
		return nil, p.errorf("expected term, found end of input")
	}
	switch {
	case p.peek() == '<':
		uri, err := p.iriRef()
		if err != nil {
			return nil, err
		}
		return term.NewIRI(uri), nil
	case strings.HasPrefix(p.rest(), "_:"):
		return p.blank()
	case p.peek() == '"':
		return p.literal()
	}
	return nil, p.errorf("unexpected %q, expected term", p.rest()[:1])
}

func (p *parser) iriRef() (string, error) {
	p.advance(1) // <
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated IRI")
		}
		c := p.peek()
		switch {
		case c == '>':
			p.advance(1)
			return b.String(), nil
		case c == '\\':
			r, err := p.uchar()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		case c <= 0x20 || strings.IndexByte(`<"{}|^`+"`", c) >= 0:
			return "", p.errorf("invalid character %q in IRI", c)
		default:
			b.WriteByte(c)
			p.advance(1)
		}
	}
}

func (p *parser) blank() (term.Term, error) {
	p.advance(2) // _:
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.rest())
		first := p.pos == start
		if !isLabelRune(r, first) {
			break
		}
		p.advance(size)
	}
	// A label may contain but not end with '.'.
	for p.pos > start && p.src[p.pos-1] == '.' {
		p.pos--
	}
	if p.pos == start {
		return nil, p.errorf("empty blank node label")
	}
	return term.NewBlankWithID(p.blankScope + p.src[start:p.pos]), nil
}

func isLabelRune(r rune, first bool) bool {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return true
	case first:
		return false
	case r == '-' || r == '.' || r == 0xB7:
		return true
	}
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)
}

func (p *parser) literal() (term.Term, error) {
	lex, err := p.quoted()
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return term.NewLiteral(lex), nil
	}

	switch {
	case p.peek() == '@':
		p.advance(1)
		start := p.pos
		for !p.eof() && (isAlnum(p.peek()) || p.peek() == '-') {
			p.advance(1)
		}
		tag := p.src[start:p.pos]
		if err := ValidateLang(tag); err != nil {
			p.pos = start
			return nil, p.errorf("%v", err)
		}
		return term.NewLangLiteral(lex, tag), nil
	case strings.HasPrefix(p.rest(), "^^"):
		p.advance(2)
		if p.eof() || p.peek() != '<' {
			return nil, p.errorf("expected datatype IRI after ^^")
		}
		start := p.pos
		dt, err := p.iriRef()
		if err != nil {
			return nil, err
		}
		l, err := NewTypedLiteral(lex, dt)
		if err != nil {
			se := &SyntaxError{Line: p.line, Col: start + 1, Msg: err.Error(), Err: err}
			return nil, se
		}
		return l, nil
	}
	return term.NewLiteral(lex), nil
}

func (p *parser) quoted() (string, error) {
	p.advance(1) // "
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		switch c {
		case '"':
			p.advance(1)
			return b.String(), nil
		case '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case '\n', '\r':
			return "", p.errorf("raw line break in string")
		default:
			b.WriteByte(c)
			p.advance(1)
		}
	}
}

var echars = map[byte]byte{
	't': '\t', 'b': '\b', 'n': '\n', 'r': '\r', 'f': '\f',
	'"': '"', '\'': '\'', '\\': '\\',
}

func (p *parser) escape(b *strings.Builder) error {
	if p.pos+1 >= len(p.src) {
		return p.errorf("incomplete escape")
	}
	if c, ok := echars[p.src[p.pos+1]]; ok {
		b.WriteByte(c)
		p.advance(2)
		return nil
	}
	r, err := p.uchar()
	if err != nil {
		return err
	}
	b.WriteRune(r)
	return nil
}

// uchar decodes \uXXXX or \UXXXXXXXX at the cursor.
func (p *parser) uchar() (rune, error) {
	if p.pos+1 >= len(p.src) {
		return 0, p.errorf("incomplete escape")
	}
	var n int
	switch p.src[p.pos+1] {
	case 'u':
		n = 4
	case 'U':
		n = 8
	default:
		return 0, p.errorf("invalid escape \\%c", p.src[p.pos+1])
	}
	hex := p.src[p.pos+2 : min(p.pos+2+n, len(p.src))]
	if len(hex) != n {
		return 0, p.errorf("incomplete \\%c escape", p.src[p.pos+1])
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, p.errorf("invalid code point escape %q", hex)
	}
	p.advance(2 + n)
	return rune(v), nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// ValidateLang checks that tag is a well-formed BCP 47 language tag.
// Unknown but well-formed subtags are accepted.
func ValidateLang(tag string) error {
	if tag == "" {
		return errors.New("empty language tag")
	}
	for i, part := range strings.Split(tag, "-") {
		if part == "" {
			return fmt.Errorf("empty subtag in language tag %q", tag)
		}
		if i == 0 {
			for j := 0; j < len(part); j++ {
				if !unicode.IsLetter(rune(part[j])) {
					return fmt.Errorf("language tag %q must start with letters", tag)
				}
			}
		}
	}
	if _, err := language.Parse(tag); err != nil {
		var unknown language.ValueError
		if errors.As(err, &unknown) {
			return nil
		}
		return fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return nil
}
