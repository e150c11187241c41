package term

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the structural shape of a Term.
type Kind int

const (
	KindBlank Kind = iota
	KindIRI
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is a sealed interface over the three graph term shapes.
// Only Blank, IRI, and Literal implement it.
type Term interface {
	isTerm() // Sealed

	// Kind reports the structural shape of the term.
	Kind() Kind

	// String renders the term in N-Triples syntax.
	String() string
}

// Blank is an anonymous resource. ID is scoped to one graph instance and is
// compared as an opaque string.
type Blank struct {
	ID string
}

func (Blank) isTerm() {}

func (Blank) Kind() Kind {
	return KindBlank
}

func (b Blank) String() string {
	return "_:" + b.ID
}

// IRI is a named resource identified by a global URI.
type IRI struct {
	URI string
}

func (IRI) isTerm() {}

func (IRI) Kind() Kind {
	return KindIRI
}

func (r IRI) String() string {
	return "<" + escapeIRI(r.URI) + ">"
}

// Literal is a data value with an optional language tag or datatype.
//
// Value holds the parsed representation for datatypes of a known Family and
// is nil otherwise. It is set once by the producing collaborator.
type Literal struct {
	Lexical  string
	Lang     string
	Datatype string
	Value    Value
}

func (Literal) isTerm() {}

func (Literal) Kind() Kind {
	return KindLiteral
}

func (l Literal) String() string {
	s := `"` + escapeString(l.Lexical) + `"`
	switch {
	case l.Datatype != "":
		return s + "^^<" + escapeIRI(l.Datatype) + ">"
	case l.Lang != "":
		return s + "@" + l.Lang
	default:
		return s
	}
}

// HasLang reports whether the literal carries a non-empty language tag.
func (l Literal) HasLang() bool {
	return l.Lang != ""
}

// IsTyped reports whether the literal carries a datatype.
func (l Literal) IsTyped() bool {
	return l.Datatype != ""
}

// Statement is a (subject, predicate, object) triple of terms.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// String renders the statement as one N-Triples line without the trailing newline.
func (s Statement) String() string {
	return s.Subject.String() + " " + s.Predicate.String() + " " + s.Object.String() + " ."
}

// NewIRI creates a named resource.
func NewIRI(uri string) IRI {
	return IRI{URI: uri}
}

// NewBlankWithID creates an anonymous resource with a caller-chosen id.
func NewBlankWithID(id string) Blank {
	return Blank{ID: id}
}

// NewBlank creates an anonymous resource with a fresh random id.
// The id has no dashes so it is a valid N-Triples blank node label.
func NewBlank() Blank {
	return Blank{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// NewLiteral creates a plain literal with neither language tag nor datatype.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral creates a literal with an explicit datatype and its
// already-parsed value. Pass a nil value for datatypes outside the known
// families.
func NewTypedLiteral(lexical, datatype string, value Value) Literal {
	return Literal{Lexical: lexical, Datatype: datatype, Value: value}
}

// NewStatement creates a statement.
func NewStatement(s, p, o Term) Statement {
	return Statement{Subject: s, Predicate: p, Object: o}
}
