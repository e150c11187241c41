package order

import (
	"fmt"
	"strings"

	"github.com/roach88/rdforder/internal/term"
)

// CompareTerm returns the standard order of two terms.
func CompareTerm(a, b term.Term) int {
	aLit, bLit := a.Kind() == term.KindLiteral, b.Kind() == term.KindLiteral
	switch {
	case aLit && bLit:
		return CompareLiterals(literalOf(a), literalOf(b))
	case aLit:
		return 1
	case bLit:
		return -1
	default:
		return CompareResources(a, b)
	}
}

// CompareResources orders two resources: anonymous before named, then by
// id or URI.
func CompareResources(a, b term.Term) int {
	switch x := a.(type) {
	case term.Blank:
		switch y := b.(type) {
		case term.Blank:
			return strings.Compare(x.ID, y.ID)
		case term.IRI:
			return -1
		}
	case term.IRI:
		switch y := b.(type) {
		case term.Blank:
			return 1
		case term.IRI:
			return strings.Compare(x.URI, y.URI)
		}
	}
	panic(fmt.Sprintf("order: CompareResources on %T and %T", a, b))
}

// CompareStatement orders statements by subject, predicate and object,
// stopping at the first position that differs.
func CompareStatement(a, b term.Statement) int {
	if c := CompareTerm(a.Subject, b.Subject); c != 0 {
		return c
	}
	if c := CompareTerm(a.Predicate, b.Predicate); c != 0 {
		return c
	}
	return CompareTerm(a.Object, b.Object)
}

func literalOf(t term.Term) term.Literal {
	l, ok := t.(term.Literal)
	if !ok {
		panic(fmt.Sprintf("order: %T reports KindLiteral but is not term.Literal", t))
	}
	return l
}
