package order

import (
	"fmt"
	"strings"

	"github.com/roach88/rdforder/internal/term"
)

// MalformedLiteralError reports a literal whose datatype belongs to a
// value-compared family but whose Value is missing or of another variant.
// Comparators panic with this error.
type MalformedLiteralError struct {
	Literal term.Literal
	Family  term.Family
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed literal %s: %s datatype backed by %T",
		e.Literal.String(), e.Family, e.Literal.Value)
}

func malformed(l term.Literal) *MalformedLiteralError {
	return &MalformedLiteralError{Literal: l, Family: term.FamilyOf(l.Datatype)}
}

// CompareLiterals orders two literals: typed before untyped, then by the
// untyped or typed rules.
func CompareLiterals(a, b term.Literal) int {
	switch {
	case a.IsTyped() && b.IsTyped():
		return CompareTypedLiterals(a, b)
	case a.IsTyped():
		return -1
	case b.IsTyped():
		return 1
	default:
		return CompareUntypedLiterals(a, b)
	}
}

// CompareUntypedLiterals orders two literals without datatype. The lexical
// form dominates; language tags only break ties. A tagged literal precedes
// an untagged one and an empty tag counts as absent.
func CompareUntypedLiterals(a, b term.Literal) int {
	if c := strings.Compare(a.Lexical, b.Lexical); c != 0 {
		return c
	}
	switch {
	case a.HasLang() && b.HasLang():
		return strings.Compare(a.Lang, b.Lang)
	case a.HasLang():
		return -1
	case b.HasLang():
		return 1
	default:
		return 0
	}
}

// CompareTypedLiterals orders two literals that both carry a datatype.
// Different datatypes order by datatype URI regardless of value; equal
// datatypes order by value according to the datatype's Family.
func CompareTypedLiterals(a, b term.Literal) int {
	if c := strings.Compare(a.Datatype, b.Datatype); c != 0 {
		return c
	}

	switch term.FamilyOf(a.Datatype) {
	case term.FamilyBoolean:
		return compareBool(boolValue(a), boolValue(b))
	case term.FamilyInteger:
		return compareIntegers(integerValue(a), integerValue(b))
	case term.FamilyFloat:
		return compareFloats(floatValue(a), floatValue(b))
	case term.FamilyTemporal:
		return compareInstants(instantValue(a), instantValue(b))
	case term.FamilyLexical:
		return strings.Compare(a.Lexical, b.Lexical)
	}
	panic(fmt.Sprintf("order: unhandled datatype family %d", term.FamilyOf(a.Datatype)))
}

// CompareValues orders two resolved values of the same family. It panics
// with a *MalformedLiteralError when either value is not of the family, or
// when two instants differ in precision.
func CompareValues(f term.Family, a, b term.Value) int {
	switch f {
	case term.FamilyBoolean:
		return compareBool(boolValue(valueLiteral(f, a)), boolValue(valueLiteral(f, b)))
	case term.FamilyInteger:
		return compareIntegers(integerValue(valueLiteral(f, a)), integerValue(valueLiteral(f, b)))
	case term.FamilyFloat:
		return compareFloats(floatValue(valueLiteral(f, a)), floatValue(valueLiteral(f, b)))
	case term.FamilyTemporal:
		x, ok := a.(term.Instant)
		if !ok {
			panic(&MalformedLiteralError{Literal: term.Literal{Value: a}, Family: f})
		}
		y, ok := b.(term.Instant)
		if !ok || x.Kind != y.Kind {
			panic(&MalformedLiteralError{Literal: term.Literal{Value: b}, Family: f})
		}
		return compareInstants(x, y)
	}
	panic(fmt.Sprintf("order: family %s has no value comparison", f))
}

// valueLiteral wraps a bare value so the literal accessors can check it.
func valueLiteral(f term.Family, v term.Value) term.Literal {
	return term.Literal{Datatype: familyDatatype[f], Value: v}
}

var familyDatatype = map[term.Family]string{
	term.FamilyBoolean: term.XSDBoolean,
	term.FamilyInteger: term.XSDDecimal,
	term.FamilyFloat:   term.XSDDouble,
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func boolValue(l term.Literal) bool {
	v, ok := l.Value.(term.Bool)
	if !ok {
		panic(malformed(l))
	}
	return bool(v)
}

func integerValue(l term.Literal) term.Value {
	switch v := l.Value.(type) {
	case term.FixedInt:
		return v
	case term.BigInt:
		if v.V != nil {
			return v
		}
	case term.Decimal:
		if v.V != nil {
			return v
		}
	}
	panic(malformed(l))
}

func floatValue(l term.Literal) term.Value {
	switch v := l.Value.(type) {
	case term.Float32, term.Float64:
		return v
	}
	panic(malformed(l))
}

// instantValue also checks that the instant's precision matches the
// declared datatype, so a date never compares against a time.
func instantValue(l term.Literal) term.Instant {
	v, ok := l.Value.(term.Instant)
	if !ok {
		panic(malformed(l))
	}
	if kind, _ := term.TemporalKindOf(l.Datatype); v.Kind != kind {
		panic(malformed(l))
	}
	return v
}
