package compiler

import (
	"fmt"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/term"
)

// CompileGraph compiles a CUE graph document into statements.
// Uses CUE SDK's Go API directly.
//
// The CUE value should be the graph struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`graph: statements: [...]`)
//	sts, err := CompileGraph(v.LookupPath(cue.ParsePath("graph")))
//
// Statements are returned in document order.
func CompileGraph(v cue.Value) ([]term.Statement, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	stsVal := v.LookupPath(cue.ParsePath("statements"))
	if !stsVal.Exists() {
		return nil, &CompileError{
			Field:   "statements",
			Message: "statements is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := stsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var sts []term.Statement
	for i := 0; iter.Next(); i++ {
		st, err := compileStatement(iter.Value(), fmt.Sprintf("statements[%d]", i))
		if err != nil {
			return nil, err
		}
		sts = append(sts, st)
	}
	return sts, nil
}

// GraphName returns the optional graph name, or "" when absent.
func GraphName(v cue.Value) (string, error) {
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return "", nil
	}
	name, err := nameVal.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return name, nil
}

func compileStatement(v cue.Value, field string) (term.Statement, error) {
	var nodes [3]term.Term
	for i, role := range []string{"subject", "predicate", "object"} {
		nodeVal := v.LookupPath(cue.ParsePath(role))
		if !nodeVal.Exists() {
			return term.Statement{}, &CompileError{
				Field:   field + "." + role,
				Message: role + " is required",
				Pos:     v.Pos(),
			}
		}
		t, err := compileNode(nodeVal, field+"."+role)
		if err != nil {
			return term.Statement{}, err
		}
		nodes[i] = t
	}

	subject, predicate, object := nodes[0], nodes[1], nodes[2]
	if subject.Kind() == term.KindLiteral {
		return term.Statement{}, &CompileError{
			Field:   field + ".subject",
			Message: "subject must be an iri or blank node",
			Pos:     v.Pos(),
		}
	}
	if predicate.Kind() != term.KindIRI {
		return term.Statement{}, &CompileError{
			Field:   field + ".predicate",
			Message: "predicate must be an iri",
			Pos:     v.Pos(),
		}
	}
	return term.NewStatement(subject, predicate, object), nil
}

// nodeFields lists the fields allowed alongside each node key.
var nodeFields = map[string][]string{
	"iri":     {"iri"},
	"blank":   {"blank"},
	"literal": {"literal", "lang", "datatype"},
}

// compileNode compiles a node object carrying exactly one of iri, blank
// or literal.
func compileNode(v cue.Value, field string) (term.Term, error) {
	iter, err := v.Fields()
	if err != nil {
		return nil, &CompileError{
			Field:   field,
			Message: "node must be an object with one of iri, blank, literal",
			Pos:     v.Pos(),
		}
	}

	var labels []string
	for iter.Next() {
		labels = append(labels, iter.Label())
	}

	var key string
	for _, l := range labels {
		if _, ok := nodeFields[l]; !ok {
			continue
		}
		if key != "" {
			return nil, &CompileError{
				Field:   field,
				Message: fmt.Sprintf("node has both %s and %s", key, l),
				Pos:     v.Pos(),
			}
		}
		key = l
	}
	if key == "" {
		return nil, &CompileError{
			Field:   field,
			Message: "node needs one of iri, blank, literal",
			Pos:     v.Pos(),
		}
	}
	for _, l := range labels {
		if !slices.Contains(nodeFields[key], l) {
			return nil, &CompileError{
				Field:   field + "." + l,
				Message: fmt.Sprintf("unexpected field on %s node", key),
				Pos:     v.Pos(),
			}
		}
	}

	switch key {
	case "iri":
		uri, err := stringField(v, "iri")
		if err != nil {
			return nil, err
		}
		if uri == "" {
			return nil, &CompileError{Field: field + ".iri", Message: "iri must not be empty", Pos: v.Pos()}
		}
		return term.NewIRI(uri), nil
	case "blank":
		label, err := stringField(v, "blank")
		if err != nil {
			return nil, err
		}
		if label == "" {
			return term.NewBlank(), nil
		}
		return term.NewBlankWithID(label), nil
	default:
		return compileLiteral(v, field)
	}
}

func compileLiteral(v cue.Value, field string) (term.Term, error) {
	litVal := v.LookupPath(cue.ParsePath("literal"))
	langVal := v.LookupPath(cue.ParsePath("lang"))
	dtVal := v.LookupPath(cue.ParsePath("datatype"))

	if langVal.Exists() && dtVal.Exists() {
		return nil, &CompileError{
			Field:   field,
			Message: "literal cannot have both lang and datatype",
			Pos:     v.Pos(),
		}
	}

	lex, implied, err := literalLexical(litVal, field)
	if err != nil {
		return nil, err
	}

	switch {
	case langVal.Exists():
		if implied != "" {
			return nil, &CompileError{
				Field:   field + ".lang",
				Message: "lang requires a string literal",
				Pos:     langVal.Pos(),
			}
		}
		lang, err := stringField(v, "lang")
		if err != nil {
			return nil, err
		}
		if err := lexical.ValidateLang(lang); err != nil {
			return nil, &CompileError{Field: field + ".lang", Message: err.Error(), Pos: langVal.Pos()}
		}
		return term.NewLangLiteral(lex, lang), nil
	case dtVal.Exists():
		dt, err := stringField(v, "datatype")
		if err != nil {
			return nil, err
		}
		return typedLiteral(lex, dt, field, litVal.Pos())
	case implied != "":
		return typedLiteral(lex, implied, field, litVal.Pos())
	}
	return term.NewLiteral(lex), nil
}

// literalLexical returns the lexical form of a literal value. CUE integers
// and booleans imply xsd:integer and xsd:boolean; floats are rejected since
// their lexical form would not survive the round trip.
func literalLexical(v cue.Value, field string) (lex, implied string, err error) {
	switch v.IncompleteKind() {
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return "", "", formatCUEError(err)
		}
		return s, "", nil
	case cue.IntKind:
		n, err := v.Int(nil)
		if err != nil {
			return "", "", formatCUEError(err)
		}
		return n.String(), term.XSDInteger, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return "", "", formatCUEError(err)
		}
		return fmt.Sprint(b), term.XSDBoolean, nil
	case cue.FloatKind, cue.NumberKind:
		return "", "", &CompileError{
			Field:   field + ".literal",
			Message: "float literals are ambiguous - use a string with a datatype",
			Pos:     v.Pos(),
		}
	}
	return "", "", &CompileError{
		Field:   field + ".literal",
		Message: fmt.Sprintf("unsupported literal kind: %v", v.IncompleteKind()),
		Pos:     v.Pos(),
	}
}

func typedLiteral(lex, datatype, field string, pos token.Pos) (term.Term, error) {
	l, err := lexical.NewTypedLiteral(lex, datatype)
	if err != nil {
		return nil, &CompileError{Field: field + ".literal", Message: err.Error(), Pos: pos}
	}
	return l, nil
}

func stringField(v cue.Value, name string) (string, error) {
	s, err := v.LookupPath(cue.ParsePath(name)).String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}
