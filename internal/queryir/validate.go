package queryir

import (
	"fmt"
	"regexp"

	"github.com/roach88/rdforder/internal/term"
)

var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationResult contains the analysis of a query.
type ValidationResult struct {
	// Valid is false when the query cannot be compiled.
	Valid bool

	// Errors lists structural problems. Empty when Valid is true.
	Errors []string

	// Warnings lists patterns that compile but can never match, or that
	// form a cross product.
	Warnings []string
}

// Validate checks a query before compilation.
//
// Errors:
//  1. nil or unknown query and node types
//  2. a Match without a graph
//  3. a variable name that is empty or not an identifier
//  4. a Bound without a term
//
// Warnings:
//  1. a literal bound in subject position
//  2. a blank node or literal bound in predicate position
//  3. a Join whose sides share no variable
//
// Validate is a pure function with no side effects.
func Validate(query Query) ValidationResult {
	v := &validator{
		errors:   []string{},
		warnings: []string{},
	}
	v.validateQuery(query)

	return ValidationResult{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

// validator accumulates findings during traversal. Matches are numbered
// left to right, as Matches returns them.
type validator struct {
	errors   []string
	warnings []string
	match    int
}

func (v *validator) addError(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

// validateQuery recursively validates a query node.
func (v *validator) validateQuery(q Query) {
	switch query := q.(type) {
	case nil:
		v.addError("nil query")
	case Match:
		v.validateMatch(query)
	case *Match:
		if query == nil {
			v.addError("nil query")
			return
		}
		v.validateMatch(*query)
	case Join:
		v.validateJoin(query)
	case *Join:
		if query == nil {
			v.addError("nil query")
			return
		}
		v.validateJoin(*query)
	default:
		v.addError("unknown query type: %T", q)
	}
}

func (v *validator) validateMatch(m Match) {
	index := v.match
	v.match++

	if m.Graph == "" {
		v.addError("match %d: graph is required", index)
	}

	for _, pos := range m.Positions() {
		if IsWildcard(pos.Node) {
			continue
		}
		if vr, ok := AsVar(pos.Node); ok {
			if !varNamePattern.MatchString(vr.Name) {
				v.addError("match %d: %s: invalid variable name %q", index, pos.Column, vr.Name)
			}
			continue
		}
		b, ok := AsBound(pos.Node)
		if !ok {
			v.addError("match %d: %s: unknown node type: %T", index, pos.Column, pos.Node)
			continue
		}
		if b.Term == nil {
			v.addError("match %d: %s: bound node has no term", index, pos.Column)
			continue
		}
		v.validateBound(index, pos.Column, b.Term)
	}
}

// validateBound warns about terms the position can never hold.
func (v *validator) validateBound(index int, column string, t term.Term) {
	switch {
	case column == "subject" && t.Kind() == term.KindLiteral:
		v.addWarning("match %d: subject bound to literal %s - no statement can match", index, t)
	case column == "predicate" && t.Kind() != term.KindIRI:
		v.addWarning("match %d: predicate bound to %s - no statement can match", index, t)
	}
}

func (v *validator) validateJoin(join Join) {
	v.validateQuery(join.Left)
	v.validateQuery(join.Right)

	left := map[string]bool{}
	for _, name := range Vars(join.Left) {
		left[name] = true
	}
	for _, name := range Vars(join.Right) {
		if left[name] {
			return
		}
	}
	v.addWarning("join shares no variables - cross product")
}
