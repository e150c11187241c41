package compiler

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/order"
	"github.com/roach88/rdforder/internal/term"
)

// Validation error codes (E100-E199)
const (
	ErrRelativeIRI       = "E101" // IRI without scheme
	ErrRelativeDatatype  = "E102" // datatype IRI without scheme
	ErrInvalidBlankLabel = "E103" // label not expressible in N-Triples
	ErrDuplicate         = "E104" // statement equal to an earlier one under the standard order
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// ValidationError represents a problem in a compiled statement set.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Index   int    `json:"index"` // statement position in document order
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] statements[%d].%s: %s", e.Code, e.Index, e.Field, e.Message)
}

// Validate checks compiled statements. Returns all problems found (does not
// fail-fast), ordered by statement index.
func Validate(sts []term.Statement) []ValidationError {
	var errs []ValidationError

	for i, st := range sts {
		for _, pos := range []struct {
			field string
			t     term.Term
		}{
			{"subject", st.Subject},
			{"predicate", st.Predicate},
			{"object", st.Object},
		} {
			errs = append(errs, validateTerm(pos.t, pos.field, i)...)
		}
	}
	errs = append(errs, findDuplicates(sts)...)

	slices.SortStableFunc(errs, func(a, b ValidationError) int {
		return a.Index - b.Index
	})
	return errs
}

func validateTerm(t term.Term, field string, index int) []ValidationError {
	switch v := t.(type) {
	case term.IRI:
		if !schemePattern.MatchString(v.URI) {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("IRI %q is not absolute", v.URI),
				Code:    ErrRelativeIRI,
				Index:   index,
			}}
		}
	case term.Blank:
		parsed, err := lexical.ParseTerm(v.String())
		if err != nil || parsed != t {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("blank node label %q is not a valid N-Triples label", v.ID),
				Code:    ErrInvalidBlankLabel,
				Index:   index,
			}}
		}
	case term.Literal:
		if v.IsTyped() && !schemePattern.MatchString(v.Datatype) {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("datatype %q is not absolute", v.Datatype),
				Code:    ErrRelativeDatatype,
				Index:   index,
			}}
		}
	}
	return nil
}

// findDuplicates reports statements the comparator treats as equal to an
// earlier statement. Equal under the order does not mean identical: "03"
// and "3" typed as xsd:int are duplicates.
func findDuplicates(sts []term.Statement) []ValidationError {
	idx := make([]int, len(sts))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return order.CompareStatement(sts[a], sts[b])
	})

	// Stable sort keeps each run in document order, so the run start is
	// the earliest statement.
	var errs []ValidationError
	run := 0
	for k := 1; k < len(idx); k++ {
		if order.CompareStatement(sts[idx[run]], sts[idx[k]]) != 0 {
			run = k
			continue
		}
		errs = append(errs, ValidationError{
			Field:   "statement",
			Message: fmt.Sprintf("duplicate of statements[%d]", idx[run]),
			Code:    ErrDuplicate,
			Index:   idx[k],
		})
	}
	return errs
}
