package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/order"
	"github.com/roach88/rdforder/internal/store"
	"github.com/roach88/rdforder/internal/term"
)

// scenarioGraph is the graph store_order writes to.
const scenarioGraph = "scenario"

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// AssertionContext carries the parsed scenario for assertion evaluation.
type AssertionContext struct {
	Ctx        context.Context
	Terms      []term.Term
	Statements []term.Statement

	// Store is required by store_order only.
	Store *store.Store
}

// assertExtreme checks that the least (or greatest) term equals a.Term.
func assertExtreme(terms []term.Term, a Assertion) error {
	want, err := lexical.ParseTerm(a.Term)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Type, err)
	}
	if len(terms) == 0 {
		return &AssertionError{Type: a.Type, Expected: want.String(), Actual: "no terms"}
	}

	got := order.Min(terms)
	if a.Type == AssertMax {
		got = order.Max(terms)
	}
	if order.CompareTerm(got, want) != 0 {
		return &AssertionError{Type: a.Type, Expected: want.String(), Actual: got.String()}
	}
	return nil
}

// assertDistinct counts terms that are pairwise unequal under the comparator.
func assertDistinct(terms []term.Term, a Assertion) error {
	distinct := order.Dedup(append([]term.Term(nil), terms...))
	if len(distinct) != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d distinct terms", a.Count),
			Actual:   fmt.Sprintf("%d distinct terms", len(distinct)),
		}
	}
	return nil
}

// assertStoreOrder writes the statements in reverse into the store and
// requires the collated read to return them in declared order.
func assertStoreOrder(ctx context.Context, st *store.Store, sts []term.Statement) error {
	input := make([]term.Statement, 0, len(sts))
	want := make([]term.Statement, 0, len(sts))
	seen := make(map[string]bool)
	for i := len(sts) - 1; i >= 0; i-- {
		input = append(input, sts[i])
	}
	// Identical lines collapse to one row.
	for _, s := range sts {
		if line := s.String(); !seen[line] {
			seen[line] = true
			want = append(want, s)
		}
	}

	if _, err := st.DeleteGraph(ctx, scenarioGraph); err != nil {
		return fmt.Errorf("store_order: %w", err)
	}
	if _, err := st.WriteStatements(ctx, scenarioGraph, input); err != nil {
		return fmt.Errorf("store_order: %w", err)
	}
	got, err := st.ReadSorted(ctx, scenarioGraph)
	if err != nil {
		return fmt.Errorf("store_order: %w", err)
	}

	if !sameOrder(got, want, order.CompareStatement) {
		return &AssertionError{
			Type:     AssertStoreOrder,
			Expected: renderStatements(want),
			Actual:   renderStatements(got),
		}
	}
	return nil
}

func renderStatements(sts []term.Statement) string {
	lines := make([]string, len(sts))
	for i, s := range sts {
		lines[i] = s.String()
	}
	return "[" + strings.Join(lines, " | ") + "]"
}

// EvaluateAssertions evaluates all assertions.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertMin, AssertMax:
			err = assertExtreme(actx.Terms, assertion)
		case AssertDistinct:
			err = assertDistinct(actx.Terms, assertion)
		case AssertStoreOrder:
			if actx.Store == nil {
				err = fmt.Errorf("assertion[%d]: store_order requires a store", i)
			} else {
				err = assertStoreOrder(actx.Ctx, actx.Store, actx.Statements)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
