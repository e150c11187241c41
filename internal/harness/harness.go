package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/order"
	"github.com/roach88/rdforder/internal/store"
	"github.com/roach88/rdforder/internal/term"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Parse terms, pairs and statements
// 2. Check every pair in both directions
// 3. Check the declared order of terms and statements, then re-sort
// reversed and rotated copies and require the declared order back
// 4. Check reflexivity, antisymmetry and transitivity over all terms
// 5. Evaluate assertions, opening a fresh in-memory store if one needs it
//
// Parse failures are returned as errors; failed checks are recorded in the
// result.
func Run(scenario *Scenario) (*Result, error) {
	terms, err := parseTerms("terms", scenario.Terms)
	if err != nil {
		return nil, err
	}

	sts := make([]term.Statement, len(scenario.Statements))
	for i, line := range scenario.Statements {
		st, err := lexical.ParseStatement(line)
		if err != nil {
			return nil, fmt.Errorf("statements[%d]: %w", i, err)
		}
		sts[i] = st
	}

	result := NewResult()

	for i, p := range scenario.Pairs {
		pair, err := parseTerms(fmt.Sprintf("pairs[%d]", i), []string{p.A, p.B})
		if err != nil {
			return nil, err
		}
		checkPair(result, i, pair[0], pair[1], relations[p.Expect])
	}

	checkOrder(result, "terms", terms, order.CompareTerm)
	checkProperties(result, "terms", terms, order.CompareTerm)
	checkOrder(result, "statements", sts, order.CompareStatement)
	checkProperties(result, "statements", sts, order.CompareStatement)

	sorted := slices.Clone(terms)
	order.Sort(sorted)
	for _, t := range sorted {
		result.Sorted = append(result.Sorted, t.String())
	}
	sortedSts := slices.Clone(sts)
	order.SortStatements(sortedSts)
	for _, st := range sortedSts {
		result.SortedStatements = append(result.SortedStatements, st.String())
	}

	actx := &AssertionContext{
		Ctx:        context.Background(),
		Terms:      terms,
		Statements: sts,
	}
	if needsStore(scenario.Assertions) {
		st, err := store.Open(":memory:", store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory store: %w", err)
		}
		defer st.Close()
		actx.Store = st
	}
	for _, errMsg := range EvaluateAssertions(scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

func parseTerms(field string, src []string) ([]term.Term, error) {
	terms := make([]term.Term, len(src))
	for i, s := range src {
		t, err := lexical.ParseTerm(s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		terms[i] = t
	}
	return terms, nil
}

func needsStore(assertions []Assertion) bool {
	for _, a := range assertions {
		if a.Type == AssertStoreOrder {
			return true
		}
	}
	return false
}

// checkPair compares a and b both ways.
func checkPair(r *Result, i int, a, b term.Term, want int) {
	got := order.CompareTerm(a, b)
	r.check(got == want, "pairs[%d]: %s vs %s: got %s, want %s",
		i, a, b, relationName(got), relationName(want))

	back := order.CompareTerm(b, a)
	r.check(back == -want, "pairs[%d]: %s vs %s: got %s, want %s",
		i, b, a, relationName(back), relationName(-want))
}

// checkOrder requires items to be ascending and requires a stable sort of
// the reversed list and of every rotation to reproduce that order, up to
// comparator equality.
func checkOrder[T fmt.Stringer](r *Result, field string, items []T, cmp func(a, b T) int) {
	for i := 1; i < len(items); i++ {
		r.check(cmp(items[i-1], items[i]) <= 0, "%s[%d] %s sorts after %s[%d] %s",
			field, i-1, items[i-1], field, i, items[i])
	}

	for _, in := range shuffles(items) {
		got := slices.Clone(in.items)
		slices.SortStableFunc(got, cmp)
		r.check(sameOrder(got, items, cmp), "%s: sorting %s input gave %v", field, in.label, got)
	}
}

type shuffled[T any] struct {
	label string
	items []T
}

// shuffles returns the reversed list and every non-trivial rotation.
func shuffles[T any](items []T) []shuffled[T] {
	if len(items) < 2 {
		return nil
	}
	rev := slices.Clone(items)
	slices.Reverse(rev)
	out := []shuffled[T]{{label: "reversed", items: rev}}
	for k := 1; k < len(items); k++ {
		rot := append(slices.Clone(items[k:]), items[:k]...)
		out = append(out, shuffled[T]{label: fmt.Sprintf("rotated by %d", k), items: rot})
	}
	return out
}

func sameOrder[T any](got, want []T, cmp func(a, b T) int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if cmp(got[i], want[i]) != 0 {
			return false
		}
	}
	return true
}

// checkProperties verifies that cmp is reflexive, antisymmetric and
// transitive over items.
func checkProperties[T fmt.Stringer](r *Result, field string, items []T, cmp func(a, b T) int) {
	for _, x := range items {
		r.check(cmp(x, x) == 0, "%s: %s does not equal itself", field, x)
	}

	for i, x := range items {
		for _, y := range items[i+1:] {
			xy, yx := cmp(x, y), cmp(y, x)
			r.check(xy == -yx, "%s: %s vs %s is %s but reversed is %s",
				field, x, y, relationName(xy), relationName(yx))
		}
	}

	for _, x := range items {
		for _, y := range items {
			xy := cmp(x, y)
			if xy > 0 {
				continue
			}
			for _, z := range items {
				yz := cmp(y, z)
				if yz > 0 {
					continue
				}
				want := 0
				if xy < 0 || yz < 0 {
					want = -1
				}
				r.check(cmp(x, z) == want, "%s: %s, %s, %s is not transitive", field, x, y, z)
			}
		}
	}
}
