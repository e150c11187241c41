package order

import (
	"slices"

	"github.com/roach88/rdforder/internal/term"
)

// Sort sorts terms in place. The sort is stable, so terms the comparator
// treats as equal (for example the same instant in two timezones) keep
// their input order.
func Sort(terms []term.Term) {
	slices.SortStableFunc(terms, CompareTerm)
}

// SortStatements sorts statements in place, stably.
func SortStatements(sts []term.Statement) {
	slices.SortStableFunc(sts, CompareStatement)
}

// IsSorted reports whether terms are in standard order.
func IsSorted(terms []term.Term) bool {
	return slices.IsSortedFunc(terms, CompareTerm)
}

// IsSortedStatements reports whether statements are in standard order.
func IsSortedStatements(sts []term.Statement) bool {
	return slices.IsSortedFunc(sts, CompareStatement)
}

// Dedup sorts terms and removes neighbours the comparator treats as equal,
// keeping the first of each run. The returned slice shares storage with terms.
func Dedup(terms []term.Term) []term.Term {
	Sort(terms)
	return slices.CompactFunc(terms, equalTerms)
}

// DedupStatements sorts statements and removes comparator-equal neighbours.
func DedupStatements(sts []term.Statement) []term.Statement {
	SortStatements(sts)
	return slices.CompactFunc(sts, func(a, b term.Statement) bool {
		return CompareStatement(a, b) == 0
	})
}

// Search finds t in sorted terms by binary search. It returns the position
// where t is or would be inserted, and whether it was found.
func Search(sorted []term.Term, t term.Term) (int, bool) {
	return slices.BinarySearchFunc(sorted, t, CompareTerm)
}

// SearchStatements is Search for sorted statements.
func SearchStatements(sorted []term.Statement, st term.Statement) (int, bool) {
	return slices.BinarySearchFunc(sorted, st, CompareStatement)
}

// Min returns the least term. It panics if terms is empty.
func Min(terms []term.Term) term.Term {
	return slices.MinFunc(terms, CompareTerm)
}

// Max returns the greatest term. It panics if terms is empty.
func Max(terms []term.Term) term.Term {
	return slices.MaxFunc(terms, CompareTerm)
}

// Distinct returns every distinct term appearing in any position of sts,
// in standard order.
func Distinct(sts []term.Statement) []term.Term {
	terms := make([]term.Term, 0, len(sts)*3)
	for _, st := range sts {
		terms = append(terms, st.Subject, st.Predicate, st.Object)
	}
	return Dedup(terms)
}

func equalTerms(a, b term.Term) bool {
	return CompareTerm(a, b) == 0
}
