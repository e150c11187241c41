package queryir

import "github.com/roach88/rdforder/internal/term"

// Query represents an abstract pattern query.
//
// This is a sealed interface - only types in this package implement it.
//
// Query types:
//   - Match: one statement pattern over a graph
//   - Join: two queries combined on their shared variables
//
// Every query produces a sequence of solutions: one term per variable,
// variables in first-occurrence order.
type Query interface {
	queryNode() // Marker method - seals interface to this package
}

// Node is one position of a Match.
//
// This is a sealed interface. A position is a Bound term, a Var, or nil,
// which matches any term without binding it.
type Node interface {
	patternNode() // Marker method - seals interface to this package
}

// Match is a single statement pattern.
//
// Semantics:
//
//	SELECT <vars> FROM statements WHERE graph = <graph> AND <bound positions>
//
// A variable used twice in one Match requires both positions to hold
// equal terms.
type Match struct {
	Graph     string // Graph to match in (required)
	Subject   Node
	Predicate Node
	Object    Node
}

func (Match) queryNode() {}

// Positions returns the subject, predicate and object nodes with their
// column names.
func (m Match) Positions() [3]Position {
	return [3]Position{
		{Column: "subject", Node: m.Subject},
		{Column: "predicate", Node: m.Predicate},
		{Column: "object", Node: m.Object},
	}
}

// Position pairs a pattern node with the statement column it constrains.
type Position struct {
	Column string
	Node   Node
}

// Join represents an inner join of two queries on their shared variables.
//
// A Join whose sides share no variable is a cross product. It is allowed
// but Validate warns about it.
type Join struct {
	Left  Query
	Right Query
}

func (Join) queryNode() {}

// Bound matches positions holding a term equal to Term under the standard
// order.
type Bound struct {
	Term term.Term
}

func (Bound) patternNode() {}

// Var binds the term at a position to a named variable.
type Var struct {
	Name string // without the leading '?'
}

func (Var) patternNode() {}

// Matches flattens q into its Match nodes, left to right. Unknown nodes
// are skipped.
func Matches(q Query) []Match {
	switch query := q.(type) {
	case Match:
		return []Match{query}
	case *Match:
		if query == nil {
			return nil
		}
		return []Match{*query}
	case Join:
		return append(Matches(query.Left), Matches(query.Right)...)
	case *Join:
		if query == nil {
			return nil
		}
		return append(Matches(query.Left), Matches(query.Right)...)
	default:
		return nil
	}
}

// Vars returns the variables of q in first-occurrence order.
func Vars(q Query) []string {
	seen := map[string]bool{}
	var vars []string
	for _, m := range Matches(q) {
		for _, pos := range m.Positions() {
			if v, ok := AsVar(pos.Node); ok && !seen[v.Name] {
				seen[v.Name] = true
				vars = append(vars, v.Name)
			}
		}
	}
	return vars
}

// AsVar reports whether n is a Var, in value or pointer form.
func AsVar(n Node) (Var, bool) {
	switch v := n.(type) {
	case Var:
		return v, true
	case *Var:
		if v != nil {
			return *v, true
		}
	}
	return Var{}, false
}

// AsBound reports whether n is a Bound, in value or pointer form.
func AsBound(n Node) (Bound, bool) {
	switch b := n.(type) {
	case Bound:
		return b, true
	case *Bound:
		if b != nil {
			return *b, true
		}
	}
	return Bound{}, false
}

// IsWildcard reports whether n matches anything without binding.
func IsWildcard(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Var:
		return v == nil
	case *Bound:
		return v == nil
	}
	return false
}
