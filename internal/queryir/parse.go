package queryir

import (
	"fmt"
	"strings"

	"github.com/roach88/rdforder/internal/lexical"
)

// ParseMatch parses one statement pattern: three positions in N-Triples
// syntax, where a position may also be ?name (a variable) or * (a
// wildcard). A trailing '.' is optional.
//
//	?s <http://ex/knows> ?o .
//	* <http://ex/age> "30"^^<http://www.w3.org/2001/XMLSchema#int>
func ParseMatch(graph, src string) (Match, error) {
	rest := src
	var nodes [3]Node
	for i, column := range []string{"subject", "predicate", "object"} {
		rest = strings.TrimLeft(rest, " \t")
		node, n, err := parseNode(rest)
		if err != nil {
			return Match{}, fmt.Errorf("%s: %w", column, err)
		}
		nodes[i] = node
		rest = rest[n:]
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "."))
	if rest != "" {
		return Match{}, fmt.Errorf("unexpected %q after pattern", rest)
	}

	return Match{Graph: graph, Subject: nodes[0], Predicate: nodes[1], Object: nodes[2]}, nil
}

func parseNode(s string) (Node, int, error) {
	switch {
	case s == "":
		return nil, 0, fmt.Errorf("expected term, variable or *, found end of pattern")
	case s[0] == '*':
		return nil, 1, nil
	case s[0] == '?':
		n := 1
		for n < len(s) && isVarByte(s[n]) {
			n++
		}
		if n == 1 {
			return nil, 0, fmt.Errorf("empty variable name")
		}
		return Var{Name: s[1:n]}, n, nil
	}

	t, n, err := lexical.ParseTermPrefix(s)
	if err != nil {
		return nil, 0, err
	}
	return Bound{Term: t}, n, nil
}

func isVarByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// ParseQuery parses patterns into a left-deep Join of Matches over graph.
func ParseQuery(graph string, patterns []string) (Query, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("at least one pattern is required")
	}

	var q Query
	for i, src := range patterns {
		m, err := ParseMatch(graph, src)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		if q == nil {
			q = m
			continue
		}
		q = Join{Left: q, Right: m}
	}
	return q, nil
}
