package store

import (
	"context"
	"fmt"

	"github.com/roach88/rdforder/internal/term"
)

// GraphInfo summarizes a stored graph.
type GraphInfo struct {
	Name       string `json:"name"`
	Statements int    `json:"statements"`
}

// ReadSorted returns the statements of a graph in standard order:
// ORDER BY subject, predicate, object COLLATE RDFTERM, then insertion order.
//
// Returns an empty slice (not nil) for an unknown or empty graph.
func (s *Store) ReadSorted(ctx context.Context, graph string) ([]term.Statement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, predicate, object
		FROM statements
		WHERE graph = ?
		ORDER BY subject COLLATE RDFTERM ASC,
		         predicate COLLATE RDFTERM ASC,
		         object COLLATE RDFTERM ASC,
		         seq ASC
	`, graph)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	defer rows.Close()

	sts := []term.Statement{}
	for rows.Next() {
		var subject, predicate, object string
		if err := rows.Scan(&subject, &predicate, &object); err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		st, err := scanStatement(subject, predicate, object)
		if err != nil {
			return nil, err
		}
		sts = append(sts, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statements: %w", err)
	}
	return sts, nil
}

// ReadSubjects returns the distinct subjects of a graph in standard order.
func (s *Store) ReadSubjects(ctx context.Context, graph string) ([]term.Term, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT subject
		FROM statements
		WHERE graph = ?
		ORDER BY subject COLLATE RDFTERM ASC
	`, graph)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []term.Term{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		t, err := unmarshalTerm(text)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}
	return subjects, nil
}

// Graphs lists every graph with its statement count, ordered by name
// (COLLATE BINARY).
func (s *Store) Graphs(ctx context.Context) ([]GraphInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.name, COUNT(st.id)
		FROM graphs g
		LEFT JOIN statements st ON st.graph = g.name
		GROUP BY g.name
		ORDER BY g.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query graphs: %w", err)
	}
	defer rows.Close()

	graphs := []GraphInfo{}
	for rows.Next() {
		var g GraphInfo
		if err := rows.Scan(&g.Name, &g.Statements); err != nil {
			return nil, fmt.Errorf("scan graph: %w", err)
		}
		graphs = append(graphs, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graphs: %w", err)
	}
	return graphs, nil
}

// CountStatements returns the number of statements in a graph.
func (s *Store) CountStatements(ctx context.Context, graph string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM statements WHERE graph = ?
	`, graph).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count statements: %w", err)
	}
	return n, nil
}

// LastSeq returns the highest insertion sequence in a graph, or 0 when
// the graph is empty.
func (s *Store) LastSeq(ctx context.Context, graph string) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM statements WHERE graph = ?
	`, graph).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("last seq: %w", err)
	}
	return seq, nil
}
