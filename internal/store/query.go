package store

import (
	"context"
	"fmt"

	"github.com/roach88/rdforder/internal/queryir"
	"github.com/roach88/rdforder/internal/querysql"
	"github.com/roach88/rdforder/internal/term"
)

// Solutions holds the results of a pattern query.
type Solutions struct {
	// Vars names the variables, in first-occurrence order.
	Vars []string
	// Rows holds one term per variable for each solution. A query without
	// variables yields one empty row per match.
	Rows [][]term.Term
}

// Select runs a pattern query. Solutions come back in standard order of
// their variables, ties in insertion order.
//
// Warnings from queryir.Validate are logged; the query still runs.
func (s *Store) Select(ctx context.Context, q queryir.Query) (*Solutions, error) {
	for _, w := range queryir.Validate(q).Warnings {
		s.logger.Warn("pattern query", "warning", w)
	}

	compiled, err := querysql.NewSQLCompiler(CollationName).Compile(q)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}
	s.logger.Debug("pattern query", "sql", compiled.SQL, "params", len(compiled.Params))

	rows, err := s.db.QueryContext(ctx, compiled.SQL, compiled.Params...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	width := max(len(compiled.Vars), 1)
	cols := make([]string, width)
	dest := make([]any, width)
	for i := range cols {
		dest[i] = &cols[i]
	}

	result := &Solutions{Vars: compiled.Vars, Rows: [][]term.Term{}}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan solution: %w", err)
		}
		row := make([]term.Term, len(compiled.Vars))
		for i := range row {
			t, err := unmarshalTerm(cols[i])
			if err != nil {
				return nil, err
			}
			row[i] = t
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solutions: %w", err)
	}
	return result, nil
}
