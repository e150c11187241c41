package store

import (
	"context"
	"fmt"

	"github.com/roach88/rdforder/internal/term"
)

// WriteStatements adds statements to a graph, creating the graph if needed.
// Returns the number of statements inserted.
//
// Uses ON CONFLICT(graph, id) DO NOTHING for idempotency - statements
// already in the graph are silently skipped. All statements are written in
// one transaction; on error nothing is written.
func (s *Store) WriteStatements(ctx context.Context, graph string, sts []term.Statement) (int, error) {
	if graph == "" {
		return 0, fmt.Errorf("write statements: empty graph name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write statements: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO graphs (name) VALUES (?)
		ON CONFLICT(name) DO NOTHING
	`, graph); err != nil {
		return 0, fmt.Errorf("write statements: create graph: %w", err)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM statements WHERE graph = ?
	`, graph).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write statements: last seq: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO statements (graph, id, seq, subject, predicate, object)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(graph, id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("write statements: prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, st := range sts {
		row, err := statementRow(st)
		if err != nil {
			return 0, fmt.Errorf("write statements: statement %d: %w", i, err)
		}

		result, err := stmt.ExecContext(ctx, graph, row.id, seq+1, row.subject, row.predicate, row.object)
		if err != nil {
			return 0, fmt.Errorf("write statements: statement %d: %w", i, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("write statements: rows affected: %w", err)
		}
		if n > 0 {
			seq++
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write statements: commit: %w", err)
	}

	s.logger.Debug("statements written",
		"graph", graph, "inserted", inserted, "skipped", len(sts)-inserted)
	return inserted, nil
}

type storedRow struct {
	id, subject, predicate, object string
}

func statementRow(st term.Statement) (storedRow, error) {
	id, err := term.StatementID(st)
	if err != nil {
		return storedRow{}, err
	}
	subject, err := marshalTerm(st.Subject)
	if err != nil {
		return storedRow{}, err
	}
	predicate, err := marshalTerm(st.Predicate)
	if err != nil {
		return storedRow{}, err
	}
	object, err := marshalTerm(st.Object)
	if err != nil {
		return storedRow{}, err
	}
	return storedRow{id: id, subject: subject, predicate: predicate, object: object}, nil
}

// DeleteGraph removes a graph and its statements. Returns the number of
// statements removed; deleting an unknown graph removes nothing.
func (s *Store) DeleteGraph(ctx context.Context, graph string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("delete graph: begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM statements WHERE graph = ?`, graph)
	if err != nil {
		return 0, fmt.Errorf("delete graph: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete graph: rows affected: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, graph); err != nil {
		return 0, fmt.Errorf("delete graph: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("delete graph: commit: %w", err)
	}

	s.logger.Debug("graph deleted", "graph", graph, "statements", n)
	return int(n), nil
}
