package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rdforder/internal/term"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

const ex = "http://example.com/rdf#"

func iri(local string) term.IRI {
	return term.NewIRI(ex + local)
}

func stmt(s, p, o term.Term) term.Statement {
	return term.NewStatement(s, p, o)
}
