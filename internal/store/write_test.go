package store

import (
	"context"
	"strings"
	"testing"

	"github.com/roach88/rdforder/internal/term"
)

func TestWriteStatements_Basic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	sts := []term.Statement{
		stmt(iri("a"), iri("p"), term.NewInt(3)),
		stmt(term.NewBlankWithID("b0"), iri("p"), term.NewLangLiteral("chat", "fr")),
	}

	n, err := s.WriteStatements(ctx, "g1", sts)
	if err != nil {
		t.Fatalf("WriteStatements() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}

	var subject, object string
	var seq int64
	err = s.db.QueryRow(`
		SELECT subject, object, seq FROM statements
		WHERE graph = ? AND id = ?
	`, "g1", term.MustStatementID(sts[0])).Scan(&subject, &object, &seq)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if subject != "<http://example.com/rdf#a>" {
		t.Errorf("subject = %q", subject)
	}
	if object != `"3"^^<http://www.w3.org/2001/XMLSchema#int>` {
		t.Errorf("object = %q", object)
	}
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
}

func TestWriteStatements_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	st := stmt(iri("a"), iri("p"), iri("b"))

	if _, err := s.WriteStatements(ctx, "g1", []term.Statement{st, st}); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	n, err := s.WriteStatements(ctx, "g1", []term.Statement{st})
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if n != 0 {
		t.Errorf("inserted on rewrite = %d, want 0", n)
	}

	count, err := s.CountStatements(ctx, "g1")
	if err != nil {
		t.Fatalf("CountStatements() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWriteStatements_SameStatementInTwoGraphs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	st := stmt(iri("a"), iri("p"), iri("b"))

	for _, g := range []string{"g1", "g2"} {
		n, err := s.WriteStatements(ctx, g, []term.Statement{st})
		if err != nil {
			t.Fatalf("write to %s failed: %v", g, err)
		}
		if n != 1 {
			t.Errorf("inserted into %s = %d, want 1", g, n)
		}
	}
}

func TestWriteStatements_SeqContinues(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.WriteStatements(ctx, "g1", []term.Statement{stmt(iri("a"), iri("p"), iri("b"))}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteStatements(ctx, "g1", []term.Statement{stmt(iri("c"), iri("p"), iri("d"))}); err != nil {
		t.Fatal(err)
	}

	seq, err := s.LastSeq(ctx, "g1")
	if err != nil {
		t.Fatalf("LastSeq() failed: %v", err)
	}
	if seq != 2 {
		t.Errorf("last seq = %d, want 2", seq)
	}
}

func TestWriteStatements_RejectsUnreadableTerms(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	bad := []term.Statement{
		stmt(iri("a"), iri("p"), iri("b")),
		stmt(term.NewBlankWithID("has space"), iri("p"), iri("b")),
	}

	_, err := s.WriteStatements(ctx, "g1", bad)
	if err == nil || !strings.Contains(err.Error(), "statement 1") {
		t.Fatalf("expected error for statement 1, got %v", err)
	}

	// Nothing from the failed batch is kept.
	count, err := s.CountStatements(ctx, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count after failed write = %d, want 0", count)
	}
}

func TestWriteStatements_InvalidUTF8RoundTrips(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	lex := "say \"hi\"\n\xff\xfe end"
	subject := iri("caf\xe9")
	want := stmt(subject, iri("p"), term.NewLiteral(lex))

	if _, err := s.WriteStatements(ctx, "g1", []term.Statement{want}); err != nil {
		t.Fatalf("WriteStatements() failed: %v", err)
	}

	got, err := s.ReadSorted(ctx, "g1")
	if err != nil {
		t.Fatalf("ReadSorted() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d statements, want 1", len(got))
	}
	if got[0].Subject.(term.IRI).URI != subject.URI {
		t.Errorf("subject = %q, want %q", got[0].Subject.(term.IRI).URI, subject.URI)
	}
	if lit := got[0].Object.(term.Literal); lit.Lexical != lex {
		t.Errorf("lexical = %q, want %q", lit.Lexical, lex)
	}
}

func TestWriteStatements_EmptyGraphName(t *testing.T) {
	s := createTestStore(t)

	if _, err := s.WriteStatements(context.Background(), "", nil); err == nil {
		t.Error("expected error for empty graph name")
	}
}

func TestWriteStatements_CancelledContext(t *testing.T) {
	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.WriteStatements(ctx, "g1", []term.Statement{stmt(iri("a"), iri("p"), iri("b"))})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestDeleteGraph(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	sts := []term.Statement{
		stmt(iri("a"), iri("p"), iri("b")),
		stmt(iri("c"), iri("p"), iri("d")),
	}
	if _, err := s.WriteStatements(ctx, "g1", sts); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteStatements(ctx, "g2", sts[:1]); err != nil {
		t.Fatal(err)
	}

	n, err := s.DeleteGraph(ctx, "g1")
	if err != nil {
		t.Fatalf("DeleteGraph() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	graphs, err := s.Graphs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(graphs) != 1 || graphs[0].Name != "g2" {
		t.Errorf("graphs after delete = %+v, want only g2", graphs)
	}

	n, err = s.DeleteGraph(ctx, "missing")
	if err != nil {
		t.Fatalf("DeleteGraph(missing) failed: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted from missing graph = %d, want 0", n)
	}
}
