package store

import (
	"context"
	"math/rand"
	"testing"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/order"
	"github.com/roach88/rdforder/internal/term"
)

func TestReadSorted_MatchesComparator(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	p := iri("p")
	sts := []term.Statement{
		stmt(iri("r1"), p, term.NewLiteral("foo")),
		stmt(iri("r0"), p, term.NewInt(20)),
		stmt(iri("r0"), p, term.NewInt(3)),
		stmt(term.NewBlankWithID("b1"), p, iri("r0")),
		stmt(term.NewBlankWithID("b0"), p, term.NewLangLiteral("foo", "en")),
		stmt(iri("r0"), p, lexical.MustTypedLiteral("2009-01-18T13:00:00+01:00", term.XSDDateTime)),
		stmt(iri("r0"), p, lexical.MustTypedLiteral("2009-01-18T11:00:00Z", term.XSDDateTime)),
		stmt(iri("r0"), p, lexical.MustTypedLiteral("1e3", term.XSDDouble)),
		stmt(iri("r0"), p, lexical.MustTypedLiteral("-INF", term.XSDDouble)),
		stmt(iri("r0"), iri("a"), term.NewBoolean(true)),
	}

	shuffled := append([]term.Statement(nil), sts...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if _, err := s.WriteStatements(ctx, "g1", shuffled); err != nil {
		t.Fatalf("WriteStatements() failed: %v", err)
	}

	got, err := s.ReadSorted(ctx, "g1")
	if err != nil {
		t.Fatalf("ReadSorted() failed: %v", err)
	}

	want := append([]term.Statement(nil), sts...)
	order.SortStatements(want)

	if len(got) != len(want) {
		t.Fatalf("got %d statements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if !order.IsSortedStatements(got) {
		t.Error("ReadSorted result is not in standard order")
	}
}

func TestReadSorted_TiesKeepInsertionOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Equal under the order, distinct rows.
	a := stmt(iri("r"), iri("p"), lexical.MustTypedLiteral("03", term.XSDInt))
	b := stmt(iri("r"), iri("p"), lexical.MustTypedLiteral("3", term.XSDInt))

	if _, err := s.WriteStatements(ctx, "g1", []term.Statement{b, a}); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadSorted(ctx, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d statements, want 2", len(got))
	}
	if got[0].Object.(term.Literal).Lexical != "3" {
		t.Errorf("first = %s, want the earlier insert", got[0])
	}
}

func TestReadSorted_UnknownGraph(t *testing.T) {
	s := createTestStore(t)

	got, err := s.ReadSorted(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ReadSorted() failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReadSubjects(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	sts := []term.Statement{
		stmt(iri("r1"), iri("p"), iri("x")),
		stmt(iri("r0"), iri("p"), iri("x")),
		stmt(iri("r1"), iri("q"), iri("x")),
		stmt(term.NewBlankWithID("b"), iri("p"), iri("x")),
	}
	if _, err := s.WriteStatements(ctx, "g1", sts); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadSubjects(ctx, "g1")
	if err != nil {
		t.Fatalf("ReadSubjects() failed: %v", err)
	}

	want := []term.Term{term.NewBlankWithID("b"), iri("r0"), iri("r1")}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subject %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGraphs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.WriteStatements(ctx, "zeta", []term.Statement{stmt(iri("a"), iri("p"), iri("b"))}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteStatements(ctx, "alpha", nil); err != nil {
		t.Fatal(err)
	}

	graphs, err := s.Graphs(ctx)
	if err != nil {
		t.Fatalf("Graphs() failed: %v", err)
	}

	want := []GraphInfo{{Name: "alpha", Statements: 0}, {Name: "zeta", Statements: 1}}
	if len(graphs) != len(want) {
		t.Fatalf("graphs = %+v, want %+v", graphs, want)
	}
	for i := range want {
		if graphs[i] != want[i] {
			t.Errorf("graph %d = %+v, want %+v", i, graphs[i], want[i])
		}
	}
}
