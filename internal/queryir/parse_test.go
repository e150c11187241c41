package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/term"
)

func TestParseMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Match
	}{
		{
			name:  "variables and bound predicate",
			input: "?s <http://ex/knows> ?o .",
			want:  Match{Graph: "g", Subject: Var{Name: "s"}, Predicate: Bound{Term: knows}, Object: Var{Name: "o"}},
		},
		{
			name:  "wildcard and typed literal without dot",
			input: `* <http://ex/age> "30"^^<http://www.w3.org/2001/XMLSchema#int>`,
			want: Match{
				Graph:     "g",
				Predicate: Bound{Term: term.NewIRI("http://ex/age")},
				Object:    Bound{Term: lexical.MustTypedLiteral("30", term.XSDInt)},
			},
		},
		{
			name:  "literal with spaces and dot attached",
			input: `_:b0 ?p "a b"@en.`,
			want: Match{
				Graph:     "g",
				Subject:   Bound{Term: term.NewBlankWithID("b0")},
				Predicate: Var{Name: "p"},
				Object:    Bound{Term: term.NewLangLiteral("a b", "en")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatch("g", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"too short", "?s ?p", "object: expected term, variable or *"},
		{"empty variable", "? ?p ?o", "subject: empty variable name"},
		{"bad term", "?s <http://ex/p ?o", "predicate:"},
		{"trailing input", "?s ?p ?o . ?x", `unexpected "?x" after pattern`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatch("g", tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("g", []string{
		"?p <http://ex/knows> ?f",
		"?f <http://ex/name> ?n",
		"?n * *",
	})
	require.NoError(t, err)

	join, ok := q.(Join)
	require.True(t, ok)
	_, ok = join.Left.(Join)
	assert.True(t, ok, "left-deep")
	assert.Equal(t, []string{"p", "f", "n"}, Vars(q))
	assert.Len(t, Matches(q), 3)

	_, err = ParseQuery("g", nil)
	assert.Error(t, err)

	_, err = ParseQuery("g", []string{"?s ?p ?o", "?s"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern 1")
}
