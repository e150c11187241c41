package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rdforder/internal/term"
)

func blankEdge(from, to string) term.Statement {
	return term.NewStatement(term.NewBlankWithID(from), term.NewIRI("http://ex/next"), term.NewBlankWithID(to))
}

func TestAnalyzeBlankCyclesNone(t *testing.T) {
	sts := []term.Statement{
		blankEdge("a", "b"),
		blankEdge("b", "c"),
		term.NewStatement(term.NewBlankWithID("c"), term.NewIRI("http://ex/p"), term.NewIRI("http://ex/a")),
	}
	assert.Empty(t, AnalyzeBlankCycles(sts))
	assert.Empty(t, AnalyzeBlankCycles(nil))
}

func TestAnalyzeBlankCyclesSelfLoop(t *testing.T) {
	warnings := AnalyzeBlankCycles([]term.Statement{blankEdge("a", "a")})

	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"a", "a"}, warnings[0].Path)
	assert.Equal(t, "warning", warnings[0].Level)
	assert.Contains(t, warnings[0].Message, "_:a refers to itself")
}

func TestAnalyzeBlankCyclesMultiNode(t *testing.T) {
	sts := []term.Statement{
		blankEdge("c", "a"),
		blankEdge("a", "b"),
		blankEdge("b", "c"),
		blankEdge("x", "a"),
	}

	warnings := AnalyzeBlankCycles(sts)

	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"a", "b", "c", "a"}, warnings[0].Path)
	assert.Equal(t, "blank node cycle: _:a -> _:b -> _:c -> _:a", warnings[0].Message)
}

func TestAnalyzeBlankCyclesDeterministic(t *testing.T) {
	sts := []term.Statement{
		blankEdge("q", "p"),
		blankEdge("p", "q"),
		blankEdge("b", "a"),
		blankEdge("a", "b"),
	}

	for range 10 {
		warnings := AnalyzeBlankCycles(sts)
		require.Len(t, warnings, 2)
		assert.Equal(t, []string{"a", "b", "a"}, warnings[0].Path)
		assert.Equal(t, []string{"p", "q", "p"}, warnings[1].Path)
	}
}
