package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rdforder/internal/term"
)

var (
	exA = term.NewIRI("http://ex/a")
	exP = term.NewIRI("http://ex/p")
)

func TestValidateClean(t *testing.T) {
	sts := []term.Statement{
		term.NewStatement(exA, exP, term.NewInt(3)),
		term.NewStatement(term.NewBlankWithID("b0"), exP, term.NewLangLiteral("x", "en")),
	}
	assert.Empty(t, Validate(sts))
}

func TestValidateRelativeIRIs(t *testing.T) {
	sts := []term.Statement{
		term.NewStatement(term.NewIRI("relative/path"), exP, term.NewTypedLiteral("x", "dt", nil)),
	}

	errs := Validate(sts)
	require.Len(t, errs, 2)
	assert.Equal(t, ErrRelativeIRI, errs[0].Code)
	assert.Equal(t, "subject", errs[0].Field)
	assert.Equal(t, ErrRelativeDatatype, errs[1].Code)
	assert.Equal(t, "object", errs[1].Field)
}

func TestValidateBlankLabels(t *testing.T) {
	sts := []term.Statement{
		term.NewStatement(term.NewBlankWithID("has space"), exP, term.NewBlankWithID("ok.1")),
		term.NewStatement(term.NewBlankWithID("trailing."), exP, exA),
	}

	errs := Validate(sts)
	require.Len(t, errs, 2)
	assert.Equal(t, ErrInvalidBlankLabel, errs[0].Code)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, ErrInvalidBlankLabel, errs[1].Code)
	assert.Equal(t, 1, errs[1].Index)
}

func TestValidateDuplicates(t *testing.T) {
	sts := []term.Statement{
		term.NewStatement(exA, exP, term.NewTypedLiteral("03", term.XSDInt, term.FixedInt{Width: 32, V: 3})),
		term.NewStatement(exA, exP, term.NewLiteral("x")),
		term.NewStatement(exA, exP, term.NewInt(3)),
		term.NewStatement(exA, exP, term.NewInt(3)),
	}

	errs := Validate(sts)
	require.Len(t, errs, 2)
	for i, e := range errs {
		assert.Equal(t, ErrDuplicate, e.Code)
		assert.Equal(t, i+2, e.Index)
		assert.Equal(t, "duplicate of statements[0]", e.Message)
	}
	assert.Equal(t, "[E104] statements[2].statement: duplicate of statements[0]", errs[0].Error())
}
