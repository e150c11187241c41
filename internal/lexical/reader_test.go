package lexical

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rdforder/internal/term"
)

const document = `# a small graph
<http://ex/s> <http://ex/p> "1"^^<http://www.w3.org/2001/XMLSchema#int> .

_:b0 <http://ex/p> "chat"@fr .
   # indented comment
_:b0 <http://ex/q> <http://ex/s> .
`

func TestReaderNext(t *testing.T) {
	r := NewReader(strings.NewReader(document))

	st, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, term.NewInt(1), st.Object)

	st, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, term.NewBlankWithID("b0"), st.Subject)

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadStatements(t *testing.T) {
	sts, err := ReadStatements(strings.NewReader(document))
	require.NoError(t, err)
	require.Len(t, sts, 3)
	assert.Equal(t, term.NewIRI("http://ex/q"), sts[2].Predicate)
}

func TestReaderBlankScope(t *testing.T) {
	sts, err := ReadStatements(strings.NewReader(document), WithBlankScope("doc1."))
	require.NoError(t, err)
	assert.Equal(t, term.NewBlankWithID("doc1.b0"), sts[1].Subject)
	assert.Equal(t, term.NewBlankWithID("doc1.b0"), sts[2].Subject)
}

func TestReaderCRLF(t *testing.T) {
	sts, err := ReadStatements(strings.NewReader("<http://ex/s> <http://ex/p> <http://ex/o> .\r\n"))
	require.NoError(t, err)
	require.Len(t, sts, 1)
}

func TestReaderSyntaxErrorLine(t *testing.T) {
	doc := "<http://ex/s> <http://ex/p> <http://ex/o> .\n\n<http://ex/s> <http://ex/p> .\n"

	_, err := ReadStatements(strings.NewReader(doc))

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Line)
	assert.Contains(t, se.Error(), "line 3:")
}

func TestReaderEmpty(t *testing.T) {
	sts, err := ReadStatements(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sts)
}
