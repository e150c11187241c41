package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleNT = `<http://ex/b> <http://ex/p> "2"^^<http://www.w3.org/2001/XMLSchema#int> .
_:b0 <http://ex/p> "x" .
<http://ex/a> <http://ex/p> "10"^^<http://www.w3.org/2001/XMLSchema#int> .
<http://ex/a> <http://ex/p> "9"^^<http://www.w3.org/2001/XMLSchema#int> .
`

// sampleSorted is sampleNT in canonical order.
var sampleSorted = []string{
	`_:b0 <http://ex/p> "x" .`,
	`<http://ex/a> <http://ex/p> "9"^^<http://www.w3.org/2001/XMLSchema#int> .`,
	`<http://ex/a> <http://ex/p> "10"^^<http://www.w3.org/2001/XMLSchema#int> .`,
	`<http://ex/b> <http://ex/p> "2"^^<http://www.w3.org/2001/XMLSchema#int> .`,
}

const sampleCUE = `package people

graph: {
	name: "people"
	statements: [
		{subject: {iri: "http://ex/b"}, predicate: {iri: "http://ex/age"}, object: {literal: 30}},
		{subject: {iri: "http://ex/a"}, predicate: {iri: "http://ex/age"}, object: {literal: 4}},
	]
}
`

// isolate keeps user and project config files out of root command tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
