package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexJSON(t *testing.T, args ...string) IndexResult {
	t.Helper()
	out, _, err := execute(NewIndexCommand(&RootOptions{Format: "json"}), args...)
	require.NoError(t, err, out)

	var resp struct {
		Data IndexResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp.Data
}

func TestIndexCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "index.db")
	data := writeFile(t, dir, "data.nt", sampleNT)

	result := indexJSON(t, data, "--db", db, "--graph", "people")
	assert.Equal(t, "people", result.Graph)
	assert.Equal(t, db, result.DB)
	assert.Equal(t, 4, result.Read)
	assert.Equal(t, 4, result.Inserted)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, int64(4), result.LastSeq)

	// Indexing the same input again inserts nothing
	result = indexJSON(t, data, "--db", db, "--graph", "people")
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 4, result.Total)
}

func TestIndexCommandReplace(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "index.db")
	data := writeFile(t, dir, "data.nt", sampleNT)
	one := writeFile(t, dir, "one.nt", "<http://ex/z> <http://ex/p> \"z\" .\n")

	indexJSON(t, data, "--db", db, "--graph", "g")
	result := indexJSON(t, one, "--db", db, "--graph", "g", "--replace")
	assert.Equal(t, 4, result.Removed)
	assert.Equal(t, 1, result.Total)
}

func TestIndexCommandGraphFromCUE(t *testing.T) {
	dir := t.TempDir()
	graphDir := filepath.Join(dir, "graph")
	writeFile(t, graphDir, "graph.cue", sampleCUE)

	result := indexJSON(t, graphDir, "--db", filepath.Join(dir, "index.db"))
	assert.Equal(t, "people", result.Graph)
	assert.Equal(t, 2, result.Inserted)
}

func TestIndexCommandGeneratedGraph(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.nt", sampleNT)

	result := indexJSON(t, data, "--db", filepath.Join(dir, "index.db"))
	_, err := uuid.Parse(result.Graph)
	assert.NoError(t, err, "graph %q should be a UUID", result.Graph)
}

func TestIndexCommandConfiguredStore(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "configured.db")
	data := writeFile(t, dir, "data.nt", sampleNT)
	cfg := writeFile(t, dir, "rdforder.yaml", "store:\n  path: "+db+"\n  graph: fromconfig\n")

	out, _, err := execute(NewRootCommand(), "--config", cfg, "index", data)
	require.NoError(t, err)
	assert.Equal(t, "Indexed 4 of 4 statement(s) into graph fromconfig (4 total)\n", out)

	out, _, err = execute(NewRootCommand(), "--config", cfg, "dump")
	require.NoError(t, err)
	assert.Equal(t, sampleSorted, lines(out))
}

func TestIndexCommandStdin(t *testing.T) {
	dir := t.TempDir()
	cmd := NewIndexCommand(&RootOptions{Format: "text"})
	cmd.SetIn(strings.NewReader(sampleNT))

	out, _, err := execute(cmd, "-", "--db", filepath.Join(dir, "index.db"), "--graph", "stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "into graph stdin")
}

func TestIndexCommandBadDatabase(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.nt", sampleNT)

	out, _, err := execute(NewIndexCommand(&RootOptions{Format: "text"}), data, "--db", filepath.Join(dir, "missing", "dir", "index.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E009]")
}
