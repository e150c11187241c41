package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCommandText(t *testing.T) {
	db := indexedDB(t)

	out, _, err := execute(NewQueryCommand(&RootOptions{Format: "text"}),
		"--db", db, "--graph", "people", "?s <http://ex/p> ?o")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"?s\t?o",
		"_:b0\t\"x\"",
		"<http://ex/a>\t\"9\"^^<http://www.w3.org/2001/XMLSchema#int>",
		"<http://ex/a>\t\"10\"^^<http://www.w3.org/2001/XMLSchema#int>",
		"<http://ex/b>\t\"2\"^^<http://www.w3.org/2001/XMLSchema#int>",
	}, lines(out))
}

func TestQueryCommandJSON(t *testing.T) {
	db := indexedDB(t)

	out, _, err := execute(NewQueryCommand(&RootOptions{Format: "json"}),
		"--db", db, "--graph", "people", `?s * "10"^^<http://www.w3.org/2001/XMLSchema#int>`)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   QueryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "people", resp.Data.Graph)
	assert.Equal(t, []string{"s"}, resp.Data.Vars)
	assert.Equal(t, [][]string{{"<http://ex/a>"}}, resp.Data.Rows)
	assert.Equal(t, 1, resp.Data.Count)
}

func TestQueryCommandJoinAcrossPatterns(t *testing.T) {
	db := indexedDB(t)

	out, _, err := execute(NewQueryCommand(&RootOptions{Format: "text"}),
		"--db", db, "--graph", "people",
		"?s <http://ex/p> ?o",
		"?s <http://ex/p> \"9\"^^<http://www.w3.org/2001/XMLSchema#int>")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"?s\t?o",
		"<http://ex/a>\t\"9\"^^<http://www.w3.org/2001/XMLSchema#int>",
		"<http://ex/a>\t\"10\"^^<http://www.w3.org/2001/XMLSchema#int>",
	}, lines(out))
}

func TestQueryCommandErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "index.db")

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"no graph", []string{"--db", db, "?s ?p ?o"}, ErrCodePattern},
		{"bad pattern", []string{"--db", db, "--graph", "g", "?s ?p"}, ErrCodePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(NewQueryCommand(&RootOptions{Format: "json"}), tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
