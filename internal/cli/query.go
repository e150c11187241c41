package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/queryir"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	DB    string // database path
	Graph string // graph every pattern matches against
}

// QueryResult is the JSON payload of the query command.
type QueryResult struct {
	Graph string     `json:"graph"`
	Vars  []string   `json:"vars"`
	Rows  [][]string `json:"rows"`
	Count int        `json:"count"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <pattern>...",
		Short: "Match statement patterns against an indexed graph",
		Long: `Match one or more statement patterns against an indexed graph and
print the variable bindings in canonical order.

A pattern is subject, predicate and object, each an N-Triples term, a
?variable or * for any term. Patterns sharing a variable are joined.
Bound terms match by value, so "01"^^xsd:int matches "1"^^xsd:int.

Text output is a tab-separated header of variables followed by one
line per solution.

Examples:
  rdforder query --graph people '?s <http://ex/knows> ?o'
  rdforder query --db ./index.db --graph people \
    '<http://ex/a> <http://ex/knows> ?f' '?f <http://ex/name> ?n'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "database path (default: store.path from config)")
	cmd.Flags().StringVar(&opts.Graph, "graph", "", "graph name (default: store.graph from config)")

	return cmd
}

func runQuery(opts *QueryOptions, patterns []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	cfg := opts.settings()

	graph := opts.Graph
	if graph == "" {
		graph = cfg.Store.Graph
	}
	if graph == "" {
		return formatter.Fail(ErrCodePattern, "no graph: pass --graph or set store.graph", nil)
	}

	q, err := queryir.ParseQuery(graph, patterns)
	if err != nil {
		return formatter.Fail(ErrCodePattern, err.Error(), nil)
	}

	st, err := openStore(opts.RootOptions, opts.DB, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	ctx, cancel := storeContext(cmd.Context(), cfg.Store.Timeout)
	defer cancel()

	solutions, err := st.Select(ctx, q)
	if err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}

	result := QueryResult{
		Graph: graph,
		Vars:  solutions.Vars,
		Rows:  make([][]string, len(solutions.Rows)),
		Count: len(solutions.Rows),
	}
	text := make([]string, 0, len(solutions.Rows)+1)
	if len(solutions.Vars) > 0 {
		header := make([]string, len(solutions.Vars))
		for i, v := range solutions.Vars {
			header[i] = "?" + v
		}
		text = append(text, strings.Join(header, "\t"))
	}
	for i, row := range solutions.Rows {
		result.Rows[i] = renderAll(row)
		text = append(text, strings.Join(result.Rows[i], "\t"))
	}

	formatter.VerboseLog("%d solution(s) in graph %s", result.Count, graph)
	return formatter.Lines(text, result)
}
