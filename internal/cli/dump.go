package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/store"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	DB       string // database path
	Graph    string // graph to print
	Subjects bool   // print distinct subjects only
}

// DumpResult is the JSON payload of the dump command.
type DumpResult struct {
	Graph      string            `json:"graph,omitempty"`
	Count      int               `json:"count"`
	Statements []string          `json:"statements,omitempty"`
	Subjects   []string          `json:"subjects,omitempty"`
	Graphs     []store.GraphInfo `json:"graphs,omitempty"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print an indexed graph in canonical order",
		Long: `Print the statements of an indexed graph in canonical order, read
through the index's RDFTERM collation.

Without --graph (and without store.graph in the config) the graphs in
the index are listed with their statement counts.

Examples:
  rdforder dump --db ./index.db
  rdforder dump --db ./index.db --graph people
  rdforder dump --graph people --subjects --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "database path (default: store.path from config)")
	cmd.Flags().StringVar(&opts.Graph, "graph", "", "graph name (default: store.graph from config)")
	cmd.Flags().BoolVar(&opts.Subjects, "subjects", false, "print distinct subjects only")

	return cmd
}

func runDump(opts *DumpOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	cfg := opts.settings()

	graph := opts.Graph
	if graph == "" {
		graph = cfg.Store.Graph
	}

	st, err := openStore(opts.RootOptions, opts.DB, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	ctx, cancel := storeContext(cmd.Context(), cfg.Store.Timeout)
	defer cancel()

	if graph == "" {
		graphs, err := st.Graphs(ctx)
		if err != nil {
			return formatter.Fail(ErrCodeStore, err.Error(), nil)
		}
		lines := make([]string, len(graphs))
		for i, g := range graphs {
			lines[i] = fmt.Sprintf("%s\t%d", g.Name, g.Statements)
		}
		return formatter.Lines(lines, DumpResult{Count: len(graphs), Graphs: graphs})
	}

	result := DumpResult{Graph: graph}

	if opts.Subjects {
		subjects, err := st.ReadSubjects(ctx, graph)
		if err != nil {
			return formatter.Fail(ErrCodeStore, err.Error(), nil)
		}
		result.Subjects = renderAll(subjects)
		result.Count = len(subjects)
		return formatter.Lines(result.Subjects, result)
	}

	sts, err := st.ReadSorted(ctx, graph)
	if err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	result.Statements = renderAll(sts)
	result.Count = len(sts)

	formatter.VerboseLog("Read %d statement(s) from graph %s", result.Count, graph)
	return formatter.Lines(result.Statements, result)
}
