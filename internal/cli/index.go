package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/store"
)

// IndexOptions holds flags for the index command.
type IndexOptions struct {
	*RootOptions
	DB      string // database path
	Graph   string // target graph name
	Replace bool   // clear the graph before writing
}

// IndexResult is the payload of the index command.
type IndexResult struct {
	DB       string `json:"db"`
	Graph    string `json:"graph"`
	Read     int    `json:"read"`
	Inserted int    `json:"inserted"`
	Removed  int    `json:"removed,omitempty"`
	Total    int    `json:"total"`
	LastSeq  int64  `json:"last_seq"`
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "index <path|->",
		Short: "Write statements into a SQLite index",
		Long: `Write statements into a graph of a SQLite index so they can be read
back in canonical order with "rdforder dump".

The graph name is taken from --graph, then the graph declared by a CUE
document, then store.graph from the config. Without any of these a
fresh UUID is used. Statements already in the graph are skipped.

Examples:
  rdforder index data.nt --db ./index.db --graph people
  rdforder index ./graph --replace`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "database path (default: store.path from config)")
	cmd.Flags().StringVar(&opts.Graph, "graph", "", "graph name")
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "remove existing statements from the graph first")

	return cmd
}

func runIndex(opts *IndexOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	cfg := opts.settings()

	loaded, err := loadOrFail(formatter, path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	graph := opts.Graph
	for _, candidate := range []string{loaded.Graph, cfg.Store.Graph} {
		if graph == "" {
			graph = candidate
		}
	}
	if graph == "" {
		graph = uuid.NewString()
		formatter.VerboseLog("Using generated graph name %s", graph)
	}

	st, err := openStore(opts.RootOptions, opts.DB, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	ctx, cancel := storeContext(cmd.Context(), cfg.Store.Timeout)
	defer cancel()

	result := IndexResult{DB: dbPath(opts.RootOptions, opts.DB), Graph: graph, Read: len(loaded.Statements)}

	if opts.Replace {
		if result.Removed, err = st.DeleteGraph(ctx, graph); err != nil {
			return formatter.Fail(ErrCodeStore, err.Error(), nil)
		}
	}

	if result.Inserted, err = st.WriteStatements(ctx, graph, loaded.Statements); err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	if result.Total, err = st.CountStatements(ctx, graph); err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}
	if result.LastSeq, err = st.LastSeq(ctx, graph); err != nil {
		return formatter.Fail(ErrCodeStore, err.Error(), nil)
	}

	line := fmt.Sprintf("Indexed %d of %d statement(s) into graph %s (%d total)", result.Inserted, result.Read, graph, result.Total)
	return formatter.Lines([]string{line}, result)
}

// dbPath returns the flag value, or store.path from the config.
func dbPath(opts *RootOptions, flag string) string {
	if flag != "" {
		return flag
	}
	return opts.settings().Store.Path
}

// openStore opens the index database with diagnostics routed to stderr.
func openStore(opts *RootOptions, flag string, cmd *cobra.Command) (*store.Store, error) {
	path := dbPath(opts, flag)
	st, err := store.Open(path, store.WithLogger(opts.logger(cmd.ErrOrStderr())))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return st, nil
}

// storeContext bounds store work by the configured timeout. Zero means no
// timeout.
func storeContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
