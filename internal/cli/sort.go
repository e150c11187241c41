package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/order"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Unique bool // drop statements or terms equal under the comparator
	Terms  bool // emit the distinct terms instead of statements
}

// SortResult is the JSON payload of the sort command.
type SortResult struct {
	Source     string   `json:"source"`
	Count      int      `json:"count"`
	Statements []string `json:"statements,omitempty"`
	Terms      []string `json:"terms,omitempty"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort <path|->",
		Short: "Print statements in canonical order",
		Long: `Read N-Triples from a file (or stdin with "-") or a CUE graph
directory and print the statements in canonical order.

Statements are ordered by subject, then predicate, then object. With
--terms the distinct terms of all positions are printed instead.

Examples:
  rdforder sort data.nt
  cat data.nt | rdforder sort - --unique
  rdforder sort ./graph --terms --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Unique, "unique", false, "drop statements equal under the comparator")
	cmd.Flags().BoolVar(&opts.Terms, "terms", false, "print distinct terms instead of statements")

	return cmd
}

func runSort(opts *SortOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if !cmd.Flags().Changed("unique") {
		opts.Unique = opts.settings().Sort.Unique
	}

	loaded, err := loadOrFail(formatter, path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := SortResult{Source: loaded.Source}

	if opts.Terms {
		terms := order.Distinct(loaded.Statements)
		result.Terms = renderAll(terms)
		result.Count = len(terms)
		return formatter.Lines(result.Terms, result)
	}

	sts := loaded.Statements
	order.SortStatements(sts)
	if opts.Unique {
		sts = order.DedupStatements(sts)
	}
	result.Statements = renderAll(sts)
	result.Count = len(sts)

	formatter.VerboseLog("Sorted %d statement(s)", result.Count)
	return formatter.Lines(result.Statements, result)
}

// renderAll renders each item in its N-Triples form.
func renderAll[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}
