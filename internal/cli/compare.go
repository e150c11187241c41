package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/order"
)

// CompareResult is the JSON payload of the compare command.
type CompareResult struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Result   int    `json:"result"`   // -1, 0 or 1
	Relation string `json:"relation"` // "less", "equal" or "greater"
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two terms",
		Long: `Compare two terms written in N-Triples syntax and print -1, 0 or 1.

Examples:
  rdforder compare '_:b0' '<http://example.org/r>'
  rdforder compare '"1"^^<http://www.w3.org/2001/XMLSchema#int>' '"01"^^<http://www.w3.org/2001/XMLSchema#long>'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runCompare(opts *RootOptions, srcA, srcB string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	a, err := lexical.ParseTerm(srcA)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidTerm, fmt.Sprintf("first term: %v", err), nil)
	}
	b, err := lexical.ParseTerm(srcB)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidTerm, fmt.Sprintf("second term: %v", err), nil)
	}

	c := order.CompareTerm(a, b)
	result := CompareResult{
		A:        a.String(),
		B:        b.String(),
		Result:   c,
		Relation: relationName(c),
	}

	formatter.VerboseLog("%s %s %s", result.A, result.Relation, result.B)
	return formatter.Lines([]string{fmt.Sprintf("%d", c)}, result)
}

func relationName(c int) string {
	switch {
	case c < 0:
		return "less"
	case c > 0:
		return "greater"
	default:
		return "equal"
	}
}
