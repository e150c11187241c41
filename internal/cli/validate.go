package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rdforder/internal/compiler"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool                       `json:"valid"`
	Statements int                        `json:"statements"`
	Errors     []compiler.ValidationError `json:"errors,omitempty"`
	Warnings   []compiler.CycleWarning    `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path|->",
		Short: "Validate statements without sorting",
		Long: `Validate N-Triples or a CUE graph directory.

Reports relative IRIs, malformed blank labels and duplicate statements
as errors, and blank node cycles as warnings. Warnings do not fail
validation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := loadOrFail(formatter, path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := ValidationResult{
		Statements: len(loaded.Statements),
		Errors:     compiler.Validate(loaded.Statements),
		Warnings:   compiler.AnalyzeBlankCycles(loaded.Statements),
	}
	result.Valid = len(result.Errors) == 0

	if opts.Format == "json" {
		return outputValidationJSON(formatter, result)
	}
	return outputValidationText(formatter, result)
}

func outputValidationJSON(f *OutputFormatter, result ValidationResult) error {
	response := CLIResponse{Status: "ok", Data: result}
	if !result.Valid {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    result.Errors[0].Code,
			Message: fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)),
		}
	}

	if err := f.encode(response); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}
	return nil
}

func outputValidationText(f *OutputFormatter, result ValidationResult) error {
	for _, w := range result.Warnings {
		fmt.Fprintf(f.Writer, "Warning: %s\n", w.Message)
	}

	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(f.Writer, "Error: %s\n", e.Error())
		}
		fmt.Fprintf(f.Writer, "\n%d error(s) found\n", len(result.Errors))
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}

	fmt.Fprintf(f.Writer, "✓ %d statement(s) valid\n", result.Statements)
	return nil
}
