package harness

import "fmt"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass indicates overall success.
	// True if every check and assertion held.
	Pass bool `json:"pass"`

	// Checks counts the comparisons and properties evaluated.
	Checks int `json:"checks"`

	// Errors contains failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Sorted is the N-Triples rendering of the scenario's terms after
	// sorting.
	Sorted []string `json:"sorted"`

	// SortedStatements is the rendering of the sorted statements.
	SortedStatements []string `json:"sorted_statements"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:             true,
		Errors:           []string{},
		Sorted:           []string{},
		SortedStatements: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// check counts one evaluated check and records a failure when ok is false.
func (r *Result) check(ok bool, format string, args ...any) {
	r.Checks++
	if !ok {
		r.AddError(fmt.Sprintf(format, args...))
	}
}
