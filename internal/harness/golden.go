package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the sorted terms and statements of a result as plain
// text, one N-Triples item per line. Empty sections are omitted.
func Snapshot(name string, result *Result) []byte {
	var b strings.Builder
	b.WriteString("scenario: " + name + "\n")
	if len(result.Sorted) > 0 {
		b.WriteString("terms:\n")
		for _, t := range result.Sorted {
			b.WriteString("  " + t + "\n")
		}
	}
	if len(result.SortedStatements) > 0 {
		b.WriteString("statements:\n")
		for _, s := range result.SortedStatements {
			b.WriteString("  " + s + "\n")
		}
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its sorted rendering
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the rendering doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, Snapshot(scenarioName, result))
}
