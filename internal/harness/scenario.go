package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario describes an ordering fixture. Terms and statements are written
// in N-Triples syntax and listed in their expected ascending order.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Terms in expected ascending order. Neighbours may be equal.
	Terms []string `yaml:"terms,omitempty"`

	// Pairs are individual comparisons with an expected relation.
	Pairs []Pair `yaml:"pairs,omitempty"`

	// Statements in expected ascending order, one N-Triples line each.
	Statements []string `yaml:"statements,omitempty"`

	// Assertions are extra checks over the parsed terms and statements.
	// Supported types: min, max, distinct, store_order
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Pair is one comparison: compare(A, B) must yield Expect.
type Pair struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Expect string `yaml:"expect"`
}

// Relation names used in Pair.Expect.
const (
	Less    = "less"
	Equal   = "equal"
	Greater = "greater"
)

var relations = map[string]int{
	Less:    -1,
	Equal:   0,
	Greater: 1,
}

// relationName is the inverse of relations.
func relationName(c int) string {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Assertion is an extra check evaluated after the ordering checks.
type Assertion struct {
	// Type specifies the assertion type:
	// - "min": Term is the least of Terms
	// - "max": Term is the greatest of Terms
	// - "distinct": Terms hold exactly Count distinct values
	// - "store_order": the SQLite index returns Statements in order
	Type string `yaml:"type"`

	// Term is the expected term (used by min and max).
	Term string `yaml:"term,omitempty"`

	// Count is the expected number of distinct terms (used by distinct).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertMin        = "min"
	AssertMax        = "max"
	AssertDistinct   = "distinct"
	AssertStoreOrder = "store_order"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml and *.yml file directly inside dir,
// sorted by file name. A path naming a single file loads just that file.
func LoadScenarios(path string) ([]*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []*Scenario{s}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", path)
	}
	sort.Strings(files)

	scenarios := make([]*Scenario, 0, len(files))
	for _, f := range files {
		s, err := LoadScenario(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Terms) == 0 && len(s.Pairs) == 0 && len(s.Statements) == 0 {
		return fmt.Errorf("at least one of terms, pairs or statements is required")
	}

	for i, p := range s.Pairs {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("pairs[%d]: a and b are required", i)
		}
		if _, ok := relations[p.Expect]; !ok {
			return fmt.Errorf("pairs[%d]: expect must be less, equal or greater, got %q", i, p.Expect)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, s *Scenario) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertMin, AssertMax:
		if a.Term == "" {
			return fmt.Errorf("assertions[%d]: term is required for %s", index, a.Type)
		}
		if len(s.Terms) == 0 {
			return fmt.Errorf("assertions[%d]: %s needs terms", index, a.Type)
		}
	case AssertDistinct:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for distinct", index)
		}
	case AssertStoreOrder:
		if len(s.Statements) == 0 {
			return fmt.Errorf("assertions[%d]: store_order needs statements", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
