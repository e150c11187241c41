// Package config provides configuration loading for rdforder.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete rdforder configuration
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Store     StoreConfig     `yaml:"store"`
	Sort      SortConfig      `yaml:"sort"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
}

// OutputConfig configures command output
type OutputConfig struct {
	// Format is "text" or "json" (default: text)
	Format string `yaml:"format"`
	// Verbose enables diagnostics on stderr
	Verbose bool `yaml:"verbose"`
}

// StoreConfig configures the SQLite statement index
type StoreConfig struct {
	// Path is the database file used when --db is not given
	Path string `yaml:"path"`
	// Graph is the graph name used when --graph is not given
	Graph string `yaml:"graph"`
	// Timeout bounds each store command (0 = no limit)
	Timeout time.Duration `yaml:"timeout"`
}

// SortConfig configures the sort command
type SortConfig struct {
	// Unique drops comparator-equal duplicates by default
	Unique bool `yaml:"unique"`
}

// ScenariosConfig configures the check command
type ScenariosConfig struct {
	// Dir is the scenario directory used when check gets no argument
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:  FormatText,
			Verbose: false,
		},
		Store: StoreConfig{
			Path:    "rdforder.db",
			Graph:   "", // Fresh uuid per index run
			Timeout: 30 * time.Second,
		},
		Sort: SortConfig{
			Unique: false,
		},
		Scenarios: ScenariosConfig{
			Dir: "testdata/scenarios",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Store.Timeout < 0 {
		return fmt.Errorf("store.timeout must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Verbose {
		c.Output.Verbose = true
	}

	// Store
	if other.Store.Path != "" {
		c.Store.Path = other.Store.Path
	}
	if other.Store.Graph != "" {
		c.Store.Graph = other.Store.Graph
	}
	if other.Store.Timeout != 0 {
		c.Store.Timeout = other.Store.Timeout
	}

	// Sort
	if other.Sort.Unique {
		c.Sort.Unique = true
	}

	// Scenarios
	if other.Scenarios.Dir != "" {
		c.Scenarios.Dir = other.Scenarios.Dir
	}
}
