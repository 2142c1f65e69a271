// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cvgen/internal/artifact"
	"github.com/jonathan/cvgen/internal/generator"
	"github.com/jonathan/cvgen/internal/logging"
	"github.com/jonathan/cvgen/internal/tables"
	"gopkg.in/yaml.v3"
)

// DefaultCount is the batch size used when nothing else is configured.
const DefaultCount = 20

// DefaultSummaryCount is how many records the closing summary lists.
const DefaultSummaryCount = 5

// Config represents the generator configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Count          int    `yaml:"count,omitempty"`         // Number of records per batch
	Output         string `yaml:"output,omitempty"`        // Path of the batch file
	Seed           uint64 `yaml:"seed,omitempty"`          // Random seed; 0 picks one from the clock
	IDStyle        string `yaml:"id_style,omitempty"`      // "timestamp" or "uuid"
	MinSkills      int    `yaml:"min_skills,omitempty"`    // Lower bound of skills per record
	MaxSkills      int    `yaml:"max_skills,omitempty"`    // Upper bound of skills per record
	SummaryCount   int    `yaml:"summary_count,omitempty"` // Records listed in the closing summary
	ValidateOutput bool   `yaml:"validate,omitempty"`      // Validate the written file

	Log logging.Config `yaml:"log,omitempty"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Count:        DefaultCount,
		Output:       artifact.DefaultPath,
		IDStyle:      generator.IDStyleTimestamp,
		MinSkills:    generator.DefaultMinSkills,
		MaxSkills:    generator.DefaultMaxSkills,
		SummaryCount: DefaultSummaryCount,
		Log:          logging.Config{Level: "info", Format: logging.FormatPretty},
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are accepted since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("config error: 'count' must be non-negative")
	}
	if c.SummaryCount < 0 {
		return fmt.Errorf("config error: 'summary_count' must be non-negative")
	}
	if c.MinSkills < 0 || c.MaxSkills < 0 {
		return fmt.Errorf("config error: skill bounds must be non-negative")
	}
	if c.MinSkills > 0 && c.MaxSkills > 0 && c.MinSkills > c.MaxSkills {
		return fmt.Errorf("config error: 'min_skills' (%d) exceeds 'max_skills' (%d)", c.MinSkills, c.MaxSkills)
	}
	if c.MaxSkills > len(tables.Skills) {
		return fmt.Errorf("config error: 'max_skills' (%d) exceeds the %d known skills", c.MaxSkills, len(tables.Skills))
	}

	switch c.IDStyle {
	case "", generator.IDStyleTimestamp, generator.IDStyleUUID:
	default:
		return fmt.Errorf("config error: unknown 'id_style' %q", c.IDStyle)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Count == 0 {
		result.Count = defaults.Count
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.IDStyle == "" {
		result.IDStyle = defaults.IDStyle
	}
	if result.MinSkills == 0 {
		result.MinSkills = defaults.MinSkills
	}
	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.SummaryCount == 0 {
		result.SummaryCount = defaults.SummaryCount
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// GeneratorOptions converts the configuration into generator sampling options.
func (c *Config) GeneratorOptions() generator.Options {
	opts := generator.DefaultOptions()
	if c.MinSkills > 0 {
		opts.MinSkills = c.MinSkills
	}
	if c.MaxSkills > 0 {
		opts.MaxSkills = c.MaxSkills
	}
	if c.IDStyle != "" {
		opts.IDStyle = c.IDStyle
	}
	return opts
}
