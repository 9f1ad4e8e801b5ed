package cmd

import (
	"errors"
	"fmt"
	"os"

	"day-zero/pkg/calculator"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSource is returned when neither a CSV input nor a database DSN is configured
	ErrNoSource = errors.New("either an input CSV or a database DSN is required")
	// ErrTwoSources is returned when both a CSV input and a database DSN are configured
	ErrTwoSources = errors.New("input CSV and database DSN are mutually exclusive")
)

// Config represents the day-zero configuration file
type Config struct {
	// Logging level
	Logging string `yaml:"logging" default:"info" env:"DAY_ZERO_LOG_LEVEL"`

	// Alignment rule and its threshold; a nil threshold selects the rule default
	Rule      string   `yaml:"rule" default:"total_case_count" env:"DAY_ZERO_RULE"`
	Threshold *float64 `yaml:"threshold,omitempty" env:"DAY_ZERO_THRESHOLD"`

	// Progress renders a per-country progress bar on stderr
	Progress bool `yaml:"progress" default:"true"`

	// Input is a CSV export of case reports
	Input string `yaml:"input" env:"DAY_ZERO_INPUT"`

	// Output is the aligned CSV path, stdout when empty
	Output string `yaml:"output" env:"DAY_ZERO_OUTPUT"`

	// Database is used instead of Input when DSN is set
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig points at a MySQL/MariaDB table of case reports
type DatabaseConfig struct {
	DSN   string `yaml:"dsn" env:"DAY_ZERO_DSN"`
	Table string `yaml:"table" default:"case_reports" env:"DAY_ZERO_TABLE"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := calculator.ParseRule(c.Rule); err != nil {
		return err
	}
	switch {
	case c.Input == "" && c.Database.DSN == "":
		return ErrNoSource
	case c.Input != "" && c.Database.DSN != "":
		return ErrTwoSources
	}
	return nil
}

// LoadConfig loads configuration from a YAML file, then applies
// environment overrides
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "day-zero.yaml"
	}

	config := &Config{}

	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	// Try to read the file, but allow it to not exist
	yamlFile, err := os.ReadFile(path) //nolint:gosec // User-provided config file path
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(yamlFile, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}
