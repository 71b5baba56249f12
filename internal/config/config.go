// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents settings that can be loaded from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Screening
	ProfileID string `json:"profile,omitempty"`  // target job profile id
	Job       string `json:"job,omitempty"`      // path to a job description text file
	JobURL    string `json:"job_url,omitempty"`  // URL to fetch the job description from
	Strategy  string `json:"strategy,omitempty"` // scoring strategy: weighted or legacy

	// Batch behavior
	Concurrency int  `json:"concurrency,omitempty"` // parallel analyses per batch
	MinScore    int  `json:"min_score,omitempty"`   // list/report filter threshold
	UseBrowser  bool `json:"use_browser,omitempty"` // headless-browser fallback for job URLs
	Verbose     bool `json:"verbose,omitempty"`

	// Integrations
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for AI recommendations
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Output
	Format string `json:"format,omitempty"` // report format: text, json, csv
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	switch c.Strategy {
	case "", "weighted", "legacy":
	default:
		return fmt.Errorf("config error: unknown strategy %q (want weighted or legacy)", c.Strategy)
	}

	switch c.Format {
	case "", "text", "json", "csv":
	default:
		return fmt.Errorf("config error: unknown format %q (want text, json or csv)", c.Format)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProfileID == "" {
		result.ProfileID = defaults.ProfileID
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags win.

	return result
}
