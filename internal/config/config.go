// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigFile is the config file looked up when --config is not given.
const DefaultConfigFile = "job_tracker.config.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Store      string `json:"store,omitempty"`       // Path to the job listings JSON store
	SheetsDir  string `json:"sheets_dir,omitempty"`  // Directory where imported sheets are staged
	OutcomeDir string `json:"outcome_dir,omitempty"` // Directory for generated reports
	Keywords   string `json:"keywords,omitempty"`    // Path to a keyword dictionary YAML override

	// Trends scraping
	ScrapeTimeout int     `json:"scrape_timeout,omitempty"` // Seconds per search-page request
	ScrapeRate    float64 `json:"scrape_rate,omitempty"`    // Requests per second per host
	Location      string  `json:"location,omitempty"`       // Search location for scraped queries
	UseBrowser    bool    `json:"use_browser,omitempty"`    // Render JS-only search pages in headless Chrome

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL archive URL, usually via DATABASE_URL
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Store:         "job_listings.json",
		SheetsDir:     filepath.Join("documents", "sheets"),
		OutcomeDir:    "outcome",
		ScrapeTimeout: 10,
		ScrapeRate:    0.5,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.ScrapeTimeout < 0 {
		return fmt.Errorf("config error: 'scrape_timeout' must be non-negative")
	}
	if c.ScrapeRate < 0 {
		return fmt.Errorf("config error: 'scrape_rate' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Keywords != "" {
		if _, err := os.Stat(c.Keywords); os.IsNotExist(err) {
			return fmt.Errorf("config error: keywords file not found: %s", c.Keywords)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.SheetsDir == "" {
		result.SheetsDir = defaults.SheetsDir
	}
	if result.OutcomeDir == "" {
		result.OutcomeDir = defaults.OutcomeDir
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.ScrapeTimeout == 0 {
		result.ScrapeTimeout = defaults.ScrapeTimeout
	}

	// Float fields
	if result.ScrapeRate == 0 {
		if defaults.ScrapeRate > 0 {
			result.ScrapeRate = defaults.ScrapeRate
		} else {
			result.ScrapeRate = 0.5 // Default to one request per two seconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
