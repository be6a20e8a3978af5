// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job     string `json:"job,omitempty"`     // Path to job posting text file
	Profile string `json:"profile,omitempty"` // Path to user profile JSON file

	// Asset overrides (defaults use the embedded data files)
	Taxonomy      string `json:"taxonomy,omitempty"`      // Path to skill taxonomy JSON
	Resources     string `json:"resources,omitempty"`     // Path to learning resources JSON
	Prerequisites string `json:"prerequisites,omitempty"` // Path to skill prerequisites JSON

	// Cache
	CacheTTLMinutes int `json:"cache_ttl_minutes,omitempty"` // Result cache TTL in minutes
	CacheMaxEntries int `json:"cache_max_entries,omitempty"` // Result cache capacity

	// Limits
	MaxRecommendations int `json:"max_recommendations,omitempty"` // Maximum recommendations printed
	TrendLimit         int `json:"trend_limit,omitempty"`         // Maximum trends printed

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("config error: 'cache_max_entries' must be non-negative")
	}
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("config error: 'max_recommendations' must be non-negative")
	}
	if c.TrendLimit < 0 {
		return fmt.Errorf("config error: 'trend_limit' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for field, path := range map[string]string{
		"job":           c.Job,
		"profile":       c.Profile,
		"taxonomy":      c.Taxonomy,
		"resources":     c.Resources,
		"prerequisites": c.Prerequisites,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", field, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Resources == "" {
		result.Resources = defaults.Resources
	}
	if result.Prerequisites == "" {
		result.Prerequisites = defaults.Prerequisites
	}

	// Int fields: use default if zero
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = defaults.CacheTTLMinutes
	}
	if result.CacheMaxEntries == 0 {
		result.CacheMaxEntries = defaults.CacheMaxEntries
	}
	if result.MaxRecommendations == 0 {
		result.MaxRecommendations = defaults.MaxRecommendations
	}
	if result.TrendLimit == 0 {
		result.TrendLimit = defaults.TrendLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// CacheTTL returns the configured TTL as a duration, zero when unset so
// the cache falls back to its default.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
