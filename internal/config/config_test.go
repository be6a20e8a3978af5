package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"profile": "profile.json",
		"cache_ttl_minutes": 15,
		"cache_max_entries": 50,
		"trend_limit": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "profile.json", cfg.Profile)
	assert.Equal(t, 15, cfg.CacheTTLMinutes)
	assert.Equal(t, 50, cfg.CacheMaxEntries)
	assert.Equal(t, 10, cfg.TrendLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		CacheTTLMinutes: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache_ttl_minutes")
}

func TestValidate_MissingFile(t *testing.T) {
	cfg := &Config{
		Taxonomy: filepath.Join(t.TempDir(), "missing.json"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		CacheTTLMinutes:    30,
		CacheMaxEntries:    100,
		MaxRecommendations: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Profile:         "default-profile.json",
		Taxonomy:        "taxonomy.json",
		CacheTTLMinutes: 30,
		TrendLimit:      20,
	}

	partial := Config{
		Profile:         "my-profile.json",
		CacheMaxEntries: 50,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "my-profile.json", merged.Profile)
	assert.Equal(t, 50, merged.CacheMaxEntries)

	// Default values should fill in empty fields
	assert.Equal(t, "taxonomy.json", merged.Taxonomy)
	assert.Equal(t, 30, merged.CacheTTLMinutes)
	assert.Equal(t, 20, merged.TrendLimit)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Profile:         "p.json",
		CacheTTLMinutes: 5,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "p.json", merged.Profile)
	assert.Equal(t, 5, merged.CacheTTLMinutes)
}

func TestCacheTTL(t *testing.T) {
	cfg := Config{CacheTTLMinutes: 15}
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())

	var zero Config
	assert.Zero(t, zero.CacheTTL())
}
