package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/cache"
	"github.com/jonathan/skillgap/internal/config"
	"github.com/jonathan/skillgap/internal/logger"
	"github.com/jonathan/skillgap/internal/recommend"
	"github.com/jonathan/skillgap/internal/taxonomy"
	"github.com/jonathan/skillgap/internal/types"
)

// loadCLIConfig reads the optional config file and validates it. An empty
// path returns an empty config so flags alone drive the run.
func loadCLIConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Verbose mode enables debug output.
func newLogger(verbose bool) (*zap.Logger, error) {
	return logger.New(false, verbose)
}

// loadTaxonomy loads a taxonomy override from disk or falls back to the
// embedded asset.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Load()
	}
	return taxonomy.LoadFile(path)
}

// loadCatalog loads the resource and prerequisite assets, which must be
// overridden together or not at all.
func loadCatalog(resourcesPath, prereqsPath string) (*recommend.Catalog, error) {
	if resourcesPath == "" && prereqsPath == "" {
		return recommend.LoadCatalog()
	}
	if resourcesPath == "" || prereqsPath == "" {
		return nil, fmt.Errorf("resources and prerequisites overrides must be provided together")
	}
	return recommend.LoadCatalogFiles(resourcesPath, prereqsPath)
}

// defaultTrendLimit caps trend reports when neither the flag nor the
// config file sets a limit.
const defaultTrendLimit = 20

// trendLimitOrDefault resolves the trend report limit from the merged config.
func trendLimitOrDefault(cfg config.Config) int {
	if cfg.TrendLimit > 0 {
		return cfg.TrendLimit
	}
	return defaultTrendLimit
}

// capRecommendations truncates recs to max entries. A max of zero or less
// means no cap.
func capRecommendations(recs []types.Recommendation, max int) []types.Recommendation {
	if max <= 0 || len(recs) <= max {
		return recs
	}
	return recs[:max]
}

// cacheConfig maps the file config onto cache options, leaving defaults in
// place for unset values.
func cacheConfig(cfg *config.Config) cache.Config {
	return cache.Config{
		TTL:        cfg.CacheTTL(),
		MaxEntries: cfg.CacheMaxEntries,
	}
}

// readJobText loads a job posting from disk. JSON files unmarshal into the
// structured posting shape; anything else is treated as the raw
// description text.
func readJobText(path string) (types.JobText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.JobText{}, fmt.Errorf("failed to read job file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var jt types.JobText
		if err := json.Unmarshal(data, &jt); err != nil {
			return types.JobText{}, fmt.Errorf("failed to parse job JSON: %w", err)
		}
		return jt, nil
	}
	return types.JobText{Description: string(data)}, nil
}

// writeJSON marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}

	outputDir := filepath.Dir(path)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
