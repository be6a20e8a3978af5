package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap/internal/config"
	"github.com/jonathan/skillgap/internal/history"
	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/pipeline"
	"github.com/jonathan/skillgap/internal/profile"
	"github.com/jonathan/skillgap/internal/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Report skill demand trends across saved analyses",
	Long:  "Loads saved gap-analysis results from a directory and reports per-skill demand trends, plus profile keyword suggestions when a profile is given.",
	RunE:  runTrends,
}

var (
	trendsConfigFile  string
	trendsHistoryDir  string
	trendsProfileFile string
	trendsOutputFile  string
	trendsLimit       int
	trendsVerbose     bool
)

func init() {
	trendsCmd.Flags().StringVarP(&trendsConfigFile, "config", "c", "", "Path to config JSON file")
	trendsCmd.Flags().StringVar(&trendsHistoryDir, "history", "", "Directory of saved analysis JSON files (required)")
	trendsCmd.Flags().StringVarP(&trendsProfileFile, "profile", "p", "", "Path to user profile JSON file (enables keyword suggestions)")
	trendsCmd.Flags().StringVarP(&trendsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	trendsCmd.Flags().IntVar(&trendsLimit, "limit", 0, "Maximum skills to report (default: 'trendLimit' in config, or 20)")
	trendsCmd.Flags().BoolVarP(&trendsVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := trendsCmd.MarkFlagRequired("history"); err != nil {
		panic(fmt.Sprintf("failed to mark history flag as required: %v", err))
	}

	rootCmd.AddCommand(trendsCmd)
}

// trendsReport is the JSON shape written by the trends command.
type trendsReport struct {
	Trends         []types.SkillTrend        `json:"trends"`
	Keywords       []types.KeywordSuggestion `json:"keywords,omitempty"`
	Certifications []string                  `json:"certifications,omitempty"`
	SoftSkills     []string                  `json:"soft_skills,omitempty"`
}

func runTrends(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadCLIConfig(trendsConfigFile)
	if err != nil {
		return err
	}
	flagCfg := config.Config{Profile: trendsProfileFile, TrendLimit: trendsLimit}
	cfg := flagCfg.MergeWithDefaults(*fileCfg)
	limit := trendLimitOrDefault(cfg)
	verbose := trendsVerbose || fileCfg.Verbose

	log, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := loadHistoryDir(trendsHistoryDir)
	if err != nil {
		return err
	}

	var userProfile *types.UserProfile
	if cfg.Profile != "" {
		userProfile, err = profile.LoadFile(cfg.Profile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}

	p, err := pipeline.New(pipeline.Options{History: store, Logger: log})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	ctx := context.Background()
	report := trendsReport{}
	report.Trends, err = p.Trends(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to compute trends: %w", err)
	}
	if userProfile != nil {
		report.Keywords, err = p.SuggestKeywords(ctx, userProfile, limit)
		if err != nil {
			return fmt.Errorf("failed to suggest keywords: %w", err)
		}
	}
	report.Certifications, err = p.SuggestCertifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest certifications: %w", err)
	}
	report.SoftSkills, err = p.SuggestSoftSkills(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest soft skills: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintTrends(report.Trends)
	}
	return writeJSON(trendsOutputFile, report)
}

// loadHistoryDir reads every .json file in dir as a saved analysis result.
func loadHistoryDir(dir string) (*history.Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	store := history.NewStore(0)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
		}
		var result types.GapAnalysisResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse history file %s: %w", path, err)
		}
		if err := store.Append(context.Background(), &result); err != nil {
			return nil, fmt.Errorf("failed to record history file %s: %w", path, err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no analysis files found in %s", dir)
	}
	return store, nil
}
