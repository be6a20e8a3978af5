package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap/internal/config"
	"github.com/jonathan/skillgap/internal/history"
	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/pipeline"
	"github.com/jonathan/skillgap/internal/profile"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a profile and a job posting",
	Long:  "Runs the full analysis for one job posting: skill extraction, gap scoring against the user profile, and prioritized learning recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile   string
	analyzeInputFile    string
	analyzeProfileFile  string
	analyzeOutputFile   string
	analyzeJobURL       string
	analyzeForceRefresh bool
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to config JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to job posting file")
	analyzeCmd.Flags().StringVarP(&analyzeProfileFile, "profile", "p", "", "Path to user profile JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "url", "", "Job identifier used for caching and history (default: the input path)")
	analyzeCmd.Flags().BoolVar(&analyzeForceRefresh, "force-refresh", false, "Recompute even when a cached result exists")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadCLIConfig(analyzeConfigFile)
	if err != nil {
		return err
	}
	flagCfg := config.Config{Job: analyzeInputFile, Profile: analyzeProfileFile}
	cfg := flagCfg.MergeWithDefaults(*fileCfg)

	if cfg.Job == "" {
		return fmt.Errorf("job posting file is required (--in or 'job' in config)")
	}
	if cfg.Profile == "" {
		return fmt.Errorf("profile file is required (--profile or 'profile' in config)")
	}
	// MergeWithDefaults leaves bools alone, so read verbose from the file
	// config directly.
	verbose := analyzeVerbose || fileCfg.Verbose

	log, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	catalog, err := loadCatalog(cfg.Resources, cfg.Prerequisites)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	userProfile, err := profile.LoadFile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	content, err := readJobText(cfg.Job)
	if err != nil {
		return err
	}

	p, err := pipeline.New(pipeline.Options{
		Taxonomy:    tax,
		Catalog:     catalog,
		CacheConfig: cacheConfig(&cfg),
		Profiles:    profile.NewStore(userProfile),
		History:     history.NewStore(0),
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	jobURL := analyzeJobURL
	if jobURL == "" {
		jobURL = cfg.Job
	}

	result, err := p.AnalyzeCached(context.Background(), jobURL, content, analyzeForceRefresh)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGapAnalysis(result)
		printer.PrintRecommendations(capRecommendations(result.Recommendations, cfg.MaxRecommendations))
	}
	return writeJSON(analyzeOutputFile, result)
}
