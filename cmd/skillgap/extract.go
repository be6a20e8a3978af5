package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a job posting file",
	Long:  "Extracts taxonomy skills from a job posting (plain text or structured JSON) and writes them as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractTaxonomy   string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to job posting file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractTaxonomy, "taxonomy", "", "Path to taxonomy JSON (default: embedded)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	log, err := newLogger(extractVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tax, err := loadTaxonomy(extractTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	content, err := readJobText(extractInputFile)
	if err != nil {
		return err
	}

	p, err := pipeline.New(pipeline.Options{Taxonomy: tax, Logger: log})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	skills, err := p.ExtractSkills(content.Combined())
	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintExtractedSkills(skills)
	}
	return writeJSON(extractOutputFile, skills)
}
