// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs the skills found in the job posting.
func (p *Printer) PrintExtractedSkills(skills []types.ExtractedSkill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", len(skills)))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := skills[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", s.Name, s.Category))
		sb.WriteString(fmt.Sprintf("  Confidence: %.2f", s.Confidence))
		if s.IsRequired {
			sb.WriteString("  required")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(skills)-maxItemsToShow))
	}

	p.printBox("EXTRACTED SKILLS", sb.String())
}

// PrintGapAnalysis outputs a human-readable summary of one analysis result.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Overall:  %.0f%%\n", result.OverallMatch*100))
	sb.WriteString("\n")

	if len(result.Matches) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(result.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Matches[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)", m.JobSkill.Name, m.MatchScore))
			if m.ProficiencyGap > 0 {
				sb.WriteString(fmt.Sprintf(" gap %.2f", m.ProficiencyGap))
			}
			sb.WriteString("\n")
		}
		if len(result.Matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matches)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Missing), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Missing[i].Name))
		}
		if len(result.Missing) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-3))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the prioritized learning plan.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Skill.Name))
		sb.WriteString(fmt.Sprintf("    Priority: %s  Est: %dh\n", rec.Priority, rec.EstimatedHours))
		if len(rec.Prerequisites) > 0 {
			prereqs := strings.Join(rec.Prerequisites, ", ")
			if len(prereqs) > 40 {
				prereqs = prereqs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Needs: %s\n", prereqs))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(recs)-maxItemsToShow))
	}

	p.printBox("LEARNING PLAN", sb.String())
}

// PrintTrends outputs skill demand trends across past analyses.
func (p *Printer) PrintTrends(trends []types.SkillTrend) {
	if len(trends) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NOT ENOUGH HISTORY FOR TRENDS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, tr := range trends {
		sb.WriteString(fmt.Sprintf("%-20s %-10s seen %d×\n", tr.Name, tr.Direction, tr.Frequency))
		if i >= maxItemsToShow-1 {
			break
		}
	}
	if len(trends) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(trends)-maxItemsToShow))
	}

	p.printBox("SKILL TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}
