// Package types provides type definitions for structured data used throughout the skillgap engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a skill into one of the fixed taxonomy categories.
type Category string

// The fixed set of skill categories. Every extracted skill carries exactly
// one of these; anything else is rejected at taxonomy load time.
const (
	CategoryTechnical     Category = "technical"
	CategoryFramework     Category = "framework"
	CategoryTool          Category = "tool"
	CategoryCertification Category = "certification"
	CategoryLanguage      Category = "language"
	CategoryMethodology   Category = "methodology"
	CategorySoftSkill     Category = "soft-skill"
)

// Categories returns all valid categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryTechnical,
		CategoryFramework,
		CategoryTool,
		CategoryCertification,
		CategoryLanguage,
		CategoryMethodology,
		CategorySoftSkill,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryFramework, CategoryTool,
		CategoryCertification, CategoryLanguage, CategoryMethodology,
		CategorySoftSkill:
		return true
	}
	return false
}

// Weight returns the fixed scoring weight for the category.
// Technical skills weigh the most; soft skills the least.
func (c Category) Weight() float64 {
	switch c {
	case CategoryTechnical:
		return 1.0
	case CategoryFramework, CategoryCertification:
		return 0.9
	case CategoryTool:
		return 0.8
	case CategoryMethodology:
		return 0.7
	case CategoryLanguage:
		return 0.6
	case CategorySoftSkill:
		return 0.5
	default:
		return 0.5
	}
}

// ExtractedSkill is a single skill detected in job-posting text.
// Instances are created by the extractor and never mutated afterward;
// the GapAnalysisResult that references them owns them.
type ExtractedSkill struct {
	Name       string   `json:"name"`                 // canonical taxonomy name
	Category   Category `json:"category"`             // always a member of the fixed set
	Confidence float64  `json:"confidence"`           // 0.0-1.0
	Context    string   `json:"context,omitempty"`    // bounded text window around the match
	IsRequired bool     `json:"is_required"`          // inferred from surrounding context
	Synonyms   []string `json:"synonyms,omitempty"`   // copied from the taxonomy definition
}
