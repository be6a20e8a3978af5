package types

// TrendDirection describes how a skill's importance moves across a
// time-ordered history of analyses.
type TrendDirection string

// Trend directions.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// SkillTrend summarizes one skill's behavior across many saved analyses.
type SkillTrend struct {
	Name      string         `json:"name"`
	Category  Category       `json:"category"`
	Frequency int            `json:"frequency"` // number of analyses mentioning the skill
	Direction TrendDirection `json:"direction"`

	// AvgConfidence is the mean extraction confidence across all sightings.
	AvgConfidence float64 `json:"avg_confidence"`

	// RequiredShare is the fraction of sightings where the skill was marked
	// required.
	RequiredShare float64 `json:"required_share"`
}

// KeywordSuggestion is a resume-optimization hint derived from saved
// analyses: a skill worth naming explicitly in the user's materials.
type KeywordSuggestion struct {
	Keyword        string   `json:"keyword"`
	Category       Category `json:"category"`
	Frequency      int      `json:"frequency"`
	Importance     float64  `json:"importance"` // confidence-weighted, boosted when required
	MissingFromYou bool     `json:"missing_from_profile"`
}
