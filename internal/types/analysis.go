package types

import "time"

// SkillMatch pairs a declared user skill with an extracted job skill.
type SkillMatch struct {
	UserSkill UserSkill      `json:"user_skill"`
	JobSkill  ExtractedSkill `json:"job_skill"`

	// MatchScore estimates how well the user's skill satisfies this
	// requirement, 0.0-1.0.
	MatchScore float64 `json:"match_score"`

	// ProficiencyGap is present (> 0) only when the job appears to require
	// more proficiency than the user has declared.
	ProficiencyGap float64 `json:"proficiency_gap,omitempty"`
}

// GapAnalysisResult is the full outcome of analyzing one job posting against
// one user profile. Immutable once produced; the storage collaborator may
// persist it and feed it back into trend analysis later.
type GapAnalysisResult struct {
	ID     string `json:"id"`
	JobID  string `json:"job_id"`
	UserID string `json:"user_id,omitempty"`

	Matches []SkillMatch     `json:"matches"`
	Missing []ExtractedSkill `json:"missing"`

	// OverallMatch aggregates the per-skill scores into a single 0.0-1.0
	// figure. A job with zero extracted skills scores 1.0 (vacuous match).
	OverallMatch float64 `json:"overall_match"`

	Recommendations []Recommendation `json:"recommendations,omitempty"`

	AnalyzedAt time.Time `json:"analyzed_at"`
}

// MissingNames returns the canonical names of the missing skills, in order.
func (r *GapAnalysisResult) MissingNames() []string {
	names := make([]string, len(r.Missing))
	for i, s := range r.Missing {
		names[i] = s.Name
	}
	return names
}
