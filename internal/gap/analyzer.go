// Package gap compares a user's declared skill inventory against a job's
// extracted skills and produces matched/missing partitions, per-skill match
// scores, and an overall match percentage.
package gap

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/fuzzy"
	"github.com/jonathan/skillgap/internal/logger"
	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
)

// Scoring constants. The gap penalty shrinks a match in proportion to how
// far the user's declared proficiency falls below what the posting asks
// for; required skills get a small boost; each missing skill costs the
// overall score a fixed amount.
const (
	gapPenalty          = 0.3
	requiredBoost       = 1.1
	requiredWeightBoost = 1.5
	missingPenalty      = 0.1
)

// Analyzer computes gap analyses. Stateless; safe for concurrent use.
type Analyzer struct {
	log *zap.Logger
}

// New returns an Analyzer. A nil logger disables logging.
func New(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// Analyze matches every extracted job skill against the profile and scores
// the result. Profile skills are consulted in declared order, which makes
// fuzzy tie-breaking deterministic.
func (a *Analyzer) Analyze(profile *types.UserProfile, jobSkills []types.ExtractedSkill, jobID string) *types.GapAnalysisResult {
	result := &types.GapAnalysisResult{
		ID:         uuid.NewString(),
		JobID:      jobID,
		UserID:     profile.UserID,
		Matches:    make([]types.SkillMatch, 0, len(jobSkills)),
		Missing:    make([]types.ExtractedSkill, 0),
		AnalyzedAt: time.Now().UTC(),
	}

	for _, jobSkill := range jobSkills {
		userSkill, ok := findUserSkill(profile, jobSkill)
		if !ok {
			result.Missing = append(result.Missing, jobSkill)
			continue
		}

		score, profGap := matchScore(userSkill, jobSkill)
		match := types.SkillMatch{
			UserSkill:  userSkill,
			JobSkill:   jobSkill,
			MatchScore: score,
		}
		if profGap > 0 {
			match.ProficiencyGap = profGap
		}
		result.Matches = append(result.Matches, match)
	}

	result.OverallMatch = overallMatch(result.Matches, len(result.Missing))

	logger.WithAnalysisFields(a.log, "gap", jobID).Debug("gap analysis complete",
		zap.Int("matched", len(result.Matches)),
		zap.Int("missing", len(result.Missing)),
		zap.Float64("overall_match", result.OverallMatch))
	return result
}

// findUserSkill resolves a job skill to a profile skill: exact canonical
// name first, then synonyms in either direction, then fuzzy similarity.
// Fuzzy matching never overrides an exact or synonym hit, and the first
// fuzzy candidate in profile order wins ties.
func findUserSkill(profile *types.UserProfile, jobSkill types.ExtractedSkill) (types.UserSkill, bool) {
	jobKey := parsing.NormalizeKey(jobSkill.Name)

	for _, us := range profile.Skills {
		if parsing.NormalizeKey(us.Name) == jobKey {
			return us, true
		}
	}

	for _, us := range profile.Skills {
		if synonymMatch(us, jobSkill, jobKey) {
			return us, true
		}
	}

	for _, us := range profile.Skills {
		if fuzzyMatch(us, jobSkill) {
			return us, true
		}
	}

	return types.UserSkill{}, false
}

func synonymMatch(us types.UserSkill, jobSkill types.ExtractedSkill, jobKey string) bool {
	userKey := parsing.NormalizeKey(us.Name)
	for _, syn := range jobSkill.Synonyms {
		if parsing.NormalizeKey(syn) == userKey {
			return true
		}
	}
	for _, syn := range us.Synonyms {
		if parsing.NormalizeKey(syn) == jobKey {
			return true
		}
	}
	return false
}

func fuzzyMatch(us types.UserSkill, jobSkill types.ExtractedSkill) bool {
	if fuzzy.SameSkill(us.Name, jobSkill.Name) {
		return true
	}
	for _, syn := range us.Synonyms {
		if fuzzy.SameSkill(syn, jobSkill.Name) {
			return true
		}
	}
	return false
}

// matchScore computes the 0-1 score for one matched pair plus the
// proficiency gap, which is zero when the user meets or exceeds the
// inferred requirement.
func matchScore(us types.UserSkill, jobSkill types.ExtractedSkill) (score, profGap float64) {
	required := requiredProficiency(jobSkill.Context, jobSkill.IsRequired)
	declared := us.Proficiency.Score()

	profGap = required - declared
	if profGap < 0 {
		profGap = 0
	}

	score = 1.0 - gapPenalty*profGap
	score *= jobSkill.Confidence
	score *= jobSkill.Category.Weight()
	if jobSkill.IsRequired {
		score *= requiredBoost
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score, profGap
}

// overallMatch aggregates per-skill scores into one figure: a weighted
// average over the matches minus a penalty per missing skill, clamped to
// [0,1]. Zero extracted skills is a vacuous full match, not missing data.
func overallMatch(matches []types.SkillMatch, missing int) float64 {
	if len(matches) == 0 && missing == 0 {
		return 1.0
	}

	var sum, weights float64
	for _, m := range matches {
		w := m.JobSkill.Category.Weight() * m.JobSkill.Confidence
		if m.JobSkill.IsRequired {
			w *= requiredWeightBoost
		}
		sum += m.MatchScore * w
		weights += w
	}

	overall := 0.0
	if weights > 0 {
		overall = sum / weights
	}
	overall -= missingPenalty * float64(missing)

	if overall > 1 {
		overall = 1
	}
	if overall < 0 {
		overall = 0
	}
	return overall
}
