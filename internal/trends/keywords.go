package trends

import (
	"sort"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
)

// requiredImportanceBoost scales a keyword's importance up in proportion
// to how often postings marked it required.
const requiredImportanceBoost = 0.5

// certificationsBySkill maps a skill seen in job postings to the
// certifications that typically back it up.
var certificationsBySkill = map[string][]string{
	"kubernetes": {"certified kubernetes administrator"},
	"docker":     {"certified kubernetes administrator"},
	"aws":        {"aws certified solutions architect"},
	"security":   {"cissp", "comptia security+"},
	"scrum":      {"certified scrum master"},
	"agile":      {"certified scrum master"},
	"leadership": {"pmp"},
}

// softSkillsBySkill maps a skill to the soft skills postings tend to pair
// with it.
var softSkillsBySkill = map[string][]string{
	"microservices":       {"communication", "teamwork"},
	"distributed systems": {"communication"},
	"agile":               {"teamwork", "adaptability"},
	"scrum":               {"communication", "teamwork"},
	"leadership":          {"mentoring", "communication"},
	"machine learning":    {"critical thinking"},
	"devops":              {"collaboration"},
}

// SuggestKeywords ranks every skill seen across the saved analyses for
// resume optimization: skills missing from the profile come first, then by
// importance, then by frequency.
func (a *Analyzer) SuggestKeywords(history []*types.GapAnalysisResult, profile *types.UserProfile, limit int) []types.KeywordSuggestion {
	seen := observations(history)
	if len(seen) == 0 {
		return nil
	}

	held := make(map[string]struct{})
	if profile != nil {
		for _, us := range profile.Skills {
			held[parsing.NormalizeKey(us.Name)] = struct{}{}
			for _, syn := range us.Synonyms {
				held[parsing.NormalizeKey(syn)] = struct{}{}
			}
		}
	}

	out := make([]types.KeywordSuggestion, 0, len(seen))
	for key, sightings := range seen {
		var confSum, reqCount float64
		for _, s := range sightings {
			confSum += s.confidence
			if s.required {
				reqCount++
			}
		}
		n := float64(len(sightings))
		avgConf := confSum / n
		reqShare := reqCount / n

		_, has := held[key]
		out = append(out, types.KeywordSuggestion{
			Keyword:        key,
			Category:       categoryOf(history, key),
			Frequency:      len(sightings),
			Importance:     avgConf * (1 + requiredImportanceBoost*reqShare),
			MissingFromYou: !has,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MissingFromYou != out[j].MissingFromYou {
			return out[i].MissingFromYou
		}
		if out[i].Importance != out[j].Importance {
			return out[i].Importance > out[j].Importance
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Keyword < out[j].Keyword
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SuggestCertifications derives candidate certifications from the skills
// seen across the history, deduplicated, in first-seen sorted-key order.
func (a *Analyzer) SuggestCertifications(history []*types.GapAnalysisResult) []string {
	return suggestFromTable(history, certificationsBySkill)
}

// SuggestSoftSkills derives candidate soft-skill additions the same way.
func (a *Analyzer) SuggestSoftSkills(history []*types.GapAnalysisResult) []string {
	return suggestFromTable(history, softSkillsBySkill)
}

func suggestFromTable(history []*types.GapAnalysisResult, table map[string][]string) []string {
	seen := observations(history)

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []string
	dedup := make(map[string]struct{})
	for _, key := range keys {
		for _, suggestion := range table[key] {
			if _, ok := dedup[suggestion]; ok {
				continue
			}
			dedup[suggestion] = struct{}{}
			out = append(out, suggestion)
		}
	}
	return out
}
