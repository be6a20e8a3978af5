package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap/internal/types"
)

func profileWith(skills ...types.UserSkill) *types.UserProfile {
	return &types.UserProfile{UserID: "user-1", Skills: skills}
}

func TestAnalyze_ExactNameMatch(t *testing.T) {
	a := New(nil)
	profile := profileWith(types.UserSkill{
		Name:        "python",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyAdvanced,
	})
	jobSkills := []types.ExtractedSkill{
		{Name: "python", Category: types.CategoryLanguage, Confidence: 0.8},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	assert.Empty(t, result.Missing)
	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, "user-1", result.UserID)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.AnalyzedAt.IsZero())
}

func TestAnalyze_SynonymMatch(t *testing.T) {
	a := New(nil)

	// UserSkill "JavaScript" with synonym "js" must match an extracted
	// skill named "javascript" that was found via the literal token "JS".
	profile := profileWith(types.UserSkill{
		Name:        "JavaScript",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyIntermediate,
		Synonyms:    []string{"js"},
	})
	jobSkills := []types.ExtractedSkill{
		{
			Name:       "javascript",
			Category:   types.CategoryLanguage,
			Confidence: 0.8,
			Synonyms:   []string{"js", "ecmascript"},
		},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "JavaScript", result.Matches[0].UserSkill.Name)
}

func TestAnalyze_FuzzyFallback(t *testing.T) {
	a := New(nil)
	profile := profileWith(types.UserSkill{
		Name:        "javascrpt", // typo in the profile
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyAdvanced,
	})
	jobSkills := []types.ExtractedSkill{
		{Name: "javascript", Category: types.CategoryLanguage, Confidence: 0.9},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	assert.Empty(t, result.Missing)
}

func TestAnalyze_ExactBeatsFuzzy(t *testing.T) {
	a := New(nil)

	// Both profile entries are plausible for "javascript"; the exact one
	// must win even though the fuzzy candidate is declared first.
	profile := profileWith(
		types.UserSkill{Name: "javascrpt", Category: types.CategoryLanguage, Proficiency: types.ProficiencyExpert},
		types.UserSkill{Name: "javascript", Category: types.CategoryLanguage, Proficiency: types.ProficiencyBeginner},
	)
	jobSkills := []types.ExtractedSkill{
		{Name: "javascript", Category: types.CategoryLanguage, Confidence: 0.9},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "javascript", result.Matches[0].UserSkill.Name)
}

func TestAnalyze_UnmatchedSkillsGoMissing(t *testing.T) {
	a := New(nil)
	profile := profileWith(types.UserSkill{
		Name:        "go",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyExpert,
	})
	jobSkills := []types.ExtractedSkill{
		{Name: "go", Category: types.CategoryLanguage, Confidence: 0.8},
		{Name: "kubernetes", Category: types.CategoryTool, Confidence: 0.9},
		{Name: "terraform", Category: types.CategoryTool, Confidence: 0.7},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	assert.Len(t, result.Matches, 1)
	require.Len(t, result.Missing, 2)
	assert.Equal(t, []string{"kubernetes", "terraform"}, result.MissingNames())
}

func TestAnalyze_ProficiencyGapOnlyWhenShort(t *testing.T) {
	a := New(nil)

	// Expert user, senior posting: inferred requirement 0.9, declared 1.0,
	// so no gap and no penalty.
	profile := profileWith(types.UserSkill{
		Name:        "python",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyExpert,
	})
	jobSkills := []types.ExtractedSkill{
		{
			Name:       "python",
			Category:   types.CategoryLanguage,
			Confidence: 0.9,
			Context:    "senior python engineer",
			IsRequired: true,
		},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	m := result.Matches[0]
	assert.Zero(t, m.ProficiencyGap)

	// score = 1.0 * confidence * category weight * required boost
	want := 0.9 * types.CategoryLanguage.Weight() * 1.1
	assert.InDelta(t, want, m.MatchScore, 1e-9)
}

func TestAnalyze_ProficiencyGapPenalizesScore(t *testing.T) {
	a := New(nil)

	// Beginner user, senior posting: gap = 0.9 - 0.25 = 0.65.
	profile := profileWith(types.UserSkill{
		Name:        "python",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyBeginner,
	})
	jobSkills := []types.ExtractedSkill{
		{
			Name:       "python",
			Category:   types.CategoryLanguage,
			Confidence: 1.0,
			Context:    "senior python engineer",
			IsRequired: true,
		},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	require.Len(t, result.Matches, 1)
	m := result.Matches[0]
	assert.InDelta(t, 0.65, m.ProficiencyGap, 1e-9)

	want := (1.0 - 0.3*0.65) * 1.0 * types.CategoryLanguage.Weight() * 1.1
	assert.InDelta(t, want, m.MatchScore, 1e-9)
}

func TestAnalyze_ScoresAlwaysInRange(t *testing.T) {
	a := New(nil)
	profile := profileWith(
		types.UserSkill{Name: "go", Category: types.CategoryLanguage, Proficiency: types.ProficiencyBeginner},
		types.UserSkill{Name: "react", Category: types.CategoryFramework, Proficiency: types.ProficiencyExpert},
	)
	jobSkills := []types.ExtractedSkill{
		{Name: "go", Category: types.CategoryLanguage, Confidence: 1.0, Context: "expert go architect", IsRequired: true},
		{Name: "react", Category: types.CategoryFramework, Confidence: 1.0, Context: "react required", IsRequired: true},
		{Name: "kafka", Category: types.CategoryTool, Confidence: 0.7},
	}

	result := a.Analyze(profile, jobSkills, "job-1")

	for _, m := range result.Matches {
		assert.GreaterOrEqual(t, m.MatchScore, 0.0)
		assert.LessOrEqual(t, m.MatchScore, 1.0)
		if m.ProficiencyGap != 0 {
			assert.Greater(t, m.ProficiencyGap, 0.0)
		}
	}
	assert.GreaterOrEqual(t, result.OverallMatch, 0.0)
	assert.LessOrEqual(t, result.OverallMatch, 1.0)
}

func TestAnalyze_ZeroJobSkillsIsVacuousFullMatch(t *testing.T) {
	a := New(nil)
	profile := profileWith()

	result := a.Analyze(profile, nil, "job-1")

	assert.Equal(t, 1.0, result.OverallMatch)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Missing)
}

func TestAnalyze_MissingSkillsReduceOverallMatch(t *testing.T) {
	a := New(nil)
	profile := profileWith(types.UserSkill{
		Name:        "go",
		Category:    types.CategoryLanguage,
		Proficiency: types.ProficiencyExpert,
	})

	matchedOnly := a.Analyze(profile, []types.ExtractedSkill{
		{Name: "go", Category: types.CategoryLanguage, Confidence: 0.8},
	}, "job-1")

	withMissing := a.Analyze(profile, []types.ExtractedSkill{
		{Name: "go", Category: types.CategoryLanguage, Confidence: 0.8},
		{Name: "kubernetes", Category: types.CategoryTool, Confidence: 0.9},
	}, "job-1")

	assert.Less(t, withMissing.OverallMatch, matchedOnly.OverallMatch)
}

func TestRequiredProficiency(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		required bool
		want     float64
	}{
		{"senior language", "senior python engineer", false, 0.9},
		{"advanced language", "proficient in terraform", false, 0.75},
		{"experience language", "experience with docker", false, 0.5},
		{"junior language", "entry level position", false, 0.25},
		{"no signal", "python", false, 0.5},
		{"required floors junior", "junior developer", true, 0.5},
		{"required keeps senior", "lead architect", true, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, requiredProficiency(tt.context, tt.required), 1e-9)
		})
	}
}
