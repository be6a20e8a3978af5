package recommend

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
)

// Priority-score components and thresholds. The score is 0-100: category
// weight dominates, requirement-ness and extraction confidence follow, and
// core categories (technical, framework) get a flat bump.
const (
	categoryComponent   = 40.0
	requiredComponent   = 30.0
	confidenceComponent = 20.0
	coreCategoryBonus   = 10.0

	criticalThreshold = 80.0
	highThreshold     = 60.0
	mediumThreshold   = 40.0
)

// Experience multipliers: seasoned engineers pick new skills up faster.
const (
	experiencedYears      = 5
	experiencedMultiplier = 0.8
	noviceMultiplier      = 1.2
)

// relatedSkillDiscount is the per-skill reduction for already knowing
// skills in the same category, floored at relatedSkillFloor.
const (
	relatedSkillDiscount = 0.1
	relatedSkillFloor    = 0.5
)

// commitmentFactor bounds resource length against the user's weekly time
// commitment: resources longer than commitmentFactor x weekly hours are
// filtered out.
const commitmentFactor = 4

// baseHours is the category-level learning effort before multipliers.
var baseHours = map[types.Category]int{
	types.CategoryTechnical:     80,
	types.CategoryFramework:     60,
	types.CategoryTool:          30,
	types.CategoryMethodology:   20,
	types.CategorySoftSkill:     50,
	types.CategoryCertification: 100,
	types.CategoryLanguage:      200,
}

// Engine produces learning recommendations for missing skills.
// Stateless apart from the immutable catalog; safe for concurrent use.
type Engine struct {
	catalog *Catalog
	log     *zap.Logger
}

// NewEngine returns an Engine backed by the given catalog.
// A nil logger disables logging.
func NewEngine(catalog *Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: catalog, log: log}
}

// Recommend builds one recommendation per missing skill, ordered by
// priority descending, then category weight descending, then estimated
// hours ascending.
func (e *Engine) Recommend(missing []types.ExtractedSkill, profile *types.UserProfile) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(missing))
	for _, skill := range missing {
		recs = append(recs, types.Recommendation{
			Skill:          skill,
			Priority:       priorityFor(skill),
			EstimatedHours: e.estimateHours(skill, profile),
			Resources:      e.resourcesFor(skill, profile),
			Prerequisites:  e.missingPrerequisites(skill, profile),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority.Rank() != recs[j].Priority.Rank() {
			return recs[i].Priority.Rank() > recs[j].Priority.Rank()
		}
		wi, wj := recs[i].Skill.Category.Weight(), recs[j].Skill.Category.Weight()
		if wi != wj {
			return wi > wj
		}
		return recs[i].EstimatedHours < recs[j].EstimatedHours
	})

	e.log.Debug("recommendations built", zap.Int("count", len(recs)))
	return recs
}

// priorityFor maps the weighted priority score onto the priority enum.
func priorityFor(skill types.ExtractedSkill) types.Priority {
	score := categoryComponent * skill.Category.Weight()
	if skill.IsRequired {
		score += requiredComponent
	}
	score += confidenceComponent * skill.Confidence
	if skill.Category == types.CategoryTechnical || skill.Category == types.CategoryFramework {
		score += coreCategoryBonus
	}

	switch {
	case score >= criticalThreshold:
		return types.PriorityCritical
	case score >= highThreshold:
		return types.PriorityHigh
	case score >= mediumThreshold:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// estimateHours scales the category base effort by the user's overall
// experience and by how many related skills they already hold.
func (e *Engine) estimateHours(skill types.ExtractedSkill, profile *types.UserProfile) int {
	base, ok := baseHours[skill.Category]
	if !ok {
		base = baseHours[types.CategoryTechnical]
	}

	expMult := noviceMultiplier
	if profile.TotalYears() > experiencedYears {
		expMult = experiencedMultiplier
	}

	related := profile.SkillsInCategory(skill.Category)
	relMult := 1.0 - relatedSkillDiscount*float64(related)
	if relMult < relatedSkillFloor {
		relMult = relatedSkillFloor
	}

	hours := int(math.Round(float64(base) * expMult * relMult))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// resourcesFor looks up the skill's resources, drops those too long for
// the user's weekly commitment, and orders what is left: free before paid,
// then best-rated, then easiest.
func (e *Engine) resourcesFor(skill types.ExtractedSkill, profile *types.UserProfile) []types.LearningResource {
	found := e.catalog.ResourcesFor(skill)
	if len(found) == 0 {
		return nil
	}

	limit := profile.WeeklyLearningHours * commitmentFactor
	resources := make([]types.LearningResource, 0, len(found))
	for _, r := range found {
		if limit > 0 && r.DurationHours > limit {
			continue
		}
		resources = append(resources, r)
	}

	sort.SliceStable(resources, func(i, j int) bool {
		freeI, freeJ := resources[i].CostUSD == 0, resources[j].CostUSD == 0
		if freeI != freeJ {
			return freeI
		}
		if resources[i].Rating != resources[j].Rating {
			return resources[i].Rating > resources[j].Rating
		}
		return resources[i].Difficulty.Rank() < resources[j].Difficulty.Rank()
	})
	return resources
}

// missingPrerequisites filters the skill's prerequisite list down to those
// the user does not already hold, by name or synonym.
func (e *Engine) missingPrerequisites(skill types.ExtractedSkill, profile *types.UserProfile) []string {
	prereqs := e.catalog.PrerequisitesFor(skill.Name)
	if len(prereqs) == 0 {
		return nil
	}

	held := make(map[string]struct{}, len(profile.Skills)*2)
	for _, us := range profile.Skills {
		held[parsing.NormalizeKey(us.Name)] = struct{}{}
		for _, syn := range us.Synonyms {
			held[parsing.NormalizeKey(syn)] = struct{}{}
		}
	}

	var missing []string
	for _, p := range prereqs {
		if _, ok := held[parsing.NormalizeKey(p)]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}
