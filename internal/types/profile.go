package types

// Proficiency is the user's declared skill level, ordered
// beginner < intermediate < advanced < expert.
type Proficiency string

// Declared proficiency levels.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Valid reports whether p is a known proficiency level.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// Score maps a proficiency level onto the 0-1 scale used by gap scoring.
// Unknown levels score as intermediate.
func (p Proficiency) Score() float64 {
	switch p {
	case ProficiencyBeginner:
		return 0.25
	case ProficiencyIntermediate:
		return 0.5
	case ProficiencyAdvanced:
		return 0.75
	case ProficiencyExpert:
		return 1.0
	default:
		return 0.5
	}
}

// UserSkill is one entry in the user's declared skill inventory.
// The profile collaborator owns these; the engine treats them as read-only.
type UserSkill struct {
	Name            string      `json:"name" validate:"required"`
	Category        Category    `json:"category" validate:"required"`
	Proficiency     Proficiency `json:"proficiency" validate:"required"`
	YearsExperience int         `json:"years_experience,omitempty" validate:"gte=0,lte=60"`
	Synonyms        []string    `json:"synonyms,omitempty"`
}

// UserProfile is the user's full skill inventory plus learning preferences.
type UserProfile struct {
	UserID string      `json:"user_id,omitempty"`
	Skills []UserSkill `json:"skills" validate:"dive"`

	// WeeklyLearningHours is the user's self-reported weekly time commitment
	// for learning. Zero means no preference; resource filtering is skipped.
	WeeklyLearningHours int `json:"weekly_learning_hours,omitempty" validate:"gte=0,lte=168"`

	// YearsExperience is the user's total professional experience. When zero
	// it is derived from the skill inventory instead.
	YearsExperience int `json:"years_experience,omitempty" validate:"gte=0,lte=60"`
}

// TotalYears returns the profile-level experience, falling back to the
// largest per-skill figure when the profile does not declare one.
func (p *UserProfile) TotalYears() int {
	if p.YearsExperience > 0 {
		return p.YearsExperience
	}
	max := 0
	for _, s := range p.Skills {
		if s.YearsExperience > max {
			max = s.YearsExperience
		}
	}
	return max
}

// SkillsInCategory counts declared skills in the given category.
func (p *UserProfile) SkillsInCategory(c Category) int {
	n := 0
	for _, s := range p.Skills {
		if s.Category == c {
			n++
		}
	}
	return n
}
