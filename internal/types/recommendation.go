package types

// Priority ranks how urgently a missing skill should be learned,
// ordered low < medium < high < critical.
type Priority string

// Recommendation priorities.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank returns the numeric ordering of the priority, higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// ResourceType describes the kind of learning resource.
type ResourceType string

// Learning resource types.
const (
	ResourceCourse        ResourceType = "course"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceDocumentation ResourceType = "documentation"
	ResourceBook          ResourceType = "book"
	ResourceVideo         ResourceType = "video"
	ResourcePractice      ResourceType = "practice"
	ResourceCertification ResourceType = "certification"
)

// Difficulty grades a learning resource.
type Difficulty string

// Resource difficulty levels.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank returns the numeric ordering of the difficulty, easier first.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 1
	}
}

// LearningResource is a single course, book, or other material that teaches
// a skill.
type LearningResource struct {
	Title         string       `json:"title"`
	Type          ResourceType `json:"type"`
	URL           string       `json:"url"`
	Provider      string       `json:"provider,omitempty"`
	Rating        float64      `json:"rating,omitempty"`         // 0-5
	DurationHours int          `json:"duration_hours,omitempty"` // total effort
	CostUSD       float64      `json:"cost_usd,omitempty"`       // zero means free
	Difficulty    Difficulty   `json:"difficulty,omitempty"`
}

// Recommendation tells the user what to learn to close one gap, how urgent
// it is, and roughly how long it will take.
type Recommendation struct {
	Skill          ExtractedSkill     `json:"skill"`
	Priority       Priority           `json:"priority"`
	EstimatedHours int                `json:"estimated_hours"` // always positive
	Resources      []LearningResource `json:"resources,omitempty"`

	// Prerequisites lists skill names the user should learn first and does
	// not already have.
	Prerequisites []string `json:"prerequisites,omitempty"`
}
