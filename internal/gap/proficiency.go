package gap

import "strings"

// Keyword bands for inferring how much proficiency a job demands from the
// context a skill was extracted in. Checked in order, strongest first.
var proficiencyBands = []struct {
	score    float64
	keywords []string
}{
	{0.9, []string{"expert", "senior", "lead", "architect", "principal"}},
	{0.75, []string{"advanced", "proficient", "strong", "extensive"}},
	{0.5, []string{"experience", "familiar", "knowledge"}},
	{0.25, []string{"basic", "entry", "junior", "beginner"}},
}

// defaultRequiredScore applies when the context carries no proficiency
// language at all.
const defaultRequiredScore = 0.5

// requiredFloor is the minimum inferred proficiency for skills the posting
// marks as required.
const requiredFloor = 0.5

// requiredProficiency infers the proficiency a job skill demands from its
// context snippet. Required skills never score below the floor.
func requiredProficiency(context string, isRequired bool) float64 {
	context = strings.ToLower(context)

	score := defaultRequiredScore
	for _, band := range proficiencyBands {
		matched := false
		for _, kw := range band.keywords {
			if strings.Contains(context, kw) {
				matched = true
				break
			}
		}
		if matched {
			score = band.score
			break
		}
	}

	if isRequired && score < requiredFloor {
		score = requiredFloor
	}
	return score
}
