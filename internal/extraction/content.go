package extraction

import "strings"

// MinContentLength is the fewest characters a posting may have before
// extraction treats it as having no usable content.
const MinContentLength = 50

// MinJobTerms is the fewest recognizable job-related terms a posting may
// contain before extraction treats it as having no usable content.
const MinJobTerms = 2

// jobTerms is the vocabulary used to judge whether text looks like a job
// posting at all, as opposed to navigation chrome or an error page.
var jobTerms = []string{
	"experience", "skills", "requirements", "responsibilities",
	"qualifications", "job", "position", "role", "team", "work",
	"develop", "engineer", "candidate", "salary", "benefits",
}

// requiredTerms is the fixed vocabulary for inferring that a skill is a
// hard requirement from its surrounding context.
var requiredTerms = []string{
	"required", "must have", "essential", "mandatory",
	"necessary", "need", "should have",
}

// experienceTerms signal proficiency language near a match and raise
// extraction confidence.
var experienceTerms = []string{
	"experience", "proficient", "skilled", "expertise",
}

// ContentValid reports whether normalized text is substantial enough to
// extract from: at least MinContentLength characters and MinJobTerms
// distinct job-related terms.
func ContentValid(normalized string) bool {
	if len(normalized) < MinContentLength {
		return false
	}
	found := 0
	for _, term := range jobTerms {
		if strings.Contains(normalized, term) {
			found++
			if found >= MinJobTerms {
				return true
			}
		}
	}
	return false
}

// RequiredFromContext reports whether the context window around a match
// marks the skill as required.
func RequiredFromContext(context string) bool {
	context = strings.ToLower(context)
	for _, term := range requiredTerms {
		if strings.Contains(context, term) {
			return true
		}
	}
	return false
}

// hasExperienceLanguage reports whether the context carries experience or
// proficiency wording.
func hasExperienceLanguage(context string) bool {
	context = strings.ToLower(context)
	for _, term := range experienceTerms {
		if strings.Contains(context, term) {
			return true
		}
	}
	return false
}
