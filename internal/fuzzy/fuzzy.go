// Package fuzzy provides normalized edit-distance similarity for skill
// names. It is a fallback only: gap analysis consults it after exact-name
// and synonym lookups have both failed.
package fuzzy

import (
	"github.com/agnivade/levenshtein"

	"github.com/jonathan/skillgap/internal/parsing"
)

// SameSkillThreshold is the similarity above which two names are treated as
// the same skill.
const SameSkillThreshold = 0.8

// Similarity returns 1 - editDistance(a, b) / max(len(a), len(b)) over the
// normalized forms. Symmetric; equal strings score 1.0; an empty pair
// scores 0.
func Similarity(a, b string) float64 {
	a = parsing.NormalizeKey(a)
	b = parsing.NormalizeKey(b)

	if a == "" && b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(max)
}

// SameSkill reports whether the two names are similar enough to denote the
// same skill.
func SameSkill(a, b string) bool {
	return Similarity(a, b) > SameSkillThreshold
}
