// Package parsing provides text normalization for skill matching.
package parsing

import (
	"regexp"
	"strings"
)

// Skill names carry symbols that ordinary word tokenization destroys:
// "c++", "c#", "node.js", "ci/cd", "scikit-learn". Normalization keeps
// + # . - / and strips everything else that is not a letter, digit, or
// whitespace.
var (
	reNoise  = regexp.MustCompile(`[^\p{L}\p{N}\s+#.\-/]+`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the text, removes noise characters while preserving
// symbols meaningful to skill names, and collapses runs of whitespace.
// Pure and deterministic: identical input always yields identical output.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNoise.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeKey produces the lookup-key form of a skill name: normalized
// text with surrounding separator dots trimmed, so "Node.js." and
// "node.js" resolve to the same taxonomy key.
func NormalizeKey(s string) string {
	s = Normalize(s)
	return strings.Trim(s, ".")
}

// Tokens splits normalized text on whitespace. Empty input yields nil.
func Tokens(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

// ContextWindow returns up to radius characters on either side of the match
// at [start, end) in text, trimmed. Used to capture the evidence snippet
// stored on an extracted skill.
func ContextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}
