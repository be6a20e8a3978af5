package types

import "strings"

// JobText is the textual content of one job posting, as supplied by the
// content-acquisition collaborator. Only these four fields participate in
// extraction and cache keying, so unrelated page churn does not invalidate
// cached results.
type JobText struct {
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Description  string `json:"description"`
	Requirements string `json:"requirements,omitempty"`
}

// Combined returns the posting text in a single block, title first, for
// extraction.
func (j JobText) Combined() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{j.Title, j.Company, j.Description, j.Requirements} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// Empty reports whether the posting carries no usable text at all.
func (j JobText) Empty() bool {
	return strings.TrimSpace(j.Title) == "" &&
		strings.TrimSpace(j.Description) == "" &&
		strings.TrimSpace(j.Requirements) == ""
}
