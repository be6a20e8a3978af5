package taxonomy

import (
	"regexp"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
)

// Regex families for classifying skill names that have no taxonomy entry.
// Checked in order; the first family that matches wins.
var classifyFamilies = []struct {
	category types.Category
	patterns []*regexp.Regexp
}{
	{
		category: types.CategoryLanguage,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(java|python|ruby|php|perl|scala|swift|kotlin|dart|lua|haskell|elixir|erlang|clojure|groovy|julia)(script)?$`),
			regexp.MustCompile(`^(c|f|r)(\+\+|#)?$`),
			regexp.MustCompile(`^(golang|typescript|javascript|objective-c|visual basic)$`),
		},
	},
	{
		category: types.CategoryFramework,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(\.js|\.net)$`),
			regexp.MustCompile(`^(react|angular|vue|svelte|ember|django|flask|fastapi|spring|rails|laravel|symfony|express|next|nuxt|flutter)`),
			regexp.MustCompile(`(framework|boot)$`),
		},
	},
	{
		category: types.CategoryTool,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(docker|kubernetes|k8s|git|jenkins|terraform|ansible|puppet|chef|vagrant|webpack|vite|gradle|maven|npm|yarn)`),
			regexp.MustCompile(`(db|sql|base)$`),
			regexp.MustCompile(`^(aws|azure|gcp|jira|confluence|slack|figma|tableau|grafana|prometheus|splunk)`),
		},
	},
	{
		category: types.CategoryCertification,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`certif`),
			regexp.MustCompile(`^(pmp|cissp|ccna|ccnp|cka|ckad|comptia|cisa|cism|itil)`),
			regexp.MustCompile(`(certified|certificate)`),
		},
	},
	{
		category: types.CategoryMethodology,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(agile|scrum|kanban|lean|waterfall|devops|devsecops)$`),
			regexp.MustCompile(`(driven development|methodology)$`),
			regexp.MustCompile(`^(tdd|bdd|ddd|ci/cd|cicd)$`),
		},
	},
}

// ClassifyByPattern infers a category for a skill name that has no taxonomy
// entry. Names that match no family default to technical.
func ClassifyByPattern(name string) types.Category {
	key := parsing.NormalizeKey(name)
	for _, family := range classifyFamilies {
		for _, re := range family.patterns {
			if re.MatchString(key) {
				return family.category
			}
		}
	}
	return types.CategoryTechnical
}
