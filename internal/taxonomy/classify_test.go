package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skillgap/internal/types"
)

func TestClassifyByPattern(t *testing.T) {
	tests := []struct {
		name string
		want types.Category
	}{
		{"elixir", types.CategoryLanguage},
		{"C++", types.CategoryLanguage},
		{"backbone.js", types.CategoryFramework},
		{"quarkus framework", types.CategoryFramework},
		{"gradle", types.CategoryTool},
		{"couchdb", types.CategoryTool},
		{"certified data engineer", types.CategoryCertification},
		{"ccna", types.CategoryCertification},
		{"waterfall", types.CategoryMethodology},
		{"bdd", types.CategoryMethodology},
		{"quantum annealing", types.CategoryTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyByPattern(tt.name))
		})
	}
}

func TestClassifyByPattern_DefaultsToTechnical(t *testing.T) {
	assert.Equal(t, types.CategoryTechnical, ClassifyByPattern(""))
	assert.Equal(t, types.CategoryTechnical, ClassifyByPattern("observability"))
}
