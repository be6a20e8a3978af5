// Package recommend turns missing skills into prioritized, time-estimated,
// resource-backed learning recommendations.
package recommend

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/jonathan/skillgap/schemas"
)

//go:embed resources.json
var embeddedResources []byte

//go:embed prerequisites.json
var embeddedPrereqs []byte

// Catalog is the static learning-resource and prerequisite reference data.
// Immutable after load.
type Catalog struct {
	resources map[string][]types.LearningResource // keyed by normalized skill name
	prereqs   map[string][]string
}

type resourcesFile struct {
	Version   string                              `json:"version"`
	Resources map[string][]types.LearningResource `json:"resources"`
}

type prereqsFile struct {
	Version       string              `json:"version"`
	Prerequisites map[string][]string `json:"prerequisites"`
}

// CatalogError reports a resource or prerequisite asset that failed to
// load or validate.
type CatalogError struct {
	Asset   string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load failed (%s): %s: %v", e.Asset, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load failed (%s): %s", e.Asset, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// LoadCatalog builds the catalog from the embedded assets.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogBytes(embeddedResources, embeddedPrereqs)
}

// LoadCatalogFiles builds the catalog from external JSON assets.
func LoadCatalogFiles(resourcesPath, prereqsPath string) (*Catalog, error) {
	res, err := os.ReadFile(resourcesPath)
	if err != nil {
		return nil, &CatalogError{Asset: resourcesPath, Message: "read failed", Cause: err}
	}
	pre, err := os.ReadFile(prereqsPath)
	if err != nil {
		return nil, &CatalogError{Asset: prereqsPath, Message: "read failed", Cause: err}
	}
	return LoadCatalogBytes(res, pre)
}

// LoadCatalogBytes validates both assets against their schemas and builds
// normalized-key lookup maps.
func LoadCatalogBytes(resources, prereqs []byte) (*Catalog, error) {
	if err := validateAsset(schemas.Resources, resources, "resources"); err != nil {
		return nil, err
	}
	if err := validateAsset(schemas.Prerequisites, prereqs, "prerequisites"); err != nil {
		return nil, err
	}

	var rf resourcesFile
	if err := json.Unmarshal(resources, &rf); err != nil {
		return nil, &CatalogError{Asset: "resources", Message: "parse failed", Cause: err}
	}
	var pf prereqsFile
	if err := json.Unmarshal(prereqs, &pf); err != nil {
		return nil, &CatalogError{Asset: "prerequisites", Message: "parse failed", Cause: err}
	}

	c := &Catalog{
		resources: make(map[string][]types.LearningResource, len(rf.Resources)),
		prereqs:   make(map[string][]string, len(pf.Prerequisites)),
	}
	for name, list := range rf.Resources {
		c.resources[parsing.NormalizeKey(name)] = list
	}
	for name, list := range pf.Prerequisites {
		c.prereqs[parsing.NormalizeKey(name)] = list
	}
	return c, nil
}

func validateAsset(schema string, data []byte, asset string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &CatalogError{Asset: asset, Message: "schema validation errored", Cause: err}
	}
	if !result.Valid() {
		desc := ""
		for _, e := range result.Errors() {
			desc += fmt.Sprintf("%s: %s; ", e.Field(), e.Description())
		}
		return &CatalogError{Asset: asset, Message: "schema violation: " + desc}
	}
	return nil
}

// ResourcesFor looks up learning resources by the skill's canonical name
// first, then by each synonym. Returns nil when nothing is known.
func (c *Catalog) ResourcesFor(skill types.ExtractedSkill) []types.LearningResource {
	if list, ok := c.resources[parsing.NormalizeKey(skill.Name)]; ok {
		return list
	}
	for _, syn := range skill.Synonyms {
		if list, ok := c.resources[parsing.NormalizeKey(syn)]; ok {
			return list
		}
	}
	return nil
}

// PrerequisitesFor returns the raw prerequisite names for a skill.
func (c *Catalog) PrerequisitesFor(name string) []string {
	return c.prereqs[parsing.NormalizeKey(name)]
}
