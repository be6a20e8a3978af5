// Package taxonomy provides the static skill reference data the extractor
// matches against: canonical names, categories, synonyms, and match
// patterns. A loaded Taxonomy is immutable.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/jonathan/skillgap/schemas"
)

//go:embed taxonomy.json
var embeddedTaxonomy []byte

// Definition is one canonical skill entry.
type Definition struct {
	Name     string         `json:"name"`
	Category types.Category `json:"category"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
}

// Terms returns every string that should be scanned for when looking for
// this skill: the canonical name, synonyms, then patterns.
func (d Definition) Terms() []string {
	terms := make([]string, 0, 1+len(d.Synonyms)+len(d.Patterns))
	terms = append(terms, d.Name)
	terms = append(terms, d.Synonyms...)
	terms = append(terms, d.Patterns...)
	return terms
}

// Taxonomy is the loaded reference set. Lookup keys are normalized skill
// names, so "Node.JS" and "nodejs" resolve to the same definition.
type Taxonomy struct {
	version string
	defs    []Definition
	byKey   map[string]int // normalized term -> index into defs
}

type taxonomyFile struct {
	Version string       `json:"version"`
	Skills  []Definition `json:"skills"`
}

// LoadError reports a taxonomy asset that failed schema validation or
// contained inconsistent entries.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load failed (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load failed (%s): %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load builds the taxonomy from the embedded asset.
func Load() (*Taxonomy, error) {
	return LoadBytes(embeddedTaxonomy, "embedded")
}

// LoadFile builds the taxonomy from an external JSON asset, for deployments
// that update the reference data independently of the binary.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "read failed", Cause: err}
	}
	return LoadBytes(data, path)
}

// LoadBytes validates raw JSON against the taxonomy schema and builds the
// lookup structures. Definitions are kept in sorted canonical-name order so
// that every consumer iterates them deterministically.
func LoadBytes(data []byte, source string) (*Taxonomy, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.Taxonomy),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "schema validation errored", Cause: err}
	}
	if !result.Valid() {
		desc := ""
		for _, e := range result.Errors() {
			desc += fmt.Sprintf("%s: %s; ", e.Field(), e.Description())
		}
		return nil, &LoadError{Source: source, Message: "schema violation: " + desc}
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Source: source, Message: "parse failed", Cause: err}
	}

	defs := make([]Definition, len(file.Skills))
	copy(defs, file.Skills)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	byKey := make(map[string]int, len(defs)*3)
	for i, def := range defs {
		if !def.Category.Valid() {
			return nil, &LoadError{Source: source, Message: fmt.Sprintf("skill %q has invalid category %q", def.Name, def.Category)}
		}
		for _, term := range def.Terms() {
			key := parsing.NormalizeKey(term)
			if key == "" {
				continue
			}
			// First definition claims a contested term.
			if _, taken := byKey[key]; !taken {
				byKey[key] = i
			}
		}
	}

	return &Taxonomy{version: file.Version, defs: defs, byKey: byKey}, nil
}

// Version returns the asset version string.
func (t *Taxonomy) Version() string { return t.version }

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int { return len(t.defs) }

// Definitions returns all entries in sorted canonical-name order.
// Callers must not mutate the returned slice.
func (t *Taxonomy) Definitions() []Definition { return t.defs }

// Lookup resolves a raw term (canonical name, synonym, or pattern, any
// casing) to its definition.
func (t *Taxonomy) Lookup(term string) (Definition, bool) {
	i, ok := t.byKey[parsing.NormalizeKey(term)]
	if !ok {
		return Definition{}, false
	}
	return t.defs[i], true
}

// Canonical returns the canonical name for a raw term, or the empty string
// when the term is unknown.
func (t *Taxonomy) Canonical(term string) string {
	def, ok := t.Lookup(term)
	if !ok {
		return ""
	}
	return def.Name
}

// IsExactKey reports whether the raw term normalizes directly to a known
// lookup key. The extractor scores such matches higher.
func (t *Taxonomy) IsExactKey(term string) bool {
	_, ok := t.byKey[parsing.NormalizeKey(term)]
	return ok
}
