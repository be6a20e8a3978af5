// Package extraction turns normalized job-posting text into a deduplicated
// set of extracted skills with confidence, inferred requirement-ness, and a
// context snippet. Extraction is deterministic for a given taxonomy
// version: the same text always yields the same set.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/taxonomy"
	"github.com/jonathan/skillgap/internal/types"
)

// contextRadius is the number of characters captured on either side of a
// match as its evidence snippet.
const contextRadius = 50

// Confidence levels per pass. The first pass computes its own score; the
// token and phrase passes assign fixed confidences.
const (
	baseConfidence   = 0.6
	exactKeyBonus    = 0.2
	requiredBonus    = 0.1
	experienceBonus  = 0.1
	tokenConfidence  = 0.7
	phraseConfidence = 0.8
)

// passKind tags which extraction pass produced a hit.
type passKind int

const (
	passDirect passKind = iota // direct/synonym/pattern scan
	passToken                  // token scan with taxonomy lookup
	passPhrase                 // contextual-phrase tail scan
)

// passHit is the closed per-pass result variant. Each pass produces only
// the fields it can actually know; merging is first-writer-wins by
// canonical name with no re-scoring across passes.
type passHit struct {
	kind       passKind
	def        taxonomy.Definition
	context    string
	confidence float64
	required   bool
}

// contextualPhrases express skill possession or requirement; tokens in the
// clause following one are looked up against the taxonomy.
var contextualPhrases = regexp.MustCompile(
	`(experience with|proficient in|knowledge of|familiar with|expertise in|skilled in)\s+([^.]+)`)

// stopwords are tokens the token pass skips; everything left is treated as
// a noun/adjective-like candidate. A lookup table stands in for real
// part-of-speech tagging, which the taxonomy-bounded lookup does not need.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"that": {}, "the": {}, "their": {}, "this": {}, "to": {}, "we": {},
	"will": {}, "with": {}, "you": {}, "your": {}, "years": {}, "plus": {},
	"strong": {}, "who": {}, "what": {}, "where": {}, "when": {}, "how": {},
}

type termMatcher struct {
	defIndex int
	term     string
	re       *regexp.Regexp
}

// Extractor scans text for taxonomy skills. Construct once per taxonomy;
// safe for concurrent use after construction.
type Extractor struct {
	tax      *taxonomy.Taxonomy
	matchers []termMatcher
	log      *zap.Logger
}

// New compiles boundary-aware matchers for every taxonomy term.
// A nil logger disables logging.
func New(tax *taxonomy.Taxonomy, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	defs := tax.Definitions()
	matchers := make([]termMatcher, 0, len(defs)*2)
	for i, def := range defs {
		for _, term := range def.Terms() {
			key := parsing.NormalizeKey(term)
			if key == "" {
				continue
			}
			matchers = append(matchers, termMatcher{
				defIndex: i,
				term:     key,
				re:       boundaryPattern(key),
			})
		}
	}

	return &Extractor{tax: tax, matchers: matchers, log: log}
}

// boundaryPattern builds the match regex for a term. Purely alphanumeric
// terms take ordinary word boundaries. Terms carrying symbol characters
// ("c++", "node.js", "ci/cd") need a more permissive boundary, because \b
// mis-splits next to symbols and would never close a match after "+".
func boundaryPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	if strings.ContainsAny(term, "+#./-") {
		return regexp.MustCompile(`(?:^|[\s/])(` + quoted + `)(?:[\s./]|$)`)
	}
	return regexp.MustCompile(`\b(` + quoted + `)\b`)
}

// Extract runs the three passes over the text and merges the hits by
// canonical name, first writer wins. Judging whether the text is
// substantial enough to extract from at all is the pipeline's job; see
// ContentValid.
func (e *Extractor) Extract(text string) []types.ExtractedSkill {
	norm := parsing.Normalize(text)
	if norm == "" {
		return nil
	}

	found := make(map[string]passHit)
	e.scanDirect(norm, found)
	e.scanTokens(norm, found)
	e.scanPhrases(norm, found)

	out := make([]types.ExtractedSkill, 0, len(found))
	for _, hit := range found {
		out = append(out, types.ExtractedSkill{
			Name:       hit.def.Name,
			Category:   hit.def.Category,
			Confidence: hit.confidence,
			Context:    hit.context,
			IsRequired: hit.required,
			Synonyms:   hit.def.Synonyms,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	e.log.Debug("extraction complete",
		zap.Int("skills", len(out)),
		zap.String("taxonomy_version", e.tax.Version()))
	return out
}

// scanDirect is the first pass: canonical names, synonyms, and declared
// patterns with boundary-aware matching and computed confidence.
func (e *Extractor) scanDirect(norm string, found map[string]passHit) {
	defs := e.tax.Definitions()
	for _, m := range e.matchers {
		def := defs[m.defIndex]
		if _, ok := found[def.Name]; ok {
			continue
		}

		loc := m.re.FindStringSubmatchIndex(norm)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		matched := norm[start:end]
		context := parsing.ContextWindow(norm, start, end, contextRadius)

		confidence := baseConfidence
		if e.tax.IsExactKey(matched) {
			confidence += exactKeyBonus
		}
		required := RequiredFromContext(context)
		if required {
			confidence += requiredBonus
		}
		if hasExperienceLanguage(context) {
			confidence += experienceBonus
		}
		if confidence > 1 {
			confidence = 1
		}

		found[def.Name] = passHit{
			kind:       passDirect,
			def:        def,
			context:    context,
			confidence: confidence,
			required:   required,
		}
	}
}

// scanTokens is the second pass: candidate tokens looked up directly
// against the taxonomy, added at fixed confidence, never required.
func (e *Extractor) scanTokens(norm string, found map[string]passHit) {
	for _, token := range parsing.Tokens(norm) {
		if !candidateToken(token) {
			continue
		}
		def, ok := e.tax.Lookup(token)
		if !ok {
			continue
		}
		if _, seen := found[def.Name]; seen {
			continue
		}

		found[def.Name] = passHit{
			kind:       passToken,
			def:        def,
			context:    tokenContext(norm, token),
			confidence: tokenConfidence,
		}
	}
}

// scanPhrases is the third pass: for each possession/requirement phrase,
// tokens in the trailing clause are looked up, added at fixed confidence
// with requirement-ness taken from the captured phrase text.
func (e *Extractor) scanPhrases(norm string, found map[string]passHit) {
	for _, m := range contextualPhrases.FindAllStringSubmatch(norm, -1) {
		phrase := m[0]
		tail := m[2]
		required := RequiredFromContext(phrase)

		for _, token := range strings.Fields(tail) {
			def, ok := e.tax.Lookup(token)
			if !ok {
				continue
			}
			if _, seen := found[def.Name]; seen {
				continue
			}

			found[def.Name] = passHit{
				kind:       passPhrase,
				def:        def,
				context:    phrase,
				confidence: phraseConfidence,
				required:   required,
			}
		}
	}
}

// candidateToken filters the token pass down to noun/adjective-like tokens.
func candidateToken(token string) bool {
	if len(token) < 2 {
		return false
	}
	if _, stop := stopwords[token]; stop {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false // purely numeric
}

// tokenContext captures the window around the first occurrence of a token.
func tokenContext(norm, token string) string {
	idx := strings.Index(norm, token)
	if idx < 0 {
		return token
	}
	return parsing.ContextWindow(norm, idx, idx+len(token), contextRadius)
}
