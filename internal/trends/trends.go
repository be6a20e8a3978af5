// Package trends analyzes accumulated gap-analysis history: which skills
// keep showing up, whether their importance is rising, and which keywords
// the user should surface in their own materials.
package trends

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/taxonomy"
	"github.com/jonathan/skillgap/internal/types"
)

// MinHistoryForDirection is the fewest saved analyses needed before a
// trend direction is reported at all.
const MinHistoryForDirection = 3

// directionBand is how far apart the half-averages must be before the
// trend counts as moving rather than stable.
const directionBand = 0.1

// Analyzer computes trends over saved analyses. Stateless.
type Analyzer struct {
	log *zap.Logger
}

// NewAnalyzer returns an Analyzer. A nil logger disables logging.
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// sighting is one observation of a skill in one saved analysis.
type sighting struct {
	at         time.Time
	confidence float64
	required   bool
}

// observations collects every skill seen across the history, with its
// sightings in time order. Matched and missing skills both count: the
// trend is about the job market, not about the user's coverage.
func observations(history []*types.GapAnalysisResult) map[string][]sighting {
	seen := make(map[string][]sighting)
	add := func(at time.Time, s types.ExtractedSkill) {
		key := parsing.NormalizeKey(s.Name)
		if key == "" {
			return
		}
		seen[key] = append(seen[key], sighting{at: at, confidence: s.Confidence, required: s.IsRequired})
	}

	for _, result := range history {
		if result == nil {
			continue
		}
		for _, m := range result.Matches {
			add(result.AnalyzedAt, m.JobSkill)
		}
		for _, s := range result.Missing {
			add(result.AnalyzedAt, s)
		}
	}

	for _, sightings := range seen {
		sort.SliceStable(sightings, func(i, j int) bool { return sightings[i].at.Before(sightings[j].at) })
	}
	return seen
}

// categoryOf finds the category a skill was last seen with. Saved results
// may predate the current taxonomy and carry no category; those names are
// classified by pattern instead.
func categoryOf(history []*types.GapAnalysisResult, key string) types.Category {
	var category types.Category
	for _, result := range history {
		if result == nil {
			continue
		}
		for _, m := range result.Matches {
			if parsing.NormalizeKey(m.JobSkill.Name) == key && m.JobSkill.Category != "" {
				category = m.JobSkill.Category
			}
		}
		for _, s := range result.Missing {
			if parsing.NormalizeKey(s.Name) == key && s.Category != "" {
				category = s.Category
			}
		}
	}
	if category == "" {
		return taxonomy.ClassifyByPattern(key)
	}
	return category
}

// Trends reports per-skill frequency and direction across the history,
// increasing-direction entries first, then by frequency descending.
// Histories shorter than MinHistoryForDirection yield no trends: two data
// points cannot support a direction judgment.
func (a *Analyzer) Trends(history []*types.GapAnalysisResult, limit int) []types.SkillTrend {
	if len(history) < MinHistoryForDirection {
		a.log.Debug("history too short for trend analysis", zap.Int("entries", len(history)))
		return nil
	}

	seen := observations(history)
	out := make([]types.SkillTrend, 0, len(seen))
	for key, sightings := range seen {
		var confSum, reqCount float64
		for _, s := range sightings {
			confSum += s.confidence
			if s.required {
				reqCount++
			}
		}
		n := float64(len(sightings))

		out = append(out, types.SkillTrend{
			Name:          key,
			Category:      categoryOf(history, key),
			Frequency:     len(sightings),
			Direction:     direction(sightings),
			AvgConfidence: confSum / n,
			RequiredShare: reqCount / n,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		incI, incJ := out[i].Direction == types.TrendIncreasing, out[j].Direction == types.TrendIncreasing
		if incI != incJ {
			return incI
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Name < out[j].Name
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// direction splits the time-ordered sightings into halves and compares
// average confidence. A single sighting is always stable.
func direction(sightings []sighting) types.TrendDirection {
	if len(sightings) < 2 {
		return types.TrendStable
	}

	mid := len(sightings) / 2
	first, second := sightings[:mid], sightings[mid:]

	avg := func(part []sighting) float64 {
		var sum float64
		for _, s := range part {
			sum += s.confidence
		}
		return sum / float64(len(part))
	}

	delta := avg(second) - avg(first)
	switch {
	case delta > directionBand:
		return types.TrendIncreasing
	case delta < -directionBand:
		return types.TrendDecreasing
	default:
		return types.TrendStable
	}
}
