package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/skillgap/internal/cache"
	"github.com/jonathan/skillgap/internal/extraction"
	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/logger"
	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/recommend"
	"github.com/jonathan/skillgap/internal/taxonomy"
	"github.com/jonathan/skillgap/internal/trends"
	"github.com/jonathan/skillgap/internal/types"
)

// Options configures a Pipeline. Zero-value fields fall back to the
// embedded assets and defaults.
type Options struct {
	// Taxonomy, when nil, is loaded lazily from the embedded asset on
	// first use. A load failure surfaces as TaxonomyUninitializedError
	// and is retried on the next call.
	Taxonomy *taxonomy.Taxonomy

	// Catalog, when nil, is loaded eagerly from the embedded assets.
	Catalog *recommend.Catalog

	CacheConfig cache.Config

	Profiles ProfileProvider
	History  HistoryStore

	Logger *zap.Logger
}

// Pipeline wires extraction, gap scoring, recommendation, trend analysis,
// and the result cache behind one entry point. It is safe for concurrent
// use.
type Pipeline struct {
	mu  sync.Mutex
	tax *taxonomy.Taxonomy
	ext *extraction.Extractor

	analyzer *gap.Analyzer
	engine   *recommend.Engine
	trends   *trends.Analyzer
	cache    *cache.Cache

	profiles ProfileProvider
	history  HistoryStore
	log      *zap.Logger
}

// New builds a Pipeline. The taxonomy is deferred until the first
// operation that needs it; the recommendation catalog is loaded up front
// because without it no analysis is worth returning.
func New(opts Options) (*Pipeline, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		var err error
		catalog, err = recommend.LoadCatalog()
		if err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		analyzer: gap.New(log),
		engine:   recommend.NewEngine(catalog, log),
		trends:   trends.NewAnalyzer(log),
		cache:    cache.New(opts.CacheConfig, log),
		profiles: opts.Profiles,
		history:  opts.History,
		log:      log,
	}
	if opts.Taxonomy != nil {
		p.tax = opts.Taxonomy
		p.ext = extraction.New(opts.Taxonomy, log)
	}
	return p, nil
}

// extractor returns the shared extractor, loading the taxonomy on first
// use. Load failures do not poison the pipeline: the next call retries.
func (p *Pipeline) extractor() (*extraction.Extractor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ext != nil {
		return p.ext, nil
	}
	tax, err := taxonomy.Load()
	if err != nil {
		return nil, &TaxonomyUninitializedError{Cause: err}
	}
	p.tax = tax
	p.ext = extraction.New(tax, p.log)
	p.log.Info("taxonomy initialized", zap.String("version", tax.Version()), zap.Int("skills", tax.Len()))
	return p.ext, nil
}

// ExtractSkills runs taxonomy extraction over raw posting text.
func (p *Pipeline) ExtractSkills(text string) ([]types.ExtractedSkill, error) {
	ext, err := p.extractor()
	if err != nil {
		return nil, err
	}
	return ext.Extract(text), nil
}

// AnalyzeGap scores a profile against extracted job skills and attaches
// learning recommendations for whatever is missing.
func (p *Pipeline) AnalyzeGap(profile *types.UserProfile, jobSkills []types.ExtractedSkill, jobID string) *types.GapAnalysisResult {
	result := p.analyzer.Analyze(profile, jobSkills, jobID)
	result.Recommendations = p.engine.Recommend(result.Missing, profile)
	return result
}

// Recommend produces a prioritized learning plan for the given missing
// skills without running a full analysis.
func (p *Pipeline) Recommend(missing []types.ExtractedSkill, profile *types.UserProfile) []types.Recommendation {
	return p.engine.Recommend(missing, profile)
}

// Trends aggregates skill demand across past analyses. It returns nil
// until enough history has accumulated.
func (p *Pipeline) Trends(ctx context.Context, limit int) ([]types.SkillTrend, error) {
	history, err := p.recentHistory(ctx)
	if err != nil {
		return nil, err
	}
	return p.trends.Trends(history, limit), nil
}

// SuggestKeywords proposes keywords worth adding to a profile, ranked by
// how often and how urgently past postings asked for them.
func (p *Pipeline) SuggestKeywords(ctx context.Context, profile *types.UserProfile, limit int) ([]types.KeywordSuggestion, error) {
	history, err := p.recentHistory(ctx)
	if err != nil {
		return nil, err
	}
	return p.trends.SuggestKeywords(history, profile, limit), nil
}

// SuggestCertifications derives candidate certifications from the skills
// demanded across past postings.
func (p *Pipeline) SuggestCertifications(ctx context.Context) ([]string, error) {
	history, err := p.recentHistory(ctx)
	if err != nil {
		return nil, err
	}
	return p.trends.SuggestCertifications(history), nil
}

// SuggestSoftSkills derives complementary soft skills from the skills
// demanded across past postings.
func (p *Pipeline) SuggestSoftSkills(ctx context.Context) ([]string, error) {
	history, err := p.recentHistory(ctx)
	if err != nil {
		return nil, err
	}
	return p.trends.SuggestSoftSkills(history), nil
}

func (p *Pipeline) recentHistory(ctx context.Context) ([]*types.GapAnalysisResult, error) {
	if p.history == nil {
		return nil, nil
	}
	return p.history.Recent(ctx, 0)
}

// AnalyzeCached runs the full analysis for one posting, serving repeat
// requests for unchanged content from the cache. forceRefresh recomputes
// unconditionally but still stores the fresh result.
//
// A posting whose text is empty or below the content threshold fails
// with NoContentError rather than producing a vacuous perfect match.
// The profile is read only when a fresh computation is needed, so a warm
// cache hit is served even while the profile collaborator is down.
func (p *Pipeline) AnalyzeCached(ctx context.Context, url string, content types.JobText, forceRefresh bool) (*types.GapAnalysisResult, error) {
	ext, err := p.extractor()
	if err != nil {
		return nil, err
	}
	alog := logger.WithAnalysisFields(p.log, "analyze", url)

	norm := parsing.Normalize(content.Combined())
	if content.Empty() || !extraction.ContentValid(norm) {
		return nil, &NoContentError{JobID: url, Length: len(norm)}
	}

	result, fromCache, err := p.cache.GetOrCompute(ctx, url, content, forceRefresh, func(ctx context.Context) (*types.GapAnalysisResult, error) {
		if p.profiles == nil {
			return nil, &ProfileUnavailableError{Stage: "profile", JobID: url}
		}
		profile, err := p.profiles.UserProfile(ctx)
		if err != nil {
			return nil, &ProfileUnavailableError{Stage: "profile", JobID: url, Cause: err}
		}
		skills := ext.Extract(content.Combined())
		return p.AnalyzeGap(profile, skills, url), nil
	})
	if err != nil {
		return nil, err
	}
	alog.Debug("analysis served", zap.Bool("from_cache", fromCache))

	if !fromCache && p.history != nil {
		if herr := p.history.Append(ctx, result); herr != nil {
			alog.Warn("history append failed", zap.Error(herr))
		}
	}
	return result, nil
}

// Invalidate drops any cached result for the given posting.
func (p *Pipeline) Invalidate(url string, content types.JobText) {
	p.cache.Invalidate(url, content)
}
