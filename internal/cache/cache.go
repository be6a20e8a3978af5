// Package cache provides content-addressed memoization for full analysis
// runs, so an unchanged posting is never re-analyzed within the TTL.
package cache

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/skillgap/internal/types"
)

// Defaults. Thirty minutes reflects how long a posting plausibly stays
// unchanged during one browsing session; capacity bounds memory per page
// context.
const (
	DefaultTTL        = 30 * time.Minute
	DefaultMaxEntries = 100
)

// evictShare is the fraction of oldest entries removed when the cache is
// full and nothing has expired.
const evictShare = 0.2

// ComputeFunc runs the underlying analysis pipeline on a cache miss.
type ComputeFunc func(ctx context.Context) (*types.GapAnalysisResult, error)

// Entry is one cached analysis. Owned exclusively by the Cache.
type Entry struct {
	URL         string
	ContentHash uint64
	Result      *types.GapAnalysisResult
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Config holds cache construction options. The zero value uses defaults.
type Config struct {
	TTL        time.Duration
	MaxEntries int

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Cache memoizes analysis results keyed by (url, content hash). Each page
// context owns its own instance; no state is shared across contexts.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry

	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	group singleflight.Group
	log   *zap.Logger
}

// New creates a Cache. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		entries:    make(map[string]*Entry),
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
		now:        cfg.Now,
		log:        log,
	}
}

// ContentHash digests the posting's four textual fields with xxhash64.
// Only material edits to the posting change the hash; unrelated page churn
// never reaches these fields. The 64-bit collision probability is accepted
// as negligible for a per-context cache of this size.
func ContentHash(content types.JobText) uint64 {
	d := xxhash.New()
	for _, field := range []string{content.Title, content.Company, content.Description, content.Requirements} {
		_, _ = d.WriteString(field)
		_, _ = d.WriteString("\x1f")
	}
	return d.Sum64()
}

func key(url string, hash uint64) string {
	return fmt.Sprintf("%s#%016x", url, hash)
}

// GetOrCompute returns the cached result for (url, content) when present
// and fresh, otherwise runs computeFn, stores its result, and returns it.
// Concurrent calls for the same key share a single computation. With
// forceRefresh the lookup is bypassed but the fresh result is still
// stored; a waiter that joined an earlier in-flight computation may still
// receive the pre-refresh result.
// The second return value reports whether the result came from cache.
func (c *Cache) GetOrCompute(ctx context.Context, url string, content types.JobText, forceRefresh bool, computeFn ComputeFunc) (*types.GapAnalysisResult, bool, error) {
	hash := ContentHash(content)
	k := key(url, hash)

	if !forceRefresh {
		if result, ok := c.lookup(k); ok {
			c.log.Debug("analysis cache hit", zap.String("url", url))
			return result, true, nil
		}
	}

	flightKey := k
	if forceRefresh {
		// Refreshes coalesce among themselves but never join a regular
		// in-flight computation, so a refresh always recomputes.
		flightKey = k + "!refresh"
	}

	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		result, err := computeFn(ctx)
		if err != nil {
			return nil, err
		}
		c.store(url, hash, k, result)
		return result, nil
	})
	if err != nil {
		return nil, false, err
	}

	c.log.Debug("analysis cache miss, computed",
		zap.String("url", url),
		zap.Bool("force_refresh", forceRefresh))
	return v.(*types.GapAnalysisResult), false, nil
}

// Invalidate drops the entry for (url, content), forcing the next call to
// recompute.
func (c *Cache) Invalidate(url string, content types.JobText) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(url, ContentHash(content)))
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup returns a fresh, well-formed entry's result. A malformed entry
// (no result) counts as a miss and is dropped.
func (c *Cache) lookup(k string) (*types.GapAnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if entry.Result == nil || c.now().After(entry.ExpiresAt) {
		delete(c.entries, k)
		return nil, false
	}
	return entry.Result, true
}

func (c *Cache) store(url string, hash uint64, k string, result *types.GapAnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[k]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	now := c.now()
	c.entries[k] = &Entry{
		URL:         url,
		ContentHash: hash,
		Result:      result,
		CreatedAt:   now,
		ExpiresAt:   now.Add(c.ttl),
	}
}

// evictLocked frees space: expired entries first; if nothing has expired,
// the oldest fifth by creation time goes.
func (c *Cache) evictLocked() {
	now := c.now()

	removed := 0
	for k, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	if removed > 0 {
		c.log.Debug("evicted expired cache entries", zap.Int("count", removed))
		return
	}

	type aged struct {
		key       string
		createdAt time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for k, entry := range c.entries {
		all = append(all, aged{key: k, createdAt: entry.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].createdAt.Before(all[j].createdAt) })

	n := int(float64(len(all)) * evictShare)
	if n < 1 {
		n = 1
	}
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
	c.log.Debug("evicted oldest cache entries", zap.Int("count", n))
}
