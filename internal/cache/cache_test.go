package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap/internal/types"
)

func testContent(description string) types.JobText {
	return types.JobText{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: description,
	}
}

func testResult(id string) *types.GapAnalysisResult {
	return &types.GapAnalysisResult{ID: id, JobID: "job-1", OverallMatch: 0.5}
}

func TestGetOrCompute_ComputesOnceWithinTTL(t *testing.T) {
	c := New(Config{}, nil)
	content := testContent("build services in go")

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult(fmt.Sprintf("run-%d", calls)), nil
	}

	first, fromCache, err := c.GetOrCompute(context.Background(), "https://jobs.example/1", content, false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)

	second, fromCache, err := c.GetOrCompute(context.Background(), "https://jobs.example/1", content, false, fn)
	require.NoError(t, err)
	assert.True(t, fromCache)

	assert.Equal(t, 1, calls, "pipeline must run only once for unchanged content")
	assert.Same(t, first, second, "both calls must return the identical result")
}

func TestGetOrCompute_ChangedDescriptionRecomputes(t *testing.T) {
	c := New(Config{}, nil)

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult(fmt.Sprintf("run-%d", calls)), nil
	}

	url := "https://jobs.example/1"
	_, _, err := c.GetOrCompute(context.Background(), url, testContent("version one"), false, fn)
	require.NoError(t, err)

	// Same URL, materially edited description: new content hash, new run.
	_, fromCache, err := c.GetOrCompute(context.Background(), url, testContent("version two"), false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 2, calls)
}

func TestContentHash_IgnoresNothingMaterial(t *testing.T) {
	base := testContent("desc")

	changed := base
	changed.Description = "desc edited"
	assert.NotEqual(t, ContentHash(base), ContentHash(changed))

	changed = base
	changed.Title = "Platform Engineer"
	assert.NotEqual(t, ContentHash(base), ContentHash(changed))

	assert.Equal(t, ContentHash(base), ContentHash(testContent("desc")))
}

func TestContentHash_FieldBoundariesMatter(t *testing.T) {
	a := types.JobText{Title: "ab", Company: "c"}
	b := types.JobText{Title: "a", Company: "bc"}
	assert.NotEqual(t, ContentHash(a), ContentHash(b))
}

func TestGetOrCompute_ExpiredEntryRecomputes(t *testing.T) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := New(Config{TTL: 30 * time.Minute, Now: func() time.Time { return current }}, nil)
	content := testContent("desc")

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult(fmt.Sprintf("run-%d", calls)), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)

	current = current.Add(31 * time.Minute)

	_, fromCache, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ForceRefreshBypassesButStores(t *testing.T) {
	c := New(Config{}, nil)
	content := testContent("desc")

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult(fmt.Sprintf("run-%d", calls)), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)

	refreshed, fromCache, err := c.GetOrCompute(context.Background(), "u", content, true, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 2, calls)

	// The refreshed result overwrote the entry.
	cached, fromCache, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Same(t, refreshed, cached)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ErrorNotCached(t *testing.T) {
	c := New(Config{}, nil)
	content := testContent("desc")

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("profile store down")
		}
		return testResult("ok"), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	result, _, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.ID)
}

func TestGetOrCompute_MalformedEntryIsMiss(t *testing.T) {
	c := New(Config{}, nil)
	content := testContent("desc")

	// Plant a corrupted entry by hand.
	k := key("u", ContentHash(content))
	c.mu.Lock()
	c.entries[k] = &Entry{URL: "u", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	c.mu.Unlock()

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult("fresh"), nil
	}

	result, fromCache, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fresh", result.ID)
}

func TestEviction_OldestFifthRemovedWhenFull(t *testing.T) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := New(Config{MaxEntries: 10, TTL: time.Hour, Now: func() time.Time { return current }}, nil)

	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		return testResult("r"), nil
	}

	for i := 0; i < 10; i++ {
		url := fmt.Sprintf("u-%02d", i)
		_, _, err := c.GetOrCompute(context.Background(), url, testContent("d"), false, fn)
		require.NoError(t, err)
		current = current.Add(time.Minute)
	}
	require.Equal(t, 10, c.Len())

	// Nothing expired; inserting one more evicts the oldest 20%.
	_, _, err := c.GetOrCompute(context.Background(), "u-new", testContent("d"), false, fn)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len()) // 10 - 2 evicted + 1 inserted

	// The two oldest are gone.
	_, fromCache, err := c.GetOrCompute(context.Background(), "u-00", testContent("d"), false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
}

func TestEviction_ExpiredRemovedFirst(t *testing.T) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := New(Config{MaxEntries: 3, TTL: 10 * time.Minute, Now: func() time.Time { return current }}, nil)

	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		return testResult("r"), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "old", testContent("d"), false, fn)
	require.NoError(t, err)

	current = current.Add(11 * time.Minute) // "old" expires

	for _, url := range []string{"a", "b"} {
		_, _, err := c.GetOrCompute(context.Background(), url, testContent("d"), false, fn)
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Len())

	// Full; the expired entry goes, the fresh ones stay.
	_, _, err = c.GetOrCompute(context.Background(), "c", testContent("d"), false, fn)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	for _, url := range []string{"a", "b", "c"} {
		_, fromCache, err := c.GetOrCompute(context.Background(), url, testContent("d"), false, fn)
		require.NoError(t, err)
		assert.True(t, fromCache, "entry %s should have survived", url)
	}
}

func TestInvalidate(t *testing.T) {
	c := New(Config{}, nil)
	content := testContent("desc")

	calls := 0
	fn := func(context.Context) (*types.GapAnalysisResult, error) {
		calls++
		return testResult("r"), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)

	c.Invalidate("u", content)

	_, fromCache, err := c.GetOrCompute(context.Background(), "u", content, false, fn)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 2, calls)
}
