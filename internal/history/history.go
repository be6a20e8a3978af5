// Package history keeps completed gap analyses for trend reporting.
package history

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/skillgap/internal/types"
)

// DefaultMaxEntries bounds the in-memory store; the oldest analyses are
// dropped first.
const DefaultMaxEntries = 500

// Store is an in-memory HistoryStore. Entries are kept in append order
// and returned oldest first.
type Store struct {
	mu      sync.RWMutex
	max     int
	entries []*types.GapAnalysisResult
}

// NewStore creates a Store. maxEntries <= 0 uses DefaultMaxEntries.
func NewStore(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Store{max: maxEntries}
}

// Append records one completed analysis, evicting the oldest entry when
// the store is full.
func (s *Store) Append(ctx context.Context, result *types.GapAnalysisResult) error {
	if result == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, result)
	if len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
	return nil
}

// Recent returns up to limit of the newest analyses, oldest first so the
// trend analyzer can split halves chronologically. limit <= 0 returns
// everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]*types.GapAnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.GapAnalysisResult, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AnalyzedAt.Before(out[j].AnalyzedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// Len reports how many analyses are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
