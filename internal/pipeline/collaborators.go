package pipeline

import (
	"context"
	"errors"

	"github.com/jonathan/skillgap/internal/types"
)

// ErrProfileNotFound is returned by ProfileProvider implementations when
// no profile has been stored for the user.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileProvider supplies the user's skill profile. Implementations may
// read from disk, a service, or memory; the pipeline only requires that
// a missing profile surface ErrProfileNotFound.
type ProfileProvider interface {
	UserProfile(ctx context.Context) (*types.UserProfile, error)
}

// HistoryStore records completed analyses for later trend reporting.
// Append failures are logged, not fatal: history is advisory.
type HistoryStore interface {
	Append(ctx context.Context, result *types.GapAnalysisResult) error
	Recent(ctx context.Context, limit int) ([]*types.GapAnalysisResult, error)
}
