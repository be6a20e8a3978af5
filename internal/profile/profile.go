// Package profile loads and validates the user's skill profile and serves
// it to the analysis pipeline.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillgap/internal/pipeline"
	"github.com/jonathan/skillgap/internal/types"
)

// ProfileError describes a profile that could not be loaded or failed
// validation.
type ProfileError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile %s: %s", e.Source, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}

var validate = validator.New()

// Validate checks a profile against the struct tags plus the enum fields
// the tags cannot express.
func Validate(p *types.UserProfile) error {
	if err := validate.Struct(p); err != nil {
		return &ProfileError{Source: "profile", Message: "invalid profile", Cause: err}
	}
	for i, s := range p.Skills {
		if !s.Category.Valid() {
			return &ProfileError{Source: "profile", Message: fmt.Sprintf("skill %d (%s): unknown category %q", i, s.Name, s.Category)}
		}
		if !s.Proficiency.Valid() {
			return &ProfileError{Source: "profile", Message: fmt.Sprintf("skill %d (%s): unknown proficiency %q", i, s.Name, s.Proficiency)}
		}
	}
	return nil
}

// LoadFile reads and validates a profile from a JSON file.
func LoadFile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileError{Source: path, Message: "read failed", Cause: err}
	}
	return LoadBytes(data, path)
}

// LoadBytes parses and validates a profile from raw JSON. source names the
// origin for error messages.
func LoadBytes(data []byte, source string) (*types.UserProfile, error) {
	var p types.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ProfileError{Source: source, Message: "invalid JSON", Cause: err}
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Store is an in-memory ProfileProvider. The host sets the profile once
// (or replaces it as the user edits their inventory) and the pipeline
// reads it per analysis.
type Store struct {
	mu      sync.RWMutex
	profile *types.UserProfile
}

// NewStore creates a Store holding the given profile; nil means no
// profile has been set yet.
func NewStore(p *types.UserProfile) *Store {
	return &Store{profile: p}
}

// Set replaces the stored profile after validating it.
func (s *Store) Set(p *types.UserProfile) error {
	if err := Validate(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return nil
}

// UserProfile implements pipeline.ProfileProvider.
func (s *Store) UserProfile(ctx context.Context) (*types.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, pipeline.ErrProfileNotFound
	}
	return s.profile, nil
}
