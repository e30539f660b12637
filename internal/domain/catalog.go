package domain

import (
	"context"
	"errors"

	"example.com/mrimask/internal/store"
)

var (
	// ErrPatternNotFound is returned when an MRI pattern cannot be located.
	ErrPatternNotFound = errors.New("mri pattern not found")
	// ErrProfileNotFound is returned when a sound profile cannot be located.
	ErrProfileNotFound = errors.New("sound profile not found")
)

// catalogFetchLimit caps catalog listings. No pagination exists beyond it.
const catalogFetchLimit = 100

// PatternService manages the MRI pattern catalog. Patterns have no update
// or delete path; the catalog only grows.
type PatternService struct {
	patterns store.Collection
}

// NewPatternService constructs a PatternService.
func NewPatternService(patterns store.Collection) *PatternService {
	return &PatternService{patterns: patterns}
}

// List returns up to 100 patterns in store order.
func (s *PatternService) List(ctx context.Context) ([]MRIPattern, error) {
	patterns := make([]MRIPattern, 0)
	if err := s.patterns.List(ctx, catalogFetchLimit, &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// Get fetches a pattern by id.
func (s *PatternService) Get(ctx context.Context, id string) (*MRIPattern, error) {
	var pattern MRIPattern
	if err := s.patterns.FindByID(ctx, id, &pattern); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrPatternNotFound
		}
		return nil, err
	}
	return &pattern, nil
}

// Create persists a new pattern and returns the full record.
func (s *PatternService) Create(ctx context.Context, input CreateMRIPatternInput) (*MRIPattern, error) {
	pattern := NewMRIPattern(input)
	if err := s.patterns.Insert(ctx, pattern); err != nil {
		return nil, err
	}
	return &pattern, nil
}

// ProfileService manages the sound profile catalog.
type ProfileService struct {
	profiles store.Collection
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profiles store.Collection) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// List returns up to 100 profiles in store order.
func (s *ProfileService) List(ctx context.Context) ([]SoundProfile, error) {
	profiles := make([]SoundProfile, 0)
	if err := s.profiles.List(ctx, catalogFetchLimit, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Get fetches a profile by id.
func (s *ProfileService) Get(ctx context.Context, id string) (*SoundProfile, error) {
	var profile SoundProfile
	if err := s.profiles.FindByID(ctx, id, &profile); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Create persists a new profile and returns the full record.
func (s *ProfileService) Create(ctx context.Context, input CreateSoundProfileInput) (*SoundProfile, error) {
	profile := NewSoundProfile(input)
	if err := s.profiles.Insert(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
