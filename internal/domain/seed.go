package domain

import (
	"context"
	"fmt"

	"example.com/mrimask/internal/observability"
	"example.com/mrimask/internal/store"
)

// Seeder populates the two catalogs with the default dataset when they are
// empty. It runs once at startup, before any request is served, and never
// touches collections that already hold records.
type Seeder struct {
	patterns store.Collection
	profiles store.Collection
}

// NewSeeder constructs a Seeder.
func NewSeeder(patterns, profiles store.Collection) *Seeder {
	return &Seeder{patterns: patterns, profiles: profiles}
}

// Run seeds both catalogs. Any store failure is returned and should abort
// startup.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.patterns.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", PatternCollection, err)
	}
	if count == 0 {
		inputs := defaultMRIPatterns()
		for _, input := range inputs {
			if err := s.patterns.Insert(ctx, NewMRIPattern(input)); err != nil {
				return fmt.Errorf("seed %s: %w", PatternCollection, err)
			}
		}
		observability.RecordCatalogSeeded(PatternCollection, len(inputs))
	}

	count, err = s.profiles.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", ProfileCollection, err)
	}
	if count == 0 {
		inputs := defaultSoundProfiles()
		for _, input := range inputs {
			if err := s.profiles.Insert(ctx, NewSoundProfile(input)); err != nil {
				return fmt.Errorf("seed %s: %w", ProfileCollection, err)
			}
		}
		observability.RecordCatalogSeeded(ProfileCollection, len(inputs))
	}

	return nil
}

func defaultMRIPatterns() []CreateMRIPatternInput {
	return []CreateMRIPatternInput{
		{
			Name:             "Brain T1 Weighted",
			DurationMinutes:  15,
			NoiseFrequencyHz: 2000,
			NoiseIntensityDB: 120,
			SequencePattern: []SequenceSegment{
				{Frequency: 2000, Duration: 300, Intensity: 120},
				{Frequency: 1800, Duration: 180, Intensity: 115},
				{Frequency: 2200, Duration: 420, Intensity: 125},
			},
		},
		{
			Name:             "Spine MRI",
			DurationMinutes:  25,
			NoiseFrequencyHz: 1500,
			NoiseIntensityDB: 118,
			SequencePattern: []SequenceSegment{
				{Frequency: 1500, Duration: 600, Intensity: 118},
				{Frequency: 1700, Duration: 300, Intensity: 120},
				{Frequency: 1400, Duration: 600, Intensity: 115},
			},
		},
		{
			Name:             "Knee Joint",
			DurationMinutes:  10,
			NoiseFrequencyHz: 2500,
			NoiseIntensityDB: 122,
			SequencePattern: []SequenceSegment{
				{Frequency: 2500, Duration: 200, Intensity: 122},
				{Frequency: 2300, Duration: 150, Intensity: 118},
				{Frequency: 2700, Duration: 250, Intensity: 125},
			},
		},
	}
}

func defaultSoundProfiles() []CreateSoundProfileInput {
	return []CreateSoundProfileInput{
		{
			Name:                 "Ocean Waves",
			Type:                 "nature",
			BaseFrequencyHz:      500,
			MaskingEffectiveness: MaskingEffectiveness{LowFreq: 0.9, MidFreq: 0.8, HighFreq: 0.6},
			FilePath:             "ocean_waves.mp3",
		},
		{
			Name:                 "Forest Rain",
			Type:                 "nature",
			BaseFrequencyHz:      800,
			MaskingEffectiveness: MaskingEffectiveness{LowFreq: 0.7, MidFreq: 0.9, HighFreq: 0.8},
			FilePath:             "forest_rain.mp3",
		},
		{
			Name:                 "White Noise",
			Type:                 "white_noise",
			BaseFrequencyHz:      1000,
			MaskingEffectiveness: MaskingEffectiveness{LowFreq: 0.8, MidFreq: 0.9, HighFreq: 0.9},
			FilePath:             "white_noise.mp3",
		},
		{
			Name:                 "Pink Noise",
			Type:                 "white_noise",
			BaseFrequencyHz:      750,
			MaskingEffectiveness: MaskingEffectiveness{LowFreq: 0.9, MidFreq: 0.8, HighFreq: 0.7},
			FilePath:             "pink_noise.mp3",
		},
		{
			Name:                 "Ambient Meditation",
			Type:                 "ambient",
			BaseFrequencyHz:      400,
			MaskingEffectiveness: MaskingEffectiveness{LowFreq: 0.8, MidFreq: 0.7, HighFreq: 0.5},
			FilePath:             "ambient_meditation.mp3",
		},
	}
}
