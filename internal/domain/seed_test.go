package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/mrimask/internal/store"
)

func TestSeederPopulatesEmptyCatalogs(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	patterns := st.Collection(PatternCollection)
	profiles := st.Collection(ProfileCollection)

	require.NoError(t, NewSeeder(patterns, profiles).Run(ctx))

	patternCount, err := patterns.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, patternCount)

	profileCount, err := profiles.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, profileCount)

	var seeded []MRIPattern
	require.NoError(t, patterns.List(ctx, 100, &seeded))
	require.Equal(t, "Brain T1 Weighted", seeded[0].Name)
	require.Equal(t, 2000, seeded[0].NoiseFrequencyHz)
	require.Len(t, seeded[0].SequencePattern, 3)
	require.NotEmpty(t, seeded[0].ID)
	require.False(t, seeded[0].CreatedAt.IsZero())

	var sounds []SoundProfile
	require.NoError(t, profiles.List(ctx, 100, &sounds))
	require.Equal(t, "Ocean Waves", sounds[0].Name)
	require.InDelta(t, 0.9, sounds[0].MaskingEffectiveness.LowFreq, 0.0001)
	require.Equal(t, "ambient_meditation.mp3", sounds[4].FilePath)
}

func TestSeederIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	patterns := st.Collection(PatternCollection)
	profiles := st.Collection(ProfileCollection)

	seeder := NewSeeder(patterns, profiles)
	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	patternCount, err := patterns.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, patternCount)

	profileCount, err := profiles.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, profileCount)
}

func TestSeederLeavesExistingRecordsAlone(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	patterns := st.Collection(PatternCollection)
	profiles := st.Collection(ProfileCollection)

	custom := NewMRIPattern(CreateMRIPatternInput{Name: "Custom", DurationMinutes: 5, NoiseFrequencyHz: 1000, NoiseIntensityDB: 100})
	require.NoError(t, patterns.Insert(ctx, custom))

	require.NoError(t, NewSeeder(patterns, profiles).Run(ctx))

	// A non-empty pattern catalog is not reseeded, even though it does not
	// match the defaults. The empty profile catalog still is.
	patternCount, err := patterns.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, patternCount)

	profileCount, err := profiles.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, profileCount)
}
