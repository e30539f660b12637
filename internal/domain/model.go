// Package domain defines the business logic for the MRI noise masking service.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection names used in the document store.
const (
	PatternCollection = "mri_patterns"
	ProfileCollection = "sound_profiles"
	SessionCollection = "user_sessions"
)

// SequenceSegment is one step of an MRI acquisition sequence: a noise
// frequency held for a duration at a given intensity.
type SequenceSegment struct {
	Frequency int `json:"frequency"`
	Duration  int `json:"duration"`
	Intensity int `json:"intensity"`
}

// MRIPattern describes the acoustic profile of one scan protocol.
// Patterns are immutable once created.
type MRIPattern struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	DurationMinutes  int               `json:"duration_minutes"`
	NoiseFrequencyHz int               `json:"noise_frequency_hz"`
	NoiseIntensityDB int               `json:"noise_intensity_db"`
	SequencePattern  []SequenceSegment `json:"sequence_pattern"`
	CreatedAt        time.Time         `json:"created_at"`
}

// MaskingEffectiveness scores how well a sound conceals scanner noise in
// each frequency band, on a [0,1] scale.
type MaskingEffectiveness struct {
	LowFreq  float64 `json:"low_freq"`
	MidFreq  float64 `json:"mid_freq"`
	HighFreq float64 `json:"high_freq"`
}

// SoundProfile describes an ambient audio asset offered to patients.
// Profiles are immutable once created.
type SoundProfile struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Type                 string               `json:"type"`
	BaseFrequencyHz      int                  `json:"base_frequency_hz"`
	MaskingEffectiveness MaskingEffectiveness `json:"masking_effectiveness"`
	FilePath             string               `json:"file_path"`
	CreatedAt            time.Time            `json:"created_at"`
}

// UserSession is one playback run of a sound profile against an MRI
// pattern. It is created active and transitions once to completed.
type UserSession struct {
	ID             string     `json:"id"`
	MRIPatternID   string     `json:"mri_pattern_id"`
	SoundProfileID string     `json:"sound_profile_id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	ComfortRating  *int       `json:"comfort_rating"`
	VolumeLevel    float64    `json:"volume_level"`
	Completed      bool       `json:"completed"`
}

// CreateMRIPatternInput carries a validated pattern creation payload.
// Boundary defaults (frequency 2000 Hz, intensity 120 dB) are applied
// before this struct is built.
type CreateMRIPatternInput struct {
	Name             string
	DurationMinutes  int
	NoiseFrequencyHz int
	NoiseIntensityDB int
	SequencePattern  []SequenceSegment
}

// CreateSoundProfileInput carries a validated profile creation payload.
type CreateSoundProfileInput struct {
	Name                 string
	Type                 string
	BaseFrequencyHz      int
	MaskingEffectiveness MaskingEffectiveness
	FilePath             string
}

// CreateSessionInput carries a validated session creation payload.
type CreateSessionInput struct {
	MRIPatternID   string
	SoundProfileID string
	VolumeLevel    float64
}

// NewMRIPattern builds a pattern with a fresh id and creation timestamp.
// A missing or empty sequence is synthesised as a single segment spanning
// the whole scan at the pattern's stated frequency and intensity.
func NewMRIPattern(input CreateMRIPatternInput) MRIPattern {
	sequence := input.SequencePattern
	if len(sequence) == 0 {
		sequence = []SequenceSegment{{
			Frequency: input.NoiseFrequencyHz,
			Duration:  input.DurationMinutes * 60,
			Intensity: input.NoiseIntensityDB,
		}}
	}
	return MRIPattern{
		ID:               uuid.NewString(),
		Name:             input.Name,
		DurationMinutes:  input.DurationMinutes,
		NoiseFrequencyHz: input.NoiseFrequencyHz,
		NoiseIntensityDB: input.NoiseIntensityDB,
		SequencePattern:  sequence,
		CreatedAt:        time.Now().UTC(),
	}
}

// NewSoundProfile builds a profile with a fresh id and creation timestamp.
func NewSoundProfile(input CreateSoundProfileInput) SoundProfile {
	return SoundProfile{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Type:                 input.Type,
		BaseFrequencyHz:      input.BaseFrequencyHz,
		MaskingEffectiveness: input.MaskingEffectiveness,
		FilePath:             input.FilePath,
		CreatedAt:            time.Now().UTC(),
	}
}

// NewUserSession builds an active session with a fresh id and start time.
func NewUserSession(input CreateSessionInput) UserSession {
	return UserSession{
		ID:             uuid.NewString(),
		MRIPatternID:   input.MRIPatternID,
		SoundProfileID: input.SoundProfileID,
		StartTime:      time.Now().UTC(),
		VolumeLevel:    input.VolumeLevel,
		Completed:      false,
	}
}
