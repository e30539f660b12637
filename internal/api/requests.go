package api

import (
	"errors"
	"strings"

	"example.com/mrimask/internal/domain"
)

// Defaults applied when optional fields are omitted.
const (
	defaultNoiseFrequencyHz = 2000
	defaultNoiseIntensityDB = 120
	defaultVolumeLevel      = 0.7
)

// CreateMRIPatternRequest is the payload for POST /api/mri-patterns.
// Optional fields use pointers so omission can be told apart from an
// explicit zero.
type CreateMRIPatternRequest struct {
	Name             string                   `json:"name"`
	DurationMinutes  *int                     `json:"duration_minutes"`
	NoiseFrequencyHz *int                     `json:"noise_frequency_hz"`
	NoiseIntensityDB *int                     `json:"noise_intensity_db"`
	SequencePattern  []domain.SequenceSegment `json:"sequence_pattern"`
}

// Validate checks field presence. Numeric values are stored as supplied;
// no range checks are applied on creation.
func (r CreateMRIPatternRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.DurationMinutes == nil {
		return errors.New("duration_minutes is required")
	}
	return nil
}

func (r CreateMRIPatternRequest) toInput() domain.CreateMRIPatternInput {
	input := domain.CreateMRIPatternInput{
		Name:             r.Name,
		DurationMinutes:  *r.DurationMinutes,
		NoiseFrequencyHz: defaultNoiseFrequencyHz,
		NoiseIntensityDB: defaultNoiseIntensityDB,
		SequencePattern:  r.SequencePattern,
	}
	if r.NoiseFrequencyHz != nil {
		input.NoiseFrequencyHz = *r.NoiseFrequencyHz
	}
	if r.NoiseIntensityDB != nil {
		input.NoiseIntensityDB = *r.NoiseIntensityDB
	}
	return input
}

// MaskingEffectivenessPayload carries the three band scores. All three
// keys are required; values are not range-checked on creation.
type MaskingEffectivenessPayload struct {
	LowFreq  *float64 `json:"low_freq"`
	MidFreq  *float64 `json:"mid_freq"`
	HighFreq *float64 `json:"high_freq"`
}

// CreateSoundProfileRequest is the payload for POST /api/sound-profiles.
type CreateSoundProfileRequest struct {
	Name                 string                       `json:"name"`
	Type                 string                       `json:"type"`
	BaseFrequencyHz      *int                         `json:"base_frequency_hz"`
	MaskingEffectiveness *MaskingEffectivenessPayload `json:"masking_effectiveness"`
	FilePath             string                       `json:"file_path"`
}

// Validate ensures request correctness.
func (r CreateSoundProfileRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if r.BaseFrequencyHz == nil {
		return errors.New("base_frequency_hz is required")
	}
	if r.MaskingEffectiveness == nil {
		return errors.New("masking_effectiveness is required")
	}
	if r.MaskingEffectiveness.LowFreq == nil || r.MaskingEffectiveness.MidFreq == nil || r.MaskingEffectiveness.HighFreq == nil {
		return errors.New("masking_effectiveness requires low_freq, mid_freq and high_freq")
	}
	if strings.TrimSpace(r.FilePath) == "" {
		return errors.New("file_path is required")
	}
	return nil
}

func (r CreateSoundProfileRequest) toInput() domain.CreateSoundProfileInput {
	return domain.CreateSoundProfileInput{
		Name:            r.Name,
		Type:            r.Type,
		BaseFrequencyHz: *r.BaseFrequencyHz,
		MaskingEffectiveness: domain.MaskingEffectiveness{
			LowFreq:  *r.MaskingEffectiveness.LowFreq,
			MidFreq:  *r.MaskingEffectiveness.MidFreq,
			HighFreq: *r.MaskingEffectiveness.HighFreq,
		},
		FilePath: r.FilePath,
	}
}

// CreateSessionRequest is the payload for POST /api/sessions.
type CreateSessionRequest struct {
	MRIPatternID   string   `json:"mri_pattern_id"`
	SoundProfileID string   `json:"sound_profile_id"`
	VolumeLevel    *float64 `json:"volume_level"`
}

// Validate ensures request correctness.
func (r CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.MRIPatternID) == "" {
		return errors.New("mri_pattern_id is required")
	}
	if strings.TrimSpace(r.SoundProfileID) == "" {
		return errors.New("sound_profile_id is required")
	}
	return nil
}

func (r CreateSessionRequest) toInput() domain.CreateSessionInput {
	input := domain.CreateSessionInput{
		MRIPatternID:   r.MRIPatternID,
		SoundProfileID: r.SoundProfileID,
		VolumeLevel:    defaultVolumeLevel,
	}
	if r.VolumeLevel != nil {
		input.VolumeLevel = *r.VolumeLevel
	}
	return input
}
