package domain

// Frequency band thresholds. The banding is a hard step function: no
// smoothing or interpolation happens at the boundaries.
const (
	lowBandUpperHz = 1000
	midBandUpperHz = 3000
)

// volumeHeadroom is added to the effectiveness score to suggest a playback
// volume, clamped to full scale.
const volumeHeadroom = 0.2

// MaskingReport is the outcome of scoring a profile against a pattern.
type MaskingReport struct {
	EffectivenessScore float64 `json:"effectiveness_score"`
	MRIFrequency       int     `json:"mri_frequency"`
	SoundType          string  `json:"sound_type"`
	RecommendedVolume  float64 `json:"recommended_volume"`
}

// ScoreMasking estimates how well profile conceals the scanner noise of
// pattern. The pattern's stated noise frequency selects one of the
// profile's three band scores: below 1000 Hz the low band, from 1000 up to
// but excluding 3000 Hz the mid band, and the high band otherwise.
func ScoreMasking(pattern MRIPattern, profile SoundProfile) MaskingReport {
	freq := pattern.NoiseFrequencyHz

	var score float64
	switch {
	case freq < lowBandUpperHz:
		score = profile.MaskingEffectiveness.LowFreq
	case freq < midBandUpperHz:
		score = profile.MaskingEffectiveness.MidFreq
	default:
		score = profile.MaskingEffectiveness.HighFreq
	}

	volume := score + volumeHeadroom
	if volume > 1.0 {
		volume = 1.0
	}

	return MaskingReport{
		EffectivenessScore: score,
		MRIFrequency:       freq,
		SoundType:          profile.Type,
		RecommendedVolume:  volume,
	}
}
