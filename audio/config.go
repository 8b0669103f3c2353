package audio

import (
	"github.com/lixenwraith/gesture-snake/parameter"
)

// Config holds audio settings; EffectVolumes are relative to MasterVolume
type Config struct {
	Enabled       bool                  `toml:"enabled"`
	MasterVolume  float64               `toml:"master_volume"`
	SampleRate    int                   `toml:"sample_rate"`
	EffectVolumes map[SoundType]float64 `toml:"-"`
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:     1.0,
			SoundLevelUp: 0.6,
			SoundCrash:   0.8,
		},
	}
}

// Volume returns the effective volume of a sound, clamped to [0, 1]
func (c *Config) Volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	v *= c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
