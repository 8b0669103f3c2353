// Package config loads host settings from defaults, an optional TOML file and
// GESTURE_SNAKE_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gesture-snake/audio"
	"github.com/lixenwraith/gesture-snake/input"
	"github.com/lixenwraith/gesture-snake/parameter"
)

// Input source names
const (
	SourceMouse = "mouse"
	SourceFeed  = "feed"
)

// DefaultFeedAddr is the listen address of the point feed
const DefaultFeedAddr = "127.0.0.1:8765"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full host configuration
type Config struct {
	Seed   uint64       `toml:"seed"` // 0 derives a seed from the clock
	FPS    int          `toml:"fps"`
	Debug  bool         `toml:"debug"`
	Input  InputConfig  `toml:"input"`
	Audio  AudioConfig  `toml:"audio"`
	Replay ReplayConfig `toml:"replay"`
}

// InputConfig selects where pointer positions come from
type InputConfig struct {
	Source   string `toml:"source"`
	FeedAddr string `toml:"feed_addr"`

	// Key to action name, e.g. x = "reset"; "none" unbinds a default key
	Bindings map[string]string `toml:"bindings"`
}

// AudioConfig extends audio.Config with per-effect volumes keyed by sound name
type AudioConfig struct {
	audio.Config
	Volumes map[string]float64 `toml:"volumes"`
}

// ReplayConfig controls session recording
type ReplayConfig struct {
	Record string `toml:"record"` // Output path, empty disables recording
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS: parameter.DefaultFPS,
		Input: InputConfig{
			Source:   SourceMouse,
			FeedAddr: DefaultFeedAddr,
		},
		Audio: AudioConfig{Config: *audio.DefaultConfig()},
	}
}

// Load builds a config from defaults, the TOML file at path (skipped when
// empty) and the environment, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and cross-field requirements
func (c *Config) Validate() error {
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalidConfig, c.FPS, parameter.MinFPS, parameter.MaxFPS)
	}

	switch c.Input.Source {
	case SourceMouse:
	case SourceFeed:
		if c.Input.FeedAddr == "" {
			return fmt.Errorf("%w: feed source requires feed_addr", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown input source %q", ErrInvalidConfig, c.Input.Source)
	}

	if _, err := c.Controls(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %g outside [0, 1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive", ErrInvalidConfig)
	}
	for name, v := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: unknown sound %q in volumes", ErrInvalidConfig, name)
		}
		if v < 0 {
			return fmt.Errorf("%w: negative volume for %s", ErrInvalidConfig, name)
		}
	}
	return nil
}

// AudioSettings resolves the named volumes onto a copy of the audio config
func (c *Config) AudioSettings() *audio.Config {
	out := c.Audio.Config
	out.EffectVolumes = make(map[audio.SoundType]float64, len(c.Audio.EffectVolumes)+len(c.Audio.Volumes))
	for st, v := range c.Audio.EffectVolumes {
		out.EffectVolumes[st] = v
	}
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.ParseSoundType(name); ok {
			out.EffectVolumes[st] = v
		}
	}
	return &out
}

// Controls returns the default key controls with the configured bindings applied
func (c *Config) Controls() (*input.Controls, error) {
	controls := input.DefaultControls()
	if err := controls.BindAll(c.Input.Bindings); err != nil {
		return nil, err
	}
	return controls, nil
}
