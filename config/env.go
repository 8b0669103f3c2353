package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/golang/glog"
)

// Environment variable names
const (
	EnvSeed         = "GESTURE_SNAKE_SEED"
	EnvFPS          = "GESTURE_SNAKE_FPS"
	EnvDebug        = "GESTURE_SNAKE_DEBUG"
	EnvInputSource  = "GESTURE_SNAKE_INPUT"
	EnvFeedAddr     = "GESTURE_SNAKE_FEED_ADDR"
	EnvAudioEnabled = "GESTURE_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "GESTURE_SNAKE_MASTER_VOLUME"
	EnvSFXVolumes   = "GESTURE_SNAKE_SFX_VOLUMES"
	EnvSampleRate   = "GESTURE_SNAKE_SAMPLE_RATE"
	EnvRecord       = "GESTURE_SNAKE_RECORD"
)

// applyEnv overlays environment values; unparsable values are logged and skipped
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			glog.Warningf("config: ignoring %s=%q: %v", EnvSeed, v, err)
		}
	}

	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FPS = n
		} else {
			glog.Warningf("config: ignoring %s=%q: %v", EnvFPS, v, err)
		}
	}

	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}

	if v := os.Getenv(EnvInputSource); v != "" {
		cfg.Input.Source = v
	}
	if v := os.Getenv(EnvFeedAddr); v != "" {
		cfg.Input.FeedAddr = v
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume is given as a percentage, clamped to 0-100
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = float64(min(max(n, 0), 100)) / 100.0
		} else {
			glog.Warningf("config: ignoring %s=%q: %v", EnvMasterVolume, v, err)
		}
	}

	// Effect volumes as JSON, e.g. {"eat":0.8,"crash":1}
	if v := os.Getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if cfg.Audio.Volumes == nil {
				cfg.Audio.Volumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				cfg.Audio.Volumes[name] = vol
			}
		} else {
			glog.Warningf("config: ignoring %s: %v", EnvSFXVolumes, err)
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
		}
	}

	if v := os.Getenv(EnvRecord); v != "" {
		cfg.Replay.Record = v
	}
}
