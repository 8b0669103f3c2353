package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/parameter"
)

// SoundManager plays one-shot effects through the beep speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	played      uint64
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferTime)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a sound effect onto the mixer
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	s := Effect(st, sm.cfg)
	if s == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
	return nil
}

// OnTick plays the sounds matching a tick's events; game over takes precedence
func (sm *SoundManager) OnTick(events engine.EventSet) {
	for _, st := range SoundsFor(events) {
		if err := sm.Play(st); err != nil && !errors.Is(err, ErrNotInitialized) {
			glog.Warningf("audio: play %s: %v", st, err)
		}
	}
}

// SoundsFor maps tick events to the effects they trigger
func SoundsFor(events engine.EventSet) []SoundType {
	switch {
	case events.Has(engine.EventGameOver):
		return []SoundType{SoundCrash}
	case events.Has(engine.EventLevelUp):
		return []SoundType{SoundLevelUp}
	case events.Has(engine.EventFoodEaten):
		return []SoundType{SoundEat}
	default:
		return nil
	}
}

// Played returns the number of effects queued since start
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
