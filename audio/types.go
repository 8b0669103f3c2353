package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat     SoundType = iota // Food pickup
	SoundLevelUp                  // Level advanced
	SoundCrash                    // Fatal collision
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundLevelUp:
		return "levelup"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// ParseSoundType maps a name from String back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if st.String() == name {
			return st, true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
