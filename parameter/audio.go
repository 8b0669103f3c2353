package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5
	AudioBufferTime   = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration           = 450 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 400 * time.Millisecond
	EatSoundOvertoneRelease    = 150 * time.Millisecond
)

// Level-up Sound Timing
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpLastDuration = 300 * time.Millisecond
	LevelUpAttack       = 5 * time.Millisecond
	LevelUpNoteRelease  = 40 * time.Millisecond
	LevelUpLastRelease  = 220 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 500 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 350 * time.Millisecond
)
