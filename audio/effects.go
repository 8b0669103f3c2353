package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gesture-snake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over the given duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume maps to a silent stage
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short two-partial ding for a food pickup
func CreateEatSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, parameter.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundFundamentalRelease, rate)

	// Overtone (octave up)
	over := NewOscillator(2637.02, parameter.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	bounded := beep.Take(rate.N(parameter.EatSoundDuration), mixed)
	return newVolume(bounded, cfg.Volume(SoundEat))
}

// CreateLevelUpSound generates a rising C-E-G-C arpeggio
func CreateLevelUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(freqs))
	for i, f := range freqs {
		dur, rel := parameter.LevelUpNoteDuration, parameter.LevelUpNoteRelease
		if i == len(freqs)-1 {
			dur, rel = parameter.LevelUpLastDuration, parameter.LevelUpLastRelease
		}
		osc := NewOscillator(f, dur, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, dur, parameter.LevelUpAttack, rel, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.Volume(SoundLevelUp))
}

// CreateCrashSound generates a low saw buzz over a noise burst
func CreateCrashSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(90.0, parameter.CrashSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, parameter.CrashSoundDuration, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)

	noise := NewOscillator(0, parameter.CrashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.CrashSoundDuration, parameter.CrashSoundAttack, parameter.CrashSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.6),
		newVolume(noiseShaped, 0.4),
	)
	bounded := beep.Take(rate.N(parameter.CrashSoundDuration), mixed)
	return newVolume(bounded, cfg.Volume(SoundCrash))
}

// Effect returns the streamer for a sound type, nil for unknown types
func Effect(st SoundType, cfg *Config) beep.Streamer {
	switch st {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	default:
		return nil
	}
}
