// Package replay records the input points fed to a session and plays them back
// into a fresh session with the same seed. Recordings are msgpack encoded.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// FormatVersion is written into every recording
const FormatVersion = 1

var (
	ErrBadVersion = errors.New("unsupported recording version")
	ErrEmpty      = errors.New("recording has no frames")
)

// FrameKind discriminates recorded inputs
type FrameKind uint8

const (
	FramePoint FrameKind = iota // Tick with X, Y
	FrameReset                  // Session reset
)

// Frame is one recorded host input
type Frame struct {
	Kind FrameKind `msgpack:"k"`
	X    float64   `msgpack:"x,omitempty"`
	Y    float64   `msgpack:"y,omitempty"`
}

// Recording is the on-disk replay document
type Recording struct {
	Version   int       `msgpack:"v"`
	SessionID string    `msgpack:"id"`
	Seed      uint64    `msgpack:"seed"`
	Recorded  time.Time `msgpack:"at"`
	Frames    []Frame   `msgpack:"frames"`
}

// Recorder accumulates frames for one session
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for the session with the given seed
func NewRecorder(sessionID string, seed uint64) *Recorder {
	return &Recorder{rec: Recording{
		Version:   FormatVersion,
		SessionID: sessionID,
		Seed:      seed,
		Recorded:  time.Now().UTC(),
	}}
}

// Point records a ticked input point
func (r *Recorder) Point(p vmath.Point) {
	r.rec.Frames = append(r.rec.Frames, Frame{Kind: FramePoint, X: p.X, Y: p.Y})
}

// Reset records a session reset
func (r *Recorder) Reset() {
	r.rec.Frames = append(r.rec.Frames, Frame{Kind: FrameReset})
}

// Len returns the number of recorded frames
func (r *Recorder) Len() int { return len(r.rec.Frames) }

// Save encodes the recording to w
func (r *Recorder) Save(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(&r.rec); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return nil
}

// SaveFile writes the recording to path, replacing any existing file
func (r *Recorder) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load decodes a recording from r
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, rec.Version)
	}
	if len(rec.Frames) == 0 {
		return nil, ErrEmpty
	}
	return &rec, nil
}

// LoadFile reads a recording from path
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Play feeds every frame into a fresh session, calling fn after each tick when
// non-nil, and returns the final snapshot
func (r *Recording) Play(fn func(frame int, s engine.Snapshot)) engine.Snapshot {
	s := engine.NewSession(engine.Options{Seed: r.Seed, ID: r.SessionID})
	for i, f := range r.Frames {
		var snap engine.Snapshot
		switch f.Kind {
		case FrameReset:
			s.Reset()
			snap = s.Snapshot()
		default:
			snap = s.Tick(vmath.Point{X: f.X, Y: f.Y})
		}
		if fn != nil {
			fn(i, snap)
		}
	}
	return s.Snapshot()
}

// Run replays the recording and returns the final snapshot
func (r *Recording) Run() engine.Snapshot {
	return r.Play(nil)
}
