// Package trail accumulates smoothed head positions into the length-capped
// polyline that forms the snake body.
package trail

import (
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Step is the outcome of one Advance call
type Step struct {
	Head  vmath.Point // Smoothed head after this tick
	Grew  bool        // A point was appended
	Speed float64     // Distance from the previous recorded head, 0 before the first point
}

// Tracker owns the trail geometry
// Invariants: len(points) == len(lengths)+1 when non-empty, currentLength == sum(lengths),
// currentLength <= allowedLength after every Advance
type Tracker struct {
	points  []vmath.Point
	lengths []float64

	currentLength float64
	allowedLength float64

	// Smoothed head is unset until the first input of a game
	smoothed    vmath.Point
	hasSmoothed bool

	// Last appended point, the reference for movement and speed
	prevHead    vmath.Point
	hasPrevHead bool

	alpha float64
}

// NewTracker creates an empty trail with the initial length budget
func NewTracker(alpha float64) *Tracker {
	t := &Tracker{}
	t.Reset()
	t.SetSmoothing(alpha)
	return t
}

// SetSmoothing updates the smoothing factor, clamped to (0, 1]
func (t *Tracker) SetSmoothing(alpha float64) {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	t.alpha = alpha
}

// Smoothing returns the active smoothing factor
func (t *Tracker) Smoothing() float64 {
	return t.alpha
}

// Advance smooths raw into the head, grows the trail when the head moved more than
// the jitter threshold, then trims the oldest segments back under the length budget
func (t *Tracker) Advance(raw vmath.Point) Step {
	if !t.hasSmoothed {
		t.smoothed = raw
		t.hasSmoothed = true
	} else {
		t.smoothed = t.smoothed.Lerp(raw, t.alpha)
	}
	head := t.smoothed

	step := Step{Head: head}

	if !t.hasPrevHead {
		// First point anchors the trail without a segment
		t.points = append(t.points, head)
		t.prevHead = head
		t.hasPrevHead = true
		step.Grew = true
		return step
	}

	d := vmath.Dist(t.prevHead, head)
	step.Speed = d
	if d > parameter.SnakeMinMovement {
		t.points = append(t.points, head)
		t.lengths = append(t.lengths, d)
		t.currentLength += d
		t.prevHead = head
		step.Grew = true
		t.trim()
	}
	return step
}

// trim pops the oldest point/segment pairs until the budget holds
func (t *Tracker) trim() {
	for t.currentLength > t.allowedLength && len(t.lengths) > 0 {
		t.currentLength -= t.lengths[0]
		t.lengths = t.lengths[1:]
		t.points = t.points[1:]
	}
	if len(t.lengths) == 0 {
		t.currentLength = 0
	}
}

// Grow raises the length budget; the budget never shrinks within a game
func (t *Tracker) Grow(amount float64) {
	if amount > 0 {
		t.allowedLength += amount
	}
}

// Reset clears geometry, smoothing state and the budget
func (t *Tracker) Reset() {
	t.points = nil
	t.lengths = nil
	t.currentLength = 0
	t.allowedLength = parameter.SnakeInitialLength
	t.smoothed = vmath.Point{}
	t.hasSmoothed = false
	t.prevHead = vmath.Point{}
	t.hasPrevHead = false
}

// Points returns the trail oldest-first; the slice is owned by the tracker
func (t *Tracker) Points() []vmath.Point {
	return t.points
}

// CopyPoints returns a caller-owned copy of the trail
func (t *Tracker) CopyPoints() []vmath.Point {
	out := make([]vmath.Point, len(t.points))
	copy(out, t.points)
	return out
}

// Lengths returns segment lengths parallel to Points()[1:]
func (t *Tracker) Lengths() []float64 {
	return t.lengths
}

func (t *Tracker) Len() int               { return len(t.points) }
func (t *Tracker) CurrentLength() float64 { return t.currentLength }
func (t *Tracker) AllowedLength() float64 { return t.allowedLength }

// SmoothedHead returns the current smoothed head, unset before the first input
func (t *Tracker) SmoothedHead() (vmath.Point, bool) {
	return t.smoothed, t.hasSmoothed
}

// Head returns the most recently appended point
func (t *Tracker) Head() (vmath.Point, bool) {
	if len(t.points) == 0 {
		return vmath.Point{}, false
	}
	return t.points[len(t.points)-1], true
}
