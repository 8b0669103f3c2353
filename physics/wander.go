package physics

import (
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// WanderProfile defines wandering behavior parameters
type WanderProfile struct {
	Speed         float64    // Units per tick
	RetargetTicks int        // Ticks between target re-rolls
	Bounds        vmath.Rect // Region new targets are drawn from (inclusive integer samples)
}

// DefaultWanderProfile is the level 3+ food motion
var DefaultWanderProfile = WanderProfile{
	Speed:         parameter.WanderSpeed,
	RetargetTicks: parameter.WanderRetargetTicks,
	Bounds: vmath.Rect{
		X: parameter.WanderMinX,
		Y: parameter.WanderMinY,
		W: parameter.WanderMaxX - parameter.WanderMinX,
		H: parameter.WanderMaxY - parameter.WanderMinY,
	},
}

// Wanderer moves a point toward a periodically re-rolled random target
type Wanderer struct {
	Pos    vmath.Point
	Target vmath.Point

	profile   WanderProfile
	countdown int
	rng       *vmath.FastRand
}

// NewWanderer starts at p with the target on itself, so it rests until the first re-roll
func NewWanderer(p vmath.Point, profile WanderProfile, rng *vmath.FastRand) *Wanderer {
	return &Wanderer{
		Pos:       p,
		Target:    p,
		profile:   profile,
		countdown: profile.RetargetTicks,
		rng:       rng,
	}
}

// Tick advances one step and returns the new position
// Movement never overshoots: within one step of the target the point settles in place
func (w *Wanderer) Tick() vmath.Point {
	w.countdown--
	if w.countdown <= 0 {
		w.Target = w.randomTarget()
		w.countdown = w.profile.RetargetTicks
	}

	dist := vmath.Dist(w.Pos, w.Target)
	if dist > w.profile.Speed {
		step := w.Target.Sub(w.Pos).Scale(w.profile.Speed / dist)
		w.Pos = w.Pos.Add(step)
	}
	return w.Pos
}

// Rehome moves the wanderer to p; target and countdown carry over
func (w *Wanderer) Rehome(p vmath.Point) {
	w.Pos = p
}

// Countdown returns ticks left until the next target re-roll
func (w *Wanderer) Countdown() int {
	return w.countdown
}

func (w *Wanderer) randomTarget() vmath.Point {
	b := w.profile.Bounds
	return vmath.Point{
		X: float64(w.rng.IntRange(int(b.X), int(b.Right()))),
		Y: float64(w.rng.IntRange(int(b.Y), int(b.Bottom()))),
	}
}
