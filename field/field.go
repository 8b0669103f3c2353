// Package field owns the static hazards of a session and places food around them.
package field

import (
	"github.com/golang/glog"

	"github.com/lixenwraith/gesture-snake/collision"
	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Field holds the current obstacle set; replaced wholesale, never edited in place
type Field struct {
	obstacles []component.ObstacleComponent
	rng       *vmath.FastRand
}

func New(rng *vmath.FastRand) *Field {
	return &Field{rng: rng}
}

// Obstacles returns the live obstacle slice; callers must not modify it
func (f *Field) Obstacles() []component.ObstacleComponent {
	return f.obstacles
}

// Generate replaces the obstacle set with the count prescribed for level
func (f *Field) Generate(level int) []component.ObstacleComponent {
	n := parameter.ObstacleCount(level)
	obs := make([]component.ObstacleComponent, 0, n)
	for i := 0; i < n; i++ {
		obs = append(obs, component.ObstacleComponent{Rect: vmath.Rect{
			X: float64(f.rng.IntRange(parameter.ObstacleMinX, parameter.ObstacleMaxX)),
			Y: float64(f.rng.IntRange(parameter.ObstacleMinY, parameter.ObstacleMaxY)),
			W: float64(f.rng.IntRange(parameter.ObstacleMinSize, parameter.ObstacleMaxSize)),
			H: float64(f.rng.IntRange(parameter.ObstacleMinSize, parameter.ObstacleMaxSize)),
		}})
	}
	f.obstacles = obs
	glog.V(1).Infof("field: generated %d obstacles for level %d", n, level)
	return obs
}

// Clear drops every obstacle
func (f *Field) Clear() {
	f.obstacles = nil
}

// Blocked checks if p lies within any obstacle, edges inclusive
func (f *Field) Blocked(p vmath.Point) bool {
	_, hit := collision.ObstacleHit(p, f.obstacles)
	return hit
}

// PlaceFood samples up to FoodPlacementAttempts points and returns the first one
// clear of obstacles. ok is false when the budget runs out; the caller keeps the
// previous food point in that case.
func (f *Field) PlaceFood() (p vmath.Point, ok bool) {
	for i := 0; i < parameter.FoodPlacementAttempts; i++ {
		p = vmath.Point{
			X: float64(f.rng.IntRange(parameter.FoodMinX, parameter.FoodMaxX)),
			Y: float64(f.rng.IntRange(parameter.FoodMinY, parameter.FoodMaxY)),
		}
		if !f.Blocked(p) {
			glog.V(2).Infof("field: food placed at (%.0f, %.0f) after %d attempts", p.X, p.Y, i+1)
			return p, true
		}
	}
	glog.Warningf("field: no free food spot after %d attempts, keeping previous", parameter.FoodPlacementAttempts)
	return vmath.Point{}, false
}
