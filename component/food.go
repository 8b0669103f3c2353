package component

import (
	"math"

	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// FoodComponent is the single collectible in a session
type FoodComponent struct {
	Pos  vmath.Point
	W, H int // Current pixel size, rescaled from FoodBaseSize on level change
}

// NewFood returns unscaled food at the origin; callers place it
func NewFood() FoodComponent {
	return FoodComponent{W: parameter.FoodBaseSize, H: parameter.FoodBaseSize}
}

// Resize rescales dimensions from the base size; position is untouched
func (f *FoodComponent) Resize(scale float64) {
	f.W = int(math.Round(parameter.FoodBaseSize * scale))
	f.H = int(math.Round(parameter.FoodBaseSize * scale))
}

// Hitbox returns the pickup radius, proportional to width with a floor
func (f FoodComponent) Hitbox() float64 {
	return math.Max(parameter.FoodHitboxMin, parameter.FoodHitboxFactor*float64(f.W))
}
