package component

import (
	"github.com/lixenwraith/gesture-snake/vmath"
)

// ObstacleComponent is a static rectangular hazard; touching it ends the game
type ObstacleComponent struct {
	vmath.Rect
}
