package engine

import (
	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Snapshot is the render-ready state after a tick; slices are caller-owned copies
type Snapshot struct {
	SessionID string
	Tick      uint64 // Ticks processed since the last reset
	Phase     Phase

	// Trail oldest-first, Head is its last point
	Trail   []vmath.Point
	Head    vmath.Point
	HasHead bool

	Food         vmath.Point
	FoodW, FoodH int

	Obstacles []component.ObstacleComponent

	Score int
	Level int

	// Trail budget, for HUD and diagnostics
	Length        float64
	AllowedLength float64

	Events EventSet // Raised by the tick that produced this snapshot
}

// GameOver checks if the session has ended and awaits reset
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}
