// Package collision tests the snake head against food, obstacles and its own trail.
package collision

import (
	"math"

	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// FoodHit checks if head is strictly within the food hitbox
func FoodHit(head vmath.Point, food component.FoodComponent) bool {
	return vmath.Dist(head, food.Pos) < food.Hitbox()
}

// ObstacleHit returns the index of the first obstacle containing head, edges inclusive
func ObstacleHit(head vmath.Point, obstacles []component.ObstacleComponent) (int, bool) {
	for i := range obstacles {
		if obstacles[i].Contains(head) {
			return i, true
		}
	}
	return -1, false
}

// NeckSize returns how many of the newest trail points are excluded from the
// self test; faster heads leave longer straight necks behind them
func NeckSize(speed float64) int {
	switch {
	case speed < parameter.NeckSlowSpeed:
		return parameter.NeckSlowPoints
	case speed < parameter.NeckMediumSpeed:
		return parameter.NeckMediumPoints
	default:
		return parameter.NeckFastPoints
	}
}

// Tolerance returns the half-width of the body hit corridor for a head speed
func Tolerance(speed float64) float64 {
	if speed < parameter.ToleranceSpeed {
		return parameter.ToleranceNarrow
	}
	return parameter.ToleranceWide
}

// SelfHit tests head against the closed polygon of trail points older than the neck
// Skipped (false) below SelfCollisionMinPoints or when the neck swallows the whole trail
func SelfHit(head vmath.Point, trail []vmath.Point, speed float64) bool {
	if len(trail) < parameter.SelfCollisionMinPoints {
		return false
	}
	neck := NeckSize(speed)
	if len(trail) <= neck {
		return false
	}
	d, ok := vmath.PolygonSignedDistance(head, trail[:len(trail)-neck])
	if !ok {
		return false
	}
	return math.Abs(d) <= Tolerance(speed)
}
