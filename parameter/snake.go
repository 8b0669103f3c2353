package parameter

// Trail length budget
const (
	SnakeInitialLength = 150.0
	SnakeGrowthPerFood = 50.0

	// SnakeMinMovement filters jitter: smoothed moves at or below this add no point
	SnakeMinMovement = 2.0
)

// Self collision
const (
	SelfCollisionMinPoints = 6

	// Neck exclusion by head speed (units per tick)
	NeckSlowSpeed    = 5.0
	NeckMediumSpeed  = 15.0
	NeckSlowPoints   = 6
	NeckMediumPoints = 8
	NeckFastPoints   = 12

	// Hit corridor half-width by head speed
	ToleranceSpeed  = 10.0
	ToleranceNarrow = 2.0
	ToleranceWide   = 5.0
)
