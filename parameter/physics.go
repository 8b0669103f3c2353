package parameter

// Wandering food (level 3+)
const (
	WanderSpeed         = 2.0 // Units per tick
	WanderRetargetTicks = 60

	WanderMinX = 100
	WanderMaxX = 1000
	WanderMinY = 100
	WanderMaxY = 600
)
