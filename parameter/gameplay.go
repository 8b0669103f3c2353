package parameter

// Playfield extent in input coordinates
const (
	PlayfieldWidth  = 1280
	PlayfieldHeight = 720
)

// Food placement (integer samples, bounds inclusive)
const (
	FoodMinX = 100
	FoodMaxX = 1100
	FoodMinY = 100
	FoodMaxY = 600

	// FoodPlacementAttempts is the retry budget before the previous food point is kept
	FoodPlacementAttempts = 50
)

// Food sizing and hitbox
const (
	FoodBaseSize = 60 // Unscaled width and height in pixels

	FoodHitboxFactor = 0.7
	FoodHitboxMin    = 20.0
)

// Obstacle field (level 4+)
const (
	ObstacleStartLevel = 4
	ObstacleBaseCount  = 3
	ObstacleMaxCount   = 8

	ObstacleMinX = 150
	ObstacleMaxX = 1100
	ObstacleMinY = 150
	ObstacleMaxY = 550

	ObstacleMinSize = 40
	ObstacleMaxSize = 80
)

// Scoring and levels
const (
	MinLevel      = 1
	MaxLevel      = 10
	ScorePerLevel = 3 // Level L advances once score >= L*ScorePerLevel
)
