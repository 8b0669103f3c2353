package parameter

// LevelTuning is the per-level configuration applied on every level change
type LevelTuning struct {
	Level      int
	Smoothing  float64 // Exponential smoothing factor for the head, (0,1]
	FoodScale  float64 // Multiplier over FoodBaseSize
	Obstacles  bool    // Regenerate the obstacle field on entry
	MovingFood bool    // Food wanders; created at the current food point if absent
}

// Levels is indexed by level-1; the last row applies to every higher level
var Levels = []LevelTuning{
	{Level: 1, Smoothing: 0.1, FoodScale: 1.0},
	{Level: 2, Smoothing: 0.2, FoodScale: 0.6},
	{Level: 3, Smoothing: 0.2, FoodScale: 0.7, MovingFood: true},
	{Level: 4, Smoothing: 0.25, FoodScale: 0.8, Obstacles: true, MovingFood: true},
}

// TuningFor returns the tuning row for level, clamped to the table
func TuningFor(level int) LevelTuning {
	if level < MinLevel {
		level = MinLevel
	}
	idx := level - 1
	if idx >= len(Levels) {
		idx = len(Levels) - 1
	}
	t := Levels[idx]
	t.Level = level
	return t
}

// ObstacleCount returns how many obstacles a level generates
func ObstacleCount(level int) int {
	if level < ObstacleStartLevel {
		return 0
	}
	return min(ObstacleBaseCount+(level-ObstacleStartLevel), ObstacleMaxCount)
}
