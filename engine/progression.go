package engine

import (
	"github.com/lixenwraith/gesture-snake/parameter"
)

// Progression owns score and level
// Level rises by exactly one when a pickup brings score to level*ScorePerLevel,
// capped at MaxLevel; one pickup never skips levels
type Progression struct {
	score int
	level int
}

func NewProgression() *Progression {
	return &Progression{level: parameter.MinLevel}
}

func (p *Progression) Score() int { return p.score }
func (p *Progression) Level() int { return p.level }

// Tuning returns the tuning row for the current level
func (p *Progression) Tuning() parameter.LevelTuning {
	return parameter.TuningFor(p.level)
}

// Collect records one food pickup and reports whether the level advanced
func (p *Progression) Collect() (leveledUp bool) {
	p.score++
	if p.score >= p.level*parameter.ScorePerLevel && p.level < parameter.MaxLevel {
		p.level++
		return true
	}
	return false
}

// Reset returns to score 0 at the first level
func (p *Progression) Reset() {
	p.score = 0
	p.level = parameter.MinLevel
}
