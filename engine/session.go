package engine

import (
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/lixenwraith/gesture-snake/collision"
	"github.com/lixenwraith/gesture-snake/component"
	"github.com/lixenwraith/gesture-snake/field"
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/physics"
	"github.com/lixenwraith/gesture-snake/trail"
	"github.com/lixenwraith/gesture-snake/vmath"
)

// Options configures a new session
type Options struct {
	Seed uint64          // Used when Rand is nil; 0 is promoted to 1 by FastRand
	Rand *vmath.FastRand // Injected random source, takes precedence over Seed
	ID   string          // Session identifier, generated when empty
}

// Session owns every piece of game state: trail, food, obstacles, score and level
type Session struct {
	id  string
	rng *vmath.FastRand

	trail    *trail.Tracker
	field    *field.Field
	progress *Progression

	food     component.FoodComponent
	wanderer *physics.Wanderer // Non-nil while the level has moving food

	phase  Phase
	tick   uint64
	events EventSet
}

// NewSession builds a session in PhasePlaying with food placed and level 1 tuning applied
func NewSession(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = vmath.NewFastRand(opts.Seed)
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	s := &Session{
		id:       id,
		rng:      rng,
		trail:    trail.NewTracker(parameter.TuningFor(parameter.MinLevel).Smoothing),
		field:    field.New(rng),
		progress: NewProgression(),
	}
	s.rebuild()
	return s
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Seed returns the seed of the session random source
func (s *Session) Seed() uint64 { return s.rng.Seed() }

func (s *Session) Phase() Phase { return s.phase }

// Tick processes one input point. In PhaseGameOver the point is ignored and the
// frozen state is returned.
func (s *Session) Tick(raw vmath.Point) Snapshot {
	s.events = 0
	if s.phase == PhaseGameOver {
		return s.Snapshot()
	}
	s.tick++

	step := s.trail.Advance(raw)
	head := step.Head

	if s.wanderer != nil {
		s.food.Pos = s.wanderer.Tick()
	}

	if collision.FoodHit(head, s.food) {
		s.eat()
	}

	if s.progress.Tuning().Obstacles {
		if i, hit := collision.ObstacleHit(head, s.field.Obstacles()); hit {
			glog.V(1).Infof("session %s: hit obstacle %d at (%.0f, %.0f)", s.id, i, head.X, head.Y)
			s.gameOver()
		}
	}

	if s.phase == PhasePlaying && collision.SelfHit(head, s.trail.Points(), step.Speed) {
		glog.V(1).Infof("session %s: hit snake body at (%.0f, %.0f) speed %.1f", s.id, head.X, head.Y, step.Speed)
		s.gameOver()
	}

	return s.Snapshot()
}

// Reset reconstructs the whole session: empty trail, score 0, level 1,
// no obstacles or moving food, freshly placed food
func (s *Session) Reset() {
	glog.V(1).Infof("session %s: reset (final score %d, level %d)", s.id, s.progress.Score(), s.progress.Level())
	s.rebuild()
}

func (s *Session) rebuild() {
	s.trail.Reset()
	s.progress.Reset()
	s.field.Clear()
	s.wanderer = nil
	s.phase = PhasePlaying
	s.tick = 0
	s.events = 0

	s.food = component.NewFood()
	s.placeFood()
	s.applyLevel()
}

// eat handles a food pickup: respawn, budget growth, scoring, level check
func (s *Session) eat() {
	s.events.add(EventFoodEaten)
	s.placeFood()
	s.trail.Grow(parameter.SnakeGrowthPerFood)

	if s.progress.Collect() {
		s.events.add(EventLevelUp)
		s.applyLevel()
		glog.V(1).Infof("session %s: level up to %d", s.id, s.progress.Level())
	}
	glog.V(2).Infof("session %s: score %d, level %d", s.id, s.progress.Score(), s.progress.Level())
}

// placeFood respawns food clear of obstacles, keeping the old spot on exhaustion
func (s *Session) placeFood() {
	p, ok := s.field.PlaceFood()
	if !ok {
		s.events.add(EventPlacementExhausted)
		return
	}
	s.food.Pos = p
	if s.wanderer != nil {
		s.wanderer.Rehome(p)
	}
}

// applyLevel reconfigures components from the tuning table
func (s *Session) applyLevel() {
	t := s.progress.Tuning()

	s.trail.SetSmoothing(t.Smoothing)

	if t.Obstacles {
		s.field.Generate(t.Level)
	} else {
		s.field.Clear()
	}

	if t.MovingFood {
		if s.wanderer == nil {
			s.wanderer = physics.NewWanderer(s.food.Pos, physics.DefaultWanderProfile, s.rng)
		}
	} else {
		s.wanderer = nil
	}

	s.food.Resize(t.FoodScale)
}

func (s *Session) gameOver() {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.events.add(EventGameOver)
	glog.V(1).Infof("session %s: game over, score %d, level %d", s.id, s.progress.Score(), s.progress.Level())
}

// Snapshot returns the current render state without advancing the session
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:     s.id,
		Tick:          s.tick,
		Phase:         s.phase,
		Trail:         s.trail.CopyPoints(),
		Food:          s.food.Pos,
		FoodW:         s.food.W,
		FoodH:         s.food.H,
		Score:         s.progress.Score(),
		Level:         s.progress.Level(),
		Length:        s.trail.CurrentLength(),
		AllowedLength: s.trail.AllowedLength(),
		Events:        s.events,
	}
	snap.Head, snap.HasHead = s.trail.Head()

	if obs := s.field.Obstacles(); len(obs) > 0 {
		snap.Obstacles = make([]component.ObstacleComponent, len(obs))
		copy(snap.Obstacles, obs)
	}
	return snap
}
