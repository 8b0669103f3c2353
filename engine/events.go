// Package engine runs a gesture-snake game session.
//
// Tick Pipeline
//
// A Session is advanced one input point at a time. Each Tick runs, in order:
//  1. Trail tracking: smooth the raw point, grow the trail past the jitter
//     threshold, trim to the length budget
//  2. Environment: wandering food steps toward its target (level 3+)
//  3. Collisions: food pickup (may level up and regenerate obstacles),
//     then obstacle contact (level 4+), then self contact
//  4. Snapshot: render-ready copy of the session state
//
// Fatal collisions switch the session to PhaseGameOver. Further ticks ignore
// their input and return the frozen snapshot until Reset.
//
// Tick Events
//
// Things that happened during a tick are reported as an EventSet bitmask on the
// returned Snapshot rather than through callbacks, so consumers (sound, logging,
// replay) observe the session without holding references into it.
//
// Concurrency
//
// A Session is owned by one goroutine. Hosts that feed it from several sources
// must serialize Tick and Reset calls themselves.
package engine

import (
	"strings"
)

// EventType flags one kind of tick outcome
type EventType uint8

const (
	// EventFoodEaten: head entered the food hitbox; score and budget grew
	EventFoodEaten EventType = 1 << iota

	// EventLevelUp: the food pickup crossed the level threshold
	EventLevelUp

	// EventGameOver: obstacle or self contact ended the game this tick
	EventGameOver

	// EventPlacementExhausted: food respawn ran out of attempts and kept its spot
	EventPlacementExhausted
)

// EventSet is the set of events raised during a single tick
type EventSet uint8

// Has checks if e is in the set
func (s EventSet) Has(e EventType) bool {
	return s&EventSet(e) != 0
}

func (s *EventSet) add(e EventType) {
	*s |= EventSet(e)
}

func (e EventType) String() string {
	switch e {
	case EventFoodEaten:
		return "FoodEaten"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	case EventPlacementExhausted:
		return "PlacementExhausted"
	default:
		return "Unknown"
	}
}

func (s EventSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, e := range []EventType{EventFoodEaten, EventLevelUp, EventGameOver, EventPlacementExhausted} {
		if s.Has(e) {
			names = append(names, e.String())
		}
	}
	return strings.Join(names, "|")
}

// Phase is the session lifecycle state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
