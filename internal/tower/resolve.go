package tower

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChoice is returned for a door outside 1..DoorCount(floor).
	ErrInvalidChoice = errors.New("invalid door choice")
)

const (
	trapChance      = 0.5
	lensTrapChance  = 0.25
	bonusRoomChance = 0.15
	bonusRoomAfter  = 3 // bonus rooms open above this floor
	miniBossEvery   = 5
	miniBossAnswers = 3
)

// Step reports where a resolution stopped.
type Step uint8

const (
	// StepDone means the transition finished: either the next floor is
	// ready or the run is over.
	StepDone Step = iota
	// StepMiniBoss means the floor is a mini-boss floor and the
	// transition is suspended until ResolveMiniBoss supplies a guess.
	StepMiniBoss
)

// ResolveChoice resolves the player picking chosen when safe is the safe
// door. It returns the new state and the narrative events in order. When
// the result lands on a mini-boss floor it stops with StepMiniBoss and the
// caller must continue with ResolveMiniBoss. s is never modified.
func ResolveChoice(s State, chosen, safe int, rng Rng) (State, []Event, Step, error) {
	if chosen < 1 || chosen > DoorCount(s.Floor) {
		return s, nil, StepDone, fmt.Errorf("%w: door %d of %d", ErrInvalidChoice, chosen, DoorCount(s.Floor))
	}
	next := s.Clone()
	var events []Event

	if chosen == safe {
		next.ConsecutiveSafeDoors++
		events = append(events, Event{Kind: EventSafeAdvance, Cue: CueSuccess})
		next.Floor++
	} else {
		next.ConsecutiveSafeDoors = 0
		chance := trapChance
		if next.HasRelic(VisionLens) {
			chance = lensTrapChance
		}
		if rng.Float64() < chance {
			if next.Lives == 1 && next.consumeRelic(PhoenixFeather) {
				events = append(events, Event{Kind: EventPhoenixSave, Cue: CueTrap})
			} else {
				next.Lives--
				next.NoDamageThisRun = false
				events = append(events, Event{Kind: EventTrapHit, Cue: CueTrap})
			}
		} else {
			events = append(events, Event{Kind: EventLoopSameFloor, Cue: CueDefault})
		}
		next.Achievements.TrapsDodged++
	}

	if next.Floor > bonusRoomAfter && rng.Float64() < bonusRoomChance {
		relic := drawRelic(rng)
		next.Inventory = append(next.Inventory, relic)
		events = append(events, Event{Kind: EventRelicFound, Relic: relic})
	}

	if IsMiniBossFloor(next.Floor) {
		events = append(events, Event{Kind: EventMiniBossChallenge})
		return next, events, StepMiniBoss, nil
	}

	next, events = finish(next, events, rng)
	return next, events, StepDone, nil
}

// ResolveMiniBoss completes a transition suspended on a mini-boss floor.
// answered is false when the player declined to answer; that and any
// guess outside 1..3 count as a miss.
func ResolveMiniBoss(s State, guess int, answered bool, rng Rng) (State, []Event) {
	next := s.Clone()
	var events []Event

	correct := rng.Intn(miniBossAnswers) + 1
	if answered && guess == correct {
		events = append(events, Event{Kind: EventMiniBossSuccess, Cue: CueSuccess})
	} else {
		next.Lives--
		next.NoDamageThisRun = false
		events = append(events, Event{Kind: EventMiniBossFail, Cue: CueTrap})
	}
	return finish(next, events, rng)
}

// IsMiniBossFloor reports whether floor challenges the player with a mini-boss.
func IsMiniBossFloor(floor int) bool {
	return floor%miniBossEvery == 0
}

// finish runs the tail of every transition: achievements, then either the
// game over or the next floor's safe door.
func finish(s State, events []Event, rng Rng) (State, []Event) {
	if s.Lives < 0 {
		s.Lives = 0
	}
	s, unlocked := Evaluate(s)
	for _, id := range unlocked {
		events = append(events, Event{Kind: EventAchievementUnlocked, Achievement: id})
	}

	if s.Lives <= 0 {
		return s, append(events, Event{Kind: EventGameOver, Floor: s.Floor})
	}

	s, _, memory := SelectSafeDoor(s, rng)
	return s, append(events, Event{
		Kind:   EventNextFloorReady,
		Floor:  s.Floor,
		Doors:  DoorCount(s.Floor),
		Memory: memory,
	})
}
