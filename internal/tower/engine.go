package tower

import (
	"errors"
	"fmt"
)

var (
	// ErrAwaitingGuess is returned for a door choice while a mini-boss waits.
	ErrAwaitingGuess = errors.New("mini-boss is waiting for a guess")
	// ErrNoChallenge is returned for a guess when no mini-boss is pending.
	ErrNoChallenge = errors.New("no mini-boss challenge pending")
	// ErrGameOver is returned for a door choice after the run ended.
	ErrGameOver = errors.New("game is over; reset to play again")
)

// Phase tracks which command the engine accepts next.
type Phase uint8

const (
	PhaseChoosing Phase = iota
	PhaseMiniBoss
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseChoosing:
		return "choosing"
	case PhaseMiniBoss:
		return "mini-boss"
	case PhaseGameOver:
		return "game-over"
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// CommandKind selects what a Command asks of the engine.
type CommandKind uint8

const (
	CmdChooseDoor CommandKind = iota
	CmdMiniBossGuess
	CmdNoAnswer
	CmdReset
)

// Command is one input from the presentation layer.
type Command struct {
	Kind  CommandKind
	Door  int // CmdChooseDoor
	Guess int // CmdMiniBossGuess
}

// ChooseDoor returns the command for picking door (1-based).
func ChooseDoor(door int) Command { return Command{Kind: CmdChooseDoor, Door: door} }

// MiniBossGuess returns the command for answering a mini-boss with n.
func MiniBossGuess(n int) Command { return Command{Kind: CmdMiniBossGuess, Guess: n} }

// Outcome is what the presentation layer renders after a command.
type Outcome struct {
	Events []Event
	Cues   []Cue
	Floor  int
	Lives  int
	Doors  int
	Memory bool // the current floor's safe door repeats the one from two floors back
	Phase  Phase
}

// Engine drives one climb. It is not safe for concurrent use; commands are
// handled one at a time, each to completion.
type Engine struct {
	state  State
	rng    Rng
	safe   int
	memory bool
	phase  Phase
}

// NewEngine wraps s, usually a loaded snapshot or NewState(). Call Start
// before the first command.
func NewEngine(s State, rng Rng) *Engine {
	return &Engine{state: s.Clone(), rng: rng}
}

// State returns a copy of the current state.
func (e *Engine) State() State { return e.state.Clone() }

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Start renders the current floor: it picks the safe door and evaluates
// achievements, as happens whenever a floor is shown.
func (e *Engine) Start() Outcome {
	e.phase = PhaseChoosing
	var events []Event
	e.state, e.safe, e.memory = SelectSafeDoor(e.state, e.rng)
	var unlocked []AchievementID
	e.state, unlocked = Evaluate(e.state)
	for _, id := range unlocked {
		events = append(events, Event{Kind: EventAchievementUnlocked, Achievement: id})
	}
	events = append(events, Event{
		Kind:   EventNextFloorReady,
		Floor:  e.state.Floor,
		Doors:  DoorCount(e.state.Floor),
		Memory: e.memory,
	})
	return e.outcome(events, nil)
}

// Reset discards the climb and starts over from NewState.
func (e *Engine) Reset() Outcome {
	e.state = NewState()
	return e.Start()
}

// Apply handles one command.
func (e *Engine) Apply(cmd Command) (Outcome, error) {
	switch cmd.Kind {
	case CmdChooseDoor:
		return e.choose(cmd.Door)
	case CmdMiniBossGuess:
		return e.answer(cmd.Guess, true)
	case CmdNoAnswer:
		return e.answer(0, false)
	case CmdReset:
		return e.Reset(), nil
	}
	return Outcome{}, fmt.Errorf("unknown command kind %d", cmd.Kind)
}

func (e *Engine) choose(door int) (Outcome, error) {
	switch e.phase {
	case PhaseMiniBoss:
		return Outcome{}, ErrAwaitingGuess
	case PhaseGameOver:
		return Outcome{}, ErrGameOver
	}
	next, events, step, err := ResolveChoice(e.state, door, e.safe, e.rng)
	if err != nil {
		return Outcome{}, err
	}
	e.state = next
	if step == StepMiniBoss {
		e.phase = PhaseMiniBoss
		return e.outcome(events, []Cue{CueClick}), nil
	}
	e.settle(events)
	return e.outcome(events, []Cue{CueClick}), nil
}

func (e *Engine) answer(guess int, answered bool) (Outcome, error) {
	if e.phase != PhaseMiniBoss {
		return Outcome{}, ErrNoChallenge
	}
	next, events := ResolveMiniBoss(e.state, guess, answered, e.rng)
	e.state = next
	e.settle(events)
	return e.outcome(events, nil), nil
}

// settle updates the phase and the pending safe door from the tail event
// of a finished transition.
func (e *Engine) settle(events []Event) {
	last := events[len(events)-1]
	switch last.Kind {
	case EventGameOver:
		e.phase = PhaseGameOver
		e.safe, e.memory = 0, false
	case EventNextFloorReady:
		e.phase = PhaseChoosing
		e.safe = e.state.LastSafeDoors[len(e.state.LastSafeDoors)-1]
		e.memory = last.Memory
	}
}

func (e *Engine) outcome(events []Event, cues []Cue) Outcome {
	for _, ev := range events {
		if ev.Cue != CueNone {
			cues = append(cues, ev.Cue)
		}
	}
	return Outcome{
		Events: events,
		Cues:   cues,
		Floor:  e.state.Floor,
		Lives:  e.state.Lives,
		Doors:  DoorCount(e.state.Floor),
		Memory: e.memory,
		Phase:  e.phase,
	}
}
