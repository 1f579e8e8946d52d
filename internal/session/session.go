// Package session binds one tower engine to one snapshot key: it loads or
// starts a climb, persists after every settled transition and records
// finished runs.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"mind-tower/internal/save"
	"mind-tower/internal/tower"
)

// Result is an engine outcome plus any persistence problem worth showing.
type Result struct {
	tower.Outcome
	// Notice is non-empty when saving failed; play continues in memory.
	Notice string
}

// Options configures a Session.
type Options struct {
	Key    string // snapshot key; save.DefaultKey when empty
	Player string // recorded in run logs
	RunDir string // directory of runs.jsonl; run logs are skipped when empty
	Logger *slog.Logger
}

// Session is one player's climb. It is not safe for concurrent use.
type Session struct {
	eng    *tower.Engine
	store  save.Store
	rng    tower.Rng
	opts   Options
	logger *slog.Logger

	// offline is set when the save could not be read. The climb then runs
	// in memory only so the unread save is never overwritten.
	offline bool
	// resumedFrom is the floor a loaded climb resumed on, 0 for a fresh one.
	resumedFrom int

	relicsFound int
	trapsHit    int
	cause       string
}

const (
	noticeUnreadable = "Could not read your save; starting a new climb."
	noticeOffline    = "Your save could not be read; this climb is not being saved."
	noticeSaveFailed = "Progress could not be saved."
)

func New(store save.Store, rng tower.Rng, opts Options) *Session {
	if opts.Key == "" {
		opts.Key = save.DefaultKey
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:  store,
		rng:    rng,
		opts:   opts,
		logger: logger.With("key", opts.Key),
	}
}

// Start loads the saved climb, or begins a fresh one when there is none or
// it cannot be used, and renders the current floor. When the store cannot
// be read at all the session stays offline: play continues but nothing is
// saved under the key.
func (s *Session) Start() Result {
	state, notice := s.load()
	if state.Floor > 1 || len(state.LastSafeDoors) > 0 {
		s.resumedFrom = state.Floor
	}
	s.eng = tower.NewEngine(state, s.rng)
	out := s.eng.Start()
	if s.offline {
		return Result{Outcome: out, Notice: notice}
	}
	res := s.persist(out)
	if res.Notice == "" {
		res.Notice = notice
	}
	return res
}

func (s *Session) load() (tower.State, string) {
	s.offline = false
	data, err := s.store.Load(s.opts.Key)
	switch {
	case errors.Is(err, save.ErrNotFound):
		s.logger.Info("no saved climb, starting fresh")
		return tower.NewState(), ""
	case err != nil:
		s.logger.Warn("load failed, playing without saving", "error", err)
		s.offline = true
		return tower.NewState(), noticeUnreadable
	}

	state, err := tower.Decode(data)
	switch {
	case errors.Is(err, tower.ErrNoSnapshot):
		return tower.NewState(), ""
	case err != nil:
		s.logger.Warn("corrupt save, starting fresh", "error", err)
		return tower.NewState(), "Your save was corrupt; starting a new climb."
	case state.Lives == 0:
		s.logger.Info("saved climb had no lives left, starting fresh")
		return tower.NewState(), ""
	}
	s.logger.Info("resumed climb", "floor", state.Floor, "lives", state.Lives)
	return state, ""
}

// State returns a copy of the current state.
func (s *Session) State() tower.State { return s.eng.State() }

// Phase returns the engine phase.
func (s *Session) Phase() tower.Phase { return s.eng.Phase() }

// Apply forwards cmd to the engine. Engine errors (an invalid door, a
// command out of phase) are returned and leave the climb unchanged.
func (s *Session) Apply(cmd tower.Command) (Result, error) {
	if cmd.Kind == tower.CmdReset {
		return s.Reset(), nil
	}
	out, err := s.eng.Apply(cmd)
	if err != nil {
		return Result{}, err
	}
	s.track(out.Events)
	return s.persist(out), nil
}

// Reset abandons the climb and persists the fresh state immediately.
func (s *Session) Reset() Result {
	s.relicsFound, s.trapsHit, s.cause = 0, 0, ""
	s.resumedFrom = 0
	out := s.eng.Reset()
	s.logger.Info("climb reset")
	return s.persist(out)
}

func (s *Session) track(events []tower.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case tower.EventRelicFound:
			s.relicsFound++
		case tower.EventTrapHit:
			s.trapsHit++
			s.cause = "trap"
		case tower.EventMiniBossFail:
			s.cause = "mini-boss"
		case tower.EventGameOver:
			s.recordRun(ev.Floor)
		}
	}
}

// persist saves the settled state. A pending mini-boss is never saved; at
// game over the fresh climb is saved so a reload cannot undo the loss.
func (s *Session) persist(out tower.Outcome) Result {
	res := Result{Outcome: out}
	if s.offline {
		res.Notice = noticeOffline
		return res
	}
	var state tower.State
	switch out.Phase {
	case tower.PhaseMiniBoss:
		return res
	case tower.PhaseGameOver:
		state = tower.NewState()
	default:
		state = s.eng.State()
	}

	data, err := tower.Encode(state)
	if err == nil {
		err = s.store.Save(s.opts.Key, data)
	}
	if err != nil {
		s.logger.Warn("save failed", "error", err)
		res.Notice = noticeSaveFailed
	}
	return res
}

func (s *Session) recordRun(floor int) {
	st := s.eng.State()
	rl := save.NewRunLog()
	rl.Player = s.opts.Player
	rl.FloorReached = floor
	rl.RelicsFound = s.relicsFound
	rl.TrapsHit = s.trapsHit
	rl.CauseOfDeath = s.cause
	rl.ResumedFrom = s.resumedFrom
	rl.Achievements = []string{}
	for _, id := range tower.Unlocked(st.Achievements) {
		rl.Achievements = append(rl.Achievements, string(id))
	}
	s.logger.Info("climb over", "run", rl.ID, "floor", floor, "cause", rl.CauseOfDeath)

	if s.opts.RunDir == "" {
		return
	}
	if err := save.AppendRunLog(s.opts.RunDir, rl); err != nil {
		s.logger.Warn("run log not written", "error", fmt.Errorf("append run log: %w", err))
	}
}
