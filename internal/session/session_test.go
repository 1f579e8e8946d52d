package session

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mind-tower/internal/save"
	"mind-tower/internal/tower"
)

// fixedRng returns queued draws, then zeroes.
type fixedRng struct {
	floats []float64
	ints   []int
}

func (r *fixedRng) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *fixedRng) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Load(string) ([]byte, error) { return nil, save.ErrUnavailable }
func (brokenStore) Save(string, []byte) error   { return save.ErrUnavailable }
func (brokenStore) Close() error                { return nil }

// flakyStore fails the first loads, then behaves like the memory store
// underneath.
type flakyStore struct {
	*save.MemoryStore
	failLoads int
}

func (f *flakyStore) Load(key string) ([]byte, error) {
	if f.failLoads > 0 {
		f.failLoads--
		return nil, save.ErrUnavailable
	}
	return f.MemoryStore.Load(key)
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func loadSaved(t *testing.T, st save.Store, key string) tower.State {
	t.Helper()
	data, err := st.Load(key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := tower.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return s
}

func TestStartFreshPersists(t *testing.T) {
	st := save.NewMemoryStore()
	sess := New(st, &fixedRng{ints: []int{1}}, Options{Logger: quietLogger()})

	res := sess.Start()
	if res.Notice != "" {
		t.Errorf("notice = %q, want none", res.Notice)
	}
	if res.Floor != 1 || res.Lives != 3 || res.Doors != 3 {
		t.Errorf("outcome = %+v", res.Outcome)
	}
	saved := loadSaved(t, st, save.DefaultKey)
	if saved.Floor != 1 || len(saved.LastSafeDoors) != 1 {
		t.Errorf("saved = %+v, want floor 1 with one rendered floor", saved)
	}
}

func TestStartResumesSave(t *testing.T) {
	st := save.NewMemoryStore()
	prev := tower.NewState()
	prev.Floor = 6
	prev.Lives = 2
	prev.LastSafeDoors = []int{1, 2, 3, 4, 5, 6}
	data, _ := tower.Encode(prev)
	st.Save("mindTowerSave:ada", data)

	sess := New(st, &fixedRng{}, Options{Key: "mindTowerSave:ada", Logger: quietLogger()})
	res := sess.Start()
	if res.Floor != 6 || res.Lives != 2 {
		t.Errorf("outcome = %+v, want floor 6 with 2 lives", res.Outcome)
	}
	if !res.Memory {
		t.Error("floor 6 with history should present a memory door")
	}
	if got := sess.State().LastSafeDoors; got[len(got)-1] != 5 {
		t.Errorf("safe door = %d, want 5 from two floors back", got[len(got)-1])
	}
}

func TestStartRecoversFromCorruptSave(t *testing.T) {
	st := save.NewMemoryStore()
	st.Save(save.DefaultKey, []byte("{broken"))

	sess := New(st, &fixedRng{}, Options{Logger: quietLogger()})
	res := sess.Start()
	if res.Notice == "" {
		t.Error("expected a notice about the unreadable save")
	}
	if res.Floor != 1 || res.Lives != 3 {
		t.Errorf("outcome = %+v, want a fresh climb", res.Outcome)
	}
	if saved := loadSaved(t, st, save.DefaultKey); saved.Floor != 1 {
		t.Errorf("corrupt save was not replaced: %+v", saved)
	}
}

func TestStartIgnoresDeadSave(t *testing.T) {
	st := save.NewMemoryStore()
	st.Save(save.DefaultKey, []byte(`{"floor":8,"lives":0}`))

	sess := New(st, &fixedRng{}, Options{Logger: quietLogger()})
	if res := sess.Start(); res.Floor != 1 || res.Lives != 3 {
		t.Errorf("outcome = %+v, want a fresh climb", res.Outcome)
	}
}

func TestStorageFailureDoesNotBlockPlay(t *testing.T) {
	sess := New(brokenStore{}, &fixedRng{ints: []int{0, 0}}, Options{Logger: quietLogger()})
	res := sess.Start()
	if res.Notice == "" {
		t.Error("expected a notice when storage is unavailable")
	}

	res, err := sess.Apply(tower.ChooseDoor(1))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Floor != 2 {
		t.Errorf("floor = %d, want 2", res.Floor)
	}
	if res.Notice == "" {
		t.Error("expected a save notice after the move")
	}
}

func TestUnreadableSaveIsNotOverwritten(t *testing.T) {
	st := &flakyStore{MemoryStore: save.NewMemoryStore(), failLoads: 1}
	prev := tower.NewState()
	prev.Floor = 12
	prev.LastSafeDoors = []int{1, 2, 3}
	data, _ := tower.Encode(prev)
	st.Save(save.DefaultKey, data)

	sess := New(st, &fixedRng{ints: []int{0, 0}}, Options{Logger: quietLogger()})
	res := sess.Start()
	if res.Floor != 1 || res.Notice == "" {
		t.Errorf("start = %+v notice %q, want a fresh climb with a notice", res.Outcome, res.Notice)
	}
	if saved := loadSaved(t, st, save.DefaultKey); saved.Floor != 12 {
		t.Fatalf("saved floor after a failed read = %d, want 12", saved.Floor)
	}

	res, err := sess.Apply(tower.ChooseDoor(1))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Floor != 2 || res.Notice == "" {
		t.Errorf("move = %+v notice %q, want floor 2 with a notice", res.Outcome, res.Notice)
	}
	if saved := loadSaved(t, st, save.DefaultKey); saved.Floor != 12 {
		t.Errorf("saved floor after playing offline = %d, want 12", saved.Floor)
	}

	// A later session that can read the store resumes the real climb.
	next := New(st, &fixedRng{}, Options{Logger: quietLogger()})
	if res := next.Start(); res.Floor != 12 {
		t.Errorf("resumed floor = %d, want 12", res.Floor)
	}
}

func TestApplyPassesEngineErrors(t *testing.T) {
	sess := New(save.NewMemoryStore(), &fixedRng{}, Options{Logger: quietLogger()})
	sess.Start()
	if _, err := sess.Apply(tower.ChooseDoor(9)); !errors.Is(err, tower.ErrInvalidChoice) {
		t.Errorf("err = %v, want ErrInvalidChoice", err)
	}
	if _, err := sess.Apply(tower.MiniBossGuess(1)); !errors.Is(err, tower.ErrNoChallenge) {
		t.Errorf("err = %v, want ErrNoChallenge", err)
	}
}

func TestMiniBossPendingIsNotSaved(t *testing.T) {
	st := save.NewMemoryStore()
	prev := tower.NewState()
	prev.Floor = 4
	data, _ := tower.Encode(prev)
	st.Save(save.DefaultKey, data)

	// Start picks door 1 of 5; the bonus draw misses.
	sess := New(st, &fixedRng{floats: []float64{0.9}, ints: []int{0}}, Options{Logger: quietLogger()})
	sess.Start()
	res, err := sess.Apply(tower.ChooseDoor(1))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Phase != tower.PhaseMiniBoss {
		t.Fatalf("phase = %v, want mini-boss", res.Phase)
	}
	if saved := loadSaved(t, st, save.DefaultKey); saved.Floor != 4 {
		t.Errorf("saved floor = %d, want 4 while the mini-boss is pending", saved.Floor)
	}
}

func TestGameOverRecordsRunAndResets(t *testing.T) {
	dir := t.TempDir()
	st := save.NewMemoryStore()
	prev := tower.NewState()
	prev.Floor = 3
	prev.Lives = 1
	prev.Achievements.TrapsDodged = 2
	data, _ := tower.Encode(prev)
	st.Save(save.DefaultKey, data)

	// Start picks door 1; the wrong door fires a trap.
	rng := &fixedRng{floats: []float64{0.1}, ints: []int{0}}
	sess := New(st, rng, Options{Player: "ada", RunDir: dir, Logger: quietLogger()})
	sess.Start()

	res, err := sess.Apply(tower.ChooseDoor(2))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Phase != tower.PhaseGameOver {
		t.Fatalf("phase = %v, want game-over", res.Phase)
	}
	if saved := loadSaved(t, st, save.DefaultKey); saved.Lives != 3 || saved.Floor != 1 {
		t.Errorf("saved after game over = %+v, want a fresh climb", saved)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl: %v", err)
	}
	var rl save.RunLog
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &rl); err != nil {
		t.Fatalf("unmarshal run log: %v", err)
	}
	if rl.FloorReached != 3 || rl.CauseOfDeath != "trap" || rl.TrapsHit != 1 || rl.Player != "ada" {
		t.Errorf("run log = %+v", rl)
	}
	if rl.ResumedFrom != 3 {
		t.Errorf("resumed_from = %d, want 3", rl.ResumedFrom)
	}
	if len(rl.Achievements) != 1 || rl.Achievements[0] != "trapsDodged" {
		t.Errorf("achievements = %v, want [trapsDodged]", rl.Achievements)
	}

	res, err = sess.Apply(tower.Command{Kind: tower.CmdReset})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if res.Phase != tower.PhaseChoosing || res.Floor != 1 || res.Lives != 3 {
		t.Errorf("after reset = %+v", res.Outcome)
	}
	if got := sess.State(); got.Achievements != (tower.Achievements{}) || !got.NoDamageThisRun {
		t.Errorf("state after reset = %+v, want defaults", got)
	}
}
