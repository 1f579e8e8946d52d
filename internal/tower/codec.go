package tower

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoSnapshot means the stored data is empty or null.
	ErrNoSnapshot = errors.New("no snapshot")
	// ErrCorruptSnapshot wraps any parse failure or out-of-range value.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// snapshot is the persisted shape. The field names are shared with saves
// written by the browser version of the game, so they must not change.
type snapshot struct {
	Floor                *int          `json:"floor"`
	Lives                *int          `json:"lives"`
	Inventory            []Relic       `json:"inventory"`
	Achievements         *Achievements `json:"achievements"`
	LastSafeDoors        []int         `json:"lastSafeDoors"`
	ConsecutiveSafeDoors *int          `json:"consecutiveSafeDoors"`
	NoDamageThisRun      *bool         `json:"noDamageThisRun"`
}

// Encode serializes s as a JSON snapshot.
func Encode(s State) ([]byte, error) {
	snap := snapshot{
		Floor:                &s.Floor,
		Lives:                &s.Lives,
		Inventory:            s.Inventory,
		Achievements:         &s.Achievements,
		LastSafeDoors:        s.LastSafeDoors,
		ConsecutiveSafeDoors: &s.ConsecutiveSafeDoors,
		NoDamageThisRun:      &s.NoDamageThisRun,
	}
	if snap.Inventory == nil {
		snap.Inventory = []Relic{}
	}
	if snap.LastSafeDoors == nil {
		snap.LastSafeDoors = []int{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot written by Encode. Missing optional fields take
// their fresh-climb defaults. It returns ErrNoSnapshot for empty input and
// an error wrapping ErrCorruptSnapshot when the data cannot be used.
func Decode(data []byte) (State, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return State{}, ErrNoSnapshot
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if snap.Floor == nil || snap.Lives == nil {
		return State{}, fmt.Errorf("%w: missing floor or lives", ErrCorruptSnapshot)
	}

	s := NewState()
	s.Floor = *snap.Floor
	s.Lives = *snap.Lives
	if snap.Inventory != nil {
		s.Inventory = snap.Inventory
	}
	if snap.Achievements != nil {
		s.Achievements = *snap.Achievements
	}
	if snap.LastSafeDoors != nil {
		s.LastSafeDoors = snap.LastSafeDoors
	}
	if snap.ConsecutiveSafeDoors != nil {
		s.ConsecutiveSafeDoors = *snap.ConsecutiveSafeDoors
	}
	if snap.NoDamageThisRun != nil {
		s.NoDamageThisRun = *snap.NoDamageThisRun
	}

	if !s.Valid() {
		return State{}, fmt.Errorf("%w: out of range values", ErrCorruptSnapshot)
	}
	return s, nil
}
