package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records the summary of one finished climb.
type RunLog struct {
	ID           string    `json:"id"`
	Player       string    `json:"player,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	FloorReached int       `json:"floor_reached"`
	// RelicsFound and TrapsHit count what happened since the climb was
	// started or resumed by this process; snapshots do not carry them.
	RelicsFound  int      `json:"relics_found"`
	TrapsHit     int      `json:"traps_hit"`
	Achievements []string `json:"achievements"`
	CauseOfDeath string   `json:"cause_of_death"` // "trap" or "mini-boss"
	// ResumedFrom is the floor a saved climb was resumed on; 0 when the
	// counts above cover the whole climb.
	ResumedFrom int `json:"resumed_from,omitempty"`
}

// NewRunLog returns a RunLog stamped with a fresh id and the current time.
func NewRunLog() RunLog {
	return RunLog{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Timestamp: time.Now().UTC(),
	}
}

// AppendRunLog appends rl as a single JSON line to runs.jsonl in dir.
func AppendRunLog(dir string, rl RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	data, err := json.Marshal(rl)
	if err != nil {
		return fmt.Errorf("marshal run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
