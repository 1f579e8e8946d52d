// Package save persists snapshots under string keys and appends finished
// runs to a JSONL log.
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultKey is the snapshot key of a local game.
const DefaultKey = "mindTowerSave"

var (
	// ErrNotFound means no snapshot is stored under the key.
	ErrNotFound = errors.New("snapshot not found")
	// ErrUnavailable wraps any failure of the backing storage.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is a key-value store for serialized snapshots.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close() error
}

// Kind selects a Store implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Open returns the Store of the given kind rooted at dir.
func Open(kind Kind, dir string) (Store, error) {
	switch kind {
	case KindFile, "":
		return NewFileStore(dir), nil
	case KindSQLite:
		return OpenSQLite(filepath.Join(dir, "mind-tower.db"))
	case KindMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store kind %q", kind)
}

// DataDir returns the directory where saves and run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/mind-tower,
// defaulting to ~/.local/share/mind-tower.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mind-tower"), nil
}

// MemoryStore keeps snapshots in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), d...), nil
}

func (m *MemoryStore) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
