package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"mind-tower/internal/save"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	t.Setenv("MINDTOWER_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != save.KindFile {
		t.Errorf("Store = %q, want file", cfg.Store)
	}
	if want := filepath.Join(tmp, "mind-tower"); cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
	if cfg.SSHPort != 2222 {
		t.Errorf("SSHPort = %d, want 2222", cfg.SSHPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MINDTOWER_STORE", "sqlite")
	t.Setenv("MINDTOWER_DATA_DIR", "/srv/tower")
	t.Setenv("MINDTOWER_SEED", "42")
	t.Setenv("MINDTOWER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != save.KindSQLite || cfg.DataDir != "/srv/tower" || cfg.Seed != 42 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("MINDTOWER_SEED", "lucky")
	if _, err := Load(); err == nil {
		t.Error("Load accepted a non-numeric seed")
	}
}
