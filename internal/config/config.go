// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"mind-tower/internal/save"
)

// Config holds the settings shared by the local game and the SSH server.
// Command-line flags override these values.
type Config struct {
	Store    save.Kind `env:"MINDTOWER_STORE"     envDefault:"file"`
	DataDir  string    `env:"MINDTOWER_DATA_DIR"`
	Seed     int64     `env:"MINDTOWER_SEED"` // 0 seeds from the clock
	LogLevel string    `env:"MINDTOWER_LOG_LEVEL" envDefault:"info"`
	SSHPort  int       `env:"MINDTOWER_SSH_PORT"  envDefault:"2222"`
	HostKey  string    `env:"MINDTOWER_HOST_KEY"  envDefault:"server_host_key"`
}

// Load parses the environment and fills in the data directory.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := save.DataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
