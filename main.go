package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"mind-tower/internal/config"
	"mind-tower/internal/game"
	"mind-tower/internal/save"
	"mind-tower/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	storeKind := flag.String("store", string(cfg.Store), "Save backend: file, sqlite or memory")
	dataDir := flag.String("data-dir", cfg.DataDir, "Directory for saves, run logs and the log file")
	seed := flag.Int64("seed", cfg.Seed, "Random seed (0 seeds from the clock)")
	flag.Parse()

	// The terminal belongs to the game, so logs go to a file.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(*dataDir, "mind-tower.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Level()}))

	store, err := save.Open(save.Kind(*storeKind), *dataDir)
	if err != nil {
		return fmt.Errorf("open %s store: %w", *storeKind, err)
	}
	defer store.Close()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting", "store", *storeKind, "data_dir", *dataDir, "seed", *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	sess := session.New(store, rand.New(rand.NewSource(*seed)), session.Options{
		Player: os.Getenv("USER"),
		RunDir: *dataDir,
		Logger: logger,
	})
	game.New(screen, sess, rand.New(rand.NewSource(*seed+1)), logger).Run()
	return nil
}
