// mind-tower-server hosts the tower over SSH. Every connection climbs its
// own tower; progress is saved per SSH user. Build:
//
//	go build -o mind-tower-server ./cmd/server
//
// Usage:
//
//	./mind-tower-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"mind-tower/internal/config"
	"mind-tower/internal/game"
	"mind-tower/internal/save"
	"mind-tower/internal/session"
	internalssh "mind-tower/internal/ssh"
)

const maxNameBytes = 16

// allowedTerms lists the TERM values passed to terminfo. Anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.HostKey, "Path to the PEM-encoded host key (generated if absent)")
	storeKind := flag.String("store", string(cfg.Store), "Save backend: file, sqlite or memory")
	dataDir := flag.String("data-dir", cfg.DataDir, "Directory for saves and run logs")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	store, err := save.Open(save.Kind(*storeKind), *dataDir)
	if err != nil {
		logger.Error("open store", "kind", *storeKind, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := newServer(store, *dataDir, cfg.Seed, logger)
	sshd := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: srv.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the SSH user name only selects the save slot.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile, logger)},
	}

	logger.Info("mind-tower SSH server listening", "port", *port, "store", *storeKind, "data_dir", *dataDir)
	if err := sshd.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// server runs one solo climb per connection against a shared store.
type server struct {
	store    save.Store
	runDir   string
	seed     int64
	logger   *slog.Logger
	mu       sync.Mutex
	climbing map[string]bool // users with an open connection
}

func newServer(store save.Store, runDir string, seed int64, logger *slog.Logger) *server {
	return &server{
		store:    store,
		runDir:   runDir,
		seed:     seed,
		logger:   logger,
		climbing: make(map[string]bool),
	}
}

// handleSession is the SSH handler for one connection. It blocks until the
// player leaves so the SSH session stays open.
func (s *server) handleSession(sess gossh.Session) {
	name := sanitizeName(sess.User())
	if name == "" {
		name = "anonymous"
	}
	logger := s.logger.With("player", name, "remote", sess.RemoteAddr().String())

	if !s.acquire(name) {
		fmt.Fprintf(sess, "%s is already climbing from another terminal.\n", name)
		return
	}
	defer s.release(name)

	screen, err := internalssh.NewScreen(sess, terminal(sess.Environ()))
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintln(sess, "This game needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	climb := session.New(s.store, mathrand.New(mathrand.NewSource(seed)), session.Options{
		Key:    save.DefaultKey + ":" + name,
		Player: name,
		RunDir: s.runDir,
		Logger: logger,
	})

	logger.Info("player connected")
	game.New(screen, climb, mathrand.New(mathrand.NewSource(seed+1)), logger).Run()
	logger.Info("player left", "floor", climb.State().Floor)
}

func (s *server) acquire(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.climbing[name] {
		return false
	}
	s.climbing[name] = true
	return true
}

func (s *server) release(name string) {
	s.mu.Lock()
	delete(s.climbing, name)
	s.mu.Unlock()
}

// terminal picks the TERM to render with from the client's environment.
func terminal(environ []string) string {
	for _, kv := range environ {
		if term, ok := strings.CutPrefix(kv, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		logger.Error("generate host key", "error", err)
		os.Exit(1)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		logger.Error("create signer", "error", err)
		os.Exit(1)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "mind-tower server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer
}
