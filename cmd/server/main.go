// floorplan-server serves the floor plan viewer over SSH. Every connection
// gets its own viewer starting at its own seed. Build:
//
//	go build -o floorplan-server ./cmd/server
//
// Usage:
//
//	./floorplan-server [--port 2222] [--key server_host_key] [--env .env]
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
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"floorplan/internal/config"
	internalssh "floorplan/internal/ssh"
	"floorplan/internal/viewer"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	envPath := flag.String("env", ".env", "Path to an optional .env file with FLOORPLAN_* settings")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := newHub(cfg, logger)

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication; anyone who can reach the port may browse.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("floorplan SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// hub hands out per-session seeds and builds one viewer per connection.
type hub struct {
	cfg      config.Config
	logger   *slog.Logger
	baseSeed int64
	sessions atomic.Int64
}

func newHub(cfg config.Config, logger *slog.Logger) *hub {
	return &hub{cfg: cfg, logger: logger, baseSeed: cfg.ResolveSeed()}
}

// nextSeed returns a distinct starting seed for each session.
func (h *hub) nextSeed() int64 {
	n := h.sessions.Add(1)
	return h.baseSeed + (n-1)*1000
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the viewer quits so the session stays open.
func (h *hub) handleSession(s gossh.Session) {
	tty, ptyTerm, ok := internalssh.NewSessionTty(s)
	if !ok {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := ptyTerm
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}
	term = sanitizeTerm(term)

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	cfg := h.cfg
	cfg.Seed = h.nextSeed()
	logger := h.logger.With("user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())
	logger.Info("session started", "seed", cfg.Seed, "term", term)
	start := time.Now()

	viewer.New(screen, cfg, logger).Run()
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms lists the terminal types the server will load terminfo for.
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

const fallbackTerm = "xterm-256color"

// sanitizeTerm returns term if it is allowed, otherwise fallbackTerm.
func sanitizeTerm(term string) string {
	if allowedTerms[term] {
		return term
	}
	return fallbackTerm
}

const maxNameBytes = 16

// sanitizeName drops control characters from a client-supplied user name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	signer, pemBytes, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	if err := os.WriteFile(path, pemBytes, 0o600); err != nil {
		log.Printf("could not persist host key: %v", err)
	}
	return signer
}

// newHostKey generates an ed25519 signer and its PEM encoding.
func newHostKey() (gossh.Signer, []byte, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "floorplan server")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal: %w", err)
	}
	return signer, pem.EncodeToMemory(block), nil
}
