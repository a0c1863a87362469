package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/grotlabs/grot/internal/config"
	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/sim"
	"github.com/grotlabs/grot/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.grot/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// RoomsDir is the directory rooms are loaded from.
	RoomsDir string

	// RoomID selects the room served to sessions. Empty picks the first
	// room, or the built-in default when no rooms exist.
	RoomID string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.grot/runs.db",
		RoomsDir:    "rooms",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that drops each session into a
// simulation of the configured room.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	simCfg config.Config
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, simCfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "grot-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		simCfg: simCfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".grot", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. Every
// session runs its own simulation; remote players cannot save rooms over
// each other because the served room is loaded fresh per session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	r, err := s.sessionRoom()
	if err != nil {
		s.logger.Error("could not load room", "error", err)
		return nil, nil
	}
	// Remote sessions never write back to the room file.
	r.FilePath = ""

	grid, err := r.Grid()
	if err != nil {
		s.logger.Error("invalid room", "room", r.ID, "error", err)
		return nil, nil
	}

	model, err := sim.NewModel(
		s.simCfg.TickDuration(),
		grid,
		sim.NewPlayer(s.simCfg.Params(), s.simCfg.Player.X, s.simCfg.Player.Y),
	)
	if err != nil {
		s.logger.Error("could not create simulation", "error", err)
		return nil, nil
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		FrameRate: core.DefaultConfig().FrameRate,
	}

	play := NewPlayModel(model, r, s.store, s.logger, rtCfg)

	return play, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionRoom picks the room a new session plays.
func (s *SSHServer) sessionRoom() (room.Room, error) {
	loader := room.NewLoader(s.config.RoomsDir)

	if s.config.RoomID != "" {
		return loader.LoadByID(s.config.RoomID)
	}

	rooms, err := loader.LoadAll()
	if err == nil && len(rooms) > 0 {
		return rooms[0], nil
	}

	// No rooms on disk; serve the built-in default.
	g, gerr := sim.NewGrid(config.DefaultRoomWidth, config.DefaultRoomHeight, config.DefaultTileSize)
	if gerr != nil {
		return room.Room{}, gerr
	}
	return room.Room{ID: "default", File: room.FromGrid("default", g)}, nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
