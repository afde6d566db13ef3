// Package tui provides terminal UI components including SSH server support via Wish.
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

	"github.com/vovakirdan/tileforge/internal/config"
	"github.com/vovakirdan/tileforge/internal/storage"
	"github.com/vovakirdan/tileforge/internal/tilemap"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tileforge/host_key.
	HostKeyPath string

	// DBPath is the path to the map catalog database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Viewer controls how layers are rendered in remote sessions.
	Viewer config.ViewerConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tileforge/catalog.db",
		IdleTimeout: 30 * time.Minute,
		Viewer:      config.DefaultConfig().Viewer,
	}
}

// SSHServer wraps a Wish SSH server serving the map catalog browser.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tileforge-ssh",
	})

	// Open the catalog
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open map catalog", "error", err)
		// Continue without a catalog; sessions will see an empty picker
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tileforge", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
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

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.store, s.config.Viewer, sshSession.User(),
		pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
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

	// Setup signal handling for graceful shutdown
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

// SessionModel manages the full browsing flow: picker -> viewer -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	viewer   config.ViewerConfig
	username string
	width    int
	height   int
	picker   PickerModel
	vw       *ViewerModel
	inViewer bool
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, viewer config.ViewerConfig, username string, width, height int) SessionModel {
	return SessionModel{
		store:    store,
		viewer:   viewer,
		username: username,
		width:    width,
		height:   height,
		picker:   NewPickerModel(store, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inViewer && m.vw != nil {
		return m.updateViewer(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a layer.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newPicker, cmd := m.picker.Update(msg)
	if pickerModel, ok := newPicker.(PickerModel); ok {
		m.picker = pickerModel
	}

	// Check if user quit
	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if a layer was chosen
	if chosen := m.picker.Chosen(); chosen != nil {
		g, err := tilemap.Load(chosen.MapPath, chosen.Name)
		if err != nil {
			// The map may have moved since the scan; stay in the picker
			m.picker = NewPickerModel(m.store, m.width, m.height)
			m.picker.SetStatus(fmt.Sprintf("cannot open %s: %v", chosen.Name, err))
			return m, m.picker.Init()
		}

		title := fmt.Sprintf("%s:%s", filepath.Base(chosen.MapPath), chosen.Name)
		vw := NewViewerModel(g, m.viewer, title, m.width, m.height)
		m.vw = &vw
		m.inViewer = true

		return m, m.vw.Init()
	}

	return m, cmd
}

// updateViewer handles updates while panning a layer.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.vw.Update(msg)
	if viewerModel, ok := newModel.(ViewerModel); ok {
		m.vw = &viewerModel
	}

	// Check if user went back to the picker
	if m.vw.IsGoingBack() {
		m.inViewer = false
		m.vw = nil
		m.picker = NewPickerModel(m.store, m.width, m.height)
		return m, m.picker.Init()
	}

	// Check if user quit entirely
	if m.vw.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inViewer && m.vw != nil {
		return m.vw.View()
	}

	return m.picker.View()
}

// RunLocalSession runs the picker-viewer flow in the local terminal.
func RunLocalSession(store *storage.Store, viewer config.ViewerConfig, width, height int) error {
	model := NewSessionModel(store, viewer, "local", width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
