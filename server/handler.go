package server

import (
	"fmt"
	"time"

	"tempo/logging"
	"tempo/storage"
	"tempo/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
)

// sessionModel wraps ui.Model to handle resource cleanup
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
	store     *storage.Store
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check for quit message to trigger cleanup
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		// Close store before quitting
		if err := s.store.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	// Get PTY info
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Open shared database
	store, err := storage.NewStore(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	// Sound cues would play on the server host, not the client, so remote
	// sessions are always silent
	model := ui.NewModel(store, s.countdownSeconds, false)

	// Wrap model to handle cleanup
	wrappedModel := &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
		store:     store,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
