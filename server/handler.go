package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"prept/config"
	"prept/internal/adapters/api"
	"prept/internal/adapters/storage"
	"prept/internal/domain"
	"prept/internal/services"
	"prept/internal/ui"
	"prept/logging"
)

// sessionModel wraps ui.Model to close the per-session repository when
// the session's program quits
type sessionModel struct {
	*ui.Model
	repo      *storage.SQLiteRepository
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close repository for SSH session",
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

// teaHandler creates a Bubble Tea model for each SSH session. Every
// session gets its own interview controller and API client; the
// transcript database is shared through SQLite.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	serverURL := s.settings.ServerURL
	if serverURL == "" {
		serverURL = config.DefaultServerURL
	}

	timeout := time.Duration(0)
	if s.settings.RequestTimeoutSeconds != nil {
		timeout = time.Duration(*s.settings.RequestTimeoutSeconds) * time.Second
	}

	errorClearDelay := config.DefaultErrorClearDelay * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	positions := []string(s.settings.Positions)
	if len(positions) == 0 {
		positions = domain.Positions
	}

	client := api.NewClient(serverURL, timeout)
	interviewSvc := services.NewInterviewService(client)
	transcriptSvc := services.NewTranscriptService(repo)

	model := ui.NewModel(interviewSvc, transcriptSvc, positions, errorClearDelay)

	wrappedModel := &sessionModel{
		Model:     model,
		repo:      repo,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
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
