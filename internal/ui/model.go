package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"prept/internal/domain"
	"prept/internal/services"
	"prept/internal/theme"
	"prept/logging"
)

type uiState int

const (
	stateWelcome uiState = iota
	stateSetup
	stateStarting
	stateInterview
	stateComplete
)

// Model is the top-level Bubble Tea model. It renders the controller's
// state and translates key presses into controller calls; every remote
// response is applied on the event loop via a typed message.
type Model struct {
	archivedID      string
	answer          textarea.Model
	autoKeywords    []string
	autoPosition    string
	err             error
	errorClearDelay time.Duration
	height          int
	interview       *domain.Interview
	interviewSvc    *services.InterviewService
	keys            keyMap
	positions       []string
	progress        progress.Model
	setupForm       *SetupForm
	spinner         spinner.Model
	state           uiState
	summary         viewport.Model
	transcriptSvc   *services.TranscriptService
	width           int
}

// NewModel creates the top-level model
func NewModel(
	interviewSvc *services.InterviewService,
	transcriptSvc *services.TranscriptService,
	positions []string,
	errorClearDelay time.Duration,
) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type your answer here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	if len(positions) == 0 {
		positions = domain.Positions
	}

	return &Model{
		answer:          ta,
		errorClearDelay: errorClearDelay,
		interviewSvc:    interviewSvc,
		keys:            defaultKeyMap(),
		positions:       positions,
		progress:        progress.New(progress.WithDefaultGradient()),
		spinner:         sp,
		state:           stateWelcome,
		transcriptSvc:   transcriptSvc,
	}
}

// AutoStart skips the welcome and setup screens and begins an interview
// for the given position as soon as the program starts
func (m *Model) AutoStart(position string, keywords []string) {
	m.autoPosition = position
	m.autoKeywords = keywords
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.autoPosition != "" {
		m.state = stateStarting
		return tea.Batch(
			m.spinner.Tick,
			startInterviewCmd(m.interviewSvc, m.autoPosition, m.autoKeywords),
		)
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.answer.SetWidth(min(msg.Width-4, 100))
		m.progress.Width = min(msg.Width-20, 60)
		m.summary.Width = msg.Width - 2
		m.summary.Height = msg.Height - 6

	case clearErrorMsg:
		m.err = nil
		return m, nil
	}

	switch m.state {
	case stateWelcome:
		return m.updateWelcome(msg)
	case stateSetup:
		return m.updateSetup(msg)
	case stateStarting:
		return m.updateStarting(msg)
	case stateInterview:
		return m.updateInterview(msg)
	case stateComplete:
		return m.updateComplete(msg)
	}
	return m, nil
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Begin):
			m.setupForm = NewSetupForm(m.positions)
			m.state = stateSetup
			return m, m.setupForm.Init()
		}
	}
	return m, nil
}

func (m *Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.setupForm = nil
			m.state = stateWelcome
			return m, nil
		}
	}

	form, cmd := m.setupForm.Update(msg)
	if sf, ok := form.(*SetupForm); ok {
		m.setupForm = sf
	}

	if m.setupForm.Completed {
		result := m.setupForm.Result()
		keywords := m.setupForm.ParsedKeywords()
		m.setupForm = nil
		m.state = stateStarting

		return m, tea.Batch(
			m.spinner.Tick,
			startInterviewCmd(m.interviewSvc, result.Position, keywords),
		)
	}

	return m, cmd
}

func (m *Model) updateStarting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case interviewStartedMsg:
		m.interview = msg.Interview
		m.answer.Reset()
		m.answer.Focus()
		m.state = stateInterview
		return m, textarea.Blink

	case startFailedMsg:
		// A failed start aborts the whole flow back to the entry point;
		// no partial session exists
		logging.Logger.Error("Interview start failed", "error", msg.Err)
		m.err = msg.Err
		m.state = stateWelcome
		return m, clearErrorAfterDelay(m.errorClearDelay)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updateInterview(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// An in-flight response for this interview will be discarded
			// by the controller's identity check
			m.interviewSvc.Reset()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			if m.interview != nil && m.interview.Busy {
				// Second submission while one is outstanding: no-op
				return m, nil
			}
			return m, tea.Batch(m.spinner.Tick, submitAnswerCmd(m.interviewSvc))
		}

		// All other keys edit the draft answer
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		if err := m.interviewSvc.UpdateDraft(m.answer.Value()); err != nil {
			logging.Logger.Warn("Failed to update draft", "error", err)
		}
		if snapshot := m.interviewSvc.Current(); snapshot != nil {
			m.interview = snapshot
		}
		return m, cmd

	case evaluationAppliedMsg:
		m.interview = msg.Interview

		if m.interview.IsComplete() {
			m.state = stateComplete
			m.summary.SetContent(m.renderSummary())
			m.summary.GotoTop()
			return m, archiveTranscriptCmd(m.transcriptSvc, m.interview)
		}

		// The controller clears the pending answer only on a successful
		// round; after a failed one the draft stays for retry
		if m.interview.LastOutcome != nil && !m.interview.LastOutcome.IsError() {
			m.answer.Reset()
		}
		return m, nil

	case submitIgnoredMsg:
		return m, nil

	case startFailedMsg:
		// Submit errors that are neither no-ops nor evaluation failures
		// surface on the transient error line
		m.err = msg.Err
		if snapshot := m.interviewSvc.Current(); snapshot != nil {
			m.interview = snapshot
		}
		return m, clearErrorAfterDelay(m.errorClearDelay)

	case spinner.TickMsg:
		if m.interview != nil && m.interview.Busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m *Model) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transcriptArchivedMsg:
		if msg.Err != nil {
			logging.Logger.Error("Failed to archive transcript", "error", msg.Err)
			m.err = msg.Err
			return m, clearErrorAfterDelay(m.errorClearDelay)
		}
		m.archivedID = msg.ID
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.New):
			m.interviewSvc.Reset()
			m.interview = nil
			m.archivedID = ""
			m.setupForm = NewSetupForm(m.positions)
			m.state = stateSetup
			return m, m.setupForm.Init()
		}
	}

	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateWelcome:
		return m.viewWelcome()
	case stateSetup:
		if m.setupForm != nil {
			return m.setupForm.View()
		}
	case stateStarting:
		return m.viewStarting()
	case stateInterview:
		return m.viewInterview()
	case stateComplete:
		return m.viewComplete()
	}
	return ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
