package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"prept/internal/domain"
	"prept/logging"
)

// SetupFormResult contains the candidate's interview setup choices
type SetupFormResult struct {
	Keywords string // raw comma-separated entry
	Position string
}

// SetupForm is a Bubble Tea component that collects the target position
// and the resume keyword set before the session starts
type SetupForm struct {
	Completed bool // Exported so Model can check completion
	form      *huh.Form
	result    SetupFormResult
}

// NewSetupForm creates the interview setup form. The keyword set may be
// left empty; it is still sent as an empty set, never omitted.
func NewSetupForm(positions []string) *SetupForm {
	if len(positions) == 0 {
		positions = domain.Positions
	}

	sf := &SetupForm{}

	options := make([]huh.Option[string], len(positions))
	for i, p := range positions {
		options[i] = huh.NewOption(p, p)
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target position").
				Options(options...).
				Value(&sf.result.Position),
			huh.NewInput().
				Title("Keywords (optional)").
				Description("Comma-separated skills from your resume, e.g. SQL, Go").
				Placeholder("SQL, Go, Kubernetes").
				Value(&sf.result.Keywords),
		),
	)

	return sf
}

// Init implements tea.Model
func (sf *SetupForm) Init() tea.Cmd {
	return sf.form.Init()
}

// Update implements tea.Model
func (sf *SetupForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted && !sf.Completed {
		sf.Completed = true
		logging.Logger.Debug("Setup form completed",
			"position", sf.result.Position,
			"keywords", sf.result.Keywords)
	}

	return sf, cmd
}

// View implements tea.Model
func (sf *SetupForm) View() string {
	return sf.form.View()
}

// Result returns the completed form values
func (sf *SetupForm) Result() SetupFormResult {
	return sf.result
}

// ParsedKeywords returns the keyword entry as a materialized set
func (sf *SetupForm) ParsedKeywords() []string {
	keywords := []string{}
	for _, part := range strings.Split(sf.result.Keywords, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
