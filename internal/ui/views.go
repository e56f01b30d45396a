package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prept/internal/domain"
	"prept/internal/theme"
	"prept/version"
)

func (m *Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(theme.AppNameStyle.Render("Prept"))
	b.WriteString("  ")
	b.WriteString(theme.VersionStyle.Render(version.Version))
	b.WriteString("\n")
	b.WriteString(theme.TaglineStyle.Render(version.Tagline))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(
		"Pick a target position, add a few resume keywords, and an AI\n" +
			"interviewer will run a practice session with you."))
	b.WriteString("\n")
	b.WriteString(m.errorLine())
	b.WriteString(theme.HelpStyle.Render("enter: begin • esc: quit"))

	return b.String()
}

func (m *Model) viewStarting() string {
	return fmt.Sprintf("\n %s Preparing your interview...\n", m.spinner.View())
}

func (m *Model) viewInterview() string {
	if m.interview == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(
		fmt.Sprintf("Interview · %s", m.interview.Position)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		theme.SubtleStyle.Render(fmt.Sprintf("Question %d", m.interview.CurrentIndex+1)),
		m.progress.ViewAs(m.interview.Progress())))

	if question, ok := m.interview.CurrentQuestion(); ok {
		b.WriteString(theme.QuestionStyle.Render(question))
		b.WriteString("\n\n")
	}

	b.WriteString(m.answer.View())
	b.WriteString("\n")

	if m.interview.Busy {
		b.WriteString(fmt.Sprintf("\n%s Evaluating your answer...\n", m.spinner.View()))
	} else if m.interview.LastOutcome != nil {
		b.WriteString("\n")
		b.WriteString(renderOutcome(*m.interview.LastOutcome))
		b.WriteString("\n")
	}

	b.WriteString(m.errorLine())
	b.WriteString(theme.HelpStyle.Render("ctrl+s: submit answer • esc: quit"))

	return b.String()
}

func (m *Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Interview complete"))
	b.WriteString("\n")
	if m.archivedID != "" {
		b.WriteString(theme.SubtleStyle.Render(
			fmt.Sprintf("Transcript saved as %s", m.archivedID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.summary.View())
	b.WriteString("\n")
	b.WriteString(m.errorLine())
	b.WriteString(theme.HelpStyle.Render("n: new interview • ↑/↓: scroll • esc: quit"))

	return b.String()
}

// renderSummary builds the scrollable transcript shown on completion
func (m *Model) renderSummary() string {
	if m.interview == nil {
		return ""
	}

	var b strings.Builder
	for i, round := range m.interview.Rounds {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.SubtitleStyle.Render(fmt.Sprintf("Q%d. ", i+1)))
		b.WriteString(theme.QuestionStyle.Render(round.Question))
		b.WriteString("\n")
		b.WriteString(theme.NormalStyle.Render(round.Answer))
		b.WriteString("\n")
		b.WriteString(renderOutcome(round.Evaluation))
		b.WriteString("\n")
	}
	return b.String()
}

// renderOutcome renders an evaluation as a rating badge, feedback text,
// and the optional follow-up hint inside the feedback panel
func renderOutcome(eval domain.Evaluation) string {
	lines := []string{
		theme.RatingStyle(eval.Rating).Render(string(eval.Rating)),
	}
	if eval.Feedback != "" {
		lines = append(lines, theme.FeedbackTextStyle.Render(eval.Feedback))
	}
	if eval.FollowUp != nil && *eval.FollowUp != "" {
		lines = append(lines, theme.FollowUpStyle.Render("Follow-up: "+*eval.FollowUp))
	}
	return theme.FeedbackBorderStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) errorLine() string {
	if m.err == nil {
		return "\n"
	}
	return "\n" + theme.ErrorStyle.Render(m.err.Error()) + "\n"
}
