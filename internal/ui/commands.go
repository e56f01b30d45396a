package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prept/internal/domain"
	"prept/internal/services"
)

// startInterviewCmd issues the session start call. The remote work runs
// inside the command goroutine; the result comes back as a message and
// is applied in Update, keeping all state transitions on the event loop.
func startInterviewCmd(svc *services.InterviewService, position string, keywords []string) tea.Cmd {
	return func() tea.Msg {
		interview, err := svc.Start(context.Background(), position, keywords)
		if err != nil {
			return startFailedMsg{Err: err}
		}
		return interviewStartedMsg{Interview: interview}
	}
}

// submitAnswerCmd issues the evaluation call for the pending answer
func submitAnswerCmd(svc *services.InterviewService) tea.Cmd {
	return func() tea.Msg {
		interview, err := svc.Submit(context.Background())
		if err != nil {
			// Busy, empty, and stale submissions are no-ops, not errors
			if errors.Is(err, domain.ErrBusy) ||
				errors.Is(err, domain.ErrEmptyAnswer) ||
				errors.Is(err, domain.ErrInterviewReplaced) ||
				errors.Is(err, domain.ErrNoInterview) {
				return submitIgnoredMsg{}
			}
			return startFailedMsg{Err: err}
		}
		return evaluationAppliedMsg{Interview: interview}
	}
}

// archiveTranscriptCmd saves the completed interview to the archive
func archiveTranscriptCmd(svc *services.TranscriptService, interview *domain.Interview) tea.Cmd {
	return func() tea.Msg {
		transcript, err := svc.Archive(context.Background(), interview)
		if err != nil {
			return transcriptArchivedMsg{Err: err}
		}
		return transcriptArchivedMsg{ID: transcript.ID}
	}
}

// clearErrorAfterDelay returns a command that sends clearErrorMsg after a delay
func clearErrorAfterDelay(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
