package ui

import (
	"prept/internal/domain"
)

// interviewStartedMsg is sent when the session start call succeeds
type interviewStartedMsg struct {
	Interview *domain.Interview
}

// startFailedMsg is sent when the session start call fails, or when a
// submission fails in a way that is neither a no-op nor an evaluation
// failure. Nothing is retried automatically.
type startFailedMsg struct {
	Err error
}

// evaluationAppliedMsg is sent after an evaluation response (success or
// synthesized failure) has been applied to the interview
type evaluationAppliedMsg struct {
	Interview *domain.Interview
}

// submitIgnoredMsg is sent when a submission was rejected as a no-op
// (busy, empty answer, or the interview was replaced mid-flight)
type submitIgnoredMsg struct{}

// transcriptArchivedMsg is sent after a completed interview was saved
type transcriptArchivedMsg struct {
	Err error
	ID  string
}

// clearErrorMsg clears the transient error line
type clearErrorMsg struct{}
