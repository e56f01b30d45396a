package ports

import (
	"context"

	"prept/internal/domain"
)

// StartResult is the successful payload of a session start call
type StartResult struct {
	FirstQuestion string
	SessionID     string
}

// EvaluationResult is the successful payload of an answer evaluation
// call. NextQuestion is nil when the service sent none.
type EvaluationResult struct {
	Evaluation   domain.Evaluation
	IsComplete   bool
	NextQuestion *string
}

// InterviewClient talks to the remote interviewer service. Each call is
// a single request/response round trip; retries are user-initiated
// re-submissions, never automatic.
type InterviewClient interface {
	// StartInterview opens a session for the given position and keyword
	// set and returns the server session ID with the first question.
	StartInterview(ctx context.Context, position string, keywords []string) (*StartResult, error)

	// EvaluateAnswer submits an answer for the session's current question
	// and returns the evaluation round result.
	EvaluateAnswer(ctx context.Context, sessionID, answer string) (*EvaluationResult, error)

	// GenerateQuestions asks the service for a standalone question list.
	// Auxiliary; not part of the session loop.
	GenerateQuestions(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error)
}
