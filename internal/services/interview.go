package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/logging"
)

// evaluationFailedMessage is the fallback feedback for failures that
// carry no server-reported text
const evaluationFailedMessage = "Could not evaluate answer. Please try again."

// InterviewService is the interaction controller for the interview
// loop. It owns the single active interview and is its only writer; the
// UI reads state through copies and mutates it only through these
// methods. At most one evaluation call is outstanding at any time,
// serialized by the interview's busy flag.
type InterviewService struct {
	client ports.InterviewClient

	mu        sync.Mutex
	interview *domain.Interview
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(client ports.InterviewClient) *InterviewService {
	return &InterviewService{client: client}
}

// Start begins a new interview session for the given position and
// keyword set. On success the new session fully replaces any prior one.
// On failure nothing changes: no partial session is created and any
// existing interview stays in place.
func (s *InterviewService) Start(ctx context.Context, position string, keywords []string) (*domain.Interview, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, domain.ErrPositionRequired
	}
	if keywords == nil {
		keywords = []string{}
	}

	logging.Logger.Info("Starting interview", "position", position, "keywords", len(keywords))

	result, err := s.client.StartInterview(ctx, position, keywords)
	if err != nil {
		logging.Logger.Error("Failed to start interview", "error", err, "position", position)
		return nil, err
	}

	interview := domain.NewInterview(uuid.New().String(), position, keywords)
	if err := interview.Activate(result.SessionID, result.FirstQuestion); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.interview = interview
	s.mu.Unlock()

	return interview.Clone(), nil
}

// Current returns a copy of the active interview, or nil when none
func (s *InterviewService) Current() *domain.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interview == nil {
		return nil
	}
	return s.interview.Clone()
}

// UpdateDraft updates the in-progress answer text. Pure state update;
// no remote call.
func (s *InterviewService) UpdateDraft(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interview == nil {
		return domain.ErrNoInterview
	}
	return s.interview.SetDraft(text)
}

// Submit sends the pending answer for evaluation and applies the
// resulting transition. A submission while one is already in flight is
// rejected with domain.ErrBusy; a whitespace-only answer with
// domain.ErrEmptyAnswer. Both leave the interview untouched.
//
// If the interview was replaced while the call was in flight, the
// response is discarded and domain.ErrInterviewReplaced is returned.
func (s *InterviewService) Submit(ctx context.Context) (*domain.Interview, error) {
	s.mu.Lock()
	if s.interview == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoInterview
	}

	answer, err := s.interview.BeginSubmission()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	attemptID := s.interview.ID
	sessionID := s.interview.SessionID
	s.mu.Unlock()

	// The remote call runs without the lock so draft edits and reads
	// stay responsive while the evaluation is outstanding.
	result, callErr := s.client.EvaluateAnswer(ctx, sessionID, answer)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The owning interview may be gone: check identity before applying
	// anything, so a stale response never lands on a replacement session.
	if s.interview == nil || s.interview.ID != attemptID {
		logging.Logger.Warn("Discarding response for replaced interview",
			"attempt_id", attemptID)
		return nil, domain.ErrInterviewReplaced
	}

	if callErr != nil {
		logging.Logger.Error("Evaluation call failed", "error", callErr, "session_id", sessionID)
		message := evaluationFailedMessage
		var userErr ports.UserFacingError
		if errors.As(callErr, &userErr) {
			message = userErr.UserMessage()
		}
		if err := s.interview.ApplyFailure(message); err != nil {
			return nil, err
		}
		return s.interview.Clone(), nil
	}

	if err := s.interview.ApplyEvaluation(answer, result.Evaluation, result.NextQuestion, result.IsComplete); err != nil {
		return nil, err
	}

	logging.Logger.Info("Evaluation applied",
		"session_id", sessionID,
		"rating", result.Evaluation.Rating,
		"is_complete", result.IsComplete,
		"rounds", len(s.interview.Rounds))

	return s.interview.Clone(), nil
}

// Reset discards the active interview. In-flight responses for it will
// be dropped by the identity check in Submit.
func (s *InterviewService) Reset() {
	s.mu.Lock()
	s.interview = nil
	s.mu.Unlock()
}

// GenerateQuestions fetches a standalone question list from the service
func (s *InterviewService) GenerateQuestions(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, domain.ErrPositionRequired
	}
	return s.client.GenerateQuestions(ctx, position, keywords, numQuestions)
}
