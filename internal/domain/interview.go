package domain

import (
	"strings"
	"time"
)

// Phase represents the lifecycle phase of an interview
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseActive        Phase = "active"
	PhaseComplete      Phase = "complete"
)

// Rating is the interviewer's categorical judgment of a single answer
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"

	// RatingError is synthesized locally when a remote call fails.
	// The service never sends it.
	RatingError Rating = "Error"
)

// Evaluation is the structured judgment of one answer. Feedback may be
// empty. FollowUp is nil when the service sent none; it is supplementary
// guidance, not the next interview question.
type Evaluation struct {
	Feedback string
	FollowUp *string
	Rating   Rating
}

// IsError reports whether this evaluation was synthesized from a failed
// remote call rather than received from the service.
func (e Evaluation) IsError() bool {
	return e.Rating == RatingError
}

// ErrorEvaluation builds the locally synthesized evaluation for a failed
// evaluation call. The message is shown to the user as feedback.
func ErrorEvaluation(message string) Evaluation {
	return Evaluation{
		Feedback: message,
		Rating:   RatingError,
	}
}

// Round is one question/answer/evaluation cycle
type Round struct {
	Answer     string
	Evaluation Evaluation
	Question   string
}

// Interview is the authoritative in-memory state of one interview
// attempt. It is owned by the interview service (single writer); the UI
// only ever sees copies.
//
// Invariants while the interview is active:
//   - len(Rounds) == CurrentIndex
//   - Questions[i] exists before Rounds[i]
//
// Once complete: len(Rounds) == len(Questions) and CurrentIndex is frozen.
type Interview struct {
	// ID identifies this client-side attempt. It is generated locally and
	// used to discard responses that arrive after the interview has been
	// replaced. Distinct from SessionID, which the server assigns.
	ID string

	Busy          bool
	CompletedAt   time.Time
	CurrentIndex  int
	Keywords      []string
	LastOutcome   *Evaluation
	PendingAnswer string
	Phase         Phase
	Position      string
	Questions     []string
	Rounds        []Round
	SessionID     string
	StartedAt     time.Time
}

// NewInterview creates an interview in the uninitialized phase. It holds
// the user's intent (position, keywords) until the start call succeeds.
func NewInterview(id, position string, keywords []string) *Interview {
	if keywords == nil {
		// The keyword set is always materialized, even when empty
		keywords = []string{}
	}
	return &Interview{
		ID:       id,
		Keywords: keywords,
		Phase:    PhaseUninitialized,
		Position: position,
	}
}

// Activate applies a successful session start: stores the server session
// ID and seeds the question log with the first question.
func (i *Interview) Activate(sessionID, firstQuestion string) error {
	if i.Phase != PhaseUninitialized {
		return ErrAlreadyStarted
	}
	if sessionID == "" || firstQuestion == "" {
		return ErrInvalidSession
	}

	i.SessionID = sessionID
	i.Questions = []string{firstQuestion}
	i.CurrentIndex = 0
	i.Rounds = []Round{}
	i.Phase = PhaseActive
	i.StartedAt = time.Now().UTC()
	return nil
}

// CurrentQuestion returns the question awaiting an answer, if any
func (i *Interview) CurrentQuestion() (string, bool) {
	if i.Phase != PhaseActive || i.CurrentIndex >= len(i.Questions) {
		return "", false
	}
	return i.Questions[i.CurrentIndex], true
}

// SetDraft updates the in-progress answer text. Legal in any
// non-complete phase; never triggers a transition.
func (i *Interview) SetDraft(text string) error {
	if i.Phase == PhaseComplete {
		return ErrInterviewComplete
	}
	i.PendingAnswer = text
	return nil
}

// BeginSubmission validates the submit preconditions and acquires the
// busy flag. It returns the trimmed answer to send. On any error the
// interview state is unchanged.
func (i *Interview) BeginSubmission() (string, error) {
	switch i.Phase {
	case PhaseUninitialized:
		return "", ErrNotStarted
	case PhaseComplete:
		return "", ErrInterviewComplete
	}
	if i.Busy {
		return "", ErrBusy
	}
	if i.SessionID == "" {
		return "", ErrInvalidSession
	}

	answer := strings.TrimSpace(i.PendingAnswer)
	if answer == "" {
		return "", ErrEmptyAnswer
	}

	i.Busy = true
	return answer, nil
}

// ApplyEvaluation applies a successful evaluation response: records the
// round, advances to the next question or completes the interview, and
// releases the busy flag.
//
// If the response declares completion and also carries a next question,
// completion wins and the question is discarded; appending it would
// leave an orphan question nobody can answer.
func (i *Interview) ApplyEvaluation(answer string, eval Evaluation, nextQuestion *string, isComplete bool) error {
	if i.Phase != PhaseActive {
		return ErrNotStarted
	}
	if !i.Busy {
		return ErrNotSubmitting
	}

	i.Rounds = append(i.Rounds, Round{
		Answer:     answer,
		Evaluation: eval,
		Question:   i.Questions[i.CurrentIndex],
	})

	if isComplete {
		i.Phase = PhaseComplete
		i.CompletedAt = time.Now().UTC()
		// CurrentIndex freezes at the final question
	} else if nextQuestion != nil && *nextQuestion != "" {
		i.Questions = append(i.Questions, *nextQuestion)
		i.CurrentIndex++
	} else {
		// Not complete but no next question either: the server violated
		// the protocol; complete locally rather than strand the session.
		i.Phase = PhaseComplete
		i.CompletedAt = time.Now().UTC()
	}

	i.PendingAnswer = ""
	outcome := eval
	i.LastOutcome = &outcome
	i.Busy = false
	return nil
}

// ApplyFailure records a failed evaluation call: the round log, question
// log, and pending answer are untouched so the user can retry; only the
// last outcome changes and the busy flag is released.
func (i *Interview) ApplyFailure(message string) error {
	if !i.Busy {
		return ErrNotSubmitting
	}
	outcome := ErrorEvaluation(message)
	i.LastOutcome = &outcome
	i.Busy = false
	return nil
}

// IsComplete reports whether the interview reached its terminal phase
func (i *Interview) IsComplete() bool {
	return i.Phase == PhaseComplete
}

// Progress returns the interview progress in [0,1] for display. The
// denominator includes one unanswered slot so the bar never shows full
// before completion.
func (i *Interview) Progress() float64 {
	if i.Phase == PhaseComplete {
		return 1.0
	}
	if len(i.Questions) == 0 {
		return 0.0
	}
	return float64(i.CurrentIndex+1) / float64(len(i.Questions)+1)
}

// Transcript converts a completed interview into its archival form
func (i *Interview) Transcript() (*Transcript, error) {
	if i.Phase != PhaseComplete {
		return nil, ErrNotComplete
	}
	rounds := make([]Round, len(i.Rounds))
	copy(rounds, i.Rounds)
	return &Transcript{
		CompletedAt: i.CompletedAt,
		ID:          i.ID,
		Keywords:    append([]string{}, i.Keywords...),
		Position:    i.Position,
		Rounds:      rounds,
		StartedAt:   i.StartedAt,
	}, nil
}

// Clone returns a deep copy safe to hand to the presentation layer
func (i *Interview) Clone() *Interview {
	c := *i
	c.Keywords = append([]string{}, i.Keywords...)
	c.Questions = append([]string{}, i.Questions...)
	c.Rounds = append([]Round{}, i.Rounds...)
	if i.LastOutcome != nil {
		outcome := *i.LastOutcome
		c.LastOutcome = &outcome
	}
	return &c
}
