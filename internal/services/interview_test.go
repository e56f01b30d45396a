package services

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/logging"
)

func TestMain(m *testing.M) {
	logging.Initialize(false, "", 0)
	os.Exit(m.Run())
}

// fakeClient is a scriptable ports.InterviewClient
type fakeClient struct {
	mu sync.Mutex

	startResult *ports.StartResult
	startErr    error

	evaluateResults []evaluateCall
	evaluateIdx     int

	// onEvaluate runs inside EvaluateAnswer before returning, letting
	// tests interleave actions while the call is "in flight"
	onEvaluate func()

	evaluatedAnswers  []string
	evaluatedSessions []string
}

type evaluateCall struct {
	result *ports.EvaluationResult
	err    error
}

func (f *fakeClient) StartInterview(ctx context.Context, position string, keywords []string) (*ports.StartResult, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.startResult, nil
}

func (f *fakeClient) EvaluateAnswer(ctx context.Context, sessionID, answer string) (*ports.EvaluationResult, error) {
	f.mu.Lock()
	f.evaluatedSessions = append(f.evaluatedSessions, sessionID)
	f.evaluatedAnswers = append(f.evaluatedAnswers, answer)
	call := f.evaluateResults[f.evaluateIdx]
	if f.evaluateIdx < len(f.evaluateResults)-1 {
		f.evaluateIdx++
	}
	f.mu.Unlock()

	if f.onEvaluate != nil {
		f.onEvaluate()
	}
	return call.result, call.err
}

func (f *fakeClient) GenerateQuestions(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error) {
	return []string{"Q1?", "Q2?"}, nil
}

// userFacingErr mimics an adapter error carrying a display message
type userFacingErr struct {
	message string
}

func (e *userFacingErr) Error() string       { return e.message }
func (e *userFacingErr) UserMessage() string { return e.message }

func startedService(t *testing.T, client *fakeClient) *InterviewService {
	t.Helper()
	if client.startResult == nil {
		client.startResult = &ports.StartResult{
			SessionID:     "sess-1",
			FirstQuestion: "What is a goroutine?",
		}
	}
	svc := NewInterviewService(client)
	_, err := svc.Start(context.Background(), "Backend Developer", []string{"Go"})
	require.NoError(t, err)
	return svc
}

func goodEval(next string, complete bool) *ports.EvaluationResult {
	result := &ports.EvaluationResult{
		Evaluation: domain.Evaluation{Feedback: "Nice", Rating: domain.RatingGood},
		IsComplete: complete,
	}
	if next != "" {
		result.NextQuestion = &next
	}
	return result
}

func TestStart_ReturnsActiveInterview(t *testing.T) {
	client := &fakeClient{
		startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
	}
	svc := NewInterviewService(client)

	interview, err := svc.Start(context.Background(), "Backend Developer", []string{"Go"})

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseActive, interview.Phase)
	assert.Equal(t, "sess-1", interview.SessionID)
	assert.NotEmpty(t, interview.ID)

	question, ok := interview.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Q1?", question)
}

func TestStart_RequiresPosition(t *testing.T) {
	svc := NewInterviewService(&fakeClient{})

	_, err := svc.Start(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, domain.ErrPositionRequired)
	assert.Nil(t, svc.Current())
}

func TestStart_FailureLeavesNoSession(t *testing.T) {
	client := &fakeClient{startErr: errors.New("connection refused")}
	svc := NewInterviewService(client)

	_, err := svc.Start(context.Background(), "Backend Developer", nil)

	require.Error(t, err)
	assert.Nil(t, svc.Current())
}

func TestStart_FailureKeepsExistingInterview(t *testing.T) {
	client := &fakeClient{
		startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
	}
	svc := startedService(t, client)

	client.startErr = errors.New("connection refused")
	_, err := svc.Start(context.Background(), "Data Scientist", nil)

	require.Error(t, err)
	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Backend Developer", current.Position)
}

func TestSubmit_AppliesEvaluation(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("Q2?", false)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("  my answer  "))

	interview, err := svc.Submit(context.Background())

	require.NoError(t, err)
	assert.Len(t, interview.Rounds, 1)
	assert.Equal(t, "my answer", interview.Rounds[0].Answer)
	assert.Equal(t, []string{"my answer"}, client.evaluatedAnswers)
	assert.Equal(t, []string{"sess-1"}, client.evaluatedSessions)
	assert.Empty(t, interview.PendingAnswer)
	assert.False(t, interview.Busy)
}

func TestSubmit_EmptyAnswerIsRejectedWithoutCall(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("Q2?", false)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("   \n\t"))

	_, err := svc.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyAnswer)
	assert.Empty(t, client.evaluatedAnswers)
}

func TestSubmit_SecondSubmissionWhileInFlightIsRejected(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("", true)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("answer"))

	var inFlightErr error
	client.onEvaluate = func() {
		_, inFlightErr = svc.Submit(context.Background())
	}

	_, err := svc.Submit(context.Background())

	require.NoError(t, err)
	assert.ErrorIs(t, inFlightErr, domain.ErrBusy)
	assert.Len(t, client.evaluatedAnswers, 1)
}

func TestSubmit_CompletionEndsInterview(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("", true)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("final answer"))

	interview, err := svc.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, interview.IsComplete())
	assert.Len(t, interview.Rounds, 1)
}

func TestSubmit_FailureSynthesizesErrorOutcome(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{err: errors.New("dial tcp: connection refused")}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("my answer"))

	interview, err := svc.Submit(context.Background())

	require.NoError(t, err)
	require.NotNil(t, interview.LastOutcome)
	assert.True(t, interview.LastOutcome.IsError())
	assert.Equal(t, evaluationFailedMessage, interview.LastOutcome.Feedback)
	assert.Equal(t, "my answer", interview.PendingAnswer)
	assert.Empty(t, interview.Rounds)
	assert.False(t, interview.Busy)
}

func TestSubmit_FailureUsesServerMessageWhenAvailable(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{err: &userFacingErr{message: "Session expired"}}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("my answer"))

	interview, err := svc.Submit(context.Background())

	require.NoError(t, err)
	require.NotNil(t, interview.LastOutcome)
	assert.Equal(t, "Session expired", interview.LastOutcome.Feedback)
}

func TestSubmit_RetryAfterFailureSucceeds(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{
			{err: errors.New("timeout")},
			{result: goodEval("", true)},
		},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("my answer"))

	interview, err := svc.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, interview.LastOutcome.IsError())

	// The pending answer survived; retry without retyping
	interview, err = svc.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, interview.IsComplete())
	assert.Equal(t, []string{"my answer", "my answer"}, client.evaluatedAnswers)
}

func TestSubmit_StaleResponseIsDiscardedAfterReset(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("", true)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("answer"))

	client.onEvaluate = func() {
		svc.Reset()
	}

	_, err := svc.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrInterviewReplaced)
	assert.Nil(t, svc.Current())
}

func TestSubmit_StaleResponseIsDiscardedAfterRestart(t *testing.T) {
	client := &fakeClient{
		evaluateResults: []evaluateCall{{result: goodEval("", true)}},
	}
	svc := startedService(t, client)
	require.NoError(t, svc.UpdateDraft("answer"))

	client.onEvaluate = func() {
		client.onEvaluate = nil
		_, err := svc.Start(context.Background(), "Data Scientist", nil)
		require.NoError(t, err)
	}

	_, err := svc.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrInterviewReplaced)

	// The replacement session is untouched by the stale response
	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Data Scientist", current.Position)
	assert.Empty(t, current.Rounds)
	assert.False(t, current.Busy)
}

func TestSubmit_NoInterview(t *testing.T) {
	svc := NewInterviewService(&fakeClient{})

	_, err := svc.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoInterview)
}

func TestCurrent_ReturnsIndependentCopy(t *testing.T) {
	client := &fakeClient{}
	svc := startedService(t, client)

	first := svc.Current()
	first.Position = "mutated"
	first.Questions[0] = "mutated"

	second := svc.Current()
	assert.Equal(t, "Backend Developer", second.Position)
	assert.Equal(t, "What is a goroutine?", second.Questions[0])
}

func TestGenerateQuestions_RequiresPosition(t *testing.T) {
	svc := NewInterviewService(&fakeClient{})

	_, err := svc.GenerateQuestions(context.Background(), "", nil, 5)
	assert.ErrorIs(t, err, domain.ErrPositionRequired)

	questions, err := svc.GenerateQuestions(context.Background(), "Backend Developer", nil, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}
