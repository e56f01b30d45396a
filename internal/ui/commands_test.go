package ui

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/internal/services"
	"prept/logging"
)

func TestMain(m *testing.M) {
	logging.Initialize(false, "", 0)
	os.Exit(m.Run())
}

// stubClient is a minimal ports.InterviewClient for command tests
type stubClient struct {
	startResult  *ports.StartResult
	startErr     error
	evalResult   *ports.EvaluationResult
	evalErr      error
	questions    []string
	questionsErr error
}

func (s *stubClient) StartInterview(ctx context.Context, position string, keywords []string) (*ports.StartResult, error) {
	return s.startResult, s.startErr
}

func (s *stubClient) EvaluateAnswer(ctx context.Context, sessionID, answer string) (*ports.EvaluationResult, error) {
	return s.evalResult, s.evalErr
}

func (s *stubClient) GenerateQuestions(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error) {
	return s.questions, s.questionsErr
}

func TestStartInterviewCmd_Success(t *testing.T) {
	svc := services.NewInterviewService(&stubClient{
		startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
	})

	msg := startInterviewCmd(svc, "Backend Developer", []string{"Go"})()

	started, ok := msg.(interviewStartedMsg)
	require.True(t, ok)
	assert.Equal(t, domain.PhaseActive, started.Interview.Phase)
}

func TestStartInterviewCmd_Failure(t *testing.T) {
	svc := services.NewInterviewService(&stubClient{
		startErr: errors.New("connection refused"),
	})

	msg := startInterviewCmd(svc, "Backend Developer", nil)()

	failed, ok := msg.(startFailedMsg)
	require.True(t, ok)
	assert.Error(t, failed.Err)
}

func TestSubmitAnswerCmd_NoOpErrorsAreIgnored(t *testing.T) {
	t.Run("no interview", func(t *testing.T) {
		svc := services.NewInterviewService(&stubClient{})

		msg := submitAnswerCmd(svc)()

		assert.IsType(t, submitIgnoredMsg{}, msg)
	})

	t.Run("empty answer", func(t *testing.T) {
		svc := services.NewInterviewService(&stubClient{
			startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
		})
		_, err := svc.Start(context.Background(), "Backend Developer", nil)
		require.NoError(t, err)
		require.NoError(t, svc.UpdateDraft("   "))

		msg := submitAnswerCmd(svc)()

		assert.IsType(t, submitIgnoredMsg{}, msg)
	})
}

func TestSubmitAnswerCmd_EvaluationApplied(t *testing.T) {
	next := "Q2?"
	svc := services.NewInterviewService(&stubClient{
		startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
		evalResult: &ports.EvaluationResult{
			Evaluation:   domain.Evaluation{Feedback: "Nice", Rating: domain.RatingGood},
			NextQuestion: &next,
		},
	})
	_, err := svc.Start(context.Background(), "Backend Developer", nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateDraft("my answer"))

	msg := submitAnswerCmd(svc)()

	applied, ok := msg.(evaluationAppliedMsg)
	require.True(t, ok)
	assert.Len(t, applied.Interview.Rounds, 1)
	assert.Equal(t, 1, applied.Interview.CurrentIndex)
}

func TestSubmitAnswerCmd_FailureStillYieldsEvaluationMsg(t *testing.T) {
	svc := services.NewInterviewService(&stubClient{
		startResult: &ports.StartResult{SessionID: "sess-1", FirstQuestion: "Q1?"},
		evalErr:     errors.New("timeout"),
	})
	_, err := svc.Start(context.Background(), "Backend Developer", nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateDraft("my answer"))

	msg := submitAnswerCmd(svc)()

	applied, ok := msg.(evaluationAppliedMsg)
	require.True(t, ok)
	require.NotNil(t, applied.Interview.LastOutcome)
	assert.True(t, applied.Interview.LastOutcome.IsError())
}

func TestSetupForm_ParsedKeywords(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single", "Go", []string{"Go"}},
		{"multiple with spaces", " Go , SQL ,Kubernetes", []string{"Go", "SQL", "Kubernetes"}},
		{"trailing commas", "Go,,SQL,", []string{"Go", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewSetupForm(nil)
			form.result.Keywords = tt.raw
			assert.Equal(t, tt.expected, form.ParsedKeywords())
		})
	}
}
