package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/logging"
)

// Endpoint paths on the interviewer service
const (
	startPath     = "/start-interview"
	evaluatePath  = "/start-interview/evaluate-answer"
	questionsPath = "/start-interview/generate-questions"
)

// Client is the HTTP implementation of ports.InterviewClient
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Verify interface compliance at compile time
var _ ports.InterviewClient = (*Client)(nil)

// NewClient creates a client for the interviewer service at baseURL.
// A zero timeout disables the client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type startRequest struct {
	Position string   `json:"position"`
	Keywords []string `json:"keywords"`
}

type startResponse struct {
	SessionID     string `json:"sessionId"`
	FirstQuestion string `json:"firstQuestion"`
}

type evaluateRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

type evaluationPayload struct {
	Rating   string  `json:"rating"`
	Feedback string  `json:"feedback"`
	FollowUp *string `json:"followUp"`
}

type evaluateResponse struct {
	Evaluation   *evaluationPayload `json:"evaluation"`
	NextQuestion *string            `json:"nextQuestion"`
	IsComplete   bool               `json:"isComplete"`
}

type questionsRequest struct {
	Position     string   `json:"position"`
	Keywords     []string `json:"keywords"`
	NumQuestions int      `json:"numQuestions,omitempty"`
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// errorBody is the optional error payload of non-2xx responses
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StartInterview opens a new interview session
func (c *Client) StartInterview(ctx context.Context, position string, keywords []string) (*ports.StartResult, error) {
	if keywords == nil {
		keywords = []string{}
	}

	var resp startResponse
	if err := c.post(ctx, startPath, startRequest{Position: position, Keywords: keywords}, &resp); err != nil {
		return nil, err
	}

	if resp.SessionID == "" {
		return nil, &ProtocolError{Reason: "missing sessionId"}
	}
	if resp.FirstQuestion == "" {
		return nil, &ProtocolError{Reason: "missing firstQuestion"}
	}

	logging.Logger.Info("Interview session started",
		"session_id", resp.SessionID,
		"position", position,
		"keywords", len(keywords))

	return &ports.StartResult{
		FirstQuestion: resp.FirstQuestion,
		SessionID:     resp.SessionID,
	}, nil
}

// EvaluateAnswer submits an answer for evaluation
func (c *Client) EvaluateAnswer(ctx context.Context, sessionID, answer string) (*ports.EvaluationResult, error) {
	var resp evaluateResponse
	if err := c.post(ctx, evaluatePath, evaluateRequest{SessionID: sessionID, Answer: answer}, &resp); err != nil {
		return nil, err
	}

	// A success response without an evaluation is a contract violation
	if resp.Evaluation == nil {
		return nil, &ProtocolError{Reason: "missing evaluation"}
	}

	eval := domain.Evaluation{
		Feedback: resp.Evaluation.Feedback,
		Rating:   domain.Rating(resp.Evaluation.Rating),
	}
	if resp.Evaluation.FollowUp != nil && *resp.Evaluation.FollowUp != "" {
		followUp := *resp.Evaluation.FollowUp
		eval.FollowUp = &followUp
	}

	logging.Logger.Debug("Answer evaluated",
		"session_id", sessionID,
		"rating", resp.Evaluation.Rating,
		"has_next_question", resp.NextQuestion != nil,
		"is_complete", resp.IsComplete)

	return &ports.EvaluationResult{
		Evaluation:   eval,
		IsComplete:   resp.IsComplete,
		NextQuestion: resp.NextQuestion,
	}, nil
}

// GenerateQuestions fetches a standalone question list
func (c *Client) GenerateQuestions(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error) {
	if keywords == nil {
		keywords = []string{}
	}

	var resp questionsResponse
	req := questionsRequest{Position: position, Keywords: keywords, NumQuestions: numQuestions}
	if err := c.post(ctx, questionsPath, req, &resp); err != nil {
		return nil, err
	}

	if resp.Questions == nil {
		return nil, &ProtocolError{Reason: "missing questions"}
	}
	return resp.Questions, nil
}

// post sends a JSON request and decodes the JSON response into out,
// normalizing failures into the client's error taxonomy.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Request failed", "path", path, "error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The error body is optional and best-effort
		var body errorBody
		_ = json.Unmarshal(data, &body)
		message := body.Message
		if message == "" {
			message = body.Error
		}
		logging.Logger.Warn("Server reported error",
			"path", path,
			"status", resp.StatusCode,
			"message", message)
		return &ServerError{Message: message, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &ProtocolError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}
