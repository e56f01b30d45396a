package api

import (
	"fmt"
)

// genericRetryMessage is shown when the failure carries no server text
const genericRetryMessage = "Could not reach the interview service. Please try again."

// TransportError means the request never completed: connection refused,
// DNS failure, timeout. The response was never received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage implements ports.UserFacingError
func (e *TransportError) UserMessage() string { return genericRetryMessage }

// ProtocolError means a response arrived but its shape was not the one
// the service contract promises (missing required fields, bad JSON).
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected response from server: %s", e.Reason)
}

// UserMessage implements ports.UserFacingError
func (e *ProtocolError) UserMessage() string { return genericRetryMessage }

// ServerError means the server answered with a non-2xx status. Message
// holds the error text from the response body, verbatim, when present.
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// UserMessage implements ports.UserFacingError. Server-reported messages
// are surfaced to the candidate verbatim.
func (e *ServerError) UserMessage() string { return e.Error() }
