package domain

import "errors"

var (
	ErrAlreadyStarted     = errors.New("interview already started")
	ErrBusy               = errors.New("a submission is already in flight")
	ErrEmptyAnswer        = errors.New("answer is empty")
	ErrInterviewComplete  = errors.New("interview is complete")
	ErrInterviewReplaced  = errors.New("interview was replaced")
	ErrInvalidSession     = errors.New("invalid session")
	ErrNoInterview        = errors.New("no active interview")
	ErrNotComplete        = errors.New("interview is not complete")
	ErrNotStarted         = errors.New("interview not started")
	ErrNotSubmitting      = errors.New("no submission in flight")
	ErrPositionRequired   = errors.New("position is required")
	ErrTranscriptExists   = errors.New("transcript already exists")
	ErrTranscriptNotFound = errors.New("transcript not found")
)
