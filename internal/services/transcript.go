package services

import (
	"context"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/logging"
)

// TranscriptService manages the archive of completed interviews
type TranscriptService struct {
	repo ports.TranscriptRepository
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(repo ports.TranscriptRepository) *TranscriptService {
	return &TranscriptService{repo: repo}
}

// Archive stores a completed interview as a transcript. Saving the same
// interview twice is not an error; the existing transcript wins.
func (t *TranscriptService) Archive(ctx context.Context, interview *domain.Interview) (*domain.Transcript, error) {
	transcript, err := interview.Transcript()
	if err != nil {
		return nil, err
	}

	if err := t.repo.Save(ctx, transcript); err != nil {
		if err == domain.ErrTranscriptExists {
			logging.Logger.Debug("Transcript already archived", "transcript_id", transcript.ID)
			return transcript, nil
		}
		return nil, err
	}
	return transcript, nil
}

// List returns all archived transcripts, newest first
func (t *TranscriptService) List(ctx context.Context) ([]domain.Transcript, error) {
	return t.repo.List(ctx)
}

// Get loads one transcript with its rounds
func (t *TranscriptService) Get(ctx context.Context, id string) (*domain.Transcript, error) {
	return t.repo.Get(ctx, id)
}

// Delete removes a transcript from the archive
func (t *TranscriptService) Delete(ctx context.Context, id string) error {
	return t.repo.Delete(ctx, id)
}
