package ports

import (
	"context"

	"prept/internal/domain"
)

// TranscriptReader reads archived interview transcripts
type TranscriptReader interface {
	Get(ctx context.Context, id string) (*domain.Transcript, error)
	List(ctx context.Context) ([]domain.Transcript, error)
}

// TranscriptWriter stores and removes transcripts
type TranscriptWriter interface {
	Delete(ctx context.Context, id string) error
	Save(ctx context.Context, transcript *domain.Transcript) error
}

// TranscriptRepository is the composite interface
type TranscriptRepository interface {
	TranscriptReader
	TranscriptWriter
	Close() error
}
