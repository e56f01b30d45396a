package cmd

import (
	"time"

	"prept/internal/adapters/api"
	"prept/internal/adapters/storage"
	"prept/internal/ports"
	"prept/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	InterviewService  *services.InterviewService
	TranscriptService *services.TranscriptService

	// Internal - for cleanup only
	transcriptRepo ports.TranscriptRepository
}

// NewContainer creates a new Container with all dependencies wired from
// the resolved CLI configuration
func NewContainer(cli *CLI) (*Container, error) {
	transcriptRepo, err := storage.NewSQLiteRepository(cli.DBPath)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cli.ServerURL, time.Duration(cli.RequestTimeout)*time.Second)

	return &Container{
		InterviewService:  services.NewInterviewService(client),
		TranscriptService: services.NewTranscriptService(transcriptRepo),
		transcriptRepo:    transcriptRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.transcriptRepo != nil {
		return c.transcriptRepo.Close()
	}
	return nil
}
