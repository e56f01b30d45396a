package cmd

import (
	"context"
	"fmt"

	"prept/internal/domain"
	"prept/logging"
)

// TranscriptsDelCmd deletes a transcript from the archive
type TranscriptsDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"ID of the transcript to delete"`
}

// Run executes the del command
func (t *TranscriptsDelCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	ctx := context.Background()

	transcript, err := container.TranscriptService.Get(ctx, t.ID)
	if err != nil {
		if err == domain.ErrTranscriptNotFound {
			return fmt.Errorf("transcript not found: %s", t.ID)
		}
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	if !t.Force {
		fmt.Printf("WARNING: This will delete the transcript for '%s' (%d rounds)\n",
			transcript.Position, len(transcript.Rounds))
		fmt.Print("\nContinue? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := container.TranscriptService.Delete(ctx, t.ID); err != nil {
		logging.Logger.Error("Failed to delete transcript", "transcript_id", t.ID, "error", err)
		return fmt.Errorf("failed to delete transcript: %w", err)
	}

	logging.Logger.Info("Transcript deleted", "transcript_id", t.ID)
	fmt.Printf("Transcript '%s' deleted successfully\n", t.ID)
	return nil
}
