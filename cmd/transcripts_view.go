package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"prept/internal/domain"
)

// TranscriptsViewCmd shows one transcript with all its rounds
type TranscriptsViewCmd struct {
	ID     string `arg:"" help:"ID of the transcript to view"`
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the view command
func (t *TranscriptsViewCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	transcript, err := container.TranscriptService.Get(context.Background(), t.ID)
	if err != nil {
		if err == domain.ErrTranscriptNotFound {
			return fmt.Errorf("transcript not found: %s", t.ID)
		}
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	if t.Format == "json" {
		data, err := json.MarshalIndent(transcript, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Position:  %s\n", transcript.Position)
	if len(transcript.Keywords) > 0 {
		fmt.Printf("Keywords:  %s\n", strings.Join(transcript.Keywords, ", "))
	}
	fmt.Printf("Started:   %s\n", transcript.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Completed: %s\n", transcript.CompletedAt.Format("2006-01-02 15:04:05"))

	for i, round := range transcript.Rounds {
		fmt.Printf("\nQ%d. %s\n", i+1, round.Question)
		fmt.Printf("A:  %s\n", round.Answer)
		fmt.Printf("    [%s] %s\n", round.Evaluation.Rating, round.Evaluation.Feedback)
		if round.Evaluation.FollowUp != nil && *round.Evaluation.FollowUp != "" {
			fmt.Printf("    Follow-up: %s\n", *round.Evaluation.FollowUp)
		}
	}
	return nil
}
