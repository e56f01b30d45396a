package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"prept/internal/domain"
)

// TranscriptsListCmd lists all archived transcripts
type TranscriptsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (t *TranscriptsListCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	transcripts, err := container.TranscriptService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list transcripts: %w", err)
	}

	if t.Format == "json" {
		return t.printJSON(transcripts)
	}
	return t.printTable(transcripts)
}

func (t *TranscriptsListCmd) printJSON(transcripts []domain.Transcript) error {
	data, err := json.MarshalIndent(transcripts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (t *TranscriptsListCmd) printTable(transcripts []domain.Transcript) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOSITION\tKEYWORDS\tSTARTED\tCOMPLETED")
	for _, tr := range transcripts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tr.ID,
			tr.Position,
			strings.Join(tr.Keywords, ","),
			tr.StartedAt.Format("2006-01-02 15:04:05"),
			tr.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d transcripts\n", len(transcripts))
	return nil
}
