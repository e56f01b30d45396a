package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prept/config"
	"prept/internal/ui"
	"prept/logging"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Keywords        string `help:"Comma-separated resume keywords (with --position, skips the setup form)"`
	Position        string `help:"Start an interview for this position immediately"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.ErrorClearDelay == config.DefaultErrorClearDelay {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
	}

	logging.Logger.Info("Starting prept TUI",
		"server_url", cli.ServerURL,
		"db_path", cli.DBPath)

	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	errorClearDelay := time.Duration(r.ErrorClearDelay) * time.Second
	model := ui.NewModel(container.InterviewService, container.TranscriptService, cli.positions(), errorClearDelay)
	if r.Position != "" {
		keywords := []string{}
		for _, part := range strings.Split(r.Keywords, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				keywords = append(keywords, trimmed)
			}
		}
		model.AutoStart(r.Position, keywords)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
