package cmd

import (
	"fmt"

	"prept/config"
	"prept/logging"
	"prept/server"
)

// ServeCmd serves the interview TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	// Per-session handlers resolve everything from settings; pass the
	// CLI-resolved values through so flags and env vars still win
	settings := &config.Settings{}
	if cli.settings != nil {
		*settings = *cli.settings
	}
	settings.ServerURL = cli.ServerURL
	timeout := cli.RequestTimeout
	settings.RequestTimeoutSeconds = &timeout

	logging.Logger.Info("Starting SSH server",
		"host", s.Host,
		"port", s.Port,
		"db_path", cli.DBPath)

	srv, err := server.NewServer(s.Host, s.Port, cli.DBPath, settings)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	return srv.Start()
}
