package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"prept/config"
	"prept/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath         string           `help:"Path to the transcript database" type:"path" default:"~/.prept/history.db" env:"PREPT_DB_PATH"`
	ServerURL      string           `help:"Base URL of the interviewer service" default:"http://localhost:3000" env:"PREPT_SERVER_URL"`
	RequestTimeout int              `help:"Per-request timeout in seconds (0 = no timeout)" default:"0" env:"PREPT_REQUEST_TIMEOUT"`

	Run         RunCmd         `cmd:"" help:"Start the prept TUI (default)" default:"1"`
	Questions   QuestionsCmd   `cmd:"questions" help:"Generate a standalone question list without starting a session"`
	Serve       ServeCmd       `cmd:"serve" help:"Serve the TUI over SSH"`
	Transcripts TranscriptsCmd `cmd:"transcripts" help:"Manage archived interview transcripts (list, view, del)"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.DBPath == config.ExpandPath("~/.prept/history.db") {
			if _, hasEnv := os.LookupEnv("PREPT_DB_PATH"); !hasEnv {
				if c.settings.DBPath != "" {
					c.DBPath = c.settings.DBPath
				}
			}
		}

		if c.ServerURL == config.DefaultServerURL {
			if _, hasEnv := os.LookupEnv("PREPT_SERVER_URL"); !hasEnv {
				if c.settings.ServerURL != "" {
					c.ServerURL = c.settings.ServerURL
				}
			}
		}

		if c.RequestTimeout == 0 {
			if _, hasEnv := os.LookupEnv("PREPT_REQUEST_TIMEOUT"); !hasEnv {
				if c.settings.RequestTimeoutSeconds != nil {
					c.RequestTimeout = *c.settings.RequestTimeoutSeconds
				}
			}
		}

		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("PREPT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PREPT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PREPT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PREPT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("PREPT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// positions returns the configured position list, falling back to the
// built-in roles when settings.json has none
func (c *CLI) positions() []string {
	if c.settings != nil && len(c.settings.Positions) > 0 {
		return []string(c.settings.Positions)
	}
	return nil
}
