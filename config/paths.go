package config

import (
	"os"
	"path/filepath"
)

// PreptHome returns the prept home directory ($PREPT_HOME or ~/.prept)
func PreptHome() string {
	if home := os.Getenv("PREPT_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".prept"
	}
	return filepath.Join(homeDir, ".prept")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(PreptHome(), "settings.json")
}

// GetDBPath returns the path to the transcript database
func GetDBPath() string {
	return filepath.Join(PreptHome(), "history.db")
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
