package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_UnmarshalArray(t *testing.T) {
	var sa StringArray
	require.NoError(t, json.Unmarshal([]byte(`["Backend Developer","Data Scientist"]`), &sa))
	assert.Equal(t, StringArray{"Backend Developer", "Data Scientist"}, sa)
}

func TestStringArray_UnmarshalCommaSeparated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringArray
	}{
		{"simple", `"a,b,c"`, StringArray{"a", "b", "c"}},
		{"with spaces", `"a , b , c"`, StringArray{"a", "b", "c"}},
		{"empty entries dropped", `"a,,b,"`, StringArray{"a", "b"}},
		{"empty string", `""`, StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.input), &sa))
			assert.Equal(t, tt.expected, sa)
		})
	}
}

func TestLoadSettings_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("PREPT_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PREPT_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{not json"), 0644))

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestSaveAndLoadSettings_RoundTrip(t *testing.T) {
	t.Setenv("PREPT_HOME", t.TempDir())

	debug := true
	timeout := 30
	original := &Settings{
		Debug:                 &debug,
		Positions:             StringArray{"Backend Developer", "SRE"},
		RequestTimeoutSeconds: &timeout,
		ServerURL:             "http://interviews.internal:3000",
	}

	require.NoError(t, SaveSettings(original))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadSettings_ExpandsDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PREPT_HOME", home)
	require.NoError(t, os.WriteFile(
		filepath.Join(home, "settings.json"),
		[]byte(`{"db_path":"~/custom/history.db"}`), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "custom", "history.db"), settings.DBPath)
}
