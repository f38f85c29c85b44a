package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSettings overrides settingsPathFunc to point into a temp dir
func setupTestSettings(t *testing.T) string {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "settings.json")

	origSettingsPathFunc := settingsPathFunc
	settingsPathFunc = func() (string, error) {
		return path, nil
	}
	t.Cleanup(func() {
		settingsPathFunc = origSettingsPathFunc
	})

	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	setupTestSettings(t)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Nil(t, settings.SoundEnabled)
	assert.Empty(t, settings.DBPath)
}

func TestSaveAndLoadSettings(t *testing.T) {
	setupTestSettings(t)

	countdown := 5
	soundOff := false
	settings := &Settings{
		CountdownSeconds: &countdown,
		SoundEnabled:     &soundOff,
		DBPath:           "/tmp/tempo-test.db",
	}

	require.NoError(t, settings.Save())

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded.CountdownSeconds)
	assert.Equal(t, 5, *loaded.CountdownSeconds)
	require.NotNil(t, loaded.SoundEnabled)
	assert.False(t, *loaded.SoundEnabled)
	assert.Equal(t, "/tmp/tempo-test.db", loaded.DBPath)
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := setupTestSettings(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestLoadSettingsExpandsDBPath(t *testing.T) {
	path := setupTestSettings(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"db_path":"~/tempo/test.db"}`), 0644))

	loaded, err := LoadSettings()
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "tempo", "test.db"), loaded.DBPath)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, ".tempo"), ExpandPath("~/.tempo"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Equal(t, "", ExpandPath(""))
}
