package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.tempo/settings.json
type Settings struct {
	CountdownSeconds *int   `json:"countdown_seconds,omitempty"`
	DBPath           string `json:"db_path,omitempty"`
	Debug            *bool  `json:"debug,omitempty"`
	MaxLogFiles      *int   `json:"max_log_files,omitempty"`
	SoundEnabled     *bool  `json:"sound_enabled,omitempty"`
	SSHHost          string `json:"ssh_host,omitempty"`
	SSHPort          string `json:"ssh_port,omitempty"`
}

// settingsPathFunc returns the path to the settings file.
// Can be overridden in tests.
var settingsPathFunc = getDefaultSettingsPath

// getDefaultSettingsPath returns the default settings file path
func getDefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tempo", "settings.json"), nil
}

// LoadSettings loads settings from ~/.tempo/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path, err := settingsPathFunc()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// Save writes the settings to disk with file locking
func (s *Settings) Save() error {
	path, err := settingsPathFunc()
	if err != nil {
		return err
	}

	// Create directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Open file with O_RDWR|O_CREATE
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	// Acquire exclusive lock
	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	// Marshal to JSON
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Truncate file and write
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to home directory in paths
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
