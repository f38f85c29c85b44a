package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"tempo/config"
	"tempo/logging"

	"github.com/alecthomas/kong"
)

// defaultCountdownFlag is the flag default for the pre-start countdown
const defaultCountdownFlag = 10

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to SQLite database" type:"path" default:"~/.tempo/tempo.db" env:"TEMPO_DB_PATH"`

	Run        RunCmd        `cmd:"" help:"Start the tempo TUI (default)" default:"1"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the trainer over SSH"`
	Stats      StatsCmd      `cmd:"stats" help:"Show lifetime workout statistics"`
	Badges     BadgesCmd     `cmd:"badges" help:"Show earned and locked badges"`
	Programs   ProgramsCmd   `cmd:"programs" help:"List the training programs"`
	PlaySound  PlaySoundCmd  `cmd:"play-sound" help:"Play a sound cue (cross-platform)" hidden:""`
	ResetLinks ResetLinksCmd `cmd:"reset-links" help:"Remove all custom video links"`
	Settings   SettingsCmd   `cmd:"settings" help:"View or update persistent settings"`

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
		// Apply DBPath setting
		if c.DBPath == "~/.tempo/tempo.db" {
			if _, hasEnv := os.LookupEnv("TEMPO_DB_PATH"); !hasEnv {
				if c.settings.DBPath != "" {
					c.DBPath = c.settings.DBPath
				}
			}
		}

		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TEMPO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TEMPO_DEBUG"); !hasEnv {
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

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and use the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TEMPO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TEMPO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TEMPO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// countdownSeconds resolves the pre-start countdown length from flag,
// settings and default
func (c *CLI) countdownSeconds(flagValue int) int {
	if flagValue != defaultCountdownFlag {
		return flagValue
	}
	if c.settings != nil && c.settings.CountdownSeconds != nil {
		return *c.settings.CountdownSeconds
	}
	return flagValue
}

// soundEnabled resolves the sound setting; sound defaults to on
func (c *CLI) soundEnabled(noSoundFlag bool) bool {
	if noSoundFlag {
		return false
	}
	if c.settings != nil && c.settings.SoundEnabled != nil {
		return *c.settings.SoundEnabled
	}
	return true
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
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
