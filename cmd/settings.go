package cmd

import (
	"fmt"

	"tempo/config"
)

// SettingsCmd views or updates the persistent settings file
type SettingsCmd struct {
	Countdown   *int    `help:"Default pre-start countdown in seconds"`
	Sound       *bool   `help:"Enable or disable sound cues" negatable:""`
	DBPath      *string `help:"Default SQLite database path" name:"db-path"`
	SSHHost     *string `help:"Default host for the serve command" name:"ssh-host"`
	SSHPort     *string `help:"Default port for the serve command" name:"ssh-port"`
	MaxLogFiles *int    `help:"Maximum number of log files to keep"`
	Debug       *bool   `help:"Enable debug logging by default" negatable:""`
}

// Run executes the settings command. Without flags it prints the current
// settings; with flags it updates them and writes the settings file.
func (s *SettingsCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	changed := false
	if s.Countdown != nil {
		if *s.Countdown <= 0 {
			return fmt.Errorf("countdown must be positive, got %d", *s.Countdown)
		}
		settings.CountdownSeconds = s.Countdown
		changed = true
	}
	if s.Sound != nil {
		settings.SoundEnabled = s.Sound
		changed = true
	}
	if s.DBPath != nil {
		settings.DBPath = *s.DBPath
		changed = true
	}
	if s.SSHHost != nil {
		settings.SSHHost = *s.SSHHost
		changed = true
	}
	if s.SSHPort != nil {
		settings.SSHPort = *s.SSHPort
		changed = true
	}
	if s.MaxLogFiles != nil {
		settings.MaxLogFiles = s.MaxLogFiles
		changed = true
	}
	if s.Debug != nil {
		settings.Debug = s.Debug
		changed = true
	}

	if !changed {
		printSettings(settings)
		return nil
	}

	if err := settings.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings saved")
	return nil
}

// printSettings prints each setting, showing defaults for unset values
func printSettings(s *config.Settings) {
	fmt.Printf("countdown_seconds: %s\n", formatIntSetting(s.CountdownSeconds, 10))
	fmt.Printf("sound_enabled:     %s\n", formatBoolSetting(s.SoundEnabled, true))
	fmt.Printf("db_path:           %s\n", formatStringSetting(s.DBPath, "~/.tempo/tempo.db"))
	fmt.Printf("ssh_host:          %s\n", formatStringSetting(s.SSHHost, "localhost"))
	fmt.Printf("ssh_port:          %s\n", formatStringSetting(s.SSHPort, "23234"))
	fmt.Printf("max_log_files:     %s\n", formatIntSetting(s.MaxLogFiles, 1000))
	fmt.Printf("debug:             %s\n", formatBoolSetting(s.Debug, false))
}

func formatIntSetting(v *int, def int) string {
	if v == nil {
		return fmt.Sprintf("%d (default)", def)
	}
	return fmt.Sprintf("%d", *v)
}

func formatBoolSetting(v *bool, def bool) string {
	if v == nil {
		return fmt.Sprintf("%t (default)", def)
	}
	return fmt.Sprintf("%t", *v)
}

func formatStringSetting(v string, def string) string {
	if v == "" {
		return fmt.Sprintf("%s (default)", def)
	}
	return v
}
