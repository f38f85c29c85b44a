package cmd

import (
	"fmt"

	"tempo/logging"
	"tempo/storage"
	"tempo/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Countdown int  `help:"Pre-start countdown in seconds" default:"10"`
	NoSound   bool `help:"Disable sound cues"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	countdown := cli.countdownSeconds(r.Countdown)
	soundEnabled := cli.soundEnabled(r.NoSound)

	logging.Logger.Info("Starting tempo TUI",
		"countdown_seconds", countdown,
		"sound_enabled", soundEnabled)

	// Open database
	dbPath := expandPath(cli.DBPath)
	store, err := storage.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	model := ui.NewModel(store, countdown, soundEnabled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
