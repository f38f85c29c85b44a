package cmd

import (
	"context"
	"fmt"

	"tempo/storage"
)

// StatsCmd prints the lifetime statistics and recent history
type StatsCmd struct {
	History int `help:"Number of recent workouts to show" default:"10"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	store, err := storage.NewStore(expandPath(cli.DBPath))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	stats, err := store.LoadStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Séances complétées : %d\n", stats.TotalWorkouts)
	fmt.Printf("Minutes d'effort   : %d\n", stats.TotalMinutes)
	fmt.Printf("Série en cours     : %d jours\n", stats.CurrentStreak)
	fmt.Printf("Cette semaine      : %d séances\n", stats.WeeklyWorkouts)

	if s.History <= 0 {
		return nil
	}

	logs, err := store.RecentWorkouts(ctx, s.History)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		return nil
	}

	fmt.Println("\nDernières séances :")
	for _, entry := range logs {
		fmt.Printf("  %s  %s (%d min, %s)\n",
			entry.CompletedAt.Local().Format("2006-01-02 15:04"),
			entry.WorkoutName,
			entry.DurationMinutes,
			entry.ProgramID)
	}
	return nil
}
