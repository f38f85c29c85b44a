package cmd

import (
	"context"
	"fmt"

	"tempo/storage"
)

// ResetLinksCmd removes every custom video link override
type ResetLinksCmd struct {
	Force bool `help:"Skip the confirmation" short:"f"`
}

// Run executes the reset-links command
func (r *ResetLinksCmd) Run(cli *CLI) error {
	if !r.Force {
		return fmt.Errorf("this removes all custom video links; re-run with --force to confirm")
	}

	store, err := storage.NewStore(expandPath(cli.DBPath))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	if err := store.ClearVideoLinks(context.Background()); err != nil {
		return err
	}

	fmt.Println("Liens vidéo réinitialisés")
	return nil
}
