package cmd

import (
	"context"
	"fmt"

	"tempo/domain"
	"tempo/storage"
)

// BadgesCmd prints the badge table with unlock status
type BadgesCmd struct{}

// Run executes the badges command
func (b *BadgesCmd) Run(cli *CLI) error {
	store, err := storage.NewStore(expandPath(cli.DBPath))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	unlockedIDs, err := store.UnlockedBadges(context.Background())
	if err != nil {
		return err
	}
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	fmt.Printf("Badges débloqués : %d/%d\n\n", len(unlockedIDs), len(domain.Badges))
	for _, badge := range domain.Badges {
		marker := " "
		if unlocked[badge.ID] {
			marker = "✓"
		}
		fmt.Printf("[%s] %s %s (%s) · %s\n", marker, badge.Icon, badge.Name, badge.Tier, badge.Description)
	}
	return nil
}
