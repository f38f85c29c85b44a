package ui

import (
	"fmt"
	"strings"

	"tempo/domain"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateBadges(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "b":
			m.state = stateHome
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) viewBadges() string {
	unlocked := make(map[string]bool, len(m.unlocked))
	for _, id := range m.unlocked {
		unlocked[id] = true
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Badges · %d/%d débloqués", len(m.unlocked), len(domain.Badges))))

	tiers := []struct {
		tier  domain.Tier
		label string
	}{
		{domain.TierBronze, "Bronze"},
		{domain.TierSilver, "Argent"},
		{domain.TierGold, "Or"},
	}

	for _, t := range tiers {
		b.WriteString("\n\n" + normalStyle.Render(t.label))
		for _, badge := range domain.BadgesByTier(t.tier) {
			line := fmt.Sprintf("  %s %s · %s", badge.Icon, badge.Name, badge.Description)
			if unlocked[badge.ID] {
				b.WriteString("\n" + unlockedBadgeStyle.Render(line+" ✓"))
			} else {
				b.WriteString("\n" + lockedBadgeStyle.Render(line))
			}
		}
	}

	b.WriteString(helpStyle.Render("\nesc: retour · q: quitter"))
	return b.String()
}
