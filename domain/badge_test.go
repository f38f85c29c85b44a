package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockBadgesFirstSession(t *testing.T) {
	stats := Stats{TotalWorkouts: 1, CurrentStreak: 1, WeeklyWorkouts: 1}

	newly := UnlockBadges(stats, nil)

	assert.Contains(t, newly, "first_session")
	assert.NotContains(t, newly, "sessions_10")
}

func TestUnlockBadgesAllAtOnce(t *testing.T) {
	stats := Stats{TotalWorkouts: 100, TotalMinutes: 6000, CurrentStreak: 30, WeeklyWorkouts: 7}

	newly := UnlockBadges(stats, nil)

	require.Len(t, newly, len(Badges))

	// Returned in table order, each exactly once
	for i, b := range Badges {
		assert.Equal(t, b.ID, newly[i])
	}
}

func TestUnlockBadgesIdempotent(t *testing.T) {
	stats := Stats{TotalWorkouts: 50, TotalMinutes: 700, CurrentStreak: 7, WeeklyWorkouts: 5}

	first := UnlockBadges(stats, nil)
	require.NotEmpty(t, first)

	second := UnlockBadges(stats, first)
	assert.Empty(t, second, "re-evaluating with the updated unlocked set should return nothing")
}

func TestUnlockBadgesSkipsAlreadyUnlocked(t *testing.T) {
	stats := Stats{TotalWorkouts: 10, CurrentStreak: 3, WeeklyWorkouts: 1}

	newly := UnlockBadges(stats, []string{"first_session"})

	assert.NotContains(t, newly, "first_session")
	assert.Contains(t, newly, "sessions_10")
	assert.Contains(t, newly, "warrior_3")
}

func TestBadgeThresholdBoundaries(t *testing.T) {
	below := Stats{TotalMinutes: 599}
	at := Stats{TotalMinutes: 600}

	badge, ok := BadgeByID("time_10h")
	require.True(t, ok)

	assert.False(t, badge.Unlocked(below))
	assert.True(t, badge.Unlocked(at))
}

func TestBadgesByTier(t *testing.T) {
	total := len(BadgesByTier(TierBronze)) + len(BadgesByTier(TierSilver)) + len(BadgesByTier(TierGold))
	assert.Equal(t, len(Badges), total)
}

func TestBadgeByIDUnknown(t *testing.T) {
	_, ok := BadgeByID("no-such-badge")
	assert.False(t, ok)
}
