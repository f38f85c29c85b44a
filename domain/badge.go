package domain

// Tier is the badge tier
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// StatField selects one counter from Stats for a badge rule
type StatField string

const (
	StatTotalWorkouts  StatField = "total_workouts"
	StatTotalMinutes   StatField = "total_minutes"
	StatCurrentStreak  StatField = "current_streak"
	StatWeeklyWorkouts StatField = "weekly_workouts"
)

// Value returns the counter selected by the field (0 for unknown fields)
func (s Stats) Value(field StatField) int {
	switch field {
	case StatTotalWorkouts:
		return s.TotalWorkouts
	case StatTotalMinutes:
		return s.TotalMinutes
	case StatCurrentStreak:
		return s.CurrentStreak
	case StatWeeklyWorkouts:
		return s.WeeklyWorkouts
	}
	return 0
}

// Badge is a milestone unlocked once a statistic reaches its threshold.
// Rules are declarative data (field + threshold) rather than predicates
// so evaluation stays total and testable.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Tier        Tier
	Stat        StatField
	Threshold   int
}

// Unlocked reports whether the badge's rule is satisfied by the stats
func (b Badge) Unlocked(stats Stats) bool {
	return stats.Value(b.Stat) >= b.Threshold
}

// Badges is the fixed badge table, in presentation/evaluation order
var Badges = []Badge{
	{ID: "first_session", Name: "Première Séance", Description: "Complète ta première séance", Icon: "🎯", Tier: TierBronze, Stat: StatTotalWorkouts, Threshold: 1},
	{ID: "warrior_3", Name: "Guerrier 3 Jours", Description: "3 jours consécutifs", Icon: "🔥", Tier: TierBronze, Stat: StatCurrentStreak, Threshold: 3},
	{ID: "warrior_7", Name: "Guerrier 7 Jours", Description: "7 jours consécutifs", Icon: "⚡", Tier: TierSilver, Stat: StatCurrentStreak, Threshold: 7},
	{ID: "warrior_30", Name: "Légende Vivante", Description: "30 jours consécutifs", Icon: "👑", Tier: TierGold, Stat: StatCurrentStreak, Threshold: 30},
	{ID: "sessions_10", Name: "Novice", Description: "10 séances complétées", Icon: "💪", Tier: TierBronze, Stat: StatTotalWorkouts, Threshold: 10},
	{ID: "sessions_50", Name: "Vétéran", Description: "50 séances complétées", Icon: "🦾", Tier: TierSilver, Stat: StatTotalWorkouts, Threshold: 50},
	{ID: "sessions_100", Name: "Centurion", Description: "100 séances complétées", Icon: "🏆", Tier: TierGold, Stat: StatTotalWorkouts, Threshold: 100},
	{ID: "time_10h", Name: "Marathonien", Description: "10 heures d'entraînement", Icon: "⏱️", Tier: TierBronze, Stat: StatTotalMinutes, Threshold: 600},
	{ID: "time_50h", Name: "Ultra Marathonien", Description: "50 heures d'entraînement", Icon: "⌛", Tier: TierSilver, Stat: StatTotalMinutes, Threshold: 3000},
	{ID: "time_100h", Name: "Machine Infernale", Description: "100 heures d'entraînement", Icon: "🚀", Tier: TierGold, Stat: StatTotalMinutes, Threshold: 6000},
	{ID: "weekly_5", Name: "Semaine de Fou", Description: "5 séances en une semaine", Icon: "🌟", Tier: TierSilver, Stat: StatWeeklyWorkouts, Threshold: 5},
	{ID: "weekly_7", Name: "Tous les Jours", Description: "7 séances en une semaine", Icon: "💎", Tier: TierGold, Stat: StatWeeklyWorkouts, Threshold: 7},
}

// BadgeByID looks up a badge definition
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// BadgesByTier returns the badges of the given tier, in table order
func BadgesByTier(tier Tier) []Badge {
	var out []Badge
	for _, b := range Badges {
		if b.Tier == tier {
			out = append(out, b)
		}
	}
	return out
}

// UnlockBadges returns the badges newly unlocked by stats, in table order,
// excluding any already in alreadyUnlocked. Pure and idempotent: thresholds
// are monotonic, so re-evaluating with the updated unlocked set returns
// nothing new.
func UnlockBadges(stats Stats, alreadyUnlocked []string) []string {
	unlocked := make(map[string]bool, len(alreadyUnlocked))
	for _, id := range alreadyUnlocked {
		unlocked[id] = true
	}

	var newly []string
	for _, b := range Badges {
		if b.Unlocked(stats) && !unlocked[b.ID] {
			newly = append(newly, b.ID)
		}
	}
	return newly
}
