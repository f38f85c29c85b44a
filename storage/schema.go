package storage

import (
	"time"
)

// StatsRecord holds the lifetime workout statistics as a single row.
type StatsRecord struct {
	ID             uint `gorm:"primaryKey"`
	TotalWorkouts  int  `gorm:"not null;default:0"`
	TotalMinutes   int  `gorm:"not null;default:0"`
	CurrentStreak  int  `gorm:"not null;default:0"`
	WeeklyWorkouts int  `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VideoLink overrides the catalog video URL for an exercise
type VideoLink struct {
	ExerciseID string `gorm:"primaryKey"`
	URL        string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnlockedBadge records a badge the user has earned
type UnlockedBadge struct {
	BadgeID    string    `gorm:"primaryKey"`
	UnlockedAt time.Time `gorm:"not null;index:idx_unlocked_at"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkoutLog records a single completed workout
type WorkoutLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	ProgramID       string    `gorm:"not null;index:idx_program_id"`
	WorkoutName     string    `gorm:"not null"`
	DurationMinutes int       `gorm:"not null;default:0"`
	CompletedAt     time.Time `gorm:"not null;index:idx_completed_at"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
