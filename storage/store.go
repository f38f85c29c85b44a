package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempo/domain"
	"tempo/logging"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger wraps the tempo logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

// LogMode sets the log level
func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

// Info logs info messages
func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn logs warn messages
func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error logs error messages
func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries - only in debug mode
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	// Only log traces in Info level (debug mode)
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		// Log errors (except ErrRecordNotFound which is expected)
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		// Log slow queries
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		// Log all queries in debug mode
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

// newGormLogger creates a GORM logger that respects tempo's debug settings
func newGormLogger() logger.Interface {
	// Check if debug mode is enabled via environment variable
	// (set by cmd/root.go when --debug flag is used)
	if os.Getenv("TEMPO_DEBUG") == "1" {
		// Debug mode: log all queries to the debug file
		return (&gormLogger{}).LogMode(logger.Info)
	}

	// Normal mode: silent (no logs)
	return (&gormLogger{}).LogMode(logger.Silent)
}

// Store provides thread-safe ACID access to workout history
type Store struct {
	db *gorm.DB
}

// NewStore creates a new storage instance with WAL mode enabled
func NewStore(dbPath string) (*Store, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false, // Disable to avoid transaction conflicts
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(), // Use custom logger that respects --debug flag
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000") // 5 second timeout
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&StatsRecord{}, &VideoLink{}, &UnlockedBadge{}, &WorkoutLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool after migration
	// SQLite with WAL mode can handle multiple readers + 1 writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10) // Allow multiple readers
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &Store{db: db}, nil
}

// LoadStats reads the lifetime statistics, returning zeros when none were saved yet
func (s *Store) LoadStats(ctx context.Context) (domain.Stats, error) {
	var record StatsRecord

	err := withRetry(func() error {
		err := s.db.WithContext(ctx).First(&record, statsRowID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = StatsRecord{ID: statsRowID}
			return nil
		}
		return err
	}, 3)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to load stats: %w", err)
	}

	return domain.Stats{
		TotalWorkouts:  record.TotalWorkouts,
		TotalMinutes:   record.TotalMinutes,
		CurrentStreak:  record.CurrentStreak,
		WeeklyWorkouts: record.WeeklyWorkouts,
	}, nil
}

// SaveStats persists the lifetime statistics as the single stats row
func (s *Store) SaveStats(ctx context.Context, stats domain.Stats) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			record := StatsRecord{
				ID:             statsRowID,
				TotalWorkouts:  stats.TotalWorkouts,
				TotalMinutes:   stats.TotalMinutes,
				CurrentStreak:  stats.CurrentStreak,
				WeeklyWorkouts: stats.WeeklyWorkouts,
			}

			var existing StatsRecord
			err := tx.First(&existing, statsRowID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&record).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load stats row: %w", err)
			}

			return tx.Model(&existing).Updates(map[string]interface{}{
				"total_workouts":  record.TotalWorkouts,
				"total_minutes":   record.TotalMinutes,
				"current_streak":  record.CurrentStreak,
				"weekly_workouts": record.WeeklyWorkouts,
			}).Error
		})
	}, 3)
}

// statsRowID keeps the stats table at exactly one row
const statsRowID = 1

// VideoLinks returns the custom video URL overrides keyed by exercise id
func (s *Store) VideoLinks(ctx context.Context) (map[string]string, error) {
	var links []VideoLink

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Find(&links).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load video links: %w", err)
	}

	linkMap := make(map[string]string, len(links))
	for _, link := range links {
		if link.URL != "" {
			linkMap[link.ExerciseID] = link.URL
		}
	}
	return linkMap, nil
}

// SetVideoLink sets the video URL override for an exercise (empty URL deletes the override)
func (s *Store) SetVideoLink(ctx context.Context, exerciseID, url string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if url == "" {
				result := tx.Where("exercise_id = ?", exerciseID).Delete(&VideoLink{})
				if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return fmt.Errorf("failed to delete video link: %w", result.Error)
				}
				return nil
			}

			var link VideoLink
			err := tx.Where("exercise_id = ?", exerciseID).First(&link).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				link = VideoLink{ExerciseID: exerciseID, URL: url}
				return tx.Create(&link).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load video link: %w", err)
			}

			link.URL = url
			return tx.Save(&link).Error
		})
	}, 3)
}

// ClearVideoLinks removes every video URL override
func (s *Store) ClearVideoLinks(ctx context.Context) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Where("1 = 1").Delete(&VideoLink{}).Error
	}, 3)
}

// UnlockedBadges returns the earned badge ids in unlock order
func (s *Store) UnlockedBadges(ctx context.Context) ([]string, error) {
	var badges []UnlockedBadge

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Order("unlocked_at ASC, badge_id ASC").Find(&badges).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked badges: %w", err)
	}

	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.BadgeID)
	}
	return ids, nil
}

// AddUnlockedBadges records newly earned badges, skipping ids already stored
func (s *Store) AddUnlockedBadges(ctx context.Context, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}

	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			for _, id := range badgeIDs {
				var existing UnlockedBadge
				err := tx.Where("badge_id = ?", id).First(&existing).Error
				if err == nil {
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("failed to check badge %s: %w", id, err)
				}

				badge := UnlockedBadge{BadgeID: id, UnlockedAt: now}
				if err := tx.Create(&badge).Error; err != nil {
					return fmt.Errorf("failed to record badge %s: %w", id, err)
				}
			}
			return nil
		})
	}, 3)
}

// LogWorkout appends a completed workout to the history
func (s *Store) LogWorkout(ctx context.Context, programID, workoutName string, durationMinutes int) error {
	return withRetry(func() error {
		entry := WorkoutLog{
			ProgramID:       programID,
			WorkoutName:     workoutName,
			DurationMinutes: durationMinutes,
			CompletedAt:     time.Now().UTC(),
		}
		return s.db.WithContext(ctx).Create(&entry).Error
	}, 3)
}

// RecentWorkouts returns the most recent history entries, newest first
func (s *Store) RecentWorkouts(ctx context.Context, limit int) ([]WorkoutLog, error) {
	var logs []WorkoutLog

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Order("completed_at DESC, id DESC").Limit(limit).Find(&logs).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout history: %w", err)
	}
	return logs, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		// Check if it's a busy error
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
