package ui

import (
	"context"
	"path/filepath"
	"testing"

	"tempo/domain"
	"tempo/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *storage.Store) {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "tempo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewModel(store, 10, false), store
}

func singleStepWorkout() domain.Workout {
	return domain.Workout{
		Name: "Séance test",
		Steps: []domain.WorkoutStep{
			{ExerciseID: "pompes", Sets: 1, Reps: "10", Rest: 30},
		},
	}
}

func TestCompleteWorkoutPersistsStatsAndBadges(t *testing.T) {
	m, store := newTestModel(t)
	m.program = domain.Program{ID: "beginner"}
	m.startSession(singleStepWorkout())

	_, _ = m.completeWorkout()

	require.NoError(t, m.err)
	assert.Equal(t, 1, m.stats.TotalWorkouts)
	assert.Nil(t, m.clock)
	assert.Equal(t, stateHome, m.state)
	assert.NotEmpty(t, m.toast)

	ctx := context.Background()
	saved, err := store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.TotalWorkouts)

	unlocked, err := store.UnlockedBadges(ctx)
	require.NoError(t, err)
	assert.Contains(t, unlocked, "first_session")
	assert.Contains(t, m.unlocked, "first_session")

	logs, err := store.RecentWorkouts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Séance test", logs[0].WorkoutName)
	assert.Equal(t, "beginner", logs[0].ProgramID)
}

func TestCompleteWorkoutSurfacesWriteFailures(t *testing.T) {
	m, store := newTestModel(t)
	m.program = domain.Program{ID: "beginner"}
	m.startSession(singleStepWorkout())

	// Every persistence step fails against a closed store
	require.NoError(t, store.Close())

	_, _ = m.completeWorkout()

	assert.Error(t, m.err, "write failures must be surfaced, not just logged")

	// In-memory progress stays authoritative
	assert.Equal(t, 1, m.stats.TotalWorkouts)
	assert.Contains(t, m.unlocked, "first_session")
	assert.Equal(t, stateHome, m.state)
}
