package catalog

import (
	"testing"

	"tempo/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()

	require.NoError(t, err)
	assert.Len(t, c.Exercises, 19)
	assert.Len(t, c.Programs, 3)
}

func TestExerciseLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	ex, ok := c.Exercise("rameur")
	require.True(t, ok)
	assert.Equal(t, "Rameur", ex.Name)
	assert.Equal(t, "Cardio", ex.Category)
	assert.NotEmpty(t, ex.Tips)
	assert.NotEmpty(t, ex.Video)

	_, ok = c.Exercise("deadlift")
	assert.False(t, ok)
}

func TestProgramLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	p, ok := c.Program("beginner")
	require.True(t, ok)
	assert.Equal(t, 3, p.SessionsPerWeek)
	assert.Len(t, p.Workouts, 3)

	p, ok = c.Program("advanced")
	require.True(t, ok)
	assert.Len(t, p.Workouts, 5)

	_, ok = c.Program("expert")
	assert.False(t, ok)
}

func TestWorkoutStepsResolve(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, p := range c.Programs {
		for _, w := range p.Workouts {
			require.NotEmpty(t, w.Steps, "workout %q has no steps", w.Name)
			for _, s := range w.Steps {
				_, ok := c.Exercise(s.ExerciseID)
				assert.True(t, ok, "workout %q references %q", w.Name, s.ExerciseID)
				assert.GreaterOrEqual(t, s.Sets, 1)
				assert.NotEmpty(t, s.Reps)
			}
		}
	}
}

func TestRepsKeepFreeFormText(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	p, ok := c.Program("advanced")
	require.True(t, ok)

	// HIIT steps keep their interval text; only the first duration parses
	hiit := p.Workouts[1]
	require.Equal(t, "Séance 2 - HIIT Cardio", hiit.Name)
	seconds, timed := domain.ParseRepDuration(hiit.Steps[0].Reps)
	assert.True(t, timed)
	assert.Equal(t, 30, seconds)
}

func TestParseRejectsUnknownExerciseRef(t *testing.T) {
	data := []byte(`
exercises:
  - id: a
    name: A
programs:
  - id: p
    name: P
    workouts:
      - name: W
        steps:
          - { exercise: missing, sets: 1, reps: "10", rest: 30 }
`)
	_, err := parse(data)
	assert.Error(t, err)
}
