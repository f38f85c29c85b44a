package session

import (
	"testing"

	"tempo/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedWorkout() domain.Workout {
	return domain.Workout{
		Name: "test",
		Steps: []domain.WorkoutStep{
			{ExerciseID: "gainage", Sets: 2, Reps: "10 sec", Rest: 5},
		},
	}
}

func manualWorkout() domain.Workout {
	return domain.Workout{
		Name: "test",
		Steps: []domain.WorkoutStep{
			{ExerciseID: "pompes", Sets: 3, Reps: "12", Rest: 30},
		},
	}
}

func multiStepWorkout() domain.Workout {
	return domain.Workout{
		Name: "test",
		Steps: []domain.WorkoutStep{
			{ExerciseID: "velo", Sets: 1, Reps: "5 sec", Rest: 0},
			{ExerciseID: "pompes", Sets: 2, Reps: "10-15", Rest: 45},
			{ExerciseID: "gainage", Sets: 2, Reps: "30 sec", Rest: 45},
		},
	}
}

func TestNewClockStartsReady(t *testing.T) {
	c := NewClock(timedWorkout(), 0)

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 0, c.ExerciseIndex())
	assert.Equal(t, 1, c.SetNumber())
	assert.False(t, c.Running())
	assert.False(t, c.TickActive())
}

func TestStartEntersCountdown(t *testing.T) {
	c := NewClock(timedWorkout(), 10)

	require.True(t, c.Start())
	assert.Equal(t, PhaseCountdown, c.Phase())
	assert.Equal(t, 10, c.Countdown())
	assert.Equal(t, 1, c.SetNumber())
	assert.True(t, c.TickActive())

	// Start is only valid from ready
	assert.False(t, c.Start())
}

func TestCountdownTicksThenStartsExercise(t *testing.T) {
	c := NewClock(timedWorkout(), 10)
	require.True(t, c.Start())

	// Nine decrementing ticks with the countdown cue
	for i := 0; i < 9; i++ {
		assert.Equal(t, ToneTick, c.Tick())
	}
	assert.Equal(t, 1, c.Countdown())

	// Tenth tick fires the start cue and arms the timed exercise
	assert.Equal(t, ToneStart, c.Tick())
	assert.Equal(t, PhaseExercise, c.Phase())
	assert.Equal(t, 10, c.Remaining())
	assert.True(t, c.Running())
}

func TestManualExerciseCountsUp(t *testing.T) {
	c := NewClock(manualWorkout(), 2)
	require.True(t, c.Start())
	c.Tick() // countdown 2 -> 1
	c.Tick() // start exercise

	require.Equal(t, PhaseExercise, c.Phase())
	assert.Equal(t, 0, c.Remaining())

	for i := 1; i <= 100; i++ {
		assert.Equal(t, ToneNone, c.Tick())
		assert.Equal(t, i, c.Remaining())
	}
	// Never auto-transitions
	assert.Equal(t, PhaseExercise, c.Phase())
	assert.True(t, c.Running())
}

func TestFinishSetAdvancesThroughRest(t *testing.T) {
	c := NewClock(manualWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	tone, ok := c.FinishSet()
	require.True(t, ok)
	assert.Equal(t, ToneFinish, tone)
	assert.Equal(t, PhaseRest, c.Phase())
	assert.Equal(t, 30, c.Remaining())
	assert.True(t, c.Running())

	// FinishSet is invalid during rest
	_, ok = c.FinishSet()
	assert.False(t, ok)

	// Run the rest down: 29 silent ticks then the finish cue
	for i := 0; i < 29; i++ {
		assert.Equal(t, ToneNone, c.Tick())
	}
	assert.Equal(t, ToneFinish, c.Tick())
	assert.Equal(t, PhaseExercise, c.Phase())
	assert.Equal(t, 2, c.SetNumber())
	assert.Equal(t, 0, c.Remaining())
}

func TestFinishSetOnFinalSetStops(t *testing.T) {
	c := NewClock(manualWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	for set := 1; set < 3; set++ {
		_, ok := c.FinishSet()
		require.True(t, ok)
		// Burn the rest
		for c.Phase() == PhaseRest {
			c.Tick()
		}
	}
	require.Equal(t, 3, c.SetNumber())

	tone, ok := c.FinishSet()
	require.True(t, ok)
	assert.Equal(t, ToneFinish, tone)
	assert.True(t, c.SetDone())
	assert.False(t, c.TickActive())
}

func TestFinishSetInvalidForTimedExercise(t *testing.T) {
	c := NewClock(timedWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	require.Equal(t, PhaseExercise, c.Phase())
	_, ok := c.FinishSet()
	assert.False(t, ok)
}

func TestTimedSetsInterleaveWithRests(t *testing.T) {
	// S sets and a timed duration yield S exercise phases and S-1 rests
	c := NewClock(timedWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	exercisePhases := 1 // already in the first
	restPhases := 0
	prev := c.Phase()
	for c.TickActive() {
		c.Tick()
		if c.Phase() != prev {
			switch c.Phase() {
			case PhaseExercise:
				exercisePhases++
			case PhaseRest:
				restPhases++
			}
			prev = c.Phase()
		}
	}

	assert.Equal(t, 2, exercisePhases)
	assert.Equal(t, 1, restPhases)
	assert.True(t, c.SetDone())
	assert.Equal(t, 2, c.SetNumber())
}

func TestEndToEndTickCount(t *testing.T) {
	// One step {sets:2, reps:"10 sec", rest:5}: 10 countdown + 10 exercise
	// + 5 rest + 10 exercise = 35 ticks from Start to halt
	c := NewClock(timedWorkout(), 10)
	require.True(t, c.Start())

	ticks := 0
	var tones []Tone
	for c.TickActive() {
		tones = append(tones, c.Tick())
		ticks++
		require.Less(t, ticks, 100, "clock must halt")
	}

	assert.Equal(t, 35, ticks)
	assert.False(t, c.Running())
	assert.Equal(t, PhaseExercise, c.Phase())
	assert.Equal(t, 2, c.SetNumber())
	assert.Equal(t, 0, c.Remaining())

	// Tone sequence: 9 countdown ticks, start, then a finish per boundary
	assert.Equal(t, ToneStart, tones[9])
	assert.Equal(t, ToneFinish, tones[19]) // set 1 done
	assert.Equal(t, ToneFinish, tones[24]) // rest done
	assert.Equal(t, ToneFinish, tones[34]) // set 2 done
	assert.Equal(t, 35, c.Elapsed())
}

func TestPauseResumeNoDrift(t *testing.T) {
	c := NewClock(timedWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	c.Tick()
	c.Tick()
	remaining := c.Remaining()
	elapsed := c.Elapsed()

	require.True(t, c.Pause())
	assert.False(t, c.TickActive())

	// Stale ticks after pause change nothing
	for i := 0; i < 5; i++ {
		assert.Equal(t, ToneNone, c.Tick())
	}
	assert.Equal(t, remaining, c.Remaining())
	assert.Equal(t, elapsed, c.Elapsed())

	require.True(t, c.Resume())
	assert.Equal(t, remaining, c.Remaining())

	// Pause invalid when stopped, Resume invalid when running
	assert.False(t, c.Resume())
	c.Pause()
	assert.False(t, c.Pause())
}

func TestPausedExerciseIsNotSetDone(t *testing.T) {
	c := NewClock(timedWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	// One exercise second in: set 1 of 2 with time still on the counter
	c.Tick()
	require.Equal(t, 9, c.Remaining())
	require.True(t, c.Pause())

	assert.False(t, c.SetDone(), "a paused set is not a finished set")
	assert.False(t, c.Running())

	// The genuine halt after the final set does report done
	require.True(t, c.Resume())
	for c.TickActive() {
		c.Tick()
	}
	assert.True(t, c.SetDone())
}

func TestPausedManualExerciseIsNotSetDone(t *testing.T) {
	c := NewClock(manualWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()
	c.Tick()

	require.True(t, c.Pause())
	assert.False(t, c.SetDone())
}

func TestResumeInvalidAfterFinalSet(t *testing.T) {
	c := NewClock(timedWorkout(), 2)
	require.True(t, c.Start())
	for c.TickActive() {
		c.Tick()
	}
	require.True(t, c.SetDone())

	// The halt is terminal for the attempt; it cannot be re-armed into a
	// repeat of the finish transition
	assert.False(t, c.Resume())
	assert.False(t, c.TickActive())
	assert.Equal(t, ToneNone, c.Tick())

	// Reset clears the done state and allows a fresh attempt
	c.Reset()
	assert.False(t, c.SetDone())
	assert.True(t, c.Start())
}

func TestResumeInvalidAfterFinalManualSet(t *testing.T) {
	c := NewClock(manualWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	for set := 1; set <= 3; set++ {
		_, ok := c.FinishSet()
		require.True(t, ok)
		for c.Phase() == PhaseRest {
			c.Tick()
		}
	}
	require.True(t, c.SetDone())

	assert.False(t, c.Resume())
	_, ok := c.FinishSet()
	assert.False(t, ok, "no extra sets past the last")
}

func TestPauseInvalidDuringCountdown(t *testing.T) {
	c := NewClock(timedWorkout(), 5)
	require.True(t, c.Start())
	assert.False(t, c.Pause())
}

func TestResetPreservesExerciseIndex(t *testing.T) {
	c := NewClock(multiStepWorkout(), 2)
	require.True(t, c.NextExercise())
	require.True(t, c.Start())
	c.Tick()
	c.Tick()
	c.FinishSet()

	c.Reset()

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 1, c.ExerciseIndex())
	assert.Equal(t, 1, c.SetNumber())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 0, c.Countdown())
	assert.False(t, c.Running())
}

func TestNavigationBounds(t *testing.T) {
	c := NewClock(multiStepWorkout(), 2)

	assert.False(t, c.PrevExercise())
	assert.Equal(t, 0, c.ExerciseIndex())

	assert.True(t, c.NextExercise())
	assert.True(t, c.NextExercise())
	assert.Equal(t, 2, c.ExerciseIndex())
	assert.True(t, c.OnLastExercise())

	assert.False(t, c.NextExercise())
	assert.Equal(t, 2, c.ExerciseIndex())

	assert.True(t, c.PrevExercise())
	assert.Equal(t, 1, c.ExerciseIndex())
}

func TestNavigationResetsSessionState(t *testing.T) {
	c := NewClock(multiStepWorkout(), 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	require.True(t, c.NextExercise())
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 1, c.SetNumber())
	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Running(), "navigation must not auto-start")
}

func TestGenerationInvalidatesStaleTicks(t *testing.T) {
	c := NewClock(timedWorkout(), 2)
	gen := c.Generation()

	require.True(t, c.Start())
	assert.NotEqual(t, gen, c.Generation(), "arming bumps the generation")

	gen = c.Generation()
	c.Tick()
	c.Tick()
	assert.Equal(t, gen, c.Generation(), "plain ticks keep the generation")

	c.Pause()
	assert.NotEqual(t, gen, c.Generation(), "disarming bumps the generation")

	gen = c.Generation()
	c.Resume()
	assert.NotEqual(t, gen, c.Generation())

	gen = c.Generation()
	c.Reset()
	assert.NotEqual(t, gen, c.Generation())
}

func TestCompleteOnlyOnLastExercise(t *testing.T) {
	c := NewClock(multiStepWorkout(), 2)

	_, ok := c.Complete()
	assert.False(t, ok)

	c.NextExercise()
	c.NextExercise()
	require.True(t, c.OnLastExercise())

	_, ok = c.Complete()
	assert.True(t, ok)
}

func TestCompleteReturnsElapsedMinutes(t *testing.T) {
	c := NewClock(timedWorkout(), 10)
	require.True(t, c.Start())
	for c.TickActive() {
		c.Tick()
	}
	// 35 elapsed seconds at halt; elapsed survives a reset
	require.Equal(t, 35, c.Elapsed())

	// Run a second attempt of the exercise to cross the minute mark
	c.Reset()
	require.True(t, c.Start())
	for i := 0; i < 30; i++ {
		c.Tick()
	}
	require.GreaterOrEqual(t, c.Elapsed(), 60)

	minutes, ok := c.Complete()
	require.True(t, ok)
	assert.Equal(t, 1, minutes)

	// Clock is back to its initial state
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 0, c.ExerciseIndex())
	assert.Equal(t, 1, c.SetNumber())
	assert.Equal(t, 0, c.Elapsed())
}

func TestExerciseOrderIsDeterministic(t *testing.T) {
	w := multiStepWorkout()
	c := NewClock(w, 2)

	var visited []int
	visited = append(visited, c.ExerciseIndex())
	for c.NextExercise() {
		visited = append(visited, c.ExerciseIndex())
	}

	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestRestFallbackWhenZero(t *testing.T) {
	// Step with rest 0 falls back to 60 seconds between sets
	w := domain.Workout{Steps: []domain.WorkoutStep{
		{ExerciseID: "velo", Sets: 2, Reps: "5 sec", Rest: 0},
	}}
	c := NewClock(w, 2)
	require.True(t, c.Start())
	c.Tick()
	c.Tick()

	for c.Phase() == PhaseExercise {
		c.Tick()
	}
	require.Equal(t, PhaseRest, c.Phase())
	assert.Equal(t, 60, c.Remaining())
}
