// Package session implements the workout session clock: the state machine
// that turns a declarative workout into a second-by-second execution
// sequence (start countdown, timed or manual exercise phases, rest phases,
// set advancement, completion).
//
// The clock owns no timers. The caller delivers exactly one Tick per elapsed
// second while TickActive reports true, and drops ticks whose generation no
// longer matches Generation, so stale scheduler callbacks become no-ops
// after Pause, Reset or navigation.
package session

import "tempo/domain"

// Phase is the clock's current mode
type Phase int

const (
	// PhaseReady is both initial and terminal for an exercise attempt:
	// entered before the start countdown and again once all sets are done
	PhaseReady Phase = iota
	PhaseCountdown
	PhaseExercise
	PhaseRest
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseCountdown:
		return "countdown"
	case PhaseExercise:
		return "exercise"
	case PhaseRest:
		return "rest"
	}
	return "unknown"
}

// Tone is an audible cue requested by a transition. The clock only reports
// tones; emitting sound is the caller's concern.
type Tone int

const (
	ToneNone Tone = iota
	ToneTick
	ToneStart
	ToneFinish
)

// DefaultCountdownSeconds is the pre-start countdown length
const DefaultCountdownSeconds = 10

// Clock drives a single workout attempt. All mutation happens through its
// methods; invalid actions for the current phase are no-ops.
type Clock struct {
	workout domain.Workout

	phase         Phase
	exerciseIndex int
	setNumber     int
	remaining     int // seconds; counts down when timed, up when manual
	countdown     int
	running       bool
	done          bool // all sets of the current exercise finished

	// elapsed is the true cumulative wall-clock seconds across all phases,
	// frozen while paused. Completion minutes derive from it.
	elapsed int

	countdownSeconds int
	generation       uint64
}

// NewClock creates an idle clock for the workout. countdownSeconds <= 0
// selects the default pre-start delay.
func NewClock(workout domain.Workout, countdownSeconds int) *Clock {
	if countdownSeconds <= 0 {
		countdownSeconds = DefaultCountdownSeconds
	}
	return &Clock{
		workout:          workout,
		phase:            PhaseReady,
		setNumber:        1,
		countdownSeconds: countdownSeconds,
	}
}

// Workout returns the workout being executed
func (c *Clock) Workout() domain.Workout { return c.workout }

// Phase returns the current phase
func (c *Clock) Phase() Phase { return c.phase }

// ExerciseIndex returns the 0-based position into the workout's steps
func (c *Clock) ExerciseIndex() int { return c.exerciseIndex }

// SetNumber returns the 1-based current set
func (c *Clock) SetNumber() int { return c.setNumber }

// Remaining returns the phase counter: seconds left for timed exercise and
// rest phases, seconds elapsed for manual exercise phases
func (c *Clock) Remaining() int { return c.remaining }

// Countdown returns the pre-start countdown value (countdown phase only)
func (c *Clock) Countdown() int { return c.countdown }

// Running reports whether the per-second tick should be delivered
func (c *Clock) Running() bool { return c.running }

// Elapsed returns cumulative wall-clock seconds across all phases so far
func (c *Clock) Elapsed() int { return c.elapsed }

// Generation identifies the currently armed tick loop. It advances every
// time ticking is disarmed or re-armed, so a callback scheduled for an
// earlier generation must be discarded.
func (c *Clock) Generation() uint64 { return c.generation }

// Step returns the current workout step
func (c *Clock) Step() domain.WorkoutStep {
	return c.workout.Steps[c.exerciseIndex]
}

// StepTimed reports whether the current step parses to a duration, and that
// duration in seconds
func (c *Clock) StepTimed() (seconds int, timed bool) {
	return domain.ParseRepDuration(c.Step().Reps)
}

// TickActive reports whether a tick loop should be armed
func (c *Clock) TickActive() bool {
	return c.running && c.phase != PhaseReady
}

// OnLastExercise reports whether the current exercise is the workout's last
func (c *Clock) OnLastExercise() bool {
	return c.exerciseIndex == len(c.workout.Steps)-1
}

// SetDone reports "all sets done, awaiting manual advance". Ticking is also
// stopped while paused, so completion is tracked explicitly rather than
// inferred from the running flag.
func (c *Clock) SetDone() bool {
	return c.done
}

// Start begins the pre-start countdown. Valid only from the ready phase.
func (c *Clock) Start() bool {
	if c.phase != PhaseReady {
		return false
	}
	c.phase = PhaseCountdown
	c.countdown = c.countdownSeconds
	c.setNumber = 1
	c.remaining = 0
	c.running = true
	c.generation++
	return true
}

// Tick advances the clock by one second and returns the tone to emit, if
// any. A tick that causes a transition takes effect atomically: the tick
// that ends an exercise arms the rest counter but does not also consume a
// rest second. Ticks while inactive are no-ops.
func (c *Clock) Tick() Tone {
	if !c.TickActive() {
		return ToneNone
	}
	c.elapsed++

	switch c.phase {
	case PhaseCountdown:
		return c.tickCountdown()
	case PhaseExercise:
		return c.tickExercise()
	case PhaseRest:
		return c.tickRest()
	}
	return ToneNone
}

func (c *Clock) tickCountdown() Tone {
	if c.countdown > 1 {
		c.countdown--
		return ToneTick
	}
	// Last countdown tick: enter the first exercise phase
	c.countdown = 0
	c.phase = PhaseExercise
	c.armExercise()
	return ToneStart
}

func (c *Clock) tickExercise() Tone {
	_, timed := c.StepTimed()
	if !timed {
		// Manual exercise: count up, never auto-transition
		c.remaining++
		return ToneNone
	}

	if c.remaining > 1 {
		c.remaining--
		return ToneNone
	}

	// Timed set finished
	if c.setNumber < c.Step().SetsOrOne() {
		c.phase = PhaseRest
		c.remaining = c.Step().RestOrDefault()
	} else {
		// Final set: stop and await manual advance
		c.remaining = 0
		c.running = false
		c.done = true
		c.generation++
	}
	return ToneFinish
}

func (c *Clock) tickRest() Tone {
	if c.remaining > 1 {
		c.remaining--
		return ToneNone
	}

	// Rest over: next set
	c.setNumber++
	c.phase = PhaseExercise
	c.armExercise()
	return ToneFinish
}

// armExercise initializes the phase counter for an exercise phase:
// countdown from the parsed duration for timed steps, count up from zero
// for manual steps
func (c *Clock) armExercise() {
	if duration, timed := c.StepTimed(); timed {
		c.remaining = duration
	} else {
		c.remaining = 0
	}
}

// FinishSet records a completed set of a manual exercise. Valid only during
// a running, untimed exercise phase. Returns the tone to emit.
func (c *Clock) FinishSet() (Tone, bool) {
	if c.phase != PhaseExercise || !c.running {
		return ToneNone, false
	}
	if _, timed := c.StepTimed(); timed {
		return ToneNone, false
	}

	if c.setNumber < c.Step().SetsOrOne() {
		c.phase = PhaseRest
		c.remaining = c.Step().RestOrDefault()
	} else {
		c.running = false
		c.done = true
		c.generation++
	}
	return ToneFinish, true
}

// Pause freezes the counter. Valid while running in exercise or rest.
func (c *Clock) Pause() bool {
	if !c.running || (c.phase != PhaseExercise && c.phase != PhaseRest) {
		return false
	}
	c.running = false
	c.generation++
	return true
}

// Resume continues ticking from the frozen counter. Valid while paused in
// exercise or rest; a halt after the final set is not a pause and cannot be
// resumed into.
func (c *Clock) Resume() bool {
	if c.running || c.done || (c.phase != PhaseExercise && c.phase != PhaseRest) {
		return false
	}
	c.running = true
	c.generation++
	return true
}

// Reset returns the current exercise to its ready state: counter zeroed,
// ticking stopped, countdown cleared, set number back to 1. The exercise
// index and cumulative elapsed time are preserved.
func (c *Clock) Reset() {
	c.phase = PhaseReady
	c.remaining = 0
	c.countdown = 0
	c.setNumber = 1
	c.running = false
	c.done = false
	c.generation++
}

// NextExercise advances to the next exercise without auto-starting it.
// No-op on the last exercise.
func (c *Clock) NextExercise() bool {
	if c.exerciseIndex >= len(c.workout.Steps)-1 {
		return false
	}
	c.exerciseIndex++
	c.Reset()
	return true
}

// PrevExercise moves back one exercise. No-op on the first.
func (c *Clock) PrevExercise() bool {
	if c.exerciseIndex <= 0 {
		return false
	}
	c.exerciseIndex--
	c.Reset()
	return true
}

// Complete finishes the workout. Valid only on the last exercise. Returns
// the session duration in whole minutes (floor of cumulative elapsed
// seconds) and resets the clock to its initial state. The caller owns the
// statistics update, persistence and badge evaluation.
func (c *Clock) Complete() (minutes int, ok bool) {
	if !c.OnLastExercise() {
		return 0, false
	}
	minutes = c.elapsed / 60
	c.exerciseIndex = 0
	c.elapsed = 0
	c.Reset()
	return minutes, true
}
