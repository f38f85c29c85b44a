package ui

import (
	"context"
	"fmt"
	"strings"

	"tempo/domain"
	"tempo/logging"
	"tempo/session"

	tea "github.com/charmbracelet/bubbletea"
)

// startSession arms a fresh clock for the workout and switches to the
// session screen. Nothing ticks until the user starts the countdown.
func (m *Model) startSession(workout domain.Workout) {
	m.clock = session.NewClock(workout, m.countdownSeconds)
	m.state = stateSession
}

func (m *Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.clock == nil {
		m.state = stateWorkouts
		return m, nil
	}

	switch msg := msg.(type) {
	case clockTickMsg:
		// Drop ticks from a superseded loop (paused, reset or navigated away)
		if msg.generation != m.clock.Generation() {
			return m, nil
		}
		tone := m.clock.Tick()
		m.playTone(tone)
		if m.clock.TickActive() {
			return m, scheduleTick(m.clock.Generation())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleSessionKey(msg)
	}

	return m, nil
}

func (m *Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.clock

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.clock = nil
		m.state = stateWorkouts
		return m, nil

	case "enter", " ":
		// Ready: start the countdown. Manual set running: record the set.
		// Halted after the final set: advance or complete.
		if c.Phase() == session.PhaseReady {
			if c.Start() {
				return m, scheduleTick(c.Generation())
			}
			return m, nil
		}
		if tone, ok := c.FinishSet(); ok {
			m.playTone(tone)
			return m, nil
		}
		if c.SetDone() {
			if c.OnLastExercise() {
				return m.completeWorkout()
			}
			c.NextExercise()
		}
		return m, nil

	case "p":
		if c.Pause() {
			return m, nil
		}
		if c.Resume() {
			return m, scheduleTick(c.Generation())
		}
		return m, nil

	case "r":
		c.Reset()
		return m, nil

	case "n", "right":
		c.NextExercise()
		return m, nil

	case "b", "left":
		c.PrevExercise()
		return m, nil

	case "c":
		if c.OnLastExercise() {
			return m.completeWorkout()
		}
		return m, nil
	}

	return m, nil
}

// completeWorkout runs the completion transaction: bump and persist the
// statistics, evaluate and record badges, append the history entry. The
// in-memory stats stay authoritative when persistence fails; the error is
// surfaced transiently instead of losing the workout.
func (m *Model) completeWorkout() (tea.Model, tea.Cmd) {
	minutes, ok := m.clock.Complete()
	if !ok {
		return m, nil
	}

	ctx := context.Background()
	workoutName := m.clock.Workout().Name

	m.stats.TotalWorkouts++
	m.stats.TotalMinutes += minutes
	m.stats.CurrentStreak++
	m.stats.WeeklyWorkouts++

	var cmds []tea.Cmd
	if err := m.store.SaveStats(ctx, m.stats); err != nil {
		logging.Logger.Error("Failed to save stats", "error", err)
		m.err = fmt.Errorf("failed to save stats: %w", err)
		cmds = append(cmds, clearErrorAfterDelay())
	}

	newBadges := domain.UnlockBadges(m.stats, m.unlocked)
	if len(newBadges) > 0 {
		if err := m.store.AddUnlockedBadges(ctx, newBadges); err != nil {
			logging.Logger.Error("Failed to record badges", "error", err, "badges", newBadges)
			m.err = fmt.Errorf("failed to record badges: %w", err)
			cmds = append(cmds, clearErrorAfterDelay())
		}
		// In-memory unlocks stay authoritative even when the write failed
		m.unlocked = append(m.unlocked, newBadges...)
	}

	if err := m.store.LogWorkout(ctx, m.program.ID, workoutName, minutes); err != nil {
		logging.Logger.Warn("Failed to log workout", "error", err)
		m.err = fmt.Errorf("failed to log workout: %w", err)
		cmds = append(cmds, clearErrorAfterDelay())
	}

	logging.Logger.Info("Workout completed",
		"workout", workoutName,
		"minutes", minutes,
		"new_badges", newBadges,
	)

	m.toast = fmt.Sprintf("Séance terminée ! %s d'effort 💪", formatMinutes(minutes))
	if len(newBadges) > 0 {
		if badge, found := domain.BadgeByID(newBadges[0]); found {
			m.toast += fmt.Sprintf(" · Badge débloqué : %s %s", badge.Icon, badge.Name)
		}
	}
	cmds = append(cmds, clearToastAfterDelay())

	m.playTone(session.ToneFinish)

	m.clock = nil
	m.state = stateHome
	return m, tea.Batch(cmds...)
}

func (m *Model) viewSession() string {
	c := m.clock
	if c == nil {
		return ""
	}

	workout := c.Workout()
	step := c.Step()
	exercise, _ := m.catalog.Exercise(step.ExerciseID)
	if exercise.Name == "" {
		exercise.Name = step.ExerciseID
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(workout.Name))
	b.WriteString("\n")
	b.WriteString(normalStyle.Render(fmt.Sprintf("Exercice %d/%d · %s",
		c.ExerciseIndex()+1, len(workout.Steps), exercise.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Série %d/%d · %s",
		c.SetNumber(), step.SetsOrOne(), step.Reps)))
	b.WriteString("\n\n")

	b.WriteString(m.viewTimer())
	b.WriteString("\n")

	if video := m.videoFor(exercise); video != "" {
		b.WriteString("\n" + dimStyle.Render("🎥 "+video))
	}
	for _, tip := range exercise.Tips {
		b.WriteString("\n" + dimStyle.Render("· "+tip))
	}

	b.WriteString(helpStyle.Render("\n" + m.sessionHelp()))
	return b.String()
}

// viewTimer renders the big phase counter
func (m *Model) viewTimer() string {
	c := m.clock

	switch c.Phase() {
	case session.PhaseReady:
		return countdownStyle.Render("PRÊT ?")
	case session.PhaseCountdown:
		return countdownStyle.Render(fmt.Sprintf("Départ dans %d...", c.Countdown()))
	case session.PhaseExercise:
		label := timerStyle.Render(formatClock(c.Remaining()))
		if c.SetDone() {
			return label + "  " + toastStyle.Render("Série terminée !")
		}
		if !c.Running() {
			return label + "  " + dimStyle.Render("(pause)")
		}
		return label
	case session.PhaseRest:
		label := restTimerStyle.Render("Repos " + formatClock(c.Remaining()))
		if !c.Running() {
			return label + "  " + dimStyle.Render("(pause)")
		}
		return label
	}
	return ""
}

// sessionHelp picks the key hints relevant to the current phase
func (m *Model) sessionHelp() string {
	c := m.clock

	switch {
	case c.Phase() == session.PhaseReady:
		return "enter: démarrer · n/b: exercice suivant/précédent · esc: retour"
	case c.SetDone() && c.OnLastExercise():
		return "enter/c: terminer la séance · r: recommencer · esc: retour"
	case c.SetDone():
		return "enter/n: exercice suivant · r: recommencer · esc: retour"
	case c.Phase() == session.PhaseCountdown:
		return "r: annuler · esc: retour"
	default:
		keys := "p: pause · r: recommencer · n/b: naviguer · esc: retour"
		if _, timed := c.StepTimed(); !timed && c.Running() {
			keys = "enter: série faite · " + keys
		}
		return keys
	}
}
