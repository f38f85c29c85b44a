package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			program, ok := m.programList.Selected()
			if !ok {
				return m, nil
			}
			m.program = program
			m.workoutList = NewWorkoutList(program, m.width, m.height)
			m.state = stateWorkouts
			return m, nil
		case "b":
			m.state = stateBadges
			return m, nil
		case "v":
			return m.startEditingVideoLink()
		case "x":
			return m.startConfirmingReset()
		}
	}

	cmd := m.programList.Update(msg)
	return m, cmd
}

func (m *Model) viewHome() string {
	view := titleStyle.Render("TEMPO · Choisis ton programme")
	view += "\n" + m.programList.View()
	view += "\n" + dimStyle.Render(m.statsLine())
	view += helpStyle.Render("\nenter: séances · b: badges · v: lien vidéo · x: réinitialiser liens · q: quitter")
	return view
}

// statsLine is the one-line lifetime summary shown under the program list
func (m *Model) statsLine() string {
	return fmt.Sprintf("🏋️ %d séances · ⏱ %s · 🔥 série de %d · 📅 %d cette semaine",
		m.stats.TotalWorkouts,
		formatMinutes(m.stats.TotalMinutes),
		m.stats.CurrentStreak,
		m.stats.WeeklyWorkouts,
	)
}

func (m *Model) updateWorkouts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateHome
			return m, nil
		case "enter":
			workout, ok := m.workoutList.Selected()
			if !ok || len(workout.Steps) == 0 {
				return m, nil
			}
			m.startSession(workout)
			return m, nil
		}
	}

	cmd := m.workoutList.Update(msg)
	return m, cmd
}

func (m *Model) viewWorkouts() string {
	view := titleStyle.Render(m.program.Name)
	view += "\n" + m.workoutList.View()
	view += helpStyle.Render("\nenter: démarrer · esc: retour · q: quitter")
	return view
}
