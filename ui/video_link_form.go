package ui

import (
	"context"
	"fmt"

	"tempo/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// startEditingVideoLink opens the form that overrides an exercise's video URL
func (m *Model) startEditingVideoLink() (tea.Model, tea.Cmd) {
	if len(m.catalog.Exercises) == 0 {
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(m.catalog.Exercises))
	for _, ex := range m.catalog.Exercises {
		options = append(options, huh.NewOption(ex.Name, ex.ID))
	}

	videoID := m.catalog.Exercises[0].ID
	url := ""
	m.formVideoID = &videoID
	m.formURL = &url

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exercice").
				Options(options...).
				Value(m.formVideoID),
			huh.NewInput().
				Title("Lien vidéo").
				Description("Vide pour revenir à la vidéo par défaut").
				Value(m.formURL),
		),
	)
	m.state = stateEditingVideoLink
	return m, m.form.Init()
}

func (m *Model) updateEditingVideoLink(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.resetForm()
			return m, nil
		}
	}

	if m.form == nil {
		m.resetForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		exerciseID := *m.formVideoID
		url := *m.formURL
		m.resetForm()

		if err := m.store.SetVideoLink(context.Background(), exerciseID, url); err != nil {
			logging.Logger.Error("Failed to save video link", "error", err, "exercise", exerciseID)
			m.err = fmt.Errorf("failed to save video link: %w", err)
			return m, clearErrorAfterDelay()
		}

		if url == "" {
			delete(m.videoLinks, exerciseID)
			m.toast = "Lien vidéo réinitialisé"
		} else {
			m.videoLinks[exerciseID] = url
			m.toast = "Lien vidéo enregistré"
		}
		return m, clearToastAfterDelay()
	}

	return m, cmd
}

// startConfirmingReset opens the confirmation for clearing all overrides
func (m *Model) startConfirmingReset() (tea.Model, tea.Cmd) {
	confirm := false
	m.formReset = &confirm

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Réinitialiser tous les liens vidéo ?").
				Description("Les vidéos par défaut du catalogue seront utilisées.").
				Value(m.formReset).
				Affirmative("Réinitialiser").
				Negative("Annuler"),
		),
	)
	m.state = stateConfirmingReset
	return m, m.form.Init()
}

func (m *Model) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.resetForm()
			return m, nil
		}
	}

	if m.form == nil {
		m.resetForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		confirmed := *m.formReset
		m.resetForm()

		if !confirmed {
			return m, nil
		}

		if err := m.store.ClearVideoLinks(context.Background()); err != nil {
			logging.Logger.Error("Failed to clear video links", "error", err)
			m.err = fmt.Errorf("failed to clear video links: %w", err)
			return m, clearErrorAfterDelay()
		}

		m.videoLinks = map[string]string{}
		m.toast = "Liens vidéo réinitialisés"
		return m, clearToastAfterDelay()
	}

	return m, cmd
}

// resetForm tears down any active form and returns to the home screen
func (m *Model) resetForm() {
	m.form = nil
	m.formVideoID = nil
	m.formURL = nil
	m.formReset = nil
	m.state = stateHome
}
