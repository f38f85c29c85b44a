package ui

import (
	"context"
	"fmt"
	"time"

	"tempo/catalog"
	"tempo/domain"
	"tempo/logging"
	"tempo/session"
	"tempo/sound"
	"tempo/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(1, 0)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 0)

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	restTimerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	unlockedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	lockedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

type uiState int

const (
	stateHome uiState = iota
	stateWorkouts
	stateSession
	stateBadges
	stateEditingVideoLink
	stateConfirmingReset
)

// Model is the root Bubble Tea model: it owns the loaded catalog, the
// persisted statistics and dispatches to the active screen
type Model struct {
	store   *storage.Store
	catalog *catalog.Catalog

	state  uiState
	width  int
	height int
	err    error
	toast  string

	stats      domain.Stats
	unlocked   []string
	videoLinks map[string]string

	soundEnabled     bool
	countdownSeconds int

	programList ProgramList
	workoutList WorkoutList
	program     domain.Program

	clock *session.Clock

	form        *huh.Form // Video link edit or reset confirmation form
	formVideoID *string
	formURL     *string
	formReset   *bool
}

// NewModel creates the root model, loading the catalog and persisted state.
// Load failures degrade to empty data with a transient error message, the
// way a trainer should: never refuse to start a workout over a read error.
func NewModel(store *storage.Store, countdownSeconds int, soundEnabled bool) *Model {
	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		// The catalog is embedded; a parse failure is a build defect
		logging.Logger.Error("Failed to load exercise catalog", "error", err)
		cat = &catalog.Catalog{}
	}

	var errMsg error
	stats, err := store.LoadStats(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load stats", "error", err)
		errMsg = fmt.Errorf("failed to load stats: %w", err)
	}

	unlocked, err := store.UnlockedBadges(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load unlocked badges", "error", err)
	}

	links, err := store.VideoLinks(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load video links", "error", err)
		links = map[string]string{}
	}

	return &Model{
		store:            store,
		catalog:          cat,
		state:            stateHome,
		err:              errMsg,
		stats:            stats,
		unlocked:         unlocked,
		videoLinks:       links,
		soundEnabled:     soundEnabled,
		countdownSeconds: countdownSeconds,
		programList:      NewProgramList(cat),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.err != nil {
		return clearErrorAfterDelay()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.programList.SetSize(msg.Width, msg.Height)
		m.workoutList.SetSize(msg.Width, msg.Height)
	case clearErrorMsg:
		m.err = nil
		return m, nil
	case clearToastMsg:
		m.toast = ""
		return m, nil
	}

	switch m.state {
	case stateHome:
		return m.updateHome(msg)
	case stateWorkouts:
		return m.updateWorkouts(msg)
	case stateSession:
		return m.updateSession(msg)
	case stateBadges:
		return m.updateBadges(msg)
	case stateEditingVideoLink:
		return m.updateEditingVideoLink(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	var view string
	switch m.state {
	case stateHome:
		view = m.viewHome()
	case stateWorkouts:
		view = m.viewWorkouts()
	case stateSession:
		view = m.viewSession()
	case stateBadges:
		view = m.viewBadges()
	case stateEditingVideoLink, stateConfirmingReset:
		if m.form != nil {
			view = m.form.View()
		}
	}

	if m.toast != "" {
		view += "\n" + toastStyle.Render(m.toast)
	}
	if m.err != nil {
		view += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	return view
}

// playTone maps a clock tone to a sound cue, honoring the sound setting
func (m *Model) playTone(tone session.Tone) {
	if !m.soundEnabled {
		return
	}
	switch tone {
	case session.ToneTick:
		sound.Play(sound.CueTick)
	case session.ToneStart:
		sound.Play(sound.CueStart)
	case session.ToneFinish:
		sound.Play(sound.CueFinish)
	}
}

// videoFor returns the exercise video URL, preferring a stored override
func (m *Model) videoFor(ex domain.Exercise) string {
	if url, ok := m.videoLinks[ex.ID]; ok {
		return url
	}
	return ex.Video
}

type clearErrorMsg struct{}

type clearToastMsg struct{}

// clockTickMsg delivers one scheduled clock second. The generation pins the
// message to the tick loop that scheduled it; a pause, reset or navigation
// bumps the clock's generation and orphans in-flight messages.
type clockTickMsg struct {
	generation uint64
}

// clearErrorAfterDelay returns a command that sends clearErrorMsg after a delay
func clearErrorAfterDelay() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// clearToastAfterDelay returns a command that sends clearToastMsg after a delay
func clearToastAfterDelay() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// scheduleTick arms the next clock second for the given generation
func scheduleTick(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{generation: generation}
	})
}
