package ui

import (
	"fmt"
	"io"

	"tempo/domain"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// WorkoutItem implements list.Item for one workout of a program
type WorkoutItem struct {
	Workout domain.Workout
}

// FilterValue implements list.Item
func (i WorkoutItem) FilterValue() string {
	return i.Workout.Name
}

// WorkoutDelegate renders workout rows
type WorkoutDelegate struct{}

// Height implements list.ItemDelegate
func (d WorkoutDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d WorkoutDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d WorkoutDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d WorkoutDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(WorkoutItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	line1 := normalStyle.Render(fmt.Sprintf("%s %d. %s", cursor, index+1, item.Workout.Name))

	indent := "     "
	line2 := dimStyle.Render(indent + formatStepCount(len(item.Workout.Steps)))

	fmt.Fprint(w, line1+"\n"+line2)
}

// WorkoutList lists the workouts of the selected program
type WorkoutList struct {
	list        list.Model
	initialized bool
}

// NewWorkoutList creates the workout list component for a program
func NewWorkoutList(program domain.Program, width, height int) WorkoutList {
	items := make([]list.Item, 0, len(program.Workouts))
	for _, workout := range program.Workouts {
		items = append(items, WorkoutItem{Workout: workout})
	}

	l := list.New(items, WorkoutDelegate{}, 80, 14)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	wl := WorkoutList{list: l, initialized: true}
	if width > 0 && height > 0 {
		wl.SetSize(width, height)
	}
	return wl
}

// SetSize resizes the inner list; no-op before initialization
func (wl *WorkoutList) SetSize(width, height int) {
	if !wl.initialized {
		return
	}
	listHeight := height - 8
	if listHeight < 4 {
		listHeight = 4
	}
	wl.list.SetSize(width, listHeight)
}

// Update forwards a message to the inner list
func (wl *WorkoutList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	wl.list, cmd = wl.list.Update(msg)
	return cmd
}

// Selected returns the highlighted workout
func (wl *WorkoutList) Selected() (domain.Workout, bool) {
	item, ok := wl.list.SelectedItem().(WorkoutItem)
	if !ok {
		return domain.Workout{}, false
	}
	return item.Workout, true
}

// View renders the inner list
func (wl *WorkoutList) View() string {
	return wl.list.View()
}
