package ui

import (
	"fmt"
	"io"

	"tempo/catalog"
	"tempo/domain"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramItem implements list.Item for a training program
type ProgramItem struct {
	Program domain.Program
}

// FilterValue implements list.Item
func (i ProgramItem) FilterValue() string {
	return i.Program.Name + " " + i.Program.Level
}

// ProgramDelegate renders program rows
type ProgramDelegate struct{}

// Height implements list.ItemDelegate
func (d ProgramDelegate) Height() int {
	return 2 // Two lines per item (name + description)
}

// Spacing implements list.ItemDelegate
func (d ProgramDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d ProgramDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d ProgramDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(ProgramItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	p := item.Program
	line1 := normalStyle.Render(fmt.Sprintf("%s %d. %s", cursor, index+1, p.Name))
	line1 += dimStyle.Render(fmt.Sprintf(" (%dx/semaine, %s)", p.SessionsPerWeek, p.Duration))

	indent := "     "
	line2 := dimStyle.Render(indent + p.Description)

	fmt.Fprint(w, line1+"\n"+line2)
}

// ProgramList is the home screen component listing training programs
type ProgramList struct {
	list        list.Model
	initialized bool
}

// NewProgramList creates the program list component
func NewProgramList(cat *catalog.Catalog) ProgramList {
	items := make([]list.Item, 0, len(cat.Programs))
	for _, p := range cat.Programs {
		items = append(items, ProgramItem{Program: p})
	}

	l := list.New(items, ProgramDelegate{}, 80, 14)
	l.SetShowTitle(false) // We'll render our own title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false) // We'll render our own help

	return ProgramList{list: l, initialized: true}
}

// SetSize resizes the inner list; no-op before initialization
func (pl *ProgramList) SetSize(width, height int) {
	if !pl.initialized {
		return
	}
	listHeight := height - 10 // Leave room for title, stats and help
	if listHeight < 4 {
		listHeight = 4
	}
	pl.list.SetSize(width, listHeight)
}

// Update forwards a message to the inner list
func (pl *ProgramList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	pl.list, cmd = pl.list.Update(msg)
	return cmd
}

// Selected returns the highlighted program
func (pl *ProgramList) Selected() (domain.Program, bool) {
	item, ok := pl.list.SelectedItem().(ProgramItem)
	if !ok {
		return domain.Program{}, false
	}
	return item.Program, true
}

// View renders the inner list
func (pl *ProgramList) View() string {
	return pl.list.View()
}
