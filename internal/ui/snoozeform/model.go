package snoozeform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/theme"
)

// SubmittedMsg is dispatched when a snooze duration has been chosen.
type SubmittedMsg struct {
	ActivityID int64
	Minutes    int
}

// CancelMsg is dispatched when the user abandons the snooze form.
type CancelMsg struct{}

// Model is a small picker for how far to push a deadline forward.
type Model struct {
	form       *huh.Form
	minutes    *int
	activityID int64
	title      string
	width      int
	height     int
}

// New creates a snooze form model.
func New(width, height int) Model {
	minutes := 60
	return Model{minutes: &minutes, width: width, height: height}
}

// Start initializes the picker for the given activity.
func (m *Model) Start(activityID int64, title string) tea.Cmd {
	m.activityID = activityID
	m.title = title
	*m.minutes = 60

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Snooze for").
				Options(
					huh.NewOption("15 minutes", 15),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("1 hour", 60),
					huh.NewOption("4 hours", 240),
					huh.NewOption("1 day", 1440),
					huh.NewOption("1 week", 10080),
				).
				Value(m.minutes),
		),
	).WithWidth(40)

	return m.form.Init()
}

// Update handles messages for the snooze form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		id := m.activityID
		minutes := *m.minutes
		return m, func() tea.Msg {
			return SubmittedMsg{ActivityID: id, Minutes: minutes}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the snooze form centered in the available area.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	box := theme.PanelStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			theme.HeaderStyle.Render("Snooze: "+m.title),
			"",
			m.form.View(),
		),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
