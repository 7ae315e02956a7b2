package historyview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
	"github.com/pvu/accountable/internal/ui"
)

// BackMsg signals the parent to navigate back.
type BackMsg struct{}

// LoadedMsg carries the fetched audit log.
type LoadedMsg struct {
	Entries []model.HistoryEntry
	Err     error
}

// Model is the read-only audit log view for one activity.
type Model struct {
	client        *api.Client
	keys          *keys.KeyMap
	activityID    int64
	activityTitle string
	entries       []model.HistoryEntry
	viewport      viewport.Model
	width         int
	height        int
}

// New creates a history view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-4)

	return Model{
		client:   c,
		keys:     k,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Start points the view at an activity and loads its history.
func (m *Model) Start(a model.Activity) tea.Cmd {
	m.activityID = a.ID
	m.activityTitle = a.Title
	m.entries = nil

	client := m.client
	id := a.ID
	return func() tea.Msg {
		entries, err := client.ListHistory(context.Background(), id)
		return LoadedMsg{Entries: entries, Err: err}
	}
}

// Update handles messages for the history view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.entries = msg.Entries
		m.viewport.SetContent(m.renderEntries())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		return theme.HelpStyle.Render("No history recorded.")
	}

	timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	actionStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)

	var sections []string
	for _, e := range m.entries {
		line := fmt.Sprintf(
			"%s  %s",
			timeStyle.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
			actionStyle.Render(e.Action),
		)
		sections = append(sections, line)

		if e.FieldName != nil {
			change := *e.FieldName
			if e.OldValue != nil && e.NewValue != nil {
				change = fmt.Sprintf("%s: %s → %s", *e.FieldName, *e.OldValue, *e.NewValue)
			}
			sections = append(sections, "    "+change)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// View renders the history view.
func (m Model) View() string {
	header := theme.HeaderStyle.Render("History · " + m.activityTitle)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			"",
			m.viewport.View(),
			"",
			theme.HelpStyle.Render("esc: back"),
		))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 4
}
