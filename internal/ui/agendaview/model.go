package agendaview

import (
	"context"
	"fmt"
	"time"

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

// agendaPageSize is how many upcoming activities the agenda fetches.
const agendaPageSize = 200

// BackMsg signals the parent to navigate back.
type BackMsg struct{}

// LoadedMsg carries the fetched upcoming activities.
type LoadedMsg struct {
	Activities []model.Activity
	Err        error
}

// Model is the agenda view: upcoming activities grouped by day.
type Model struct {
	client     *api.Client
	keys       *keys.KeyMap
	activities []model.Activity
	viewport   viewport.Model
	width      int
	height     int
}

// New creates an agenda view model.
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

// Start loads the upcoming activities, soonest deadline first.
func (m *Model) Start() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		activities, err := client.ListActivities(context.Background(), api.ActivityQuery{
			SortBy:    "deadline",
			SortOrder: "asc",
			Page:      1,
			PageSize:  agendaPageSize,
		})
		return LoadedMsg{Activities: activities, Err: err}
	}
}

// Update handles messages for the agenda view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.activities = msg.Activities
		m.viewport.SetContent(m.renderAgenda())
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

// renderAgenda groups activities by local deadline date.
func (m Model) renderAgenda() string {
	if len(m.activities) == 0 {
		return theme.HelpStyle.Render("Nothing scheduled.")
	}

	dayStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	var sections []string
	var lastDay string

	for _, a := range m.activities {
		local := a.Deadline.Local()
		day := local.Format("2006-01-02")
		if day != lastDay {
			if lastDay != "" {
				sections = append(sections, "")
			}
			sections = append(sections, dayStyle.Render(dayLabel(local)))
			lastDay = day
		}

		line := fmt.Sprintf(
			"  %s  %s %s %s",
			timeStyle.Render(local.Format("15:04")),
			theme.StatusStyle(a.Status).Render(a.Status),
			a.Title,
			theme.CategoryStyle(a.Category).Render(a.Category),
		)
		if a.Status == model.StatusCompleted {
			line = theme.DimmedStyle.Render(line)
		}
		sections = append(sections, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// dayLabel names a date, using Today/Tomorrow when applicable.
func dayLabel(t time.Time) string {
	now := time.Now()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	switch t.Format("2006-01-02") {
	case today:
		return "Today · " + t.Format("Mon Jan 02")
	case tomorrow:
		return "Tomorrow · " + t.Format("Mon Jan 02")
	default:
		return t.Format("Mon Jan 02")
	}
}

// View renders the agenda view.
func (m Model) View() string {
	header := theme.HeaderStyle.Render("Agenda")

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
