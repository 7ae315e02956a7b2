package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Detail bundles an activity with its attached records for display.
type Detail struct {
	Activity model.Activity
	Subtasks []model.Subtask
	Notes    []model.Note
}

// LoadedMsg carries the loaded activity detail.
type LoadedMsg struct {
	Detail *Detail
	Err    error
}

// Model is the activity detail view component.
type Model struct {
	detail   *Detail
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
	loading  bool
}

// New creates a new detail view model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.detail = msg.Detail
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.loading {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("Loading activity...")
	}

	if m.detail == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No activity selected")
	}

	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.detail == nil {
		return ""
	}

	a := m.detail.Activity
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, titleStyle.Render(a.Title))

	statusBadge := theme.StatusStyle(a.Status).Render(a.Status)
	priBadge := theme.PriorityStyle(a.Priority).Render(a.Priority)
	catBadge := theme.CategoryStyle(a.Category).Render(a.Category)

	badgeLine := lipgloss.JoinHorizontal(
		lipgloss.Top, statusBadge, "  ", priBadge, "  ", catBadge,
	)
	if a.IsRecurring {
		pattern := "recurring"
		if a.RecurrencePattern != nil {
			pattern = *a.RecurrencePattern
		}
		badgeLine = lipgloss.JoinHorizontal(
			lipgloss.Top, badgeLine, "  ",
			lipgloss.NewStyle().Foreground(theme.ColorMagenta).Render("↻ "+pattern),
		)
	}
	sections = append(sections, badgeLine)
	sections = append(sections, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	meta := func(label, value string) {
		sections = append(sections, fmt.Sprintf(
			"%s %s",
			metaStyle.Render(label),
			valStyle.Render(value),
		))
	}

	meta("Deadline:  ", a.Deadline.Local().Format("2006-01-02 15:04"))
	if !a.CreatedAt.IsZero() {
		meta("Created:   ", a.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if a.CompletedAt != nil {
		meta("Completed: ", a.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
	if a.NotificationMinutes > 0 {
		meta("Reminder:  ", fmt.Sprintf("%d minutes before", a.NotificationMinutes))
	}
	if a.EstimatedMinutes != nil {
		meta("Estimate:  ", fmt.Sprintf("%d minutes", *a.EstimatedMinutes))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", min(m.width-4, 80)))
	sections = append(sections, "", separator, "")

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, headerStyle.Render("Description"))

	desc := a.Description
	if desc == "" {
		desc = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No description")
	}
	sections = append(sections, desc)

	if len(m.detail.Subtasks) > 0 {
		sections = append(sections, "", separator, "")

		done := 0
		for _, st := range m.detail.Subtasks {
			if st.IsCompleted {
				done++
			}
		}
		sections = append(sections, headerStyle.Render(
			fmt.Sprintf("Subtasks (%d/%d)", done, len(m.detail.Subtasks)),
		))
		sections = append(sections, "")

		for _, st := range m.detail.Subtasks {
			line := "▢ " + st.Title
			if st.IsCompleted {
				line = theme.DimmedStyle.Render("▣ " + st.Title)
			}
			sections = append(sections, line)
		}
	}

	if len(m.detail.Notes) > 0 {
		sections = append(sections, "", separator, "")
		sections = append(sections, headerStyle.Render(
			fmt.Sprintf("Notes (%d)", len(m.detail.Notes)),
		))
		sections = append(sections, "")

		timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
		for _, n := range m.detail.Notes {
			sections = append(sections,
				timeStyle.Render(n.CreatedAt.Local().Format("2006-01-02 15:04")))
			sections = append(sections, n.Text)
			sections = append(sections, "")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// Current returns the activity being displayed.
func (m Model) Current() (model.Activity, bool) {
	if m.detail == nil {
		return model.Activity{}, false
	}
	return m.detail.Activity, true
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
}
