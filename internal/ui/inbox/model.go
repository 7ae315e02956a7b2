package inbox

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/store"
	"github.com/pvu/accountable/internal/theme"
	"github.com/pvu/accountable/internal/ui"
)

// logLimit caps how many past notifications the inbox shows.
const logLimit = 100

// BackMsg signals the parent to navigate back.
type BackMsg struct{}

// LoadedMsg carries the notification log.
type LoadedMsg struct {
	Notifications []model.Notification
	Err           error
}

// MarkedReadMsg tells the parent the unread count dropped to zero.
type MarkedReadMsg struct{}

// Model is the local notification log view.
type Model struct {
	store         store.Store
	keys          *keys.KeyMap
	notifications []model.Notification
	viewport      viewport.Model
	width         int
	height        int
}

// New creates an inbox view model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-4)

	return Model{
		store:    s,
		keys:     k,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Start loads the notification log, newest first.
func (m *Model) Start() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		notifications, err := s.ListNotifications(context.Background(), logLimit)
		return LoadedMsg{Notifications: notifications, Err: err}
	}
}

// Update handles messages for the inbox view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.notifications = msg.Notifications
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Select):
			s := m.store
			mark := func() tea.Msg {
				if err := s.MarkAllNotificationsRead(context.Background()); err != nil {
					return ui.ErrorMsg{Err: err}
				}
				return MarkedReadMsg{}
			}
			return m, tea.Sequence(mark, m.Start())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderLog() string {
	if len(m.notifications) == 0 {
		return theme.HelpStyle.Render("No notifications have fired yet.")
	}

	timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	unreadStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorYellow)

	var sections []string
	for _, n := range m.notifications {
		marker := " "
		if !n.Read {
			marker = unreadStyle.Render("●")
		}

		kindStyle := lipgloss.NewStyle().Foreground(theme.ColorBlue)
		if n.Kind == model.NotificationKindMissed {
			kindStyle = lipgloss.NewStyle().Foreground(theme.ColorRed)
		}

		sections = append(sections, fmt.Sprintf(
			"%s %s %s  %s",
			marker,
			timeStyle.Render(n.CreatedAt.Local().Format("Jan 02 15:04")),
			kindStyle.Render(n.Kind),
			n.Title,
		))
		if n.Body != "" {
			sections = append(sections, "    "+theme.HelpStyle.Render(n.Body))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// View renders the inbox view.
func (m Model) View() string {
	unread := 0
	for _, n := range m.notifications {
		if !n.Read {
			unread++
		}
	}

	header := theme.HeaderStyle.Render(fmt.Sprintf(
		"Notifications (%d unread)", unread,
	))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			"",
			m.viewport.View(),
			"",
			theme.HelpStyle.Render("enter: mark all read  esc: back"),
		))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 4
}
