package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/theme"
)

// ResultMsg is dispatched when the user answers the prompt. Action is
// the message supplied to Show and is only delivered on confirmation.
type ResultMsg struct {
	Confirmed bool
	Action    tea.Msg
}

// Model is a yes/no confirmation modal for destructive operations.
type Model struct {
	prompt string
	action tea.Msg
	width  int
	height int
}

// New creates a confirmation modal model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// Show arms the modal with a prompt and the message to deliver when
// the user confirms.
func (m *Model) Show(prompt string, action tea.Msg) {
	m.prompt = prompt
	m.action = action
}

// Update handles key input while the modal is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		action := m.action
		return m, func() tea.Msg {
			return ResultMsg{Confirmed: true, Action: action}
		}
	case "n", "N", "esc":
		return m, func() tea.Msg {
			return ResultMsg{Confirmed: false}
		}
	}

	return m, nil
}

// View renders the modal centered in the available area.
func (m Model) View() string {
	box := theme.PanelStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			theme.ErrorStyle.Render(m.prompt),
			"",
			theme.HelpStyle.Render("y: confirm  n: cancel"),
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

// SetSize updates the modal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
