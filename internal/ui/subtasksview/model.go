package subtasksview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
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

// LoadedMsg carries the fetched subtasks.
type LoadedMsg struct {
	Subtasks []model.Subtask
	Err      error
}

// deleteConfirmedMsg is the confirm-modal action for a subtask delete.
// It is routed back to this view only after the user confirms.
type deleteConfirmedMsg struct {
	subtaskID int64
}

// Model is the subtask checklist view for one activity.
type Model struct {
	client        *api.Client
	keys          *keys.KeyMap
	activityID    int64
	activityTitle string
	subtasks      []model.Subtask
	cursor        int
	adding        bool
	input         textinput.Model
	width         int
	height        int
}

// New creates a subtasks view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "subtask title..."
	ti.Prompt = "+ "
	ti.Width = width - 6

	return Model{
		client: c,
		keys:   k,
		input:  ti,
		width:  width,
		height: height,
	}
}

// Start points the view at an activity and loads its subtasks.
func (m *Model) Start(a model.Activity) tea.Cmd {
	m.activityID = a.ID
	m.activityTitle = a.Title
	m.subtasks = nil
	m.cursor = 0
	m.adding = false
	return m.load()
}

func (m Model) load() tea.Cmd {
	client := m.client
	id := m.activityID
	return func() tea.Msg {
		subtasks, err := client.ListSubtasks(context.Background(), id)
		return LoadedMsg{Subtasks: subtasks, Err: err}
	}
}

// Update handles messages for the subtasks view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.subtasks = msg.Subtasks
		if m.cursor >= len(m.subtasks) {
			m.cursor = max(0, len(m.subtasks)-1)
		}
		return m, nil

	case deleteConfirmedMsg:
		client := m.client
		del := func() tea.Msg {
			if err := client.DeleteSubtask(context.Background(), msg.subtaskID); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(del, m.load())

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.input.Value()
		m.adding = false
		m.input.Reset()
		if title == "" {
			return m, nil
		}

		client := m.client
		id := m.activityID
		order := len(m.subtasks)
		add := func() tea.Msg {
			if _, err := client.AddSubtask(context.Background(), id, title, order); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(add, m.load())

	case "esc":
		m.adding = false
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.subtasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.adding = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ToggleSelect), key.Matches(msg, m.keys.Select):
		if m.cursor >= len(m.subtasks) {
			return m, nil
		}
		st := m.subtasks[m.cursor]
		client := m.client
		toggle := func() tea.Msg {
			err := client.SetSubtaskCompleted(
				context.Background(), st.ID, !st.IsCompleted,
			)
			if err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(toggle, m.load())

	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(m.subtasks) {
			return m, nil
		}
		st := m.subtasks[m.cursor]
		return m, func() tea.Msg {
			return ui.ConfirmRequestMsg{
				Prompt: fmt.Sprintf("Delete subtask %q?", st.Title),
				Action: deleteConfirmedMsg{subtaskID: st.ID},
			}
		}
	}

	return m, nil
}

// View renders the subtask checklist.
func (m Model) View() string {
	var sections []string

	done := 0
	for _, st := range m.subtasks {
		if st.IsCompleted {
			done++
		}
	}

	header := theme.HeaderStyle.Render(fmt.Sprintf(
		"Subtasks · %s (%d/%d)", m.activityTitle, done, len(m.subtasks),
	))
	sections = append(sections, header, "")

	if len(m.subtasks) == 0 && !m.adding {
		sections = append(sections, theme.HelpStyle.Render("No subtasks. Press n to add one."))
	}

	for i, st := range m.subtasks {
		line := "▢ " + st.Title
		if st.IsCompleted {
			line = theme.DimmedStyle.Render("▣ " + st.Title)
		}
		if i == m.cursor && !m.adding {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		sections = append(sections, line)
	}

	if m.adding {
		sections = append(sections, "", m.input.View())
	}

	sections = append(sections, "",
		theme.HelpStyle.Render("n: add  space: toggle  d: delete  esc: back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}
