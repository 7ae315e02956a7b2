package notesview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
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

// LoadedMsg carries the fetched notes.
type LoadedMsg struct {
	Notes []model.Note
	Err   error
}

// Model is the append-only notes view for one activity.
type Model struct {
	client        *api.Client
	keys          *keys.KeyMap
	activityID    int64
	activityTitle string
	notes         []model.Note
	viewport      viewport.Model
	writing       bool
	input         textinput.Model
	width         int
	height        int
}

// New creates a notes view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "write a note..."
	ti.Prompt = "> "
	ti.Width = width - 6

	vp := viewport.New(width, height-6)

	return Model{
		client:   c,
		keys:     k,
		input:    ti,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Start points the view at an activity and loads its notes.
func (m *Model) Start(a model.Activity) tea.Cmd {
	m.activityID = a.ID
	m.activityTitle = a.Title
	m.notes = nil
	m.writing = false
	return m.load()
}

func (m Model) load() tea.Cmd {
	client := m.client
	id := m.activityID
	return func() tea.Msg {
		notes, err := client.ListNotes(context.Background(), id)
		return LoadedMsg{Notes: notes, Err: err}
	}
}

// Update handles messages for the notes view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.notes = msg.Notes
		m.viewport.SetContent(m.renderNotes())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if m.writing {
			return m.handleInputKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, m.keys.New):
			m.writing = true
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		m.writing = false
		m.input.Reset()
		if text == "" {
			return m, nil
		}

		client := m.client
		id := m.activityID
		add := func() tea.Msg {
			if _, err := client.AddNote(context.Background(), id, text); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(add, m.load())

	case "esc":
		m.writing = false
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) renderNotes() string {
	if len(m.notes) == 0 {
		return theme.HelpStyle.Render("No notes yet. Press n to write one.")
	}

	timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	var sections []string
	for _, n := range m.notes {
		sections = append(sections,
			timeStyle.Render(n.CreatedAt.Local().Format("2006-01-02 15:04")))
		sections = append(sections, n.Text, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// View renders the notes view.
func (m Model) View() string {
	header := theme.HeaderStyle.Render(fmt.Sprintf(
		"Notes · %s (%d)", m.activityTitle, len(m.notes),
	))

	sections := []string{header, "", m.viewport.View()}

	if m.writing {
		sections = append(sections, "", m.input.View())
	} else {
		sections = append(sections, "",
			theme.HelpStyle.Render("n: add note  esc: back"))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 6
	m.input.Width = width - 6
}
