package categoryform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
)

// SubmittedMsg is dispatched when a target category has been chosen
// for the selected activities.
type SubmittedMsg struct {
	ActivityIDs []int64
	Category    string
}

// CancelMsg is dispatched when the user abandons the picker.
type CancelMsg struct{}

// Model picks the category that a batch of activities moves into.
type Model struct {
	form     *huh.Form
	category *string
	ids      []int64
	width    int
	height   int
}

// New creates a category picker model.
func New(width, height int) Model {
	category := model.CategoryWork
	return Model{category: &category, width: width, height: height}
}

// Start initializes the picker for the given activity ids.
func (m *Model) Start(ids []int64) tea.Cmd {
	m.ids = ids
	*m.category = model.CategoryWork

	opts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		opts[i] = huh.NewOption(c, c)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Move to category").
				Options(opts...).
				Value(m.category),
		),
	).WithWidth(40)

	return m.form.Init()
}

// Update handles messages for the category picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		ids := m.ids
		category := *m.category
		return m, func() tea.Msg {
			return SubmittedMsg{ActivityIDs: ids, Category: category}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the picker centered in the available area.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	box := theme.PanelStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			theme.HeaderStyle.Render(fmt.Sprintf("Move %d activities", len(m.ids))),
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

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
