package templatesview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
	"github.com/pvu/accountable/internal/ui"
	"github.com/pvu/accountable/internal/ui/activityform"
)

// BackMsg signals the parent to navigate back.
type BackMsg struct{}

// ActivityStampedMsg tells the parent a new activity was created from
// a template, so the list view should refresh.
type ActivityStampedMsg struct {
	Activity model.Activity
}

// LoadedMsg carries the fetched templates.
type LoadedMsg struct {
	Templates []model.Template
	Err       error
}

// deleteConfirmedMsg is the confirm-modal action for a template delete,
// routed back here only after the user confirms.
type deleteConfirmedMsg struct {
	templateID int64
}

// templateBindings holds create-form values on the heap so huh's
// Value() pointers stay valid across model copies.
type templateBindings struct {
	name        string
	title       string
	description string
	priority    string
	category    string
}

// Model is the activity templates view.
type Model struct {
	client    *api.Client
	keys      *keys.KeyMap
	templates []model.Template
	cursor    int
	form      *huh.Form
	fb        *templateBindings
	stamping  bool
	deadline  textinput.Model
	width     int
	height    int
}

// New creates a templates view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD HH:MM (local time)"
	ti.Prompt = "deadline: "
	ti.Width = width - 12

	return Model{
		client:   c,
		keys:     k,
		fb:       &templateBindings{},
		deadline: ti,
		width:    width,
		height:   height,
	}
}

// Start loads the template list.
func (m *Model) Start() tea.Cmd {
	m.templates = nil
	m.cursor = 0
	m.form = nil
	m.stamping = false
	return m.load()
}

func (m Model) load() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		templates, err := client.ListTemplates(context.Background())
		return LoadedMsg{Templates: templates, Err: err}
	}
}

// Update handles messages for the templates view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.templates = msg.Templates
		if m.cursor >= len(m.templates) {
			m.cursor = max(0, len(m.templates)-1)
		}
		return m, nil

	case deleteConfirmedMsg:
		client := m.client
		del := func() tea.Msg {
			if err := client.DeleteTemplate(context.Background(), msg.templateID); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(del, m.load())

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.stamping {
			return m.handleDeadlineKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		req := api.TemplateCreate{
			Name:                m.fb.name,
			TitleTemplate:       m.fb.title,
			DescriptionTemplate: m.fb.description,
			Priority:            m.fb.priority,
			Category:            m.fb.category,
		}
		m.form = nil

		client := m.client
		create := func() tea.Msg {
			if _, err := client.CreateTemplate(context.Background(), req); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(create, m.load())
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) handleDeadlineKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		deadline, err := activityform.ParseDeadline(m.deadline.Value())
		if err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: err} }
		}
		m.stamping = false
		m.deadline.Reset()

		if m.cursor >= len(m.templates) {
			return m, nil
		}
		tpl := m.templates[m.cursor]
		client := m.client
		return m, func() tea.Msg {
			created, err := client.CreateActivityFromTemplate(
				context.Background(), tpl.ID, deadline,
			)
			if err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return ActivityStampedMsg{Activity: *created}
		}

	case "esc":
		m.stamping = false
		m.deadline.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.deadline, cmd = m.deadline.Update(msg)
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
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.fb.name = ""
		m.fb.title = ""
		m.fb.description = ""
		m.fb.priority = model.PriorityMedium
		m.fb.category = model.CategoryWork
		m.form = m.buildCreateForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Select):
		if m.cursor >= len(m.templates) {
			return m, nil
		}
		m.stamping = true
		return m, m.deadline.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(m.templates) {
			return m, nil
		}
		tpl := m.templates[m.cursor]
		return m, func() tea.Msg {
			return ui.ConfirmRequestMsg{
				Prompt: fmt.Sprintf("Delete template %q?", tpl.Name),
				Action: deleteConfirmedMsg{templateID: tpl.ID},
			}
		}
	}

	return m, nil
}

func (m *Model) buildCreateForm() *huh.Form {
	categoryOpts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		categoryOpts[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Weekly report").
				Value(&m.fb.name).
				Validate(activityform.ValidateRequired("Name")),
			huh.NewInput().
				Title("Title Template").
				Placeholder("Write weekly report").
				Value(&m.fb.title).
				Validate(activityform.ValidateRequired("Title template")),
			huh.NewText().
				Title("Description Template").
				Value(&m.fb.description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", model.PriorityHigh),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("Low", model.PriorityLow),
				).
				Value(&m.fb.priority),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&m.fb.category),
		),
	).WithWidth(min(m.width-4, 80))
}

// View renders the templates view.
func (m Model) View() string {
	if m.form != nil {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(m.form.View())
	}

	var sections []string

	header := theme.HeaderStyle.Render(fmt.Sprintf(
		"Templates (%d)", len(m.templates),
	))
	sections = append(sections, header, "")

	if len(m.templates) == 0 {
		sections = append(sections,
			theme.HelpStyle.Render("No templates. Press n to create one."))
	}

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	for i, tpl := range m.templates {
		line := fmt.Sprintf(
			"%s  %s",
			tpl.Name,
			metaStyle.Render(tpl.Priority+" · "+tpl.Category),
		)
		if i == m.cursor && !m.stamping {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		sections = append(sections, line)
	}

	if m.stamping {
		sections = append(sections, "", m.deadline.View())
	}

	sections = append(sections, "",
		theme.HelpStyle.Render("n: new  enter: use  d: delete  esc: back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.deadline.Width = width - 12
}
