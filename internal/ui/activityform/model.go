package activityform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
)

// CreateSubmittedMsg is dispatched when the create form is submitted.
type CreateSubmittedMsg struct {
	Body api.ActivityCreate
}

// EditSubmittedMsg is dispatched when the edit form is submitted.
type EditSubmittedMsg struct {
	ID   int64
	Body api.ActivityUpdate
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so huh's Value() pointers
// stay valid across Bubble Tea model copies.
type formBindings struct {
	title             string
	description       string
	deadline          string
	priority          string
	category          string
	notifyMinutes     int
	estimatedMinutes  string
	isRecurring       bool
	recurrencePattern string
}

// Model is the Bubble Tea model for the activity create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int64
	width    int
	height   int
}

// New creates a new activity form model.
func New(width, height int) Model {
	return Model{
		fb: &formBindings{
			priority:      model.PriorityMedium,
			category:      model.CategoryWork,
			notifyMinutes: 30,
		},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new activity.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.fb.title = ""
	m.fb.description = ""
	m.fb.deadline = ""
	m.fb.priority = model.PriorityMedium
	m.fb.category = model.CategoryWork
	m.fb.notifyMinutes = 30
	m.fb.estimatedMinutes = ""
	m.fb.isRecurring = false
	m.fb.recurrencePattern = "daily"
	m.form = m.buildCreateForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing activity.
func (m *Model) StartEdit(a model.Activity) tea.Cmd {
	m.editMode = true
	m.editID = a.ID
	m.fb.title = a.Title
	m.fb.description = a.Description
	m.fb.deadline = FormatDeadline(a.Deadline)
	m.fb.priority = a.Priority
	m.fb.category = a.Category
	m.fb.notifyMinutes = a.NotificationMinutes
	if a.EstimatedMinutes != nil {
		m.fb.estimatedMinutes = strconv.Itoa(*a.EstimatedMinutes)
	} else {
		m.fb.estimatedMinutes = ""
	}
	m.form = m.buildEditForm()
	return m.form.Init()
}

// Update handles messages for the activity form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the activity form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Activity"
	if m.editMode {
		titleText = "Edit Activity"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildCreateForm() *huh.Form {
	fields := m.coreFields()
	fields = append(fields,
		huh.NewConfirm().
			Title("Recurring").
			Affirmative("Yes").
			Negative("No").
			Value(&m.fb.isRecurring),
		huh.NewSelect[string]().
			Title("Recurrence").
			Description("Only applies to recurring activities").
			Options(
				huh.NewOption("Daily", "daily"),
				huh.NewOption("Weekly", "weekly"),
				huh.NewOption("Monthly", "monthly"),
			).
			Value(&m.fb.recurrencePattern),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) buildEditForm() *huh.Form {
	fields := m.coreFields()
	fields = append(fields,
		huh.NewInput().
			Title("Estimated Minutes").
			Placeholder("Optional").
			Value(&m.fb.estimatedMinutes).
			Validate(validateOptionalInt),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) coreFields() []huh.Field {
	categoryOpts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		categoryOpts[i] = huh.NewOption(titleCase(c), c)
	}

	return []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What do you need to do?").
			Value(&m.fb.title).
			Validate(ValidateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewInput().
			Title("Deadline").
			Placeholder("YYYY-MM-DD HH:MM (local time)").
			Value(&m.fb.deadline).
			Validate(validateDeadline),
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
		huh.NewSelect[int]().
			Title("Remind Before").
			Options(
				huh.NewOption("At deadline", 0),
				huh.NewOption("5 minutes", 5),
				huh.NewOption("15 minutes", 15),
				huh.NewOption("30 minutes", 30),
				huh.NewOption("1 hour", 60),
				huh.NewOption("2 hours", 120),
				huh.NewOption("1 day", 1440),
			).
			Value(&m.fb.notifyMinutes),
	}
}

func (m Model) handleSubmit() tea.Cmd {
	deadline, err := ParseDeadline(m.fb.deadline)
	if err != nil {
		// Validation should have rejected this before submit.
		return func() tea.Msg { return CancelMsg{} }
	}

	if m.editMode {
		body := api.ActivityUpdate{
			Title:               m.fb.title,
			Description:         m.fb.description,
			Deadline:            deadline,
			Priority:            m.fb.priority,
			Category:            m.fb.category,
			NotificationMinutes: m.fb.notifyMinutes,
		}
		if v, err := strconv.Atoi(strings.TrimSpace(m.fb.estimatedMinutes)); err == nil {
			body.EstimatedMinutes = v
		}
		id := m.editID
		return func() tea.Msg { return EditSubmittedMsg{ID: id, Body: body} }
	}

	body := api.ActivityCreate{
		Title:               m.fb.title,
		Description:         m.fb.description,
		Deadline:            deadline,
		Priority:            m.fb.priority,
		Category:            m.fb.category,
		NotificationMinutes: m.fb.notifyMinutes,
		IsRecurring:         m.fb.isRecurring,
	}
	if m.fb.isRecurring {
		pattern := m.fb.recurrencePattern
		body.RecurrencePattern = &pattern
	}
	return func() tea.Msg { return CreateSubmittedMsg{Body: body} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ValidateRequired builds a huh validator that rejects blank input.
func ValidateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}
