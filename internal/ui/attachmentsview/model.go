package attachmentsview

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

// LoadedMsg carries the fetched attachment metadata.
type LoadedMsg struct {
	Attachments []model.Attachment
	Err         error
}

// deleteConfirmedMsg is the confirm-modal action for an attachment
// delete, routed back here only after the user confirms.
type deleteConfirmedMsg struct {
	attachmentID int64
}

// inputMode says what the path prompt is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputUpload
	inputDownload
)

// Model is the attachments view for one activity.
type Model struct {
	client        *api.Client
	keys          *keys.KeyMap
	activityID    int64
	activityTitle string
	attachments   []model.Attachment
	cursor        int
	mode          inputMode
	input         textinput.Model
	width         int
	height        int
}

// New creates an attachments view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Prompt = "path: "
	ti.Width = width - 10

	return Model{
		client: c,
		keys:   k,
		input:  ti,
		width:  width,
		height: height,
	}
}

// Start points the view at an activity and loads its attachments.
func (m *Model) Start(a model.Activity) tea.Cmd {
	m.activityID = a.ID
	m.activityTitle = a.Title
	m.attachments = nil
	m.cursor = 0
	m.mode = inputNone
	return m.load()
}

func (m Model) load() tea.Cmd {
	client := m.client
	id := m.activityID
	return func() tea.Msg {
		attachments, err := client.ListAttachments(context.Background(), id)
		return LoadedMsg{Attachments: attachments, Err: err}
	}
}

// Update handles messages for the attachments view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.attachments = msg.Attachments
		if m.cursor >= len(m.attachments) {
			m.cursor = max(0, len(m.attachments)-1)
		}
		return m, nil

	case deleteConfirmedMsg:
		client := m.client
		del := func() tea.Msg {
			if err := client.DeleteAttachment(context.Background(), msg.attachmentID); err != nil {
				return ui.ErrorMsg{Err: err}
			}
			return nil
		}
		return m, tea.Sequence(del, m.load())

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handlePathKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

func (m Model) handlePathKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := m.input.Value()
		mode := m.mode
		m.mode = inputNone
		m.input.Reset()
		if path == "" {
			return m, nil
		}

		switch mode {
		case inputUpload:
			client := m.client
			id := m.activityID
			upload := func() tea.Msg {
				if _, err := client.UploadAttachment(context.Background(), id, path); err != nil {
					return ui.ErrorMsg{Err: err}
				}
				return ui.StatusMsg("Uploaded " + path)
			}
			return m, tea.Sequence(upload, m.load())

		case inputDownload:
			if m.cursor >= len(m.attachments) {
				return m, nil
			}
			att := m.attachments[m.cursor]
			client := m.client
			return m, func() tea.Msg {
				err := client.DownloadAttachment(context.Background(), att.ID, path)
				if err != nil {
					return ui.ErrorMsg{Err: err}
				}
				return ui.StatusMsg("Saved " + att.Filename + " to " + path)
			}
		}
		return m, nil

	case "esc":
		m.mode = inputNone
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
		if m.cursor < len(m.attachments)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = inputUpload
		m.input.Placeholder = "file to upload"
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Select):
		if m.cursor >= len(m.attachments) {
			return m, nil
		}
		m.mode = inputDownload
		m.input.Placeholder = "save as"
		m.input.SetValue(m.attachments[m.cursor].Filename)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(m.attachments) {
			return m, nil
		}
		att := m.attachments[m.cursor]
		return m, func() tea.Msg {
			return ui.ConfirmRequestMsg{
				Prompt: fmt.Sprintf("Delete attachment %q?", att.Filename),
				Action: deleteConfirmedMsg{attachmentID: att.ID},
			}
		}
	}

	return m, nil
}

// View renders the attachments view.
func (m Model) View() string {
	var sections []string

	header := theme.HeaderStyle.Render(fmt.Sprintf(
		"Attachments · %s (%d)", m.activityTitle, len(m.attachments),
	))
	sections = append(sections, header, "")

	if len(m.attachments) == 0 && m.mode == inputNone {
		sections = append(sections,
			theme.HelpStyle.Render("No attachments. Press n to upload a file."))
	}

	sizeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	for i, att := range m.attachments {
		line := fmt.Sprintf("%s  %s", att.Filename, sizeStyle.Render(formatSize(att.Filesize)))
		if i == m.cursor && m.mode == inputNone {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		sections = append(sections, line)
	}

	if m.mode != inputNone {
		sections = append(sections, "", m.input.View())
	}

	sections = append(sections, "",
		theme.HelpStyle.Render("n: upload  enter: download  d: delete  esc: back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// formatSize renders a byte count with a binary unit suffix.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 10
}
