package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/live"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/notify"
	"github.com/pvu/accountable/internal/store"
	appsync "github.com/pvu/accountable/internal/sync"
	"github.com/pvu/accountable/internal/theme"
	"github.com/pvu/accountable/internal/ui"
	"github.com/pvu/accountable/internal/ui/activityform"
	"github.com/pvu/accountable/internal/ui/activitylist"
	"github.com/pvu/accountable/internal/ui/agendaview"
	"github.com/pvu/accountable/internal/ui/attachmentsview"
	"github.com/pvu/accountable/internal/ui/categoryform"
	"github.com/pvu/accountable/internal/ui/command"
	"github.com/pvu/accountable/internal/ui/confirm"
	"github.com/pvu/accountable/internal/ui/detail"
	helpview "github.com/pvu/accountable/internal/ui/help"
	"github.com/pvu/accountable/internal/ui/historyview"
	"github.com/pvu/accountable/internal/ui/inbox"
	"github.com/pvu/accountable/internal/ui/notesview"
	"github.com/pvu/accountable/internal/ui/snoozeform"
	"github.com/pvu/accountable/internal/ui/statsview"
	"github.com/pvu/accountable/internal/ui/subtasksview"
	"github.com/pvu/accountable/internal/ui/templatesview"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewFormCreate
	ViewFormEdit
	ViewSnooze
	ViewConfirm
	ViewCategory
	ViewNotes
	ViewSubtasks
	ViewHistory
	ViewAttachments
	ViewTemplates
	ViewStats
	ViewAgenda
	ViewInbox
	ViewHelp
	ViewCommand
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the live event stream, and the polling fallback.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout

	cfg     *model.AppConfig
	cfgPath string
	client  *api.Client
	store   store.Store
	keys    *keys.KeyMap
	gate    *notify.Gate

	refresher *appsync.Refresher
	listener  *live.Listener

	listView        activitylist.Model
	detailView      detail.Model
	formView        activityform.Model
	snoozeView      snoozeform.Model
	confirmView     confirm.Model
	categoryView    categoryform.Model
	notesView       notesview.Model
	subtasksView    subtasksview.Model
	historyView     historyview.Model
	attachmentsView attachmentsview.Model
	templatesView   templatesview.Model
	statsView       statsview.Model
	agendaView      agendaview.Model
	inboxView       inbox.Model
	helpView        helpview.Model
	commandView     command.Model

	ready       bool
	unreadCount int
	statusLine  string
}

// New creates the root application model.
func New(
	cfg *model.AppConfig,
	cfgPath string,
	client *api.Client,
	s store.Store,
	gate *notify.Gate,
	refresher *appsync.Refresher,
	listener *live.Listener,
) Model {
	k := keys.DefaultKeyMap()

	return Model{
		currentView:     ViewList,
		cfg:             cfg,
		cfgPath:         cfgPath,
		client:          client,
		store:           s,
		keys:            &k,
		gate:            gate,
		refresher:       refresher,
		listener:        listener,
		listView:        activitylist.New(client, &k, cfg.Display.PageSize, 80, 24),
		detailView:      detail.New(&k, 80, 24),
		formView:        activityform.New(80, 24),
		snoozeView:      snoozeform.New(80, 24),
		confirmView:     confirm.New(80, 24),
		categoryView:    categoryform.New(80, 24),
		notesView:       notesview.New(client, &k, 80, 24),
		subtasksView:    subtasksview.New(client, &k, 80, 24),
		historyView:     historyview.New(client, &k, 80, 24),
		attachmentsView: attachmentsview.New(client, &k, 80, 24),
		templatesView:   templatesview.New(client, &k, 80, 24),
		statsView:       statsview.New(client, &k, 80, 24),
		agendaView:      agendaview.New(client, &k, 80, 24),
		inboxView:       inbox.New(s, &k, 80, 24),
		helpView:        helpview.New(&k, 80, 24),
		commandView:     command.New(80, 24),
	}
}

// Init loads the first page and starts the live stream and the
// polling fallback.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.listView.Reload(),
		m.listener.Start(),
		m.refresher.Start(),
		m.fetchUnreadCount(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resizeViews()
		return m.updateActiveView(msg)

	case live.EventMsg:
		// One backend event means exactly one notification attempt and
		// one list refresh, regardless of the gate's verdict.
		cmds := []tea.Cmd{
			m.notifyEvent(msg.Event),
			m.listView.Reload(),
			m.listener.WaitForNextEvent(),
		}
		return m, tea.Batch(cmds...)

	case appsync.RefreshRequestMsg:
		return m, tea.Batch(
			m.listView.Reload(),
			m.refresher.WaitForNextRequest(),
		)

	case activitylist.LoadedMsg:
		if msg.Err != nil {
			m.statusLine = api.Detail(msg.Err)
		}
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		cmds := []tea.Cmd{cmd}
		if msg.Err == nil {
			cmds = append(cmds,
				m.notifyMissed(msg.Activities),
				m.fetchUnreadCount(),
			)
		}
		return m, tea.Batch(cmds...)

	case unreadCountMsg:
		m.unreadCount = msg.count
		return m, nil

	case notifiedMsg:
		return m, m.fetchUnreadCount()

	case ui.ErrorMsg:
		m.statusLine = api.Detail(msg.Err)
		return m, nil

	case ui.StatusMsg:
		m.statusLine = string(msg)
		return m, nil

	case ui.ConfirmRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewConfirm
		m.confirmView.Show(msg.Prompt, msg.Action)
		return m, nil

	case activitylist.SelectedActivityMsg:
		m.previousView = m.currentView
		m.currentView = ViewDetail
		m.detailView.SetLoading(true)
		return m, m.loadDetail(msg.Activity)

	case detail.LoadedMsg:
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case activityform.CreateSubmittedMsg:
		m.currentView = ViewList
		return m, m.createActivity(msg.Body)

	case activityform.EditSubmittedMsg:
		m.currentView = ViewList
		return m, m.updateActivity(msg.ID, msg.Body)

	case activityform.CancelMsg:
		m.currentView = ViewList
		return m, nil

	case snoozeform.SubmittedMsg:
		m.currentView = ViewList
		return m, m.snoozeActivity(msg.ActivityID, msg.Minutes)

	case snoozeform.CancelMsg:
		m.currentView = ViewList
		return m, nil

	case categoryform.SubmittedMsg:
		m.currentView = ViewList
		return m, m.batchUpdateCategory(msg.ActivityIDs, msg.Category)

	case categoryform.CancelMsg:
		m.currentView = ViewList
		return m, nil

	case confirm.ResultMsg:
		m.currentView = m.previousView
		if !msg.Confirmed || msg.Action == nil {
			return m, nil
		}
		action := msg.Action
		return m, func() tea.Msg { return action }

	case deleteActivityMsg:
		return m, m.deleteActivity(msg.id)

	case batchCompleteMsg:
		return m, m.batchComplete(msg.ids)

	case batchDeleteMsg:
		return m, m.batchDelete(msg.ids)

	case mutationDoneMsg:
		if msg.status != "" {
			m.statusLine = msg.status
		}
		m.listView.ClearSelection()
		return m, m.listView.Reload()

	case templatesview.ActivityStampedMsg:
		m.statusLine = "Created: " + msg.Activity.Title
		return m, m.listView.Reload()

	case inbox.MarkedReadMsg:
		return m, m.fetchUnreadCount()

	case notesview.BackMsg, subtasksview.BackMsg, historyview.BackMsg,
		attachmentsview.BackMsg, templatesview.BackMsg, statsview.BackMsg,
		agendaview.BackMsg, inbox.BackMsg:
		m.currentView = ViewList
		return m, m.listView.Reload()

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(msg)

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that are not owned by the active view.
// Returns handled=false when the key should fall through.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	// Text-entry views own every key except ctrl+c.
	typing := m.currentView == ViewFormCreate ||
		m.currentView == ViewFormEdit ||
		m.currentView == ViewSnooze ||
		m.currentView == ViewCategory ||
		m.currentView == ViewCommand ||
		(m.currentView == ViewList && m.listView.Searching())

	if msg.String() == "ctrl+c" {
		return true, m, m.shutdown()
	}
	if typing && m.currentView != ViewList {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewList && !m.listView.Searching() {
			return true, m, m.shutdown()
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		if m.currentView == ViewList && !m.listView.Searching() {
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return true, m, nil
		}

	case ":":
		if m.currentView == ViewList && !m.listView.Searching() {
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return true, m, m.commandView.Focus()
		}
	}

	if m.currentView != ViewList || m.listView.Searching() {
		return false, m, nil
	}

	// List-view shortcuts.
	switch msg.String() {
	case "r":
		m.statusLine = ""
		return true, m, m.listView.Reload()

	case "n":
		m.previousView = m.currentView
		m.currentView = ViewFormCreate
		return true, m, m.formView.StartCreate()

	case "e":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewFormEdit
			return true, m, m.formView.StartEdit(a)
		}

	case "x":
		if a, ok := m.listView.Current(); ok {
			return true, m, m.completeActivity(a.ID)
		}

	case "d":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewConfirm
			m.confirmView.Show(
				fmt.Sprintf("Delete %q?", a.Title),
				deleteActivityMsg{id: a.ID},
			)
			return true, m, nil
		}

	case "s":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewSnooze
			return true, m, m.snoozeView.Start(a.ID, a.Title)
		}

	case "X":
		if ids := m.listView.SelectedIDs(); len(ids) > 0 {
			m.previousView = m.currentView
			m.currentView = ViewConfirm
			m.confirmView.Show(
				fmt.Sprintf("Complete %d selected activities?", len(ids)),
				batchCompleteMsg{ids: ids},
			)
			return true, m, nil
		}
		m.statusLine = "select activities with space first"
		return true, m, nil

	case "D":
		if ids := m.listView.SelectedIDs(); len(ids) > 0 {
			m.previousView = m.currentView
			m.currentView = ViewConfirm
			m.confirmView.Show(
				fmt.Sprintf("Delete %d selected activities?", len(ids)),
				batchDeleteMsg{ids: ids},
			)
			return true, m, nil
		}
		m.statusLine = "select activities with space first"
		return true, m, nil

	case "M":
		if ids := m.listView.SelectedIDs(); len(ids) > 0 {
			m.previousView = m.currentView
			m.currentView = ViewCategory
			return true, m, m.categoryView.Start(ids)
		}
		m.statusLine = "select activities with space first"
		return true, m, nil

	case "N":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewNotes
			return true, m, m.notesView.Start(a)
		}

	case "S":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewSubtasks
			return true, m, m.subtasksView.Start(a)
		}

	case "H":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewHistory
			return true, m, m.historyView.Start(a)
		}

	case "A":
		if a, ok := m.listView.Current(); ok {
			m.previousView = m.currentView
			m.currentView = ViewAttachments
			return true, m, m.attachmentsView.Start(a)
		}

	case "T":
		m.previousView = m.currentView
		m.currentView = ViewTemplates
		return true, m, m.templatesView.Start()

	case "G":
		m.previousView = m.currentView
		m.currentView = ViewStats
		return true, m, m.statsView.Start()

	case "C":
		m.previousView = m.currentView
		m.currentView = ViewAgenda
		return true, m, m.agendaView.Start()

	case "I":
		m.previousView = m.currentView
		m.currentView = ViewInbox
		return true, m, m.inboxView.Start()

	case "m":
		return true, m, m.toggleNotifications()

	case "t":
		return true, m, m.toggleTheme()
	}

	return false, m, nil
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewFormCreate, ViewFormEdit:
		m.formView, cmd = m.formView.Update(msg)
	case ViewSnooze:
		m.snoozeView, cmd = m.snoozeView.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewCategory:
		m.categoryView, cmd = m.categoryView.Update(msg)
	case ViewNotes:
		m.notesView, cmd = m.notesView.Update(msg)
	case ViewSubtasks:
		m.subtasksView, cmd = m.subtasksView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewAttachments:
		m.attachmentsView, cmd = m.attachmentsView.Update(msg)
	case ViewTemplates:
		m.templatesView, cmd = m.templatesView.Update(msg)
	case ViewStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case ViewAgenda:
		m.agendaView, cmd = m.agendaView.Update(msg)
	case ViewInbox:
		m.inboxView, cmd = m.inboxView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

func (m *Model) resizeViews() {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()
	m.listView.SetSize(w, h)
	m.detailView.SetSize(w, h)
	m.formView.SetSize(w, h)
	m.snoozeView.SetSize(w, h)
	m.confirmView.SetSize(w, h)
	m.categoryView.SetSize(w, h)
	m.notesView.SetSize(w, h)
	m.subtasksView.SetSize(w, h)
	m.historyView.SetSize(w, h)
	m.attachmentsView.SetSize(w, h)
	m.templatesView.SetSize(w, h)
	m.statsView.SetSize(w, h)
	m.agendaView.SetSize(w, h)
	m.inboxView.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
}

// shutdown stops the background goroutines and quits.
func (m Model) shutdown() tea.Cmd {
	m.refresher.Stop()
	m.listener.Stop()
	return tea.Quit
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	headerTitle := "Accountable"
	if m.unreadCount > 0 {
		headerTitle = fmt.Sprintf("Accountable [%d new]", m.unreadCount)
	}
	header := m.layout.RenderHeader(headerTitle, m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusBarText(), m.viewLabel())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.listView.View()
	case ViewDetail:
		return m.detailView.View()
	case ViewFormCreate, ViewFormEdit:
		return m.formView.View()
	case ViewSnooze:
		return m.snoozeView.View()
	case ViewConfirm:
		return m.confirmView.View()
	case ViewCategory:
		return m.categoryView.View()
	case ViewNotes:
		return m.notesView.View()
	case ViewSubtasks:
		return m.subtasksView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewAttachments:
		return m.attachmentsView.View()
	case ViewTemplates:
		return m.templatesView.View()
	case ViewStats:
		return m.statsView.View()
	case ViewAgenda:
		return m.agendaView.View()
	case ViewInbox:
		return m.inboxView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// headerStatus describes the notification gate state for the header.
func (m Model) headerStatus() string {
	return "notifications: " + m.gate.Status().String()
}

// viewLabel names the active view for the status bar's right segment.
func (m Model) viewLabel() string {
	switch m.currentView {
	case ViewList:
		return "activities"
	case ViewDetail:
		return "detail"
	case ViewFormCreate:
		return "new activity"
	case ViewFormEdit:
		return "edit activity"
	case ViewSnooze:
		return "snooze"
	case ViewConfirm:
		return "confirm"
	case ViewCategory:
		return "category"
	case ViewNotes:
		return "notes"
	case ViewSubtasks:
		return "subtasks"
	case ViewHistory:
		return "history"
	case ViewAttachments:
		return "attachments"
	case ViewTemplates:
		return "templates"
	case ViewStats:
		return "progress"
	case ViewAgenda:
		return "agenda"
	case ViewInbox:
		return "inbox"
	case ViewHelp:
		return "help"
	case ViewCommand:
		return "command"
	default:
		return ""
	}
}

// statusBarText returns the line for the bottom bar: a pending error or
// status message wins over the key hints.
func (m Model) statusBarText() string {
	if m.statusLine != "" {
		return theme.ErrorStyle.Render(m.statusLine)
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewDetail:
		return "esc back | j/k scroll"
	case ViewFormCreate, ViewFormEdit:
		return "enter next | esc cancel"
	case ViewSnooze, ViewCategory:
		return "enter confirm | esc cancel"
	case ViewConfirm:
		return "y confirm | n cancel"
	default:
		return "q quit | ? help | n new | x complete | / search | space select | tab sort"
	}
}
