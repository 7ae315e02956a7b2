package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
	"github.com/pvu/accountable/internal/ui"
	"github.com/pvu/accountable/internal/ui/command"
)

// executeCommand handles a command line from the command palette.
func (m *Model) executeCommand(cmd command.CommandMsg) tea.Cmd {
	switch cmd.Name() {
	case "refresh", "sync":
		m.statusLine = ""
		m.refresher.TriggerNow()
		return nil

	case "quit", "q":
		return m.shutdown()

	case "export":
		path := cmd.Arg()
		if path == "" {
			path = defaultExportName(time.Now())
		}
		return m.exportBackup(path)

	case "import":
		path := cmd.Arg()
		if path == "" {
			m.statusLine = "import needs a file path"
			return nil
		}
		return m.importBackup(path)

	case "theme":
		return m.toggleTheme()

	case "notify", "notifications", "mute":
		return m.toggleNotifications()

	case "stats":
		m.previousView = m.currentView
		m.currentView = ViewStats
		return m.statsView.Start()

	case "templates":
		m.previousView = m.currentView
		m.currentView = ViewTemplates
		return m.templatesView.Start()

	case "agenda", "calendar":
		m.previousView = m.currentView
		m.currentView = ViewAgenda
		return m.agendaView.Start()

	case "inbox":
		m.previousView = m.currentView
		m.currentView = ViewInbox
		return m.inboxView.Start()

	default:
		m.statusLine = "unknown command: " + cmd.Name()
		return nil
	}
}

// defaultExportName matches the backup naming used by the export feature.
func defaultExportName(now time.Time) string {
	return "accountability_export_" + now.Format("2006-01-02") + ".json"
}

func (m Model) exportBackup(path string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.ExportToFile(context.Background(), path); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return ui.StatusMsg("Exported to " + path)
	}
}

func (m Model) importBackup(path string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.ImportFromFile(context.Background(), path)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return ui.StatusMsg(result.Message)
	}
}

// toggleNotifications flips the gate, persists the preference, and
// reports the new state.
func (m *Model) toggleNotifications() tea.Cmd {
	paused := m.gate.Toggle()
	m.cfg.Notifications.Paused = paused

	cfg := m.cfg
	path := m.cfgPath
	return func() tea.Msg {
		if err := model.SaveConfig(path, cfg); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		if paused {
			return ui.StatusMsg("Notifications paused")
		}
		return ui.StatusMsg("Notifications resumed")
	}
}

// toggleTheme switches between light and dark, persists the preference,
// and re-applies the palette.
func (m *Model) toggleTheme() tea.Cmd {
	if m.cfg.Display.Theme == "dark" {
		m.cfg.Display.Theme = "light"
	} else {
		m.cfg.Display.Theme = "dark"
	}
	theme.Apply(m.cfg.Display.Theme)

	cfg := m.cfg
	path := m.cfgPath
	name := m.cfg.Display.Theme
	return func() tea.Msg {
		if err := model.SaveConfig(path, cfg); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return ui.StatusMsg("Theme: " + name)
	}
}
