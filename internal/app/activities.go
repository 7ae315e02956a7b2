package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/live"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/ui"
	"github.com/pvu/accountable/internal/ui/detail"
)

// unreadCountMsg carries the number of unread notifications to the UI.
type unreadCountMsg struct {
	count int
}

// mutationDoneMsg reports a successful write; the list reloads in
// response. status is an optional status bar line.
type mutationDoneMsg struct {
	status string
}

// Confirmed destructive actions, delivered through the confirm modal.
type deleteActivityMsg struct{ id int64 }
type batchCompleteMsg struct{ ids []int64 }
type batchDeleteMsg struct{ ids []int64 }

// loadDetail fetches an activity's subtasks and notes for the detail view.
func (m Model) loadDetail(a model.Activity) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		subtasks, err := client.ListSubtasks(context.Background(), a.ID)
		if err != nil {
			return detail.LoadedMsg{Err: err}
		}
		notes, err := client.ListNotes(context.Background(), a.ID)
		if err != nil {
			return detail.LoadedMsg{Err: err}
		}
		return detail.LoadedMsg{Detail: &detail.Detail{
			Activity: a,
			Subtasks: subtasks,
			Notes:    notes,
		}}
	}
}

func (m Model) createActivity(body api.ActivityCreate) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreateActivity(context.Background(), body)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: "Created: " + created.Title}
	}
}

func (m Model) updateActivity(id int64, body api.ActivityUpdate) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		updated, err := client.UpdateActivity(context.Background(), id, body)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: "Updated: " + updated.Title}
	}
}

func (m Model) completeActivity(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.CompleteActivity(context.Background(), id); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) deleteActivity(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteActivity(context.Background(), id); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: "Deleted"}
	}
}

func (m Model) snoozeActivity(id int64, minutes int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.SnoozeActivity(context.Background(), id, minutes); err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Snoozed %d minutes", minutes)}
	}
}

func (m Model) batchComplete(ids []int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.BatchComplete(context.Background(), ids)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: result.Message}
	}
}

func (m Model) batchDelete(ids []int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.BatchDelete(context.Background(), ids)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: result.Message}
	}
}

func (m Model) batchUpdateCategory(ids []int64, category string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.BatchUpdateCategory(context.Background(), ids, category)
		if err != nil {
			return ui.ErrorMsg{Err: err}
		}
		return mutationDoneMsg{status: result.Message}
	}
}

// notifiedMsg reports that at least one notification fired and was
// logged, so the unread count needs a refresh.
type notifiedMsg struct{}

// notifyMissed attempts one notification per missed activity on the
// loaded page. The gate decides which attempts actually fire; fired
// notifications are recorded in the local log.
func (m Model) notifyMissed(activities []model.Activity) tea.Cmd {
	gate := m.gate
	s := m.store
	return func() tea.Msg {
		fired := 0
		for _, a := range activities {
			if a.Status != model.StatusMissed {
				continue
			}
			if !gate.TryShow("Missed activity", a.Title) {
				continue
			}
			fired++
			_ = s.CreateNotification(context.Background(), model.Notification{
				Kind:  model.NotificationKindMissed,
				Title: a.Title,
				Body:  "Deadline passed",
			})
		}
		if fired == 0 {
			return nil
		}
		return notifiedMsg{}
	}
}

// notifyEvent handles one live backend event: a single notification
// attempt, logged when it fires.
func (m Model) notifyEvent(ev live.Event) tea.Cmd {
	gate := m.gate
	s := m.store
	return func() tea.Msg {
		if !gate.TryShow(ev.Type, ev.Title) {
			return nil
		}
		_ = s.CreateNotification(context.Background(), model.Notification{
			Kind:  model.NotificationKindEvent,
			Title: ev.Title,
			Body:  ev.Type,
		})
		return notifiedMsg{}
	}
}

// fetchUnreadCount queries the local store for unread notifications.
func (m Model) fetchUnreadCount() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		notifications, err := s.GetUnreadNotifications(context.Background())
		if err != nil {
			return unreadCountMsg{count: 0}
		}
		return unreadCountMsg{count: len(notifications)}
	}
}
