package activitylist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
)

// ActivityItem wraps a model.Activity so it can be used in a bubbles/list.
type ActivityItem struct {
	Activity model.Activity
}

// FilterValue returns the string used for fuzzy filtering.
func (i ActivityItem) FilterValue() string { return i.Activity.Title }

// ItemDelegate renders activity rows. The selected set is shared by
// reference with the list Model so toggles are visible immediately.
type ItemDelegate struct {
	selected map[int64]bool
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single activity row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ai, ok := item.(ActivityItem)
	if !ok {
		return
	}

	a := ai.Activity
	isSelected := index == m.Index()

	var marker string
	if d.selected[a.ID] {
		marker = "▣"
	} else {
		marker = "▢"
	}

	statusBadge := theme.StatusStyle(a.Status).Render(a.Status)
	priBadge := theme.PriorityStyle(a.Priority).Render(priorityLabel(a.Priority))
	catBadge := theme.CategoryStyle(a.Category).Render(a.Category)

	recurring := ""
	if a.IsRecurring {
		recurring = lipgloss.NewStyle().
			Foreground(theme.ColorMagenta).
			Render(" ↻")
	}

	deadline := theme.DeadlineStyle.Render(" " + formatDeadline(a.Deadline))

	overdue := ""
	if a.Status == model.StatusMissed {
		overdue = theme.OverdueStyle.Render(" OVERDUE")
	}

	line := fmt.Sprintf(
		"%s %s %s %s %s%s%s%s",
		marker, statusBadge, priBadge, catBadge, a.Title,
		recurring, deadline, overdue,
	)

	if a.Status == model.StatusCompleted {
		line = theme.DimmedStyle.Render(line)
	}

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// formatDeadline renders a deadline in local time, dropping the year
// when it matches the current one.
func formatDeadline(t time.Time) string {
	local := t.Local()
	if local.Year() == time.Now().Year() {
		return local.Format("Jan 02 15:04")
	}
	return local.Format("Jan 02 2006 15:04")
}

// priorityLabel returns a short label for the given priority level.
func priorityLabel(p string) string {
	switch p {
	case model.PriorityHigh:
		return "P1"
	case model.PriorityMedium:
		return "P2"
	case model.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}
