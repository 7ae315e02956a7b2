package activitylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/theme"
)

// LoadedMsg is sent when a page of activities has been fetched.
// Seq identifies the request; responses for superseded requests are
// discarded so a slow earlier fetch can never overwrite a later one.
type LoadedMsg struct {
	Seq        uint64
	Activities []model.Activity
	Err        error
}

// SelectedActivityMsg is sent when the user opens an activity.
type SelectedActivityMsg struct {
	Activity model.Activity
}

// Counts holds per-status totals for the currently loaded page.
type Counts struct {
	Pending   int
	Completed int
	Missed    int
}

// sortFields defines the sort fields cycled by Tab.
var sortFields = []string{
	"deadline",
	"priority",
	"created_at",
	"title",
}

var statusFilters = []string{"", model.StatusPending, model.StatusCompleted, model.StatusMissed}

var priorityFilters = []string{"", model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

// Model is the main activity list view component.
type Model struct {
	list        list.Model
	client      *api.Client
	keys        *keys.KeyMap
	query       api.ActivityQuery
	activities  []model.Activity
	selected    map[int64]bool
	seq         uint64
	sortIndex   int
	hasNext     bool
	loading     bool
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new activity list model.
func New(c *api.Client, k *keys.KeyMap, pageSize, width, height int) Model {
	selected := make(map[int64]bool)

	delegate := ItemDelegate{selected: selected}
	l := list.New([]list.Item{}, delegate, width, height-3)
	l.Title = "Activities"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search activities..."
	si.Prompt = "/ "
	si.Width = width - 4

	if pageSize <= 0 {
		pageSize = api.DefaultPageSize
	}

	return Model{
		list:   l,
		client: c,
		keys:   k,
		query: api.ActivityQuery{
			SortBy:    api.DefaultSortBy,
			SortOrder: api.DefaultSortOrder,
			Page:      1,
			PageSize:  pageSize,
		},
		selected:    selected,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Update handles messages for the activity list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Seq != m.seq {
			// Stale response from a superseded request.
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.activities = msg.Activities
		m.hasNext = len(msg.Activities) >= m.query.PageSize
		m.pruneSelection()

		items := make([]list.Item, len(msg.Activities))
		for i, a := range msg.Activities {
			items[i] = ActivityItem{Activity: a}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query.Search = m.searchInput.Value()
		m.query.Page = 1
		return m, m.Reload()

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query.Search = ""
		m.query.Page = 1
		return m, m.Reload()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(ActivityItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedActivityMsg{Activity: item.Activity}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ToggleSelect):
		item, ok := m.list.SelectedItem().(ActivityItem)
		if !ok {
			return m, nil
		}
		id := item.Activity.ID
		if m.selected[id] {
			delete(m.selected, id)
		} else {
			m.selected[id] = true
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		if len(m.selected) == len(m.activities) && len(m.activities) > 0 {
			for id := range m.selected {
				delete(m.selected, id)
			}
		} else {
			for _, a := range m.activities {
				m.selected[a.ID] = true
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.query.Page <= 1 {
			return m, nil
		}
		m.query.Page--
		return m, m.Reload()

	case key.Matches(msg, m.keys.NextPage):
		if !m.hasNext {
			return m, nil
		}
		m.query.Page++
		return m, m.Reload()

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIndex = (m.sortIndex + 1) % len(sortFields)
		m.query.SortBy = sortFields[m.sortIndex]
		m.query.Page = 1
		return m, m.Reload()

	case key.Matches(msg, m.keys.SortOrder):
		if m.query.SortOrder == "asc" {
			m.query.SortOrder = "desc"
		} else {
			m.query.SortOrder = "asc"
		}
		m.query.Page = 1
		return m, m.Reload()

	case key.Matches(msg, m.keys.CycleStatus):
		m.query.Status = cycle(statusFilters, m.query.Status)
		m.query.Page = 1
		return m, m.Reload()

	case key.Matches(msg, m.keys.CyclePriority):
		m.query.Priority = cycle(priorityFilters, m.query.Priority)
		m.query.Page = 1
		return m, m.Reload()

	case key.Matches(msg, m.keys.CycleCategory):
		m.query.Category = cycle(categoryFilters(), m.query.Category)
		m.query.Page = 1
		return m, m.Reload()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// cycle advances value to its successor in values, wrapping around.
// An unknown value resets to the first entry.
func cycle(values []string, value string) string {
	for i, v := range values {
		if v == value {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func categoryFilters() []string {
	return append([]string{""}, model.Categories...)
}

// View renders the activity list view.
func (m Model) View() string {
	toolbar := m.renderToolbar()

	var body string
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		body = lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	} else if len(m.activities) == 0 && !m.loading {
		body = m.renderEmptyState()
	} else {
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, toolbar, body)
}

// renderToolbar shows the active filters, sort, page, and per-status
// counts for the loaded page.
func (m Model) renderToolbar() string {
	c := m.PageCounts()

	parts := []string{
		fmt.Sprintf("page %d", m.query.Page),
		fmt.Sprintf("sort %s/%s", m.query.SortBy, m.query.SortOrder),
		fmt.Sprintf("on page: %d pending · %d completed · %d missed",
			c.Pending, c.Completed, c.Missed),
	}
	if m.query.Status != "" {
		parts = append(parts, "status="+m.query.Status)
	}
	if m.query.Priority != "" {
		parts = append(parts, "priority="+m.query.Priority)
	}
	if m.query.Category != "" {
		parts = append(parts, "category="+m.query.Category)
	}
	if m.query.Search != "" {
		parts = append(parts, "search="+m.query.Search)
	}
	if n := len(m.selected); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}

	return theme.HelpStyle.Render(strings.Join(parts, "  "))
}

// renderEmptyState shows guidance text when no activities are available.
func (m Model) renderEmptyState() string {
	hasFilters := m.query.Status != "" ||
		m.query.Priority != "" ||
		m.query.Category != "" ||
		m.query.Search != ""

	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 3).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if hasFilters {
		return style.Render("No matching activities.\nTry adjusting your filters.")
	}

	return style.Render("No activities yet.\n\nPress n to create one.")
}

// Reload returns a tea.Cmd that fetches the current page with the
// current filters. Each call supersedes any in-flight fetch.
func (m *Model) Reload() tea.Cmd {
	m.seq++
	m.loading = true

	seq := m.seq
	query := m.query
	client := m.client
	return func() tea.Msg {
		activities, err := client.ListActivities(context.Background(), query)
		return LoadedMsg{Seq: seq, Activities: activities, Err: err}
	}
}

// PageCounts returns per-status totals for the loaded page only.
func (m Model) PageCounts() Counts {
	var c Counts
	for _, a := range m.activities {
		switch a.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusCompleted:
			c.Completed++
		case model.StatusMissed:
			c.Missed++
		}
	}
	return c
}

// Activities returns the currently loaded page.
func (m Model) Activities() []model.Activity {
	return m.activities
}

// Current returns the activity under the cursor.
func (m Model) Current() (model.Activity, bool) {
	item, ok := m.list.SelectedItem().(ActivityItem)
	if !ok {
		return model.Activity{}, false
	}
	return item.Activity, true
}

// SelectedIDs returns the ids in the multi-select set, in page order.
func (m Model) SelectedIDs() []int64 {
	ids := make([]int64, 0, len(m.selected))
	for _, a := range m.activities {
		if m.selected[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// ClearSelection empties the multi-select set.
func (m *Model) ClearSelection() {
	for id := range m.selected {
		delete(m.selected, id)
	}
}

// pruneSelection drops selected ids no longer present on the page.
func (m *Model) pruneSelection() {
	present := make(map[int64]bool, len(m.activities))
	for _, a := range m.activities {
		present[a.ID] = true
	}
	for id := range m.selected {
		if !present[id] {
			delete(m.selected, id)
		}
	}
}

// HasNextPage reports whether advancing to the next page is allowed.
// A full page means more results may exist; a short page means the end.
func (m Model) HasNextPage() bool {
	return m.hasNext
}

// HasPrevPage reports whether a previous page exists.
func (m Model) HasPrevPage() bool {
	return m.query.Page > 1
}

// Query returns the current query state.
func (m Model) Query() api.ActivityQuery {
	return m.query
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-3)
	m.searchInput.Width = width - 4
}
