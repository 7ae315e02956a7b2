package statsview

import (
	"context"
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
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

// LoadedMsg carries the fetched stats and achievements.
type LoadedMsg struct {
	Stats        *model.Stats
	Achievements []model.Achievement
	Err          error
}

// Model is the progress summary view.
type Model struct {
	client       *api.Client
	keys         *keys.KeyMap
	stats        *model.Stats
	achievements []model.Achievement
	chart        barchart.Model
	width        int
	height       int
}

// New creates a stats view model.
func New(c *api.Client, k *keys.KeyMap, width, height int) Model {
	return Model{
		client: c,
		keys:   k,
		chart:  barchart.New(60, 10),
		width:  width,
		height: height,
	}
}

// Start loads the stats and achievements.
func (m *Model) Start() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		stats, err := client.GetStats(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		list, err := client.GetAchievements(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Stats: stats, Achievements: list.Achievements}
	}
}

// Update handles messages for the stats view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			return m, func() tea.Msg { return ui.ErrorMsg{Err: msg.Err} }
		}
		m.stats = msg.Stats
		m.achievements = msg.Achievements
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	return m, nil
}

// buildChart renders the per-category breakdown as a bar chart.
func (m *Model) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	if m.stats == nil {
		return
	}

	var bars []barchart.BarData
	for _, row := range m.stats.CategoryBreakdown {
		style := theme.CategoryStyle(row.Category)
		bars = append(bars, barchart.BarData{
			Label: row.Category,
			Values: []barchart.BarValue{{
				Name:  row.Category,
				Value: float64(row.Count),
				Style: style,
			}},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

// View renders the stats view.
func (m Model) View() string {
	if m.stats == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("Loading stats...")
	}

	s := m.stats
	var sections []string

	sections = append(sections, theme.HeaderStyle.Render("Progress"), "")

	valStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", labelStyle.Render(label), valStyle.Render(value))
	}

	sections = append(sections,
		row("Total:      ", fmt.Sprintf("%d activities", s.TotalActivities)),
		// completion_rate arrives as a percentage, not a ratio.
		row("Completed:  ", fmt.Sprintf("%d (%.1f%%)", s.CompletedActivities, s.CompletionRate)),
		row("Pending:    ", fmt.Sprintf("%d", s.PendingActivities)),
		row("Streak:     ", fmt.Sprintf("%d days (best %d)", s.CurrentStreak, s.LongestStreak)),
	)

	if s.GoalReached {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.ColorGreen).
				Render("★ Daily goal reached"))
	}

	if len(s.CategoryBreakdown) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render("By category"),
			m.chart.View())
	}

	if len(m.achievements) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render(
				fmt.Sprintf("Achievements (%d)", len(m.achievements))))
		for _, a := range m.achievements {
			sections = append(sections, fmt.Sprintf(
				"  %s %s",
				lipgloss.NewStyle().Foreground(theme.ColorYellow).Render("★ "+a.Title),
				labelStyle.Render(a.Description),
			))
		}
	}

	sections = append(sections, "", theme.HelpStyle.Render("esc: back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.buildChart()
}
