package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pvu/accountable/internal/theme"
)

// Layout holds the terminal dimensions shared by all views. The frame
// is a single-line header, the content area, and a single-line status
// bar; both bars carry a left and a right segment.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// bar renders one full-width line in the given style: left segment,
// background filler, right segment.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	leftRendered := style.Render(left)
	rightRendered := style.Align(lipgloss.Right).Render(right)

	gap := l.Width -
		lipgloss.Width(leftRendered) -
		lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := style.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(style.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftRendered,
		filler,
		rightRendered,
	)
}

// RenderHeader renders the top bar: app title and unread count on the
// left, notification gate state on the right.
func (l Layout) RenderHeader(title string, gateState string) string {
	return l.bar(theme.HeaderStyle, title, gateState)
}

// RenderStatusBar renders the bottom bar: key hints or a pending error
// on the left, the active view label on the right.
func (l Layout) RenderStatusBar(line string, viewLabel string) string {
	return l.bar(theme.StatusBarStyle, line, viewLabel)
}

// RenderWithFrame composes the full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
