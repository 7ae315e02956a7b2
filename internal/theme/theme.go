package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Apply selects which side of the adaptive pairs renders, honoring the
// persisted theme preference instead of background autodetection.
func Apply(pref string) {
	lipgloss.SetHasDarkBackground(pref == "dark")
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ErrorStyle highlights error text in the status bar and modals.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// PanelStyle wraps modal and detail content areas.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DimmedStyle de-emphasizes completed items.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// DeadlineStyle is used for deadline timestamps in list rows.
var DeadlineStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// OverdueStyle flags activities whose deadline has passed.
var OverdueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// StatusStyle returns a color-coded style for an activity status.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case "pending":
		return base.Foreground(ColorBlue)
	case "completed":
		return base.Foreground(ColorGreen)
	case "missed":
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for an activity priority.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case "high":
		return base.Foreground(ColorRed)
	case "medium":
		return base.Foreground(ColorYellow)
	case "low":
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// CategoryStyle returns a color-coded style for an activity category.
func CategoryStyle(category string) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch category {
	case "work":
		return base.Foreground(ColorBlue)
	case "personal":
		return base.Foreground(ColorMagenta)
	case "health":
		return base.Foreground(ColorGreen)
	case "finance":
		return base.Foreground(ColorYellow)
	case "education":
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}
