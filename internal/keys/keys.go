package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding recognized by the application.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding

	Search  key.Binding
	Command key.Binding
	Refresh key.Binding

	New      key.Binding
	Edit     key.Binding
	Complete key.Binding
	Delete   key.Binding
	Snooze   key.Binding

	Notes       key.Binding
	Subtasks    key.Binding
	History     key.Binding
	Attachments key.Binding
	Templates   key.Binding
	Stats       key.Binding
	Calendar    key.Binding
	Inbox       key.Binding

	ToggleSelect  key.Binding
	SelectAll     key.Binding
	BatchComplete key.Binding
	BatchDelete   key.Binding
	BatchCategory key.Binding

	PrevPage key.Binding
	NextPage key.Binding

	CycleSort     key.Binding
	SortOrder     key.Binding
	CycleStatus   key.Binding
	CyclePriority key.Binding
	CycleCategory key.Binding

	ToggleNotify key.Binding
	ToggleTheme  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new activity"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snooze"),
		),
		Notes: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "notes"),
		),
		Subtasks: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "subtasks"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Attachments: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "attachments"),
		),
		Templates: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "templates"),
		),
		Stats: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "stats"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "calendar"),
		),
		Inbox: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "notifications"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		BatchComplete: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "complete selected"),
		),
		BatchDelete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete selected"),
		),
		BatchCategory: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "move selected"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sort field"),
		),
		SortOrder: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "sort order"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		CyclePriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority filter"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category filter"),
		),
		ToggleNotify: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute notifications"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.New, k.Complete, k.Search, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit, k.Help},
		{k.New, k.Edit, k.Complete, k.Delete, k.Snooze, k.Refresh},
		{k.Notes, k.Subtasks, k.History, k.Attachments, k.Templates},
		{k.Stats, k.Calendar, k.Inbox, k.Search, k.Command},
		{k.ToggleSelect, k.SelectAll, k.BatchComplete, k.BatchDelete, k.BatchCategory},
		{k.PrevPage, k.NextPage, k.CycleSort, k.SortOrder},
		{k.CycleStatus, k.CyclePriority, k.CycleCategory, k.ToggleNotify, k.ToggleTheme},
	}
}
