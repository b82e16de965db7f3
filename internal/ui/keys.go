package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. The date field
// always has focus, so commands live on control and function keys.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Activity   key.Binding
	CycleTheme key.Binding

	// Query triggers
	Search key.Binding
	Today  key.Binding

	// Content scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Dialogs
	Dismiss key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Toggle help"),
		),
		Activity: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "Activity log"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "Cycle theme"),
		),

		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search typed date"),
		),
		Today: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Today's image"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),

		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter/esc", "Close dialog"),
		),
	}
}

// ShortHelp returns key bindings for the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Today, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, grouped by section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Today},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Help, k.Activity, k.CycleTheme, k.Quit},
	}
}
