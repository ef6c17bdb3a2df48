package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer key bindings.
type KeyMap struct {
	Regenerate key.Binding
	Save       key.Binding
	Shapes     key.Binding
	Up         key.Binding
	Down       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Save, k.Shapes, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Save},
		{k.Shapes, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default viewer bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "regenerate"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save png"),
		),
		Shapes: key.NewBinding(
			key.WithKeys("tab", "i"),
			key.WithHelp("tab", "shapes"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
