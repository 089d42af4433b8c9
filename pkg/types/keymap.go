package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for both input modes.
// It lives in pkg/types so the model and the views share one definition.
type KeyMap struct {
	// Normal mode
	Edit       key.Binding
	Quit       key.Binding
	ToggleHelp key.Binding
	Up         key.Binding
	Down       key.Binding

	// Editing mode
	Backspace key.Binding
	Commit    key.Binding
	Exit      key.Binding
}

// DefaultKeyMap returns the bindings the application ships with.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "to type"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "to quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "to list commands"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "to delete"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "to record the message"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "to stop editing"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line for mode.
func (k *KeyMap) ShortHelp(mode InputMode) []key.Binding {
	if mode == Editing {
		return []key.Binding{k.Exit, k.Commit}
	}
	return []key.Binding{k.Edit, k.ToggleHelp, k.Up, k.Down, k.Quit}
}
