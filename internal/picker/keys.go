package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// quickSlots is how many rows get an Alt+N shortcut.
const quickSlots = 9

// KeyMap defines the picker's key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Launch key.Binding
	Quit   key.Binding
	// Quick[i] launches row i directly.
	Quick []key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab", "ctrl+n"),
			key.WithHelp("↓/tab", "down"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
	for i := 1; i <= quickSlots; i++ {
		km.Quick = append(km.Quick, key.NewBinding(
			key.WithKeys(fmt.Sprintf("alt+%d", i)),
			key.WithHelp(fmt.Sprintf("Alt+%d", i), fmt.Sprintf("launch #%d", i)),
		))
	}
	return km
}
