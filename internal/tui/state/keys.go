package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Jump     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Command  key.Binding
	Logout   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
		Command:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Logout:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "log out")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Jump, k.Command, k.Logout, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Jump},
		{k.Next, k.Prev, k.PageUp, k.PageDown},
		{k.Command, k.Logout, k.Help, k.Quit},
	}
}

type promptKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
}

func defaultPromptKeyMap() promptKeyMap {
	return promptKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc")),
		Toggle: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l")),
		Submit: key.NewBinding(key.WithKeys("enter")),
	}
}
