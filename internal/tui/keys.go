package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Enter     key.Binding
	Back      key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	Clear     key.Binding
	Book      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
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
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "section"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "back"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "prev month"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "backspace"),
			key.WithHelp("c", "clear"),
		),
		Book: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "book"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TextKeyMap returns the keybindings active while a text field has focus.
// Letter keys belong to the field, so only non-printing keys stay bound.
func TextKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
	km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	km.Left.SetEnabled(false)
	km.Right.SetEnabled(false)
	km.NextMonth.SetEnabled(false)
	km.PrevMonth.SetEnabled(false)
	km.Clear.SetEnabled(false)
	km.Book.SetEnabled(false)
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return km
}
