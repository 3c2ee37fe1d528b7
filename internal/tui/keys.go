package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap привязки клавиш
// Буквенные действия (export, chart и т.д.) активны только на экранах
// без текстового ввода, иначе они перехватывали бы набор имени.
type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Prev      key.Binding
	Next      key.Binding
	Submit    key.Binding
	Back      key.Binding

	Export  key.Binding
	Chart   key.Binding
	Print   key.Binding
	NewBook key.Binding
	Quit    key.Binding

	ForceQuit key.Binding
}

var keys = keyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev option"),
	),
	Next: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next option"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	Chart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "charts"),
	),
	Print: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "print ticket"),
	),
	NewBook: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new booking"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
