package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	Pause      key.Binding
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	OrbitUp    key.Binding
	OrbitDown  key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ResetView  key.Binding
	CopyFocus  key.Binding
	OpenHelp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume rotation"),
	),
	OrbitLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "orbit left"),
	),
	OrbitRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "orbit right"),
	),
	OrbitUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "tilt up"),
	),
	OrbitDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "tilt down"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	ResetView: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset view"),
	),
	CopyFocus: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy focused group"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.Pause,
		k.OrbitLeft,
		k.OrbitRight,
		k.OrbitUp,
		k.OrbitDown,
		k.ZoomIn,
		k.ZoomOut,
		k.ResetView,
		k.CopyFocus,
		k.OpenHelp,
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap for the footer.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.Pause, k.CopyFocus, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Legend()}
}
