package stopwatch

import "github.com/charmbracelet/bubbles/key"

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Start, k.Pause, k.Lap, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Start, k.Pause},
		{k.Lap, k.Reset},
		{k.Up, k.Down, k.Quit},
	}
}

type keyMap struct {
	Toggle key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Lap    key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll laps"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll laps"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// sync enables only the bindings that do something in the current state.
func (k *keyMap) sync(running bool, laps int) {
	k.Start.SetEnabled(!running)
	k.Pause.SetEnabled(running)
	k.Lap.SetEnabled(running)
	if running {
		k.Toggle.SetHelp("space", "pause")
	} else {
		k.Toggle.SetHelp("space", "start")
	}
	k.Up.SetEnabled(laps > 0)
	k.Down.SetEnabled(laps > 0)
}
