package ui

import "github.com/charmbracelet/bubbles/key"

type menuKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	Activate    key.Binding
	ClearFilter key.Binding
	Backspace   key.Binding
	Back        key.Binding
	Close       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.ClearFilter, k.Back}
}

// FullHelp implements help.KeyMap.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Activate, k.ClearFilter, k.Backspace},
		{k.Back, k.Close},
	}
}

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	NewGame key.Binding
	Back    key.Binding
	Close   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Reveal, k.Flag, k.NewGame, k.Back}
}

// FullHelp implements help.KeyMap.
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.NewGame},
		{k.Back, k.Close},
	}
}

type keyMap struct {
	Menu  menuKeyMap
	Board boardKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Menu: menuKeyMap{
			Up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
			Down:        key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
			Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
			End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
			Activate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			ClearFilter: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear filter")),
			Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
			Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
			Close:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		},
		Board: boardKeyMap{
			Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("←↑↓→/hjkl", "move")),
			Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
			Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
			Reveal:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "reveal")),
			Flag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
			NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
			Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
			Close:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		},
	}
}
