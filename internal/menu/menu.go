package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Choice is what activating a main menu button asks the session to do.
type Choice int

const (
	ChoiceStart Choice = iota
	ChoiceQuit
)

func (c Choice) String() string {
	switch c {
	case ChoiceStart:
		return "start"
	case ChoiceQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrUnknownButton is returned when an index names no button.
var ErrUnknownButton = errors.New("unknown menu button")

// Item represents a selectable main menu button. Index is the stable value the
// presentation layer reports back when the button is activated.
type Item struct {
	Index  int
	ID     string
	Label  string
	Choice Choice
}

const defaultTitle = "Minesweeper"

// MainMenu holds the static main menu buttons.
type MainMenu struct {
	title string
	items []Item
}

// NewMainMenu returns the main menu with its buttons in display order.
func NewMainMenu() *MainMenu {
	return &MainMenu{
		title: defaultTitle,
		items: []Item{
			{Index: 0, ID: "start", Label: "New game", Choice: ChoiceStart},
			{Index: 1, ID: "quit", Label: "Quit", Choice: ChoiceQuit},
		},
	}
}

func (m *MainMenu) Title() string { return m.title }

// Items returns a copy of the buttons in display order.
func (m *MainMenu) Items() []Item {
	dup := make([]Item, len(m.items))
	copy(dup, m.items)
	return dup
}

// Find locates a button by ID, ignoring case and surrounding space.
func (m *MainMenu) Find(id string) (Item, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Activate resolves the button at index into its choice.
func (m *MainMenu) Activate(index int) (Choice, error) {
	for _, item := range m.items {
		if item.Index == index {
			return item.Choice, nil
		}
	}
	return 0, fmt.Errorf("button %d: %w", index, ErrUnknownButton)
}
