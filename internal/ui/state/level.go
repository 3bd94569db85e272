package state

import "github.com/atomicstack/sweeper/internal/menu"

// Level encapsulates menu state: the visible (filtered) buttons, the filter
// query and the cursor.
type Level struct {
	ID         string
	Title      string
	Items      []menu.Item
	Full       []menu.Item
	Filter     string
	Cursor     int
	LastCursor int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the full item list and reapplies the filter.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the visible position of the item with the given ID.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
