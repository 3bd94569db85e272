package ui

import (
	"unicode"

	"github.com/atomicstack/sweeper/internal/logging/events"
	"github.com/atomicstack/sweeper/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.session.State() {
	case session.StateMainMenu:
		return m.handleMenuKey(keyMsg)
	case session.StateBoard:
		return m.handleBoardKey(keyMsg)
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys.Menu
	switch {
	case key.Matches(msg, keys.Close):
		return m.dispatch(session.CloseRequested{})
	case key.Matches(msg, keys.Back):
		return m.dispatch(session.Escape{})
	case key.Matches(msg, keys.Up):
		if m.menu.MoveCursorUp() {
			events.Menu.Cursor(m.menu.Cursor)
		}
		return nil
	case key.Matches(msg, keys.Down):
		if m.menu.MoveCursorDown() {
			events.Menu.Cursor(m.menu.Cursor)
		}
		return nil
	case key.Matches(msg, keys.Home):
		if m.menu.MoveCursorHome() {
			events.Menu.Cursor(m.menu.Cursor)
		}
		return nil
	case key.Matches(msg, keys.End):
		if m.menu.MoveCursorEnd() {
			events.Menu.Cursor(m.menu.Cursor)
		}
		return nil
	case key.Matches(msg, keys.Activate):
		return m.activateCurrent()
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) activateCurrent() tea.Cmd {
	item, ok := m.menu.Current()
	if !ok {
		m.setInfo("Nothing matches the filter")
		return nil
	}
	events.Menu.Activate(item.Index, item.ID, item.Label)
	cmd := m.dispatch(session.ButtonActivated{Index: item.Index})
	if m.session.State() == session.StateBoard {
		m.menu.ClearFilter()
	}
	return cmd
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	keys := m.keys.Menu
	switch {
	case key.Matches(msg, keys.ClearFilter):
		if !m.menu.ClearFilter() {
			return false
		}
		m.errMsg = ""
		events.Filter.Cleared()
		return true
	case key.Matches(msg, keys.Backspace):
		if !m.menu.DeleteFilterRuneBackward() {
			return false
		}
		m.errMsg = ""
		events.Filter.Backspace(m.menu.Filter)
		return true
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.menu.AppendFilter(text) {
		return false
	}
	m.errMsg = ""
	m.forceClearInfo()
	events.Filter.Append(m.menu.Filter)
	return true
}
