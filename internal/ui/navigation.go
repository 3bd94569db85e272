package ui

import (
	"github.com/atomicstack/sweeper/internal/game"
	"github.com/atomicstack/sweeper/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	boardOrigin = game.Point{X: boardLeft, Y: boardTop}
	cellSize    = game.Point{X: cellWidth, Y: cellHeight}
)

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys.Board
	c := m.controller()
	switch {
	case key.Matches(msg, keys.Close):
		return m.dispatch(session.CloseRequested{})
	case key.Matches(msg, keys.Back):
		return m.dispatch(session.Escape{})
	case key.Matches(msg, keys.NewGame):
		return m.dispatch(session.NewGame{})
	case c == nil:
		return nil
	case key.Matches(msg, keys.Up):
		c.MoveSelection(0, -1)
	case key.Matches(msg, keys.Down):
		c.MoveSelection(0, 1)
	case key.Matches(msg, keys.Left):
		c.MoveSelection(-1, 0)
	case key.Matches(msg, keys.Right):
		c.MoveSelection(1, 0)
	case key.Matches(msg, keys.Reveal):
		if pos, ok := m.selection(); ok {
			return m.dispatch(session.RevealCell{X: pos.X, Y: pos.Y})
		}
	case key.Matches(msg, keys.Flag):
		if pos, ok := m.selection(); ok {
			return m.dispatch(session.FlagCell{X: pos.X, Y: pos.Y})
		}
	}
	return nil
}

func (m *Model) selection() (game.Coord, bool) {
	c := m.controller()
	if c == nil {
		return game.Coord{}, false
	}
	pos, ok := c.Selected()
	if !ok {
		m.setInfo("No cell selected")
	}
	return pos, ok
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouse {
		return nil
	}
	switch m.session.State() {
	case session.StateMainMenu:
		return m.handleMenuMouse(ev)
	case session.StateBoard:
		return m.handleBoardMouse(ev)
	}
	return nil
}

func (m *Model) handleMenuMouse(ev tea.MouseMsg) tea.Cmd {
	row := ev.Y - menuTop
	if row < 0 || row >= len(m.menu.Items) {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		m.menu.SetCursor(row)
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		m.menu.SetCursor(row)
		return m.activateCurrent()
	}
	return nil
}

// handleBoardMouse maps the pointer onto a cell: motion moves the selection,
// a left press reveals and a right press flags.
func (m *Model) handleBoardMouse(ev tea.MouseMsg) tea.Cmd {
	c := m.controller()
	if c == nil {
		return nil
	}
	c.SetPointer(float64(ev.X), float64(ev.Y))
	pos, over := c.Locate(boardOrigin, cellSize)
	switch ev.Action {
	case tea.MouseActionMotion:
		if over {
			_ = c.Select(pos.X, pos.Y)
		} else {
			c.ClearSelection()
		}
	case tea.MouseActionPress:
		if !over {
			return nil
		}
		_ = c.Select(pos.X, pos.Y)
		switch ev.Button {
		case tea.MouseButtonLeft:
			return m.dispatch(session.RevealCell{X: pos.X, Y: pos.Y})
		case tea.MouseButtonRight:
			return m.dispatch(session.FlagCell{X: pos.X, Y: pos.Y})
		}
	}
	return nil
}
