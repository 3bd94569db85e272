package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/sweeper/internal/game"
	"github.com/atomicstack/sweeper/internal/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const filterPlaceholder = "type to filter"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	var lines []styledLine
	switch m.session.State() {
	case session.StateMainMenu:
		lines = m.menuLines()
	case session.StateBoard:
		lines = m.boardLines()
	default:
		return ""
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if footer := m.footerView(); footer != "" {
		lines = append(lines, styledLine{}, styledLine{text: footer, raw: true})
	}
	lines = limitHeight(lines, m.height)
	return renderLines(lines, m.width)
}

func (m *Model) menuLines() []styledLine {
	lines := make([]styledLine, 0, menuTop+len(m.menu.Items))
	lines = append(lines, styledLine{text: m.menu.Title, style: styles.Header})
	lines = append(lines, m.filterLine())
	if len(m.menu.Items) == 0 {
		return append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.menu.Filter), style: styles.Info})
	}
	for i, item := range m.menu.Items {
		if i == m.menu.Cursor {
			text := styles.SelectedItemIndicator.Render("▌ ") + styles.SelectedItem.Render(item.Label)
			lines = append(lines, styledLine{text: text, raw: true})
			continue
		}
		text := styles.ItemIndicator.Render("  ") + styles.Item.Render(item.Label)
		lines = append(lines, styledLine{text: text, raw: true})
	}
	return lines
}

func (m *Model) filterLine() styledLine {
	prompt := styles.FilterPrompt.Render("» ")
	if m.menu.Filter == "" {
		return styledLine{text: prompt + styles.FilterPlaceholder.Render(filterPlaceholder), raw: true}
	}
	return styledLine{text: prompt + styles.Filter.Render(m.menu.Filter), raw: true}
}

func (m *Model) boardLines() []styledLine {
	c := m.session.Controller()
	if c == nil {
		return []styledLine{{text: "No game in progress", style: styles.Info}}
	}
	b := c.Board()
	header := fmt.Sprintf("Minesweeper %dx%d, %d mines", b.Size(), b.Size(), b.MineCount())
	lines := make([]styledLine, 0, boardTop+b.Size())
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, statusLine(c))
	selected, hasSel := c.Selected()
	var row strings.Builder
	for y := 0; y < b.Size(); y++ {
		row.Reset()
		for x := 0; x < b.Size(); x++ {
			cell, _ := b.CellAt(x, y)
			glyph, style := cellGlyph(cell, c.Outcome())
			if hasSel && selected.X == x && selected.Y == y {
				style = styles.CellSelected
			}
			row.WriteString(style.Render(glyph))
		}
		lines = append(lines, styledLine{text: row.String(), raw: true})
	}
	return lines
}

func statusLine(c *game.Controller) styledLine {
	switch c.Outcome() {
	case game.Lost:
		return styledLine{text: "Boom! You hit a mine. Press n for a new game.", style: styles.Error}
	case game.Won:
		return styledLine{text: "Cleared! Press n for a new game.", style: styles.Success}
	default:
		return styledLine{text: fmt.Sprintf("Mines left: %d", c.RemainingMines()), style: styles.Info}
	}
}

// cellGlyph picks the three-column glyph for a cell. Finished games expose
// the mine layout.
func cellGlyph(cell game.Cell, outcome game.Outcome) (string, *lipgloss.Style) {
	switch cell.Kind() {
	case game.KindHiddenMine:
		switch outcome {
		case game.Lost:
			return " * ", styles.CellMine
		case game.Won:
			return " F ", styles.CellFlagged
		}
		return " # ", styles.CellHidden
	case game.KindFlaggedBlank:
		if outcome == game.Lost {
			return " x ", styles.CellWrong
		}
		return " F ", styles.CellFlagged
	case game.KindFlaggedMine:
		return " F ", styles.CellFlagged
	case game.KindRevealedBlank:
		return "   ", styles.CellRevealed
	case game.KindRevealedNumber:
		return fmt.Sprintf(" %d ", cell.Count()), styles.Number(cell.Count())
	case game.KindExploded:
		return " * ", styles.CellExploded
	default:
		return " # ", styles.CellHidden
	}
}

func (m *Model) footerView() string {
	if !m.showFooter {
		return ""
	}
	var view string
	switch m.session.State() {
	case session.StateMainMenu:
		view = m.help.View(m.keys.Menu)
	case session.StateBoard:
		view = m.help.View(m.keys.Board)
	}
	if view == "" {
		return ""
	}
	return styles.Footer.Render(view)
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: "…"}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: "…"})
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = fitWidth(text, width)
	}
	return strings.Join(out, "\n")
}

func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
