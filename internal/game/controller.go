package game

import (
	"fmt"
	"math"
)

// Outcome is the progress of a single game.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Point is a position in presentation units (pixels, terminal columns, ...).
type Point struct {
	X float64
	Y float64
}

// Controller applies player actions to the board it owns. It is not safe for
// concurrent use; a session has exactly one mutator.
type Controller struct {
	board    *Board
	outcome  Outcome
	selected Coord
	hasSel   bool
	pointer  Point
}

// NewController wraps b for a fresh game.
func NewController(b *Board) *Controller {
	return &Controller{board: b}
}

func (c *Controller) Board() *Board { return c.board }

func (c *Controller) Outcome() Outcome { return c.outcome }

// Reveal uncovers the cell at (x, y). Revealing a mine explodes it and loses
// the game; revealing a blank with no adjacent mines cascades across the
// connected blank region and its numbered border.
func (c *Controller) Reveal(x, y int) (Outcome, error) {
	cell, err := c.board.CellAt(x, y)
	if err != nil {
		return c.outcome, fmt.Errorf("reveal: %w", err)
	}
	if c.outcome != Playing {
		return c.outcome, nil
	}
	switch cell.Kind() {
	case KindHiddenMine:
		c.set(x, y, Exploded)
		c.outcome = Lost
		return c.outcome, nil
	case KindHiddenBlank:
		c.flood(Coord{X: x, Y: y})
	case KindRevealedBlank, KindRevealedNumber, KindExploded, KindFlaggedMine, KindFlaggedBlank:
		return c.outcome, nil
	}
	if c.cleared() {
		c.outcome = Won
	}
	return c.outcome, nil
}

// flood reveals start and, while it finds zero-adjacency cells, every hidden
// blank around them. A cell is pushed only while it is HiddenBlank and is
// revealed as soon as it is pushed, so each cell is visited at most once.
func (c *Controller) flood(start Coord) {
	stack := []Coord{start}
	c.uncover(start)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.at(cur).Kind() != KindRevealedBlank {
			continue
		}
		for _, n := range c.board.Neighbors(cur.X, cur.Y) {
			if c.at(n).Kind() != KindHiddenBlank {
				continue
			}
			c.uncover(n)
			stack = append(stack, n)
		}
	}
}

func (c *Controller) uncover(pos Coord) {
	adjacent, _ := c.board.CountAdjacentMines(pos.X, pos.Y)
	c.set(pos.X, pos.Y, revealed(adjacent))
}

func (c *Controller) at(pos Coord) Cell {
	return c.board.cells[c.board.index(pos.X, pos.Y)]
}

func (c *Controller) set(x, y int, cell Cell) {
	c.board.cells[c.board.index(x, y)] = cell
}

// cleared reports whether every non-mine cell has been revealed.
func (c *Controller) cleared() bool {
	for _, cell := range c.board.cells {
		if cell.Kind() == KindHiddenBlank || cell.Kind() == KindFlaggedBlank {
			return false
		}
	}
	return true
}

// ToggleFlag flags a hidden cell or unflags a flagged one.
func (c *Controller) ToggleFlag(x, y int) error {
	cell, err := c.board.CellAt(x, y)
	if err != nil {
		return fmt.Errorf("toggle flag: %w", err)
	}
	if c.outcome != Playing {
		return nil
	}
	switch cell.Kind() {
	case KindHiddenMine:
		c.set(x, y, FlaggedMine)
	case KindFlaggedMine:
		c.set(x, y, HiddenMine)
	case KindHiddenBlank:
		c.set(x, y, FlaggedBlank)
	case KindFlaggedBlank:
		c.set(x, y, HiddenBlank)
	case KindRevealedBlank, KindRevealedNumber, KindExploded:
	}
	return nil
}

// FlagCount returns the number of flagged cells.
func (c *Controller) FlagCount() int {
	return c.board.CountKind(KindFlaggedMine) + c.board.CountKind(KindFlaggedBlank)
}

// RemainingMines is the mine count minus placed flags; it goes negative when
// the player over-flags.
func (c *Controller) RemainingMines() int {
	return c.board.MineCount() - c.FlagCount()
}

// Select marks (x, y) as the highlighted cell.
func (c *Controller) Select(x, y int) error {
	if !c.board.InBounds(x, y) {
		return fmt.Errorf("select (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	c.selected = Coord{X: x, Y: y}
	c.hasSel = true
	return nil
}

func (c *Controller) Selected() (Coord, bool) {
	return c.selected, c.hasSel
}

func (c *Controller) ClearSelection() {
	c.hasSel = false
	c.selected = Coord{}
}

// MoveSelection shifts the selection, clamping at the edges. With nothing
// selected it selects the top-left cell.
func (c *Controller) MoveSelection(dx, dy int) Coord {
	if !c.hasSel {
		c.selected = Coord{}
		c.hasSel = true
		return c.selected
	}
	last := c.board.size - 1
	c.selected.X = min(max(c.selected.X+dx, 0), last)
	c.selected.Y = min(max(c.selected.Y+dy, 0), last)
	return c.selected
}

// SetPointer records the last known pointer position.
func (c *Controller) SetPointer(px, py float64) {
	c.pointer = Point{X: px, Y: py}
}

func (c *Controller) Pointer() Point { return c.pointer }

// Locate maps the last pointer position onto a cell, given where the board is
// drawn and how large one cell is. It returns false outside the board.
func (c *Controller) Locate(origin, cell Point) (Coord, bool) {
	if cell.X <= 0 || cell.Y <= 0 {
		return Coord{}, false
	}
	rx := c.pointer.X - origin.X
	ry := c.pointer.Y - origin.Y
	width := cell.X * float64(c.board.size)
	height := cell.Y * float64(c.board.size)
	if rx < 0 || ry < 0 || rx >= width || ry >= height {
		return Coord{}, false
	}
	pos := Coord{X: int(math.Floor(rx / cell.X)), Y: int(math.Floor(ry / cell.Y))}
	if !c.board.InBounds(pos.X, pos.Y) {
		return Coord{}, false
	}
	return pos, true
}
