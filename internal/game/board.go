package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultSize  = 10
	DefaultMines = 12
)

// Coord addresses a cell; X is the column and Y the row.
type Coord struct {
	X int
	Y int
}

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	mines int
	cells []Cell
}

// New creates a size×size board holding exactly mines distinct mines. A
// coordinate that is drawn twice is discarded and redrawn. A nil rng falls
// back to a time-seeded source.
func New(size, mines int, rng *rand.Rand) (*Board, error) {
	if err := checkDimensions(size, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	b := newEmpty(size)
	for placed := 0; placed < mines; {
		idx := rng.IntN(len(b.cells))
		if b.cells[idx].IsMine() {
			continue
		}
		b.cells[idx] = HiddenMine
		placed++
	}
	b.mines = mines
	return b, nil
}

// NewWithMines creates a board with mines at exactly the given coordinates.
func NewWithMines(size int, mines []Coord) (*Board, error) {
	if err := checkDimensions(size, len(mines)); err != nil {
		return nil, err
	}
	b := newEmpty(size)
	for _, c := range mines {
		if !b.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("mine at (%d,%d) on %dx%d board: %w", c.X, c.Y, size, size, ErrInvalidMinePlacement)
		}
		idx := b.index(c.X, c.Y)
		if b.cells[idx].IsMine() {
			return nil, fmt.Errorf("duplicate mine at (%d,%d): %w", c.X, c.Y, ErrInvalidMinePlacement)
		}
		b.cells[idx] = HiddenMine
	}
	b.mines = len(mines)
	return b, nil
}

func checkDimensions(size, mines int) error {
	if size < 1 {
		return fmt.Errorf("board size %d: %w", size, ErrInvalidMinePlacement)
	}
	if mines < 0 || mines >= size*size {
		return fmt.Errorf("%d mines on %dx%d board: %w", mines, size, size, ErrInvalidMinePlacement)
	}
	return nil
}

func newEmpty(size int) *Board {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = HiddenBlank
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int { return b.size }

// MineCount returns the number of mines the board was created with.
func (b *Board) MineCount() int { return b.mines }

// InBounds reports whether (x, y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b *Board) index(x, y int) int {
	return y*b.size + x
}

func (b *Board) check(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("(%d,%d) on %dx%d board: %w", x, y, b.size, b.size, ErrOutOfBounds)
	}
	return nil
}

// CellAt returns the cell at (x, y).
func (b *Board) CellAt(x, y int) (Cell, error) {
	if err := b.check(x, y); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(x, y)], nil
}

// SetCell overwrites the cell at (x, y). Game rules live in Controller.
func (b *Board) SetCell(x, y int, c Cell) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = c
	return nil
}

// Neighbors returns the in-bounds Moore neighbourhood of (x, y), without
// wrapping at the edges.
func (b *Board) Neighbors(x, y int) []Coord {
	out := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				out = append(out, Coord{X: nx, Y: ny})
			}
		}
	}
	return out
}

// CountAdjacentMines counts mine-bearing cells around (x, y).
func (b *Board) CountAdjacentMines(x, y int) (int, error) {
	if err := b.check(x, y); err != nil {
		return 0, err
	}
	count := 0
	for _, n := range b.Neighbors(x, y) {
		if b.cells[b.index(n.X, n.Y)].IsMine() {
			count++
		}
	}
	return count, nil
}

// CountMines returns how many cells currently carry a mine.
func (b *Board) CountMines() int {
	count := 0
	for _, c := range b.cells {
		if c.IsMine() {
			count++
		}
	}
	return count
}

// CountKind returns how many cells currently hold the given variant.
func (b *Board) CountKind(k Kind) int {
	count := 0
	for _, c := range b.cells {
		if c.kind == k {
			count++
		}
	}
	return count
}
