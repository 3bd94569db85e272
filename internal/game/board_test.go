package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestNewPlacesExactlyDistinctMines(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		mines int
	}{
		{name: "default", size: DefaultSize, mines: DefaultMines},
		{name: "no mines", size: 4, mines: 0},
		{name: "dense", size: 5, mines: 24},
		{name: "single cell", size: 1, mines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 20; seed++ {
				b, err := New(tt.size, tt.mines, seeded(seed))
				require.NoError(t, err)
				assert.Equal(t, tt.size, b.Size())
				assert.Equal(t, tt.mines, b.MineCount())
				assert.Equal(t, tt.mines, b.CountMines())
				assert.Equal(t, tt.mines, b.CountKind(KindHiddenMine))
				assert.Equal(t, tt.size*tt.size-tt.mines, b.CountKind(KindHiddenBlank))
			}
		})
	}
}

func TestNewNilSourceStillPlacesMines(t *testing.T) {
	b, err := New(DefaultSize, DefaultMines, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMines, b.CountMines())
}

func TestNewRejectsImpossiblePlacement(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		mines int
	}{
		{name: "zero size", size: 0, mines: 0},
		{name: "negative mines", size: 3, mines: -1},
		{name: "board full of mines", size: 3, mines: 9},
		{name: "more mines than cells", size: 3, mines: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.size, tt.mines, seeded(1))
			assert.ErrorIs(t, err, ErrInvalidMinePlacement)
		})
	}
}

func TestNewWithMinesRejectsDuplicatesAndOutOfRange(t *testing.T) {
	_, err := NewWithMines(3, []Coord{{X: 1, Y: 1}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrInvalidMinePlacement)

	_, err = NewWithMines(3, []Coord{{X: 3, Y: 0}})
	assert.ErrorIs(t, err, ErrInvalidMinePlacement)

	b, err := NewWithMines(3, []Coord{{X: 2, Y: 0}})
	require.NoError(t, err)
	cell, err := b.CellAt(2, 0)
	require.NoError(t, err)
	assert.Equal(t, HiddenMine, cell)
}

func TestNeighborsClippedAtEdges(t *testing.T) {
	b, err := NewWithMines(10, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []Coord{{1, 0}, {0, 1}, {1, 1}}, b.Neighbors(0, 0))
	assert.ElementsMatch(t, []Coord{{8, 9}, {9, 8}, {8, 8}}, b.Neighbors(9, 9))
	assert.Len(t, b.Neighbors(5, 0), 5)
	assert.ElementsMatch(t, []Coord{
		{4, 4}, {5, 4}, {6, 4},
		{4, 5}, {6, 5},
		{4, 6}, {5, 6}, {6, 6},
	}, b.Neighbors(5, 5))
}

func TestCountAdjacentMines(t *testing.T) {
	// Mines on every cell around (0,0) and (5,5), plus the cells themselves,
	// to prove the centre is never counted.
	mines := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {9, 9}}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			mines = append(mines, Coord{x, y})
		}
	}
	b, err := NewWithMines(10, mines)
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{5, 5, 8},
		{2, 2, 1},
		{9, 0, 0},
		{8, 8, 1},
		{3, 5, 3},
	}
	for _, tt := range tests {
		got, err := b.CountAdjacentMines(tt.x, tt.y)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "adjacent mines at (%d,%d)", tt.x, tt.y)
	}
}

func TestCountAdjacentMinesCountsEveryMineRepresentation(t *testing.T) {
	b, err := NewWithMines(3, []Coord{{0, 0}, {1, 0}, {2, 0}})
	require.NoError(t, err)
	require.NoError(t, b.SetCell(0, 0, FlaggedMine))
	require.NoError(t, b.SetCell(1, 0, Exploded))

	got, err := b.CountAdjacentMines(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestAccessorsRejectOutOfBounds(t *testing.T) {
	b, err := NewWithMines(10, nil)
	require.NoError(t, err)

	for _, c := range []Coord{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}} {
		_, err := b.CellAt(c.X, c.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, b.SetCell(c.X, c.Y, HiddenMine), ErrOutOfBounds)
		_, err = b.CountAdjacentMines(c.X, c.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, 0, b.CountMines())
}

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		cell                              Cell
		mine, hidden, flagged, revealedOK bool
	}{
		{HiddenBlank, false, true, false, false},
		{HiddenMine, true, true, false, false},
		{RevealedBlank, false, false, false, true},
		{Number(3), false, false, false, true},
		{Exploded, true, false, false, false},
		{FlaggedMine, true, false, true, false},
		{FlaggedBlank, false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			assert.Equal(t, tt.mine, tt.cell.IsMine())
			assert.Equal(t, tt.hidden, tt.cell.IsHidden())
			assert.Equal(t, tt.flagged, tt.cell.IsFlagged())
			assert.Equal(t, tt.revealedOK, tt.cell.IsRevealed())
		})
	}
	assert.Equal(t, 3, Number(3).Count())
	assert.Equal(t, 0, RevealedBlank.Count())
	assert.Panics(t, func() { Number(0) })
	assert.Panics(t, func() { Number(9) })
}
