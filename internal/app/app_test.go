package app

import (
	"testing"

	"github.com/atomicstack/sweeper/internal/game"
	"github.com/atomicstack/sweeper/internal/session"
	"github.com/atomicstack/sweeper/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func startedBoard(t *testing.T, cfg Config) *game.Board {
	t.Helper()
	h := ui.NewHarness(NewModel(cfg))
	h.Key(tea.KeyEnter)
	sess := h.Model().Session()
	if sess.State() != session.StateBoard {
		t.Fatalf("expected a game after start, got %s", sess.State())
	}
	return sess.Controller().Board()
}

func mineLayout(b *game.Board) []game.Coord {
	var mines []game.Coord
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if cell, _ := b.CellAt(x, y); cell.IsMine() {
				mines = append(mines, game.Coord{X: x, Y: y})
			}
		}
	}
	return mines
}

func TestSeedReproducesLayout(t *testing.T) {
	cfg := Config{Size: 8, Mines: 10, Seed: 42}
	first := mineLayout(startedBoard(t, cfg))
	second := mineLayout(startedBoard(t, cfg))
	if len(first) != 10 {
		t.Fatalf("expected 10 mines, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical layouts for the same seed, got %v and %v", first, second)
		}
	}
}

func TestConfigSizesBoard(t *testing.T) {
	b := startedBoard(t, Config{Size: 4, Mines: 3})
	if b.Size() != 4 || b.CountMines() != 3 {
		t.Fatalf("expected 4x4 with 3 mines, got %dx%d with %d", b.Size(), b.Size(), b.CountMines())
	}
}

func TestProgramOptionsFollowMouseSetting(t *testing.T) {
	if got := len(programOptions(Config{})); got != 1 {
		t.Fatalf("expected alt screen only, got %d options", got)
	}
	if got := len(programOptions(Config{Mouse: true})); got != 2 {
		t.Fatalf("expected alt screen and mouse, got %d options", got)
	}
}
