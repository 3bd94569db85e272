package app

import (
	"errors"
	"math/rand/v2"

	"github.com/atomicstack/sweeper/internal/session"
	"github.com/atomicstack/sweeper/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Size       int
	Mines      int
	Seed       uint64
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
}

// NewModel builds the session and UI model for cfg. A zero seed draws mine
// layouts from the clock; any other seed makes them reproducible.
func NewModel(cfg Config) *ui.Model {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	sess := session.New(session.RandomBoards(cfg.Size, cfg.Mines, rng))
	return ui.NewModel(sess, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Mouse:      cfg.Mouse,
	})
}

func programOptions(cfg Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), programOptions(cfg)...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
