// Package session holds the application state machine. A Session owns the main
// menu and the active board controller, and Dispatch routes each action to the
// component selected by the current state.
//
// Transitions:
//   - MainMenu: the start button begins a fresh game and moves to Board; the
//     quit button and Escape move to Exiting.
//   - Board: Escape returns to MainMenu; reveal, flag and new-game actions stay
//     on Board.
//   - CloseRequested moves any state to Exiting, and nothing leaves Exiting.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/atomicstack/sweeper/internal/game"
	"github.com/atomicstack/sweeper/internal/logging/events"
	"github.com/atomicstack/sweeper/internal/menu"
	"github.com/google/uuid"
)

// State is the top-level application state.
type State int

const (
	StateMainMenu State = iota
	StateBoard
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateBoard:
		return "board"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// BoardFactory builds the board for each new game.
type BoardFactory func() (*game.Board, error)

// RandomBoards returns a factory producing size×size boards with the given
// number of mines drawn from rng. A nil rng uses a time-seeded source.
func RandomBoards(size, mines int, rng *rand.Rand) BoardFactory {
	return func() (*game.Board, error) {
		return game.New(size, mines, rng)
	}
}

// Session is the explicit state holder passed through the main loop.
type Session struct {
	state      State
	menu       *menu.MainMenu
	controller *game.Controller
	gameID     string
	newBoard   BoardFactory
}

// New creates a session in the main menu. Boards are built on demand.
func New(factory BoardFactory) *Session {
	if factory == nil {
		factory = RandomBoards(game.DefaultSize, game.DefaultMines, nil)
	}
	return &Session{
		state:    StateMainMenu,
		menu:     menu.NewMainMenu(),
		newBoard: factory,
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Menu() *menu.MainMenu { return s.menu }

// Controller returns the active game, or nil before the first game starts.
func (s *Session) Controller() *game.Controller { return s.controller }

// GameID identifies the active game in trace output.
func (s *Session) GameID() string { return s.gameID }

// Dispatch applies a single action and returns the resulting state. On error
// the state is unchanged.
func (s *Session) Dispatch(a Action) (State, error) {
	if a == nil || s.state == StateExiting {
		return s.state, nil
	}
	if _, ok := a.(CloseRequested); ok {
		s.transition(StateExiting, a)
		return s.state, nil
	}
	var (
		next State
		err  error
	)
	switch s.state {
	case StateMainMenu:
		next, err = s.handleMenu(a)
	case StateBoard:
		next, err = s.handleBoard(a)
	default:
		next = s.state
	}
	if err != nil {
		events.Action.Error(err)
		return s.state, err
	}
	s.transition(next, a)
	return s.state, nil
}

func (s *Session) transition(next State, a Action) {
	if next == s.state {
		return
	}
	events.State.Transition(s.state.String(), next.String(), a.name())
	s.state = next
}

func (s *Session) handleMenu(a Action) (State, error) {
	switch act := a.(type) {
	case ButtonActivated:
		choice, err := s.menu.Activate(act.Index)
		if err != nil {
			return s.state, err
		}
		switch choice {
		case menu.ChoiceStart:
			if err := s.startGame(); err != nil {
				return s.state, err
			}
			return StateBoard, nil
		case menu.ChoiceQuit:
			return StateExiting, nil
		}
	case Escape:
		return StateExiting, nil
	}
	return s.state, nil
}

func (s *Session) handleBoard(a Action) (State, error) {
	switch act := a.(type) {
	case Escape:
		return StateMainMenu, nil
	case NewGame:
		if err := s.startGame(); err != nil {
			return s.state, err
		}
	case RevealCell:
		return s.state, s.reveal(act.X, act.Y)
	case FlagCell:
		return s.state, s.flag(act.X, act.Y)
	}
	return s.state, nil
}

func (s *Session) startGame() error {
	board, err := s.newBoard()
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.controller = game.NewController(board)
	s.gameID = uuid.NewString()
	events.Game.New(s.gameID, board.Size(), board.MineCount())
	return nil
}

func (s *Session) reveal(x, y int) error {
	if s.controller == nil {
		return nil
	}
	before := s.controller.Outcome()
	outcome, err := s.controller.Reveal(x, y)
	if err != nil {
		return err
	}
	if cell, err := s.controller.Board().CellAt(x, y); err == nil {
		events.Game.Reveal(s.gameID, x, y, cell.String())
	}
	if outcome != before {
		events.Game.Outcome(s.gameID, outcome.String())
	}
	return nil
}

func (s *Session) flag(x, y int) error {
	if s.controller == nil {
		return nil
	}
	if err := s.controller.ToggleFlag(x, y); err != nil {
		return err
	}
	if cell, err := s.controller.Board().CellAt(x, y); err == nil {
		events.Game.Flag(s.gameID, x, y, cell.String())
	}
	return nil
}
