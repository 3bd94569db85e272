package session

// Action is a logical input produced by the presentation layer. The set is
// closed: only the types in this file implement it.
type Action interface {
	name() string
}

// ButtonActivated reports that the main menu button at Index was activated.
type ButtonActivated struct {
	Index int
}

// Escape is the escape key.
type Escape struct{}

// CloseRequested is a window-close or interrupt request.
type CloseRequested struct{}

// RevealCell is a primary click on the cell at (X, Y).
type RevealCell struct {
	X int
	Y int
}

// FlagCell is a secondary click on the cell at (X, Y).
type FlagCell struct {
	X int
	Y int
}

// NewGame replaces the current board with a fresh one.
type NewGame struct{}

func (ButtonActivated) name() string { return "button" }
func (Escape) name() string          { return "escape" }
func (CloseRequested) name() string  { return "close" }
func (RevealCell) name() string      { return "reveal" }
func (FlagCell) name() string        { return "flag" }
func (NewGame) name() string         { return "new-game" }
