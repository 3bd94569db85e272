package game

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside [0,N)×[0,N).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidMinePlacement is returned when a board cannot hold the
	// requested mines as distinct cells.
	ErrInvalidMinePlacement = errors.New("invalid mine placement")
)
