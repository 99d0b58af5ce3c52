package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested dimensions, bomb count or safe zone. No board is created.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrCoordinateOutOfBounds is returned by commands addressing a cell
	// outside the board. Board state is left untouched.
	ErrCoordinateOutOfBounds = errors.New("coordinate out of bounds")
)
