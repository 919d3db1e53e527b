package model

import "github.com/pkg/errors"

var (
	// ErrConfig is returned when a board cannot be built from the given dimension
	ErrConfig = errors.New("invalid board configuration")
	// ErrOutOfRange is returned when a coordinate falls outside the board
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidCell is returned when a cell value is neither dead nor alive
	ErrInvalidCell = errors.New("invalid cell value")
)
