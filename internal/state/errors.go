package state

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a Grid is created with a non-positive width or height.
	ErrInvalidDimension = errors.New("board dimensions must be positive")

	// ErrInvalidLayout is returned by ParseGrid for ragged rows or unknown characters.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidStone is returned by ParseStone for text not in stone notation.
	ErrInvalidStone = errors.New("invalid stone notation")
)
