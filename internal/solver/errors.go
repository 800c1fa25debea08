package solver

import "errors"

var (
	// ErrInvalidGrid is returned when a grid is empty or its rows differ in length.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidWord is returned when a target word is empty.
	ErrInvalidWord = errors.New("invalid word")
)
