package utils

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned for non-positive board dimensions,
	// unknown edge behaviours and neighbour counts outside [0, 8].
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBoundsCell is returned when a cell lies outside the board.
	ErrOutOfBoundsCell = errors.New("cell out of bounds")

	// ErrSimulationRunning is returned when an edit is attempted while a
	// simulation is running. Edits are only allowed between generations.
	ErrSimulationRunning = errors.New("simulation is running")
)
