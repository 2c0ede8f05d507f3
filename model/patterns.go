package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

// Built-in patterns, relative to their top-left corner.
var (
	Glider     = []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	Blinker    = []Cell{{1, 0}, {1, 1}, {1, 2}}
	Block      = []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	RPentomino = []Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
)

// Patterns maps pattern names to their cells
var Patterns = map[string][]Cell{
	"glider":     Glider,
	"blinker":    Blinker,
	"block":      Block,
	"rpentomino": RPentomino,
}

// Place translates pattern by (offsetX, offsetY) and adds it to a copy of
// state. Cells falling off a bounded board are an error; on a wrapping board
// they wrap around.
func Place(board Board, state State, pattern []Cell, offsetX, offsetY int) (State, error) {
	if err := board.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Place]")
	}
	out := state.Clone()
	for _, c := range pattern {
		p := Cell{X: c.X + offsetX, Y: c.Y + offsetY}
		if !board.Contains(p) {
			if board.Edge() != EdgeWrap {
				return nil, errors.Wrapf(utils.ErrOutOfBoundsCell, "[Place] cell %v outside %dx%d board", p, board.Width(), board.Height())
			}
			p = board.wrap(p)
		}
		out[p] = struct{}{}
	}
	return out, nil
}

// Randomize fills the board with live cells at the given density
func Randomize(board Board, density float64, rng *rand.Rand) State {
	state := make(State)
	for y := range board.Height() {
		for x := range board.Width() {
			if rng.Float64() < density {
				state[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return state
}
