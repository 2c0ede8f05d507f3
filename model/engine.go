package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/utils"
)

/*
Step computes the next generation from state.

Only live cells and their neighbours are visited, so the cost follows the
population rather than the board area. The input state is never modified.

Rule sets that birth on zero neighbours cannot be evaluated that way, since
every isolated dead cell on the board would come alive; for those Step falls
back to StepDense.
*/
func Step(board Board, state State, rs rules.RuleSet) (State, error) {
	if err := validateInput(board, state); err != nil {
		return nil, errors.Wrap(err, "[Step]")
	}
	if rs.BirthOnZero() {
		return stepDense(board, state, rs), nil
	}
	return stepSparse(board, state, rs), nil
}

// StepDense computes the next generation by visiting every cell of the board.
// It agrees with Step for every rule set and is kept for rule sets that birth
// on zero neighbours and for cross-checking.
func StepDense(board Board, state State, rs rules.RuleSet) (State, error) {
	if err := validateInput(board, state); err != nil {
		return nil, errors.Wrap(err, "[StepDense]")
	}
	return stepDense(board, state, rs), nil
}

func validateInput(board Board, state State) error {
	if err := board.Validate(); err != nil {
		return err
	}
	for c := range state {
		if !board.Contains(c) {
			return errors.Wrapf(utils.ErrOutOfBoundsCell, "cell %v outside %dx%d board", c, board.Width(), board.Height())
		}
	}
	return nil
}

func stepSparse(board Board, state State, rs rules.RuleSet) State {
	counter := defaultCounters.Get()
	defer defaultCounters.Put(counter)

	for c := range state {
		// a live cell is tracked even with no live neighbours, so it can die
		if _, ok := counter[c]; !ok {
			counter[c] = 0
		}
		for _, n := range board.NeighborsOf(c) {
			counter[n]++
		}
	}

	next := make(State, len(state))
	for c, count := range counter {
		if rs.Next(state.Contains(c), count) {
			next[c] = struct{}{}
		}
	}
	return next
}

func stepDense(board Board, state State, rs rules.RuleSet) State {
	next := make(State, len(state))
	for y := range board.Height() {
		for x := range board.Width() {
			c := Cell{X: x, Y: y}
			count := 0
			for _, n := range board.NeighborsOf(c) {
				if state.Contains(n) {
					count++
				}
			}
			if rs.Next(state.Contains(c), count) {
				next[c] = struct{}{}
			}
		}
	}
	return next
}
