package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

// EdgeBehavior decides what happens to neighbours that fall off the board
type EdgeBehavior string

const (
	// EdgeBounded drops off-board neighbours, so border cells have fewer than 8.
	EdgeBounded EdgeBehavior = "bounded"
	// EdgeWrap joins opposite edges, making the board a torus.
	EdgeWrap EdgeBehavior = "wrap"
)

// ParseEdgeBehavior accepts "bounded" (or "dead") and "wrap"
func ParseEdgeBehavior(s string) (EdgeBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "dead":
		return EdgeBounded, nil
	case "wrap", "torus":
		return EdgeWrap, nil
	}
	return "", errors.Wrapf(utils.ErrInvalidConfiguration, "[ParseEdgeBehavior] unknown edge behavior %q", s)
}

// Board describes the grid dimensions and edge policy. It is an immutable value.
type Board struct {
	width  int
	height int
	edge   EdgeBehavior
}

// NewBoard validates and returns a board
func NewBoard(width, height int, edge EdgeBehavior) (Board, error) {
	b := Board{width: width, height: height, edge: edge}
	if err := b.Validate(); err != nil {
		return Board{}, errors.Wrap(err, "[NewBoard]")
	}
	return b, nil
}

// Validate checks the board invariants. The zero Board is invalid.
func (b Board) Validate() error {
	if b.width <= 0 || b.height <= 0 {
		return errors.Wrapf(utils.ErrInvalidConfiguration, "board dimensions %dx%d must be positive", b.width, b.height)
	}
	if b.edge != EdgeBounded && b.edge != EdgeWrap {
		return errors.Wrapf(utils.ErrInvalidConfiguration, "unknown edge behavior %q", b.edge)
	}
	return nil
}

// Width returns the number of columns
func (b Board) Width() int { return b.width }

// Height returns the number of rows
func (b Board) Height() int { return b.height }

// Edge returns the edge policy
func (b Board) Edge() EdgeBehavior { return b.edge }

// Area returns width*height
func (b Board) Area() int { return b.width * b.height }

// WithEdge returns a copy of the board using a different edge policy
func (b Board) WithEdge(edge EdgeBehavior) (Board, error) {
	return NewBoard(b.width, b.height, edge)
}

// Contains reports whether c lies on the board
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// NeighborsOf returns the neighbour coordinates of c under the edge policy.
// Order is not significant. In wrap mode boards narrower than 3 cells yield
// repeated coordinates, one per adjacency.
func (b Board) NeighborsOf(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{X: c.X + dx, Y: c.Y + dy}
			if b.edge == EdgeWrap {
				n = b.wrap(n)
			} else if !b.Contains(n) {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (b Board) wrap(c Cell) Cell {
	return Cell{
		X: (c.X%b.width + b.width) % b.width,
		Y: (c.Y%b.height + b.height) % b.height,
	}
}
