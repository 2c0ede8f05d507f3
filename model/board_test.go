package model

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

func mustBoard(t testing.TB, w, h int, edge EdgeBehavior) Board {
	t.Helper()
	b, err := NewBoard(w, h, edge)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d, %s): %v", w, h, edge, err)
	}
	return b
}

func TestNewBoardRejectsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		edge EdgeBehavior
	}{
		{name: "zero width", w: 0, h: 5, edge: EdgeBounded},
		{name: "negative height", w: 5, h: -1, edge: EdgeWrap},
		{name: "unknown edge", w: 5, h: 5, edge: "mirror"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBoard(tc.w, tc.h, tc.edge); !errors.Is(err, utils.ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
	if err := (Board{}).Validate(); !errors.Is(err, utils.ErrInvalidConfiguration) {
		t.Fatalf("zero board must be invalid, got %v", err)
	}
}

func TestParseEdgeBehavior(t *testing.T) {
	for in, want := range map[string]EdgeBehavior{"bounded": EdgeBounded, "Dead": EdgeBounded, "wrap": EdgeWrap, " torus ": EdgeWrap} {
		got, err := ParseEdgeBehavior(in)
		if err != nil || got != want {
			t.Fatalf("ParseEdgeBehavior(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseEdgeBehavior("mirror"); !errors.Is(err, utils.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestBoundedNeighbors(t *testing.T) {
	b := mustBoard(t, 5, 4, EdgeBounded)
	cases := []struct {
		cell Cell
		want int
	}{
		{Cell{0, 0}, 3},
		{Cell{4, 3}, 3},
		{Cell{2, 0}, 5},
		{Cell{0, 2}, 5},
		{Cell{2, 2}, 8},
	}
	for _, tc := range cases {
		neighbors := b.NeighborsOf(tc.cell)
		if len(neighbors) != tc.want {
			t.Fatalf("cell %v: got %d neighbors %v, want %d", tc.cell, len(neighbors), neighbors, tc.want)
		}
		for _, n := range neighbors {
			if !b.Contains(n) {
				t.Fatalf("cell %v: neighbor %v is off the board", tc.cell, n)
			}
			if n == tc.cell {
				t.Fatalf("cell %v listed as its own neighbor", tc.cell)
			}
		}
	}
}

func TestWrapNeighbors(t *testing.T) {
	b := mustBoard(t, 4, 3, EdgeWrap)
	for y := range b.Height() {
		for x := range b.Width() {
			c := Cell{x, y}
			neighbors := b.NeighborsOf(c)
			seen := NewState(neighbors...)
			if len(neighbors) != 8 || seen.Len() != 8 {
				t.Fatalf("cell %v: expected 8 distinct neighbors, got %v", c, neighbors)
			}
			for _, n := range neighbors {
				if !b.Contains(n) {
					t.Fatalf("cell %v: neighbor %v is off the board", c, n)
				}
			}
		}
	}

	neighbors := b.NeighborsOf(Cell{0, 1})
	for _, want := range []Cell{{3, 1}, {3, 0}, {3, 2}, {1, 1}} {
		if !slices.Contains(neighbors, want) {
			t.Fatalf("expected %v among neighbors of (0,1), got %v", want, neighbors)
		}
	}
	corner := b.NeighborsOf(Cell{3, 2})
	if !slices.Contains(corner, Cell{0, 0}) {
		t.Fatalf("expected (0,0) to neighbor the opposite corner, got %v", corner)
	}
}

func TestWrapNarrowBoardRepeatsNeighbors(t *testing.T) {
	b := mustBoard(t, 2, 2, EdgeWrap)
	neighbors := b.NeighborsOf(Cell{0, 0})
	if len(neighbors) != 8 {
		t.Fatalf("expected 8 neighbor coordinates, got %d", len(neighbors))
	}
	if distinct := NewState(neighbors...).Len(); distinct >= 8 {
		t.Fatalf("expected repeated coordinates on a 2x2 torus, got %d distinct", distinct)
	}
}

func TestNeighborsOfIsPure(t *testing.T) {
	for _, edge := range []EdgeBehavior{EdgeBounded, EdgeWrap} {
		b := mustBoard(t, 6, 6, edge)
		c := Cell{0, 5}
		if !slices.Equal(b.NeighborsOf(c), b.NeighborsOf(c)) {
			t.Fatalf("%s: NeighborsOf returned different results for the same cell", edge)
		}
	}
}

func TestWithEdge(t *testing.T) {
	b := mustBoard(t, 3, 3, EdgeBounded)
	w, err := b.WithEdge(EdgeWrap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Edge() != EdgeWrap || b.Edge() != EdgeBounded {
		t.Fatalf("WithEdge must return a copy: got %s, original %s", w.Edge(), b.Edge())
	}
	if w.Width() != 3 || w.Height() != 3 || w.Area() != 9 {
		t.Fatalf("WithEdge changed dimensions: %dx%d", w.Width(), w.Height())
	}
}
