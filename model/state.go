package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sort"
)

// Cell is a board coordinate. It is comparable and used directly as a map key.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// State is the set of live cells. Dead cells are never stored.
type State map[Cell]struct{}

// NewState creates a state holding the given cells
func NewState(cells ...Cell) State {
	s := make(State, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is alive
func (s State) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population
func (s State) Len() int { return len(s) }

// Clone returns a shallow copy
func (s State) Clone() State {
	out := make(State, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both states hold the same cells
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Toggle returns a new state with c flipped. The receiver is left untouched.
func (s State) Toggle(c Cell) State {
	out := s.Clone()
	if out.Contains(c) {
		delete(out, c)
	} else {
		out[c] = struct{}{}
	}
	return out
}

// Cells returns the live cells ordered by row, then column
func (s State) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

// Hash returns an MD5 digest of the population, independent of map order
func (s State) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range s.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Diff reports which cells were born and which died between prev and next.
// Renderers use it to repaint only the cells that changed.
func Diff(prev, next State) (born, died []Cell) {
	for c := range next {
		if !prev.Contains(c) {
			born = append(born, c)
		}
	}
	for c := range prev {
		if !next.Contains(c) {
			died = append(died, c)
		}
	}
	sortCells(born)
	sortCells(died)
	return born, died
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
