package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

// MaxNeighbors is the largest neighbour count a cell can have.
const MaxNeighbors = 8

// countMask holds one bit per neighbour count in [0, MaxNeighbors].
type countMask uint16

// RuleSet decides cell transitions from neighbour counts. It is an immutable
// value: the With/Without helpers return a new RuleSet.
type RuleSet struct {
	birth   countMask
	survive countMask
}

/*
Conway returns the standard Game of Life rules.

B3/S23: a dead cell with exactly 3 live neighbours is born, a live cell with
2 or 3 survives.
*/
func Conway() RuleSet {
	return RuleSet{
		birth:   1 << 3,
		survive: 1<<2 | 1<<3,
	}
}

// New builds a RuleSet from birth and survive neighbour counts
func New(birth, survive []int) (RuleSet, error) {
	var rs RuleSet
	for _, n := range birth {
		if err := checkCount(n); err != nil {
			return RuleSet{}, errors.Wrap(err, "[rules.New] birth")
		}
		rs.birth |= 1 << n
	}
	for _, n := range survive {
		if err := checkCount(n); err != nil {
			return RuleSet{}, errors.Wrap(err, "[rules.New] survive")
		}
		rs.survive |= 1 << n
	}
	return rs, nil
}

func checkCount(n int) error {
	if n < 0 || n > MaxNeighbors {
		return errors.Wrapf(utils.ErrInvalidConfiguration, "neighbor count %d outside [0, %d]", n, MaxNeighbors)
	}
	return nil
}

// Born reports whether a dead cell with n live neighbours comes to life
func (r RuleSet) Born(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.birth&(1<<n) != 0
}

// Survives reports whether a live cell with n live neighbours stays alive
func (r RuleSet) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survive&(1<<n) != 0
}

// Next applies the rule to a single cell
func (r RuleSet) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survives(neighbors)
	}
	return r.Born(neighbors)
}

// BirthOnZero reports whether dead cells with no live neighbours are born.
// Such rules cannot be evaluated from the live population alone.
func (r RuleSet) BirthOnZero() bool {
	return r.birth&1 != 0
}

// Birth returns the birth counts in ascending order
func (r RuleSet) Birth() []int { return r.birth.counts() }

// Survive returns the survive counts in ascending order
func (r RuleSet) Survive() []int { return r.survive.counts() }

// WithBirth returns a copy of r that also births on n neighbours
func (r RuleSet) WithBirth(n int) (RuleSet, error) {
	if err := checkCount(n); err != nil {
		return r, errors.Wrap(err, "[WithBirth]")
	}
	r.birth |= 1 << n
	return r, nil
}

// WithoutBirth returns a copy of r that no longer births on n neighbours
func (r RuleSet) WithoutBirth(n int) (RuleSet, error) {
	if err := checkCount(n); err != nil {
		return r, errors.Wrap(err, "[WithoutBirth]")
	}
	r.birth &^= 1 << n
	return r, nil
}

// WithSurvive returns a copy of r in which live cells survive on n neighbours
func (r RuleSet) WithSurvive(n int) (RuleSet, error) {
	if err := checkCount(n); err != nil {
		return r, errors.Wrap(err, "[WithSurvive]")
	}
	r.survive |= 1 << n
	return r, nil
}

// WithoutSurvive returns a copy of r in which live cells no longer survive on n neighbours
func (r RuleSet) WithoutSurvive(n int) (RuleSet, error) {
	if err := checkCount(n); err != nil {
		return r, errors.Wrap(err, "[WithoutSurvive]")
	}
	r.survive &^= 1 << n
	return r, nil
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r RuleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range r.Birth() {
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("/S")
	for _, n := range r.Survive() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

func (m countMask) counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if m&(1<<n) != 0 {
			out = append(out, n)
		}
	}
	return out
}
