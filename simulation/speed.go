package simulation

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

// Speed throttles generations against host frames
type Speed int

const (
	Slowest Speed = iota
	Slower
	Normal
	Faster
	Fastest
)

var speedNames = [...]string{"slowest", "slower", "normal", "faster", "fastest"}

// FramesPerGeneration returns how many host frames pass per generation:
// 16, 8, 4, 2 and 1 from Slowest to Fastest.
func (s Speed) FramesPerGeneration() int {
	if s < Slowest || s > Fastest {
		return 1 << (Fastest - Normal)
	}
	return 1 << (Fastest - s)
}

func (s Speed) String() string {
	if s < Slowest || s > Fastest {
		return "unknown"
	}
	return speedNames[s]
}

// ParseSpeed reads a speed name
func ParseSpeed(name string) (Speed, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speedNames {
		if n == name {
			return Speed(i), nil
		}
	}
	return Normal, errors.Wrapf(utils.ErrInvalidConfiguration, "[ParseSpeed] unknown speed %q", name)
}
