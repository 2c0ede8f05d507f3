package simulation

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/utils"
)

// Named soup densities
const (
	Dense    = 1.0 / 2
	Moderate = 1.0 / 4
	Sparse   = 1.0 / 8
)

// historySize is how many previous generations are kept for cycle detection
const historySize = 5

// Simulation drives a board from a host loop. The host calls Frame once per
// frame while running, and edits the population, rules or edge policy only
// while stopped. A Simulation is not safe for concurrent use.
type Simulation struct {
	board model.Board
	rules rules.RuleSet
	state model.State
	speed Speed

	running    bool
	frames     int
	generation int

	born, died []model.Cell
	hash       string
	history    []string

	stats    *utils.Stats
	lastStep time.Time
}

// New creates a stopped simulation at generation 0
func New(board model.Board, rs rules.RuleSet, state model.State) (*Simulation, error) {
	if err := checkState(board, state); err != nil {
		return nil, errors.Wrap(err, "[simulation.New]")
	}
	if state == nil {
		state = model.NewState()
	}
	return &Simulation{
		board: board,
		rules: rs,
		state: state,
		speed: Normal,
		stats: utils.NewStats(),
	}, nil
}

func checkState(board model.Board, state model.State) error {
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

// Board returns the current board
func (s *Simulation) Board() model.Board { return s.board }

// Rules returns the current rule set
func (s *Simulation) Rules() rules.RuleSet { return s.rules }

// State returns the live population. It is replaced, never modified, on each
// generation; callers must not modify it either.
func (s *Simulation) State() model.State { return s.state }

// Generation returns the number of generations computed since the last reset
func (s *Simulation) Generation() int { return s.generation }

// Speed returns the throttle setting
func (s *Simulation) Speed() Speed { return s.speed }

// Running reports whether Frame advances the simulation
func (s *Simulation) Running() bool { return s.running }

// Stats returns a snapshot of the run statistics
func (s *Simulation) Stats() utils.Stats { return *s.stats }

// LastDiff returns the cells born and died in the most recent generation
func (s *Simulation) LastDiff() (born, died []model.Cell) { return s.born, s.died }

// Start lets Frame advance generations
func (s *Simulation) Start() {
	s.running = true
	s.frames = 0
}

// Stop halts the simulation between generations
func (s *Simulation) Stop() { s.running = false }

// SetSpeed changes the throttle. It only affects scheduling, so it may be
// changed while running.
func (s *Simulation) SetSpeed(speed Speed) { s.speed = speed }

// Frame is called once per host frame. While running it computes a
// generation every speed.FramesPerGeneration() frames, starting with the
// first frame after Start.
func (s *Simulation) Frame() (bool, error) {
	if !s.running {
		return false, nil
	}
	advance := s.frames%s.speed.FramesPerGeneration() == 0
	s.frames++
	if !advance {
		return false, nil
	}
	if err := s.advance(); err != nil {
		s.running = false
		return false, err
	}
	return true, nil
}

// StepOnce computes a single generation while stopped
func (s *Simulation) StepOnce() error {
	if s.running {
		return errors.Wrap(utils.ErrSimulationRunning, "[StepOnce]")
	}
	return s.advance()
}

func (s *Simulation) advance() error {
	start := time.Now()
	next, err := model.Step(s.board, s.state, s.rules)
	if err != nil {
		return errors.Wrapf(err, "[advance] generation %d", s.generation+1)
	}

	s.born, s.died = model.Diff(s.state, next)
	s.history = append(s.history, s.currentHash())
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	s.state = next
	s.hash = ""
	s.generation++

	if s.lastStep.IsZero() {
		s.lastStep = start
	}
	s.stats.Update(s.generation, next.Len(), len(s.born), len(s.died), time.Since(s.lastStep))
	s.lastStep = time.Now()
	return nil
}

// Stagnant reports whether the population repeats one of the last three
// generations, i.e. it is a still life or an oscillator of period up to 3.
func (s *Simulation) Stagnant() bool {
	if len(s.history) == 0 {
		return false
	}
	current := s.currentHash()
	for i := len(s.history) - 1; i >= 0 && i >= len(s.history)-3; i-- {
		if s.history[i] == current {
			return true
		}
	}
	return false
}

func (s *Simulation) currentHash() string {
	if s.hash == "" {
		s.hash = s.state.Hash()
	}
	return s.hash
}

// ToggleCell flips one cell while stopped
func (s *Simulation) ToggleCell(c model.Cell) error {
	if err := s.editable("[ToggleCell]"); err != nil {
		return err
	}
	if !s.board.Contains(c) {
		return errors.Wrapf(utils.ErrOutOfBoundsCell, "[ToggleCell] cell %v outside %dx%d board", c, s.board.Width(), s.board.Height())
	}
	s.replace(s.state.Toggle(c))
	return nil
}

// SetState replaces the population while stopped
func (s *Simulation) SetState(state model.State) error {
	if err := s.editable("[SetState]"); err != nil {
		return err
	}
	if err := checkState(s.board, state); err != nil {
		return errors.Wrap(err, "[SetState]")
	}
	s.replace(state.Clone())
	return nil
}

// SetRules swaps the rule set while stopped
func (s *Simulation) SetRules(rs rules.RuleSet) error {
	if err := s.editable("[SetRules]"); err != nil {
		return err
	}
	s.rules = rs
	s.history = nil
	return nil
}

// SetEdge changes the edge policy while stopped
func (s *Simulation) SetEdge(edge model.EdgeBehavior) error {
	if err := s.editable("[SetEdge]"); err != nil {
		return err
	}
	board, err := s.board.WithEdge(edge)
	if err != nil {
		return errors.Wrap(err, "[SetEdge]")
	}
	s.board = board
	s.history = nil
	return nil
}

// Randomize clears the board and seeds a random soup while stopped
func (s *Simulation) Randomize(density float64, rng *rand.Rand) error {
	if err := s.editable("[Randomize]"); err != nil {
		return err
	}
	if density < 0 || density > 1 {
		return errors.Wrapf(utils.ErrInvalidConfiguration, "[Randomize] density %v outside [0, 1]", density)
	}
	if rng == nil {
		return errors.Wrap(utils.ErrInvalidConfiguration, "[Randomize] nil random source")
	}
	s.reset()
	s.state = model.Randomize(s.board, density, rng)
	return nil
}

// Reset clears the population and the generation counter while stopped
func (s *Simulation) Reset() error {
	if err := s.editable("[Reset]"); err != nil {
		return err
	}
	s.reset()
	return nil
}

func (s *Simulation) reset() {
	s.state = model.NewState()
	s.hash = ""
	s.generation = 0
	s.frames = 0
	s.born, s.died = nil, nil
	s.history = nil
	s.stats = utils.NewStats()
	s.lastStep = time.Time{}
}

func (s *Simulation) replace(state model.State) {
	s.state = state
	s.hash = ""
	s.born, s.died = nil, nil
	s.history = nil
}

func (s *Simulation) editable(op string) error {
	if s.running {
		return errors.Wrap(utils.ErrSimulationRunning, op)
	}
	return nil
}
