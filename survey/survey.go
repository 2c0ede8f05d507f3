package survey

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/simulation"
	"github.com/sheikhrachel/sparse-life/utils"
)

// Outcome describes why a soup stopped
type Outcome string

const (
	Extinct  Outcome = "extinct"
	Stagnant Outcome = "stagnant"
	Capped   Outcome = "capped"
)

// Config controls a survey
type Config struct {
	Board          model.Board
	Rules          rules.RuleSet
	Density        float64
	MaxGenerations int
	// Workers bounds the number of soups run at once; 0 means runtime.NumCPU().
	Workers int
}

// Result summarises one soup
type Result struct {
	Seed              int64
	Outcome           Outcome
	Generations       int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
}

/*
Run evolves one random soup per seed until it dies out, settles into a still
life or short oscillator, or reaches MaxGenerations.

Soups are independent, so they run concurrently; each soup is stepped
sequentially. Results are returned in seed order. The first error cancels
the remaining soups.
*/
func Run(ctx context.Context, cfg Config, seeds []int64) ([]Result, error) {
	if err := cfg.Board.Validate(); err != nil {
		return nil, errors.Wrap(err, "[survey.Run]")
	}
	if cfg.MaxGenerations <= 0 {
		return nil, errors.Wrapf(utils.ErrInvalidConfiguration, "[survey.Run] max generations must be positive, got %d", cfg.MaxGenerations)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, seed := range seeds {
		eg.Go(func() error {
			res, err := runSoup(ctx, cfg, seed)
			if err != nil {
				return errors.Wrapf(err, "[survey.Run] seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSoup(ctx context.Context, cfg Config, seed int64) (Result, error) {
	sim, err := simulation.New(cfg.Board, cfg.Rules, nil)
	if err != nil {
		return Result{}, err
	}
	if err = sim.Randomize(cfg.Density, rand.New(rand.NewSource(seed))); err != nil {
		return Result{}, err
	}

	res := Result{
		Seed:              seed,
		Outcome:           Capped,
		InitialPopulation: sim.State().Len(),
	}
	for sim.Generation() < cfg.MaxGenerations {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = sim.StepOnce(); err != nil {
			return Result{}, err
		}
		if sim.State().Len() == 0 {
			res.Outcome = Extinct
			break
		}
		if sim.Stagnant() {
			res.Outcome = Stagnant
			break
		}
	}

	res.Generations = sim.Generation()
	res.FinalPopulation = sim.State().Len()
	res.PeakPopulation = max(res.InitialPopulation, sim.Stats().PeakPopulation)
	return res, nil
}
