package survey

import (
	"context"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/utils"
)

func testConfig(t *testing.T, density float64) Config {
	t.Helper()
	board, err := model.NewBoard(24, 24, model.EdgeWrap)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return Config{
		Board:          board,
		Rules:          rules.Conway(),
		Density:        density,
		MaxGenerations: 300,
		Workers:        3,
	}
}

func TestRunIsDeterministicAndOrdered(t *testing.T) {
	cfg := testConfig(t, 0.3)
	seeds := []int64{11, 3, 7, 5, 2, 13, 1}

	first, err := Run(context.Background(), cfg, seeds)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	cfg.Workers = 1
	second, err := Run(context.Background(), cfg, seeds)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(first) != len(seeds) {
		t.Fatalf("expected %d results, got %d", len(seeds), len(first))
	}
	for i, res := range first {
		if res.Seed != seeds[i] {
			t.Fatalf("result %d has seed %d, want %d", i, res.Seed, seeds[i])
		}
		if res.Generations < 1 || res.Generations > cfg.MaxGenerations {
			t.Fatalf("seed %d: generations %d outside [1, %d]", res.Seed, res.Generations, cfg.MaxGenerations)
		}
		if res.PeakPopulation < res.InitialPopulation || res.PeakPopulation < res.FinalPopulation {
			t.Fatalf("seed %d: inconsistent populations %+v", res.Seed, res)
		}
		if res.Outcome == Capped && res.Generations != cfg.MaxGenerations {
			t.Fatalf("seed %d: capped after %d generations", res.Seed, res.Generations)
		}
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("worker count changed the results")
	}
}

func TestRunEmptySoupGoesExtinct(t *testing.T) {
	results, err := Run(context.Background(), testConfig(t, 0), []int64{1, 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, res := range results {
		if res.Outcome != Extinct || res.Generations != 1 || res.InitialPopulation != 0 {
			t.Fatalf("unexpected result for empty soup: %+v", res)
		}
	}
}

func TestRunValidatesConfig(t *testing.T) {
	cfg := testConfig(t, 0.3)
	cfg.Board = model.Board{}
	if _, err := Run(context.Background(), cfg, []int64{1}); !errors.Is(err, utils.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}

	cfg = testConfig(t, 0.3)
	cfg.MaxGenerations = 0
	if _, err := Run(context.Background(), cfg, []int64{1}); !errors.Is(err, utils.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for zero max generations, got %v", err)
	}

	cfg = testConfig(t, 2)
	if _, err := Run(context.Background(), cfg, []int64{1}); !errors.Is(err, utils.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for density 2, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig(t, 0.3), []int64{1, 2, 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
