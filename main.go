package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/sparse-life/survey"
	"github.com/sheikhrachel/sparse-life/utils"
)

func main() {
	config, err := loadConfig("config.json")
	if err != nil {
		log.Fatal(err)
	}

	surveyMode := flag.Bool("survey", false, "run many random soups concurrently and print a summary")
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *surveyMode {
		err = runSurvey(ctx, config)
	} else {
		err = runGame(ctx, config)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runGame(ctx context.Context, config utils.Config) error {
	rng := rand.New(rand.NewSource(config.Seed))

	sim, renderer, err := initializeGame(config, rng)
	if err != nil {
		return err
	}
	displayGameInfo(sim)
	defer func() {
		if saveErr := saveState(sim, config); saveErr != nil {
			fmt.Println("Error saving state:", saveErr)
		}
	}()

	var (
		stagnantCount = 0
		restarts      = 0
		ticker        = time.NewTicker(config.FrameRate)
	)
	defer ticker.Stop()

	renderer.Clear()
	displayGameStatus(sim, restarts)
	renderer.Display(sim.Board(), sim.State())

	sim.Start()
	for {
		select {
		case <-ctx.Done():
			stats := sim.Stats()
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				sim.Generation(), time.Since(stats.StartTime).Seconds())
			fmt.Printf("Births: %d | Deaths: %d | Peak population: %d\n",
				stats.Births, stats.Deaths, stats.PeakPopulation)
			return nil
		case <-ticker.C:
		}

		advanced, err := sim.Frame()
		if err != nil {
			return err
		}
		if !advanced {
			continue
		}

		renderer.Clear()
		displayGameStatus(sim, restarts)
		renderer.Display(sim.Board(), sim.State())

		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if sim.Stagnant() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		shouldRestart, restartReason := checkRestartConditions(sim.State().Len(), stagnantCount, config)
		if !shouldRestart {
			continue
		}
		if !config.AutoRestart {
			fmt.Printf("\n🏁 Stopped due to %s\n", restartReason)
			return nil
		}

		fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
		if err = restartGame(sim, config, rng); err != nil {
			return err
		}
		restarts++
		stagnantCount = 0
	}
}

func runSurvey(ctx context.Context, config utils.Config) error {
	board, rs, _, err := buildBoard(config)
	if err != nil {
		return err
	}

	seeds := make([]int64, config.SurveyTrials)
	for i := range seeds {
		seeds[i] = config.Seed + int64(i)
	}

	maxGens := config.MaxGenerations
	if maxGens == 0 {
		maxGens = utils.DefaultConfig().MaxGenerations
	}

	start := time.Now()
	results, err := survey.Run(ctx, survey.Config{
		Board:          board,
		Rules:          rs,
		Density:        config.RandomDensity,
		MaxGenerations: maxGens,
		Workers:        config.SurveyWorkers,
	}, seeds)
	if err != nil {
		return err
	}

	fmt.Printf("Surveyed %d soups of %dx%d (%s, %s edges) in %.1fs\n",
		len(results), board.Width(), board.Height(), rs, board.Edge(), time.Since(start).Seconds())
	for _, res := range results {
		fmt.Printf("seed %-6d %-8s gens %-5d pop %d -> %d (peak %d)\n",
			res.Seed, res.Outcome, res.Generations, res.InitialPopulation, res.FinalPopulation, res.PeakPopulation)
	}
	return nil
}
