package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/simulation"
	"github.com/sheikhrachel/sparse-life/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(board model.Board, state model.State) {
	var sb strings.Builder
	for y := range board.Height() {
		for x := range board.Width() {
			if state.Contains(model.Cell{X: x, Y: y}) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

// buildBoard turns the config into board, rules and speed
func buildBoard(config utils.Config) (model.Board, rules.RuleSet, simulation.Speed, error) {
	edge, err := model.ParseEdgeBehavior(config.Edge)
	if err != nil {
		return model.Board{}, rules.RuleSet{}, 0, err
	}
	board, err := model.NewBoard(config.Width, config.Height, edge)
	if err != nil {
		return model.Board{}, rules.RuleSet{}, 0, err
	}
	rs, err := rules.Parse(config.Rule)
	if err != nil {
		return model.Board{}, rules.RuleSet{}, 0, err
	}
	speed, err := simulation.ParseSpeed(config.Speed)
	if err != nil {
		return model.Board{}, rules.RuleSet{}, 0, err
	}
	return board, rs, speed, nil
}

// seedState builds the starting population: a built-in pattern, a .cells file
// centred on the board, or a random soup.
func seedState(config utils.Config, board model.Board, rng *rand.Rand) (model.State, error) {
	if config.Pattern == "" {
		return model.Randomize(board, config.RandomDensity, rng), nil
	}

	cells, ok := model.Patterns[strings.ToLower(config.Pattern)]
	if !ok {
		data, err := os.ReadFile(config.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "[seedState] failed to read pattern: %+v", config.Pattern)
		}
		if cells, err = model.ParsePlaintext(string(data)); err != nil {
			return nil, errors.Wrapf(err, "[seedState] failed to parse pattern: %+v", config.Pattern)
		}
	}

	var w, h int
	for _, c := range cells {
		w, h = max(w, c.X+1), max(h, c.Y+1)
	}
	return model.Place(board, model.NewState(), cells, (board.Width()-w)/2, (board.Height()-h)/2)
}

// loadConfig reads the config file, falling back to defaults only when the
// file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (*simulation.Simulation, *TerminalRenderer, error) {
	board, rs, speed, err := buildBoard(config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	state, err := seedState(config, board, rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	sim, err := simulation.New(board, rs, state)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	sim.SetSpeed(speed)
	return sim, &TerminalRenderer{}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(sim *simulation.Simulation) {
	board := sim.Board()
	fmt.Printf("Rule: %s | Edges: %s | Speed: %s\n", sim.Rules(), board.Edge(), sim.Speed())
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n", board.Width(), board.Height(), sim.State().Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(sim *simulation.Simulation, restarts int) {
	var (
		stats       = sim.Stats()
		livingCells = sim.State().Len()
		density     = float64(livingCells) / float64(sim.Board().Area()) * 100
		born, died  = sim.LastDiff()
	)

	status := "Active"
	if sim.Stagnant() {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d (+%d -%d) | Density: %.1f%% | Status: %s\n",
		sim.Generation(), livingCells, len(born), len(died), density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, time.Since(stats.StartTime).Seconds())

	if restarts > 0 {
		fmt.Printf("Restarts: %d\n", restarts)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds a random soup. Edits are only allowed while stopped.
func restartGame(sim *simulation.Simulation, config utils.Config, rng *rand.Rand) error {
	sim.Stop()
	defer sim.Start()

	if err := sim.Randomize(config.RandomDensity, rng); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	fmt.Printf("✨ New soup seeded! Living cells: %d\n", sim.State().Len())
	time.Sleep(1 * time.Second)
	return nil
}

// saveState writes the population as a plaintext pattern when an output path is set
func saveState(sim *simulation.Simulation, config utils.Config) error {
	if config.Output == "" {
		return nil
	}
	text := fmt.Sprintf("!Generation: %d\n!Rule: %s\n%s", sim.Generation(), sim.Rules(), model.FormatPlaintext(sim.Board(), sim.State()))
	if err := os.WriteFile(config.Output, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "[saveState] failed to write file: %+v", config.Output)
	}
	fmt.Printf("Saved generation %d to %s\n", sim.Generation(), config.Output)
	return nil
}
