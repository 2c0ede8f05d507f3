package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Edge                string        `json:"edge"`
	Rule                string        `json:"rule"`
	Speed               string        `json:"speed"`
	FrameRate           time.Duration `json:"frame_rate"`
	Pattern             string        `json:"pattern"`
	Output              string        `json:"output"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	SurveyTrials        int           `json:"survey_trials"`
	SurveyWorkers       int           `json:"survey_workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              50,
		Edge:                "bounded",
		Rule:                "B3/S23",
		Speed:               "normal",
		FrameRate:           time.Second / 60, // one host frame, generations are throttled by Speed
		RandomDensity:       0.25,
		Seed:                42,
		MaxGenerations:      1000,
		AutoRestart:         false,
		StagnationThreshold: 5,
		SurveyTrials:        16,
		SurveyWorkers:       4,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the numeric fields. Edge, rule and speed names are parsed
// by the packages that own them.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "board dimensions %dx%d must be positive", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfiguration, "random density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "frame rate %v must be positive", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "max generations %d must not be negative", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "stagnation threshold %d must be at least 1", c.StagnationThreshold)
	case c.SurveyWorkers < 0 || c.SurveyTrials < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "survey trials %d and workers %d must not be negative", c.SurveyTrials, c.SurveyWorkers)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Values already in
// the config act as flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width")
	fs.IntVar(&c.Height, "h", c.Height, "board height")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge behavior: bounded or wrap")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation or a named rule")
	fs.StringVar(&c.Speed, "speed", c.Speed, "slowest, slower, normal, faster or fastest")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "host frame interval")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name or path to a .cells file; empty for a random soup")
	fs.StringVar(&c.Output, "out", c.Output, "write the final population to this .cells file")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "live cell density for random soups")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.IntVar(&c.MaxGenerations, "gens", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.BoolVar(&c.AutoRestart, "restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before restarting")
	fs.IntVar(&c.SurveyTrials, "trials", c.SurveyTrials, "number of soups to run in survey mode")
	fs.IntVar(&c.SurveyWorkers, "workers", c.SurveyWorkers, "concurrent soups in survey mode")
}
