package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Experiments that can be run.
const (
	StopTarget = "stop_target"
	Selector   = "selector"
	Search     = "search"
)

// Config is read from HOTDICE_* environment variables.
type Config struct {
	Experiment   string `env:"HOTDICE_EXPERIMENT" envDefault:"stop_target"`
	Games        int    `env:"HOTDICE_GAMES" envDefault:"1000"`
	Workers      int    `env:"HOTDICE_WORKERS" envDefault:"4"`
	WinningScore int    `env:"HOTDICE_WINNING_SCORE" envDefault:"10000"`
	Targets      []int  `env:"HOTDICE_TARGETS" envDefault:"100,200,300,400,500,600,700,800,900,1000"`
	Target       int    `env:"HOTDICE_TARGET" envDefault:"500"` // Selector and search experiments
	Goroutines   []int  `env:"HOTDICE_GOROUTINES" envDefault:"1,2,4"`
	Episodes     int    `env:"HOTDICE_EPISODES" envDefault:"200"`
	OutputDir    string `env:"HOTDICE_OUTPUT_DIR" envDefault:"results"`
	Seed         uint64 `env:"HOTDICE_SEED"`
	LogLevel     string `env:"HOTDICE_LOG_LEVEL" envDefault:"info"`
	Fixpoint     bool   `env:"HOTDICE_FIXPOINT"`
}

// Parse reads the environment without validating it, so callers can apply
// overrides first.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{StopTarget, Selector, Search}, c.Experiment) {
		errs = append(errs, fmt.Errorf("unknown experiment %q", c.Experiment))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.WinningScore <= 0 {
		errs = append(errs, fmt.Errorf("winning score must be positive, got %d", c.WinningScore))
	}
	if c.Experiment == StopTarget && len(c.Targets) == 0 {
		errs = append(errs, errors.New("stop target experiment needs targets"))
	}
	if c.Experiment == Search && (len(c.Goroutines) == 0 || c.Episodes <= 0) {
		errs = append(errs, errors.New("search experiment needs goroutines and episodes"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Level is the zerolog level named by LogLevel.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
