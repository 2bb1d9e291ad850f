// Package config defines the ranker configuration and how it is loaded.
package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/jicksta/eigenrank"
)

// Config contains process configuration. The defaults reproduce the fixed four-team, twelve-match setup.
type Config struct {
	// InputPath is the results file read by the CLI when no argument is given.
	InputPath string `koanf:"input_path" validate:"required"`

	// TeamCount is the exact number of distinct teams a results file must contain.
	TeamCount int `koanf:"team_count" validate:"min=2"`

	// MaxMatches caps how many result lines are read.
	MaxMatches int `koanf:"max_matches" validate:"min=1"`

	// MaxNameLength bounds team names, in characters.
	MaxNameLength int `koanf:"max_name_length" validate:"min=1"`

	// Epsilon and MaxIterations configure power iteration.
	Epsilon       float64 `koanf:"epsilon" validate:"gt=0"`
	MaxIterations int     `koanf:"max_iterations" validate:"min=1"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// Report adds matrix and standings tables to the CLI output.
	Report bool `koanf:"report"`

	// Addr configures the HTTP listen address of the REST server, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`
}

// New returns a Config with default values.
func New() *Config {
	parser := eigenrank.DefaultParserConfig()
	solver := eigenrank.DefaultPowerIteration()
	return &Config{
		InputPath:     "matches.txt",
		TeamCount:     4,
		MaxMatches:    parser.MaxMatches,
		MaxNameLength: parser.MaxNameLength,
		Epsilon:       solver.Epsilon,
		MaxIterations: solver.MaxIterations,
		LogLevel:      "warn",
		Report:        false,
		Addr:          ":8080",
	}
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RankerOptions translates the configuration into options for eigenrank.NewRanker.
func (c *Config) RankerOptions(logger *slog.Logger) []eigenrank.Option {
	return []eigenrank.Option{
		eigenrank.WithLogger(logger),
		eigenrank.WithTeamCount(c.TeamCount),
		eigenrank.WithParserConfig(eigenrank.ParserConfig{
			MaxMatches:    c.MaxMatches,
			MaxNameLength: c.MaxNameLength,
		}),
		eigenrank.WithSolver(eigenrank.PowerIteration{
			Epsilon:       c.Epsilon,
			MaxIterations: c.MaxIterations,
		}),
	}
}
