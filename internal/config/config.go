// Package config defines process configuration and its loading layers.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - Errors wrap ErrInvalidConfig or ErrLoadConfig.
package config

import (
	"context"
	"fmt"
	"math"
	"net"

	"github.com/okian/elo/internal/domain/rating"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MatchesFile is the match history read when no path is given on the
	// command line.
	MatchesFile string `koanf:"matches_file"`

	// InitialRating and KFactor parameterise new players.
	InitialRating float64 `koanf:"initial_rating"`
	KFactor       float64 `koanf:"k_factor"`

	// Validation toggles. Violations are logged unless StrictValidation is set.
	ValidateSequence bool `koanf:"validate_sequence"`
	ValidateWinners  bool `koanf:"validate_winners"`
	ValidateDates    bool `koanf:"validate_dates"`
	StrictValidation bool `koanf:"strict_validation"`

	// ReportFile receives the JSON report when non-empty.
	ReportFile string `koanf:"report_file"`

	// Serve keeps the process running with the HTTP API after the run.
	Serve bool `koanf:"serve"`

	// MaxStandingsLimit caps GET /standings?limit.
	MaxStandingsLimit int `koanf:"max_standings_limit"`
}

// New creates a Config with defaults. The context is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		MatchesFile:       "matches.json",
		InitialRating:     rating.DefaultInitialRating,
		KFactor:           rating.DefaultKFactor,
		ValidateSequence:  true,
		MaxStandingsLimit: 100,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("%w: addr %q: %w", ErrInvalidConfig, c.Addr, err)
	}
	if math.IsNaN(c.InitialRating) || math.IsInf(c.InitialRating, 0) {
		return fmt.Errorf("%w: initial_rating must be finite", ErrInvalidConfig)
	}
	if !(c.KFactor > 0) || math.IsInf(c.KFactor, 0) {
		return fmt.Errorf("%w: k_factor must be positive", ErrInvalidConfig)
	}
	if c.MaxStandingsLimit < 1 {
		return fmt.Errorf("%w: max_standings_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
