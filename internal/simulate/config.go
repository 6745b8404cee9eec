// Package simulate generates synthetic match histories from hidden player
// strengths. Output is deterministic for a given seed.
package simulate

import (
	"errors"
	"fmt"
	"time"
)

// Default generator settings.
const (
	DefaultPlayers  = 12
	DefaultMatches  = 300
	DefaultDays     = 60
	DefaultDrawRate = 0.05
	DefaultSpread   = 200.0
	DefaultSeed     = 1
)

// ErrInvalidConfig is returned for generator settings that cannot produce a
// valid history.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds configuration for the generator.
type Config struct {
	Players  int       // number of distinct players, at least 2
	Matches  int       // number of matches to generate
	Days     int       // calendar days the matches are spread over
	Start    time.Time // date of the first match
	DrawRate float64   // probability of a draw, in [0, 1)
	Spread   float64   // standard deviation of hidden strengths
	Seed     uint64    // random seed
}

// DefaultConfig returns the generator defaults starting on 2024-01-01.
func DefaultConfig() Config {
	return Config{
		Players:  DefaultPlayers,
		Matches:  DefaultMatches,
		Days:     DefaultDays,
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DrawRate: DefaultDrawRate,
		Spread:   DefaultSpread,
		Seed:     DefaultSeed,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Players < 2:
		return fmt.Errorf("%w: players must be at least 2, got %d", ErrInvalidConfig, c.Players)
	case c.Matches < 0:
		return fmt.Errorf("%w: matches must not be negative, got %d", ErrInvalidConfig, c.Matches)
	case c.Days < 1:
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidConfig, c.Days)
	case !(c.DrawRate >= 0 && c.DrawRate < 1):
		return fmt.Errorf("%w: draw rate must be in [0, 1), got %v", ErrInvalidConfig, c.DrawRate)
	case c.Spread < 0:
		return fmt.Errorf("%w: spread must not be negative, got %v", ErrInvalidConfig, c.Spread)
	case c.Start.IsZero():
		return fmt.Errorf("%w: start date is required", ErrInvalidConfig)
	}
	return nil
}
