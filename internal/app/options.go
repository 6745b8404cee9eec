package service

import (
	"time"

	"github.com/okian/elo/internal/adapters/repository"
	"github.com/okian/elo/internal/domain/validation"
	"github.com/okian/elo/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInitialRating sets the rating of newly seen players.
func WithInitialRating(r float64) Option {
	return func(s *Service) { s.initialRating = r }
}

// WithKFactor sets the k-factor of newly seen players.
func WithKFactor(k float64) Option {
	return func(s *Service) {
		if k > 0 {
			s.kFactor = k
		}
	}
}

// WithValidation sets the options of the advisory validator.
func WithValidation(opts ...validation.Option) Option {
	return func(s *Service) {
		s.validator = validation.New(opts...)
	}
}

// WithStrictValidation turns validation violations into run failures.
func WithStrictValidation(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// WithStore sets the store that receives each run's results.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock sets the clock used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDGenerator sets the function producing run identifiers.
func WithRunIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newRunID = gen
		}
	}
}
