package rating

import (
	"context"
	"math"

	"github.com/okian/elo/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithInitialRating sets the rating given to newly registered players.
func WithInitialRating(r float64) Option {
	return func(e *Engine) {
		if !math.IsNaN(r) && !math.IsInf(r, 0) {
			e.initialRating = r
		}
	}
}

// WithKFactor sets the k-factor given to newly registered players.
func WithKFactor(k float64) Option {
	return func(e *Engine) {
		if k > 0 && !math.IsInf(k, 0) {
			e.kFactor = k
		}
	}
}

// WithLogger sets the logger used for per-match diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers fn to be called after every committed match.
func WithObserver(fn func(ctx context.Context, u Update)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}
