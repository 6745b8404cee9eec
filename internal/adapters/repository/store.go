// Package repository holds the published rating state served to readers.
package repository

import (
	"context"

	"github.com/okian/elo/internal/domain/types"
)

// Store provides read access to the most recently published rating run.
type Store interface {
	// Publish replaces the current state with snap.
	Publish(ctx context.Context, snap *Snapshot) error

	// TopN returns the first n standings rows. n larger than the number of
	// players returns every row. Returns ErrInvalidLimit for n < 1.
	TopN(ctx context.Context, n int) ([]types.Standing, error)

	// Rank returns the standings row of a player.
	// Returns ErrNotFound if the player is unknown.
	Rank(ctx context.Context, name string) (types.Standing, error)

	// History returns the date-ordered rating series of a player.
	History(ctx context.Context, name string) ([]types.HistoryPoint, error)

	// Summary returns the metadata of the published run.
	Summary(ctx context.Context) (types.Summary, error)

	// Count returns the number of rated players.
	Count(ctx context.Context) int
}
