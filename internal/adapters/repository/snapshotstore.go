package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/okian/elo/internal/domain/types"
	"github.com/okian/elo/pkg/metrics"
)

// Snapshot is an immutable view of one rating run. It must not be modified
// after it is published.
type Snapshot struct {
	RunID       string
	PublishedAt time.Time
	Standings   []types.Standing // sorted, best first
	History     map[string][]types.HistoryPoint
	Summary     types.Summary

	rankByName map[string]int // name -> index into Standings
}

// NewSnapshot builds a snapshot and its name index.
func NewSnapshot(runID string, standings []types.Standing, history map[string][]types.HistoryPoint, summary types.Summary) *Snapshot {
	s := &Snapshot{
		RunID:      runID,
		Standings:  standings,
		History:    history,
		Summary:    summary,
		rankByName: make(map[string]int, len(standings)),
	}
	for i, row := range standings {
		s.rankByName[row.Name] = i
	}
	return s
}

// SnapshotStore is an in-memory Store. Readers never block writers: each
// Publish swaps a pointer to a fully built snapshot.
type SnapshotStore struct {
	snapshot atomic.Pointer[Snapshot]
	now      func() time.Time
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish implements Store.Publish.
func (s *SnapshotStore) Publish(_ context.Context, snap *Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if snap.rankByName == nil {
		snap = NewSnapshot(snap.RunID, snap.Standings, snap.History, snap.Summary)
	}
	snap.PublishedAt = s.now()
	s.snapshot.Store(snap)
	metrics.UpdatePlayersTotal(len(snap.Standings))
	return nil
}

// Current returns the published snapshot or ErrNoSnapshot.
func (s *SnapshotStore) Current(_ context.Context) (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		metrics.RecordErrorByComponent("repository", "no_snapshot")
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// TopN implements Store.TopN.
func (s *SnapshotStore) TopN(ctx context.Context, n int) ([]types.Standing, error) {
	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(snap.Standings) {
		n = len(snap.Standings)
	}
	out := make([]types.Standing, n)
	copy(out, snap.Standings[:n])
	return out, nil
}

// Rank implements Store.Rank.
func (s *SnapshotStore) Rank(ctx context.Context, name string) (types.Standing, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return types.Standing{}, err
	}
	i, ok := snap.rankByName[name]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return types.Standing{}, ErrNotFound
	}
	return snap.Standings[i], nil
}

// History implements Store.History.
func (s *SnapshotStore) History(ctx context.Context, name string) ([]types.HistoryPoint, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	series, ok := snap.History[name]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, ErrNotFound
	}
	out := make([]types.HistoryPoint, len(series))
	copy(out, series)
	return out, nil
}

// Summary implements Store.Summary.
func (s *SnapshotStore) Summary(ctx context.Context) (types.Summary, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return types.Summary{}, err
	}
	return snap.Summary, nil
}

// Count implements Store.Count.
func (s *SnapshotStore) Count(_ context.Context) int {
	snap := s.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(snap.Standings)
}
