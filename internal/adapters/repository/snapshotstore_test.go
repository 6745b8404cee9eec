package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/okian/elo/internal/adapters/repository"
	"github.com/okian/elo/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleSnapshot() *repository.Snapshot {
	day := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
	standings := []types.Standing{
		{Rank: 1, Name: "Bob", Rating: 1216, Rounded: 1216, GamesPlayed: 1, GamesWon: 1},
		{Rank: 2, Name: "Alice", Rating: 1184, Rounded: 1184, GamesPlayed: 1, GamesLost: 1},
	}
	history := map[string][]types.HistoryPoint{
		"Alice": {{Date: day.AddDate(0, 0, -1), Rating: 1200}, {Date: day, Rating: 1184}},
		"Bob":   {{Date: day.AddDate(0, 0, -1), Rating: 1200}, {Date: day, Rating: 1216}},
	}
	summary := types.Summary{TotalMatches: 1, TotalPlayers: 2, FirstMatchDate: day, LastMatchDate: day}
	return repository.NewSnapshot("run-1", standings, history, summary)
}

func TestSnapshotStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		store := repository.NewSnapshotStore(repository.WithClock(func() time.Time { return fixed }))

		Convey("Then reads report that nothing is published", func() {
			_, err := store.TopN(ctx, 10)
			So(err, ShouldEqual, repository.ErrNoSnapshot)
			_, err = store.Rank(ctx, "Alice")
			So(err, ShouldEqual, repository.ErrNoSnapshot)
			_, err = store.Summary(ctx)
			So(err, ShouldEqual, repository.ErrNoSnapshot)
			So(store.Count(ctx), ShouldEqual, 0)
		})

		Convey("Then publishing nil fails", func() {
			So(store.Publish(ctx, nil), ShouldEqual, repository.ErrNilSnapshot)
		})

		Convey("When a snapshot is published", func() {
			So(store.Publish(ctx, sampleSnapshot()), ShouldBeNil)

			Convey("Then it is stamped with the store clock", func() {
				snap, err := store.Current(ctx)
				So(err, ShouldBeNil)
				So(snap.PublishedAt, ShouldEqual, fixed)
				So(snap.RunID, ShouldEqual, "run-1")
			})

			Convey("Then TopN returns rows best first", func() {
				rows, err := store.TopN(ctx, 1)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Name, ShouldEqual, "Bob")
			})

			Convey("Then TopN caps at the number of players", func() {
				rows, err := store.TopN(ctx, 50)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
			})

			Convey("Then a non-positive limit is rejected", func() {
				_, err := store.TopN(ctx, 0)
				So(err, ShouldEqual, repository.ErrInvalidLimit)
			})

			Convey("Then Rank finds a player by name", func() {
				row, err := store.Rank(ctx, "Alice")
				So(err, ShouldBeNil)
				So(row.Rank, ShouldEqual, 2)
				_, err = store.Rank(ctx, "Nobody")
				So(err, ShouldEqual, repository.ErrNotFound)
			})

			Convey("Then History returns a copy", func() {
				series, err := store.History(ctx, "Alice")
				So(err, ShouldBeNil)
				So(series, ShouldHaveLength, 2)
				series[0].Rating = 0
				again, _ := store.History(ctx, "Alice")
				So(again[0].Rating, ShouldEqual, 1200.0)
				_, err = store.History(ctx, "Nobody")
				So(err, ShouldEqual, repository.ErrNotFound)
			})

			Convey("Then Summary and Count describe the run", func() {
				sum, err := store.Summary(ctx)
				So(err, ShouldBeNil)
				So(sum.TotalMatches, ShouldEqual, 1)
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When a snapshot without an index is published", func() {
			snap := &repository.Snapshot{Standings: []types.Standing{{Rank: 1, Name: "Zed"}}}
			So(store.Publish(ctx, snap), ShouldBeNil)

			Convey("Then lookups still work", func() {
				row, err := store.Rank(ctx, "Zed")
				So(err, ShouldBeNil)
				So(row.Rank, ShouldEqual, 1)
			})
		})
	})
}

func TestSnapshotStoreConcurrentReads(t *testing.T) {
	Convey("Given readers running while snapshots are published", t, func() {
		ctx := context.Background()
		store := repository.NewSnapshotStore()
		So(store.Publish(ctx, sampleSnapshot()), ShouldBeNil)

		var wg sync.WaitGroup
		errs := make(chan error, 64)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if _, err := store.TopN(ctx, 2); err != nil {
						errs <- err
						return
					}
				}
			}()
		}
		for i := 0; i < 20; i++ {
			So(store.Publish(ctx, sampleSnapshot()), ShouldBeNil)
		}
		wg.Wait()
		close(errs)

		Convey("Then no reader sees an error", func() {
			So(len(errs), ShouldEqual, 0)
		})
	})
}
