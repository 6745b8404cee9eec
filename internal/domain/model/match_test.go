package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/elo/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatchOutcome(t *testing.T) {
	Convey("Given a match between Alice and Bob", t, func() {
		m := model.Match{SequenceNumber: 1, Player1: "Alice", Player2: "Bob", Date: day(2024, 1, 1)}

		Convey("When Alice wins", func() {
			m.Winner = "Alice"
			s1, s2 := m.Scores()

			Convey("Then player 1 scores 1", func() {
				So(m.Outcome(), ShouldEqual, model.Player1Won)
				So(s1, ShouldEqual, 1.0)
				So(s2, ShouldEqual, 0.0)
			})
		})

		Convey("When Bob wins", func() {
			m.Winner = "Bob"
			s1, s2 := m.Scores()

			Convey("Then player 2 scores 1", func() {
				So(m.Outcome(), ShouldEqual, model.Player2Won)
				So(s1, ShouldEqual, 0.0)
				So(s2, ShouldEqual, 1.0)
			})
		})

		Convey("When the winner is draw", func() {
			m.Winner = model.Draw
			s1, s2 := m.Scores()

			Convey("Then both score one half", func() {
				So(m.Outcome(), ShouldEqual, model.Drawn)
				So(s1, ShouldEqual, 0.5)
				So(s2, ShouldEqual, 0.5)
			})
		})

		Convey("When the winner names neither player", func() {
			m.Winner = "alice"

			Convey("Then it is scored as a draw because names are case-sensitive", func() {
				So(m.Outcome(), ShouldEqual, model.Drawn)
				So(m.Outcome().String(), ShouldEqual, "draw")
			})
		})
	})
}

func TestMatchCheck(t *testing.T) {
	Convey("Given match records to check", t, func() {
		valid := model.Match{SequenceNumber: 4, Player1: "A", Player2: "B", Winner: "A", Date: day(2024, 1, 1)}

		Convey("A complete record passes", func() {
			So(valid.Check(3), ShouldBeNil)
		})

		Convey("A record without player_1 is malformed", func() {
			m := valid
			m.Player1 = " "
			err := m.Check(3)
			So(errors.Is(err, model.ErrMalformedRecord), ShouldBeTrue)

			var rerr *model.RecordError
			So(errors.As(err, &rerr), ShouldBeTrue)
			So(rerr.Field, ShouldEqual, "player_1")
			So(rerr.Index, ShouldEqual, 3)
			So(rerr.SequenceNumber, ShouldEqual, 4)
		})

		Convey("A record without a date is malformed", func() {
			m := valid
			m.Date = time.Time{}
			So(errors.Is(m.Check(0), model.ErrMalformedRecord), ShouldBeTrue)
		})

		Convey("A self-match is malformed", func() {
			m := valid
			m.Player2 = "A"
			err := m.Check(0)
			So(errors.Is(err, model.ErrMalformedRecord), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "cannot meet themselves")
		})
	})
}

func TestDates(t *testing.T) {
	Convey("Given match-file dates", t, func() {
		Convey("A day.month.year date parses to UTC midnight", func() {
			d, err := model.ParseDate("25.01.2024")
			So(err, ShouldBeNil)
			So(d.Equal(day(2024, 1, 25)), ShouldBeTrue)
			So(model.FormatDate(d), ShouldEqual, "25.01.2024")
		})

		Convey("An ISO date is rejected", func() {
			_, err := model.ParseDate("2024-01-25")
			So(err, ShouldNotBeNil)
		})

		Convey("CivilDate drops the clock", func() {
			at := time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC)
			So(model.CivilDate(at).Equal(day(2024, 3, 9)), ShouldBeTrue)
		})
	})
}

func TestPlayerGamesDrawn(t *testing.T) {
	Convey("Drawn games are derived from the counters", t, func() {
		p := model.Player{GamesPlayed: 5, GamesWon: 2, GamesLost: 1}
		So(p.GamesDrawn(), ShouldEqual, 2)
	})
}
