package validation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/elo/internal/domain/model"
	"github.com/okian/elo/internal/domain/validation"
	. "github.com/smartystreets/goconvey/convey"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func m(seq int, p1, p2, winner string, d int) model.Match {
	return model.Match{SequenceNumber: seq, Player1: p1, Player2: p2, Winner: winner, Date: day(d)}
}

func TestCheckSequenceNumbers(t *testing.T) {
	Convey("Given match lists", t, func() {
		Convey("When numbering runs 1..n", func() {
			err := validation.CheckSequenceNumbers([]model.Match{m(1, "A", "B", "A", 1), m(2, "A", "B", "B", 1), m(3, "A", "C", "C", 2)})

			Convey("Then the check passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When numbering does not start at 1", func() {
			err := validation.CheckSequenceNumbers([]model.Match{m(2, "A", "B", "A", 1)})

			Convey("Then the first record is reported", func() {
				So(errors.Is(err, model.ErrSequenceViolation), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "match_no is not sequential")
				var rerr *model.RecordError
				So(errors.As(err, &rerr), ShouldBeTrue)
				So(rerr.Index, ShouldEqual, 0)
			})
		})

		Convey("When numbering restarts", func() {
			err := validation.CheckSequenceNumbers([]model.Match{m(1, "A", "B", "A", 1), m(2, "A", "B", "A", 1), m(1, "A", "B", "A", 2), m(2, "A", "B", "A", 2)})

			Convey("Then it fails hard on the restart", func() {
				var rerr *model.RecordError
				So(errors.As(err, &rerr), ShouldBeTrue)
				So(rerr.Index, ShouldEqual, 2)
				So(rerr.SequenceNumber, ShouldEqual, 1)
			})
		})

		Convey("When the list is empty", func() {
			So(validation.CheckSequenceNumbers(nil), ShouldBeNil)
		})
	})
}

func TestCheckWinners(t *testing.T) {
	Convey("Given winners to check", t, func() {
		matches := []model.Match{
			m(1, "A", "B", "A", 1),
			m(2, "A", "B", model.Draw, 1),
			m(3, "A", "B", "C", 1),
			m(4, "draw", "B", "B", 1),
			m(5, "A", "B", "b", 1),
		}
		got := validation.CheckWinners(matches)

		Convey("Then every offending record is reported", func() {
			So(got, ShouldHaveLength, 3)
			So(got[0].Err.SequenceNumber, ShouldEqual, 3)
			So(got[1].Err.SequenceNumber, ShouldEqual, 4)
			So(got[1].Error(), ShouldContainSubstring, "reserved")
			So(got[2].Err.SequenceNumber, ShouldEqual, 5)
			So(errors.Is(got[0], model.ErrInvalidWinner), ShouldBeTrue)
		})
	})
}

func TestCheckDates(t *testing.T) {
	Convey("Given dates to check", t, func() {
		Convey("When dates are non-decreasing with same-day repeats", func() {
			got := validation.CheckDates([]model.Match{m(1, "A", "B", "A", 1), m(2, "A", "B", "A", 1), m(3, "A", "B", "A", 4)})
			So(got, ShouldBeEmpty)
		})

		Convey("When a date goes backwards", func() {
			got := validation.CheckDates([]model.Match{m(1, "A", "B", "A", 3), m(2, "A", "B", "A", 2), m(3, "A", "B", "A", 5), m(4, "A", "B", "A", 4)})

			Convey("Then each backwards step is reported", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Err.SequenceNumber, ShouldEqual, 2)
				So(got[1].Err.SequenceNumber, ShouldEqual, 4)
				So(errors.Is(got[0], model.ErrDateOrder), ShouldBeTrue)
				So(got[0].Error(), ShouldContainSubstring, "02.01.2024 is before 03.01.2024")
			})
		})

		Convey("When input order differs from match-number order", func() {
			got := validation.CheckDates([]model.Match{m(2, "A", "B", "A", 5), m(1, "A", "B", "A", 3)})

			Convey("Then dates are compared in match-number order", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}

func TestValidator(t *testing.T) {
	Convey("Given a match list with several problems", t, func() {
		ctx := context.Background()
		matches := []model.Match{
			m(1, "A", "B", "A", 2),
			m(3, "A", "B", "X", 1),
		}

		Convey("When validating with defaults", func() {
			r := validation.New().Validate(ctx, matches)

			Convey("Then only the sequence check runs", func() {
				So(r.Enabled, ShouldResemble, []validation.Check{validation.CheckSequence})
				So(r.Valid(), ShouldBeFalse)
				So(r.Count(validation.CheckSequence), ShouldEqual, 1)
				So(r.Count(validation.CheckWinner), ShouldEqual, 0)
				So(r.Checked, ShouldEqual, 2)
			})
		})

		Convey("When every check is enabled", func() {
			r := validation.New(validation.WithWinnerCheck(true), validation.WithDateOrderCheck(true)).Validate(ctx, matches)

			Convey("Then each check reports its violation", func() {
				So(r.Violations, ShouldHaveLength, 3)
				So(r.Count(validation.CheckSequence), ShouldEqual, 1)
				So(r.Count(validation.CheckWinner), ShouldEqual, 1)
				So(r.Count(validation.CheckDateOrder), ShouldEqual, 1)
			})

			Convey("And Err joins them", func() {
				err := r.Err()
				So(errors.Is(err, model.ErrSequenceViolation), ShouldBeTrue)
				So(errors.Is(err, model.ErrInvalidWinner), ShouldBeTrue)
				So(errors.Is(err, model.ErrDateOrder), ShouldBeTrue)
			})
		})

		Convey("When every check is disabled", func() {
			r := validation.New(validation.WithSequenceCheck(false)).Validate(ctx, matches)

			Convey("Then the report is valid", func() {
				So(r.Valid(), ShouldBeTrue)
				So(r.Err(), ShouldBeNil)
				So(r.Enabled, ShouldBeEmpty)
			})
		})
	})
}
