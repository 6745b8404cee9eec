package report_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/elo/internal/adapters/report"
	"github.com/okian/elo/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

var day = time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)

func standings() []types.Standing {
	return []types.Standing{
		{Rank: 1, Name: "Bob", Rating: 1202.8, Rounded: 1203, GamesPlayed: 2, GamesWon: 1, GamesLost: 1},
		{Rank: 2, Name: "Alexandra", Rating: 1197.2, Rounded: 1197, GamesPlayed: 2, GamesWon: 1, GamesLost: 1},
	}
}

func TestWriteTable(t *testing.T) {
	Convey("Given standings", t, func() {
		var buf bytes.Buffer

		Convey("When rendered as a table", func() {
			So(report.WriteTable(&buf, standings()), ShouldBeNil)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

			Convey("Then there is a header and one row per player", func() {
				So(lines, ShouldHaveLength, 3)
				So(lines[0], ShouldContainSubstring, "Name")
				So(lines[1], ShouldContainSubstring, "1203")
				So(lines[2], ShouldContainSubstring, "1197")
			})

			Convey("Then names are right aligned", func() {
				bob := strings.Index(lines[1], "Bob") + len("Bob")
				alex := strings.Index(lines[2], "Alexandra") + len("Alexandra")
				So(bob, ShouldEqual, alex)
			})

			Convey("Then ratings are rounded", func() {
				So(buf.String(), ShouldNotContainSubstring, "1202.8")
			})
		})

		Convey("When there are no rows", func() {
			So(report.WriteTable(&buf, nil), ShouldBeNil)
			So(strings.Count(buf.String(), "\n"), ShouldEqual, 1)
		})
	})
}

func TestWriteSummary(t *testing.T) {
	Convey("Given a run summary", t, func() {
		var buf bytes.Buffer
		sum := types.Summary{TotalMatches: 2, TotalPlayers: 2, FirstMatchDate: day.AddDate(0, 0, -1), LastMatchDate: day}
		So(report.WriteSummary(&buf, sum, standings()), ShouldBeNil)

		Convey("Then the title line comes first", func() {
			first := strings.SplitN(buf.String(), "\n", 2)[0]
			So(first, ShouldEqual, "A total of 2 matches has been played up until 2024-01-26")
		})
	})
}

func TestJSONDocument(t *testing.T) {
	Convey("Given a report document", t, func() {
		doc := report.Document{
			RunID:       "run-1",
			GeneratedAt: day,
			Title:       "A total of 2 matches has been played up until 2024-01-26",
			Standings:   standings(),
			History: map[string][]types.HistoryPoint{
				"Bob": {{Date: day, Rating: 1202.8}},
			},
			Violations: []report.Violation{{Check: "winner", SequenceNumber: 2, Index: 1, Message: "invalid winner"}},
		}

		Convey("When encoded and decoded", func() {
			var buf bytes.Buffer
			So(report.EncodeJSON(&buf, doc), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"rounded_rating": 1203`)
			So(buf.String(), ShouldContainSubstring, `"match_no": 2`)
			got, err := report.DecodeJSON(&buf)

			Convey("Then the document survives", func() {
				So(err, ShouldBeNil)
				So(got.RunID, ShouldEqual, "run-1")
				So(got.Standings, ShouldResemble, doc.Standings)
				So(got.History["Bob"], ShouldHaveLength, 1)
			})
		})

		Convey("When saved to a file", func() {
			path := filepath.Join(t.TempDir(), "report.json")
			So(report.SaveJSON(context.Background(), path, doc), ShouldBeNil)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"run_id": "run-1"`)
		})

		Convey("When the target directory is missing", func() {
			err := report.SaveJSON(context.Background(), filepath.Join(t.TempDir(), "nope", "r.json"), doc)
			So(err, ShouldNotBeNil)
		})
	})
}
