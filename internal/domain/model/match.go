// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"strings"
	"time"
)

// Draw is the winner value that marks a drawn match. No player may use it as a name.
const Draw = "draw"

// DateLayout is the day.month.year layout used by match files, e.g. "25.01.2024".
const DateLayout = "02.01.2006"

// Outcome is the result of a match from player 1's point of view.
type Outcome int

const (
	// Drawn covers an explicit "draw" and any winner naming neither player.
	Drawn Outcome = iota
	Player1Won
	Player2Won
)

func (o Outcome) String() string {
	switch o {
	case Player1Won:
		return "player_1"
	case Player2Won:
		return "player_2"
	default:
		return "draw"
	}
}

// Match is one two-player result. Matches are immutable once loaded.
type Match struct {
	SequenceNumber int
	Player1        string
	Player2        string
	Winner         string
	Date           time.Time // calendar date at UTC midnight
}

// Outcome resolves the winner field against the two player names.
func (m Match) Outcome() Outcome {
	switch m.Winner {
	case m.Player1:
		return Player1Won
	case m.Player2:
		return Player2Won
	default:
		return Drawn
	}
}

// Scores returns the (player 1, player 2) actual score pair.
func (m Match) Scores() (float64, float64) {
	switch m.Outcome() {
	case Player1Won:
		return 1, 0
	case Player2Won:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// Check reports whether the record can be rated. index is the position of
// the record in its input list and is only used for error reporting.
func (m Match) Check(index int) error {
	switch {
	case strings.TrimSpace(m.Player1) == "":
		return Malformed(index, m.SequenceNumber, "player_1", errors.New("missing player_1"))
	case strings.TrimSpace(m.Player2) == "":
		return Malformed(index, m.SequenceNumber, "player_2", errors.New("missing player_2"))
	case m.Player1 == m.Player2:
		return Malformed(index, m.SequenceNumber, "player_2", errors.New("a player cannot meet themselves"))
	case m.Date.IsZero():
		return Malformed(index, m.SequenceNumber, "date", errors.New("missing date"))
	}
	return nil
}

// ParseDate parses a day.month.year date into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// FormatDate renders t in the match-file layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CivilDate truncates t to midnight UTC of its calendar day.
func CivilDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
