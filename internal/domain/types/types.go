// Package types contains the read shapes handed to reporting layers.
package types

import (
	"strconv"
	"time"
)

// Standing is one row of the standings table.
type Standing struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Rounded     int     `json:"rounded_rating"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	GamesLost   int     `json:"games_lost"`
}

// HistoryPoint is one (date, rating) sample of a player's rating series.
type HistoryPoint struct {
	Date   time.Time `json:"date"`
	Rating float64   `json:"rating"`
}

// Summary carries report-level metadata.
type Summary struct {
	TotalMatches   int       `json:"total_matches"`
	TotalPlayers   int       `json:"total_players"`
	FirstMatchDate time.Time `json:"first_match_date"`
	LastMatchDate  time.Time `json:"last_match_date"`
}

// Title renders the report headline used above the standings table.
func (s Summary) Title() string {
	if s.TotalMatches == 0 {
		return "No matches have been played"
	}
	return "A total of " + strconv.Itoa(s.TotalMatches) +
		" matches has been played up until " + s.LastMatchDate.Format(time.DateOnly)
}
