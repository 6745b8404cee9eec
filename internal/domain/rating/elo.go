// Package rating folds an ordered match list into Elo ratings, win/loss
// records and per-player rating histories.
package rating

import "math"

// Defaults for newly registered players.
const (
	DefaultInitialRating = 1200.0
	DefaultKFactor       = 32.0
)

// scale is the rating gap at which the stronger player is expected to win ten times as often.
const scale = 400.0

// Expected returns the logistic expected score of a player rated ra against one rated rb.
func Expected(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/scale))
}

// Next returns the rating after a match given the actual and expected score.
func Next(r, k, score, expected float64) float64 {
	return r + k*(score-expected)
}

// Round rounds a rating half to even, the way the standings table has always shown it.
func Round(r float64) int {
	return int(math.RoundToEven(r))
}
