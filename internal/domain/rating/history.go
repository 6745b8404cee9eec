package rating

import (
	"sort"
	"time"

	"github.com/okian/elo/internal/domain/model"
	"github.com/okian/elo/internal/domain/types"
)

// History is a player's rating per calendar date. Writing a date that is
// already present replaces its rating: same-day matches collapse to the
// rating after the last one processed.
type History struct {
	byDay map[int64]float64 // unix seconds of the UTC midnight -> rating
}

func newHistory(seed time.Time, rating float64) *History {
	h := &History{byDay: make(map[int64]float64)}
	h.record(seed, rating)
	return h
}

func (h *History) record(date time.Time, rating float64) {
	h.byDay[model.CivilDate(date).Unix()] = rating
}

// Series returns the history ordered by date.
func (h *History) Series() []types.HistoryPoint {
	days := make([]int64, 0, len(h.byDay))
	for d := range h.byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	out := make([]types.HistoryPoint, len(days))
	for i, d := range days {
		out[i] = types.HistoryPoint{Date: time.Unix(d, 0).UTC(), Rating: h.byDay[d]}
	}
	return out
}
