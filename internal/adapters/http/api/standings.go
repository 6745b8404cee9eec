package api

import (
	"context"
	"net/http"
	"strconv"
)

// StandingsDependencies defines the interface for standings reads.
type StandingsDependencies interface {
	TopN(ctx context.Context, n int) ([]Standing, error)
}

// StandingsHandler handles standings requests.
type StandingsHandler struct {
	deps     StandingsDependencies
	maxLimit int
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies, maxLimit int) *StandingsHandler {
	return &StandingsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetStandings handles GET /standings?limit=N requests. Without a
// limit the first maxLimit rows are returned.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", wrapf(op, ErrBadRequest, "limit %q", limitStr))
			return
		}
		if v > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", wrapf(op, ErrLimitExceeded, "%d > %d", v, h.maxLimit))
			return
		}
		n = v
	}
	rows, err := h.deps.TopN(r.Context(), n)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
