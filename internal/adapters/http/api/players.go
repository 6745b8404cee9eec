package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/elo/internal/domain/types"
)

// PlayerDependencies defines the interface for per-player reads.
type PlayerDependencies interface {
	Rank(ctx context.Context, name string) (Standing, error)
	History(ctx context.Context, name string) ([]types.HistoryPoint, error)
}

// PlayerHandler handles player requests.
type PlayerHandler struct {
	deps PlayerDependencies
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(deps PlayerDependencies) *PlayerHandler {
	return &PlayerHandler{deps: deps}
}

type historyResponse struct {
	Name    string               `json:"name"`
	History []types.HistoryPoint `json:"history"`
}

// HandleGetPlayer handles GET /players/{name} requests.
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrapf(op, ErrBadRequest, "missing player name"))
		return
	}
	row, err := h.deps.Rank(r.Context(), name)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// HandleGetHistory handles GET /players/{name}/history requests.
func (h *PlayerHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_history"
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrapf(op, ErrBadRequest, "missing player name"))
		return
	}
	series, err := h.deps.History(r.Context(), name)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Name: name, History: series})
}
