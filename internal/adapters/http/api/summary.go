package api

import (
	"context"
	"net/http"

	"github.com/okian/elo/internal/domain/types"
)

// SummaryDependencies defines the interface for run metadata reads.
type SummaryDependencies interface {
	Summary(ctx context.Context) (types.Summary, error)
}

// SummaryHandler handles summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

type summaryResponse struct {
	types.Summary
	Title string `json:"title"`
}

// HandleGetSummary handles GET /summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.deps.Summary(r.Context())
	if err != nil {
		writeStoreError(w, "api.get_summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: sum, Title: sum.Title()})
}
