package handler

import (
	"net/http"

	"github.com/NickyVHDP/pokertracker/internal/service"
)

// StatsHandler handles GET /api/stats.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get computes the aggregate statistics, optionally restricted to an
// inclusive date range.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseTimeParam(q.Get("dateFrom"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dateFrom")
		return
	}
	to, err := parseTimeParam(q.Get("dateTo"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dateTo")
		return
	}

	stats, err := h.stats.Compute(r.Context(), from, to)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
