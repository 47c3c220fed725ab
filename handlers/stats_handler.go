package handlers

import (
	"net/http"

	"github.com/galacticos-fc/clubsite/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.ListStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) SaveCounters(w http.ResponseWriter, r *http.Request) {
	var input services.StatsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.statsService.SaveCounters(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Recompute refreshes rating-derived aggregates across all players.
func (h *StatsHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	updated, err := h.statsService.RecomputeFromRatings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"updated": updated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
