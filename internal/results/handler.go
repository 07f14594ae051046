package results

import (
	"net/http"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
)

type Handler struct {
	history *History
}

func NewHandler(h *History) *Handler {
	return &Handler{history: h}
}

type ResultsResponse struct {
	Dashboard Summary  `json:"dashboard"`
	Practice  *Summary `json:"practice,omitempty"`
	Sessions  []Record `json:"sessions"`
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	dashboard, err := Aggregate(Dashboard())
	if err != nil {
		log.WithError(err).Error("Failed to aggregate dashboard stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sessions, err := h.history.List(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list practice history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	counts, err := h.history.Counts(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to count practice history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := ResultsResponse{
		Dashboard: dashboard,
		Sessions:  sessions,
	}
	if practice, err := Aggregate(counts); err == nil {
		resp.Practice = &practice
	}

	config.JSON(w, http.StatusOK, resp)
}
