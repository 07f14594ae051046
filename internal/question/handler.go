package question

import (
	"net/http"

	"github.com/nanambeah/MedPrep-Ghana/internal/config"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) ListDisciplines(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.catalog.Disciplines())
}

// ListQuestions previews the working set a practice filter would produce.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		Discipline: r.URL.Query().Get("discipline"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	questions := h.catalog.Filter(f)
	out := make([]SummaryDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToSummary(q))
	}

	config.WithContext(r.Context()).Debugf("Filter %+v matched %d questions", f, len(out))
	config.JSON(w, http.StatusOK, out)
}

func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"total":       h.catalog.Len(),
		"disciplines": h.catalog.Stats(),
	})
}
