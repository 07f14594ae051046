package practice

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", h.StartSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.Abandon)
		r.Post("/select", h.SelectOption)
		r.Post("/submit", h.Submit)
		r.Post("/advance", h.Advance)
		r.Get("/summary", h.GetSummary)
	})

	r.Get("/bookmarks", h.ListBookmarks)
	r.Post("/bookmarks/{questionID}", h.ToggleBookmark)
	return r
}
