package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)
	r.Put("/me/subscription", h.UpdateSubscription)
	return r
}
