package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/middlewares"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

type RouterConfig struct {
	CORSOrigins     []string
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	PracticeHandler *practice.Handler
	ResultsHandler  *results.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/questions", question.Routes(cfg.QuestionHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/practice", practice.Routes(cfg.PracticeHandler))
		r.Mount("/results", results.Routes(cfg.ResultsHandler))

		r.Route("/admin", func(r chi.Router) {
			r.Use(access.RequireRole(string(user.RoleAdmin)))
			r.Get("/users", cfg.UserHandler.ListUsers)
			r.Get("/catalog", cfg.QuestionHandler.CatalogStats)
		})
	})
	return r
}
