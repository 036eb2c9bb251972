package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	analyticsHandler "github.com/aria-finance/analytics/internal/http/analytics"
	authmw "github.com/aria-finance/analytics/internal/http/middleware"
)

func New(analyticsV1 *analyticsHandler.Handler, jwtSecret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/analytics", func(r chi.Router) {
			r.Use(authmw.Auth(jwtSecret))
			analyticsV1.Routes(r)
		})
	})

	return router
}
