package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tmcampos/spendlane/internal/http/exportcsv"
	"github.com/tmcampos/spendlane/internal/http/upload"
)

func New(
	uploadsV1 *upload.Handler,
	exportV1 *exportcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Organization", "X-Actor"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/uploads", uploadsV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
