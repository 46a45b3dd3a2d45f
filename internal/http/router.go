package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bursarhq/bursar/internal/auth"
	"github.com/bursarhq/bursar/internal/http/academics"
	"github.com/bursarhq/bursar/internal/http/export"
	"github.com/bursarhq/bursar/internal/http/fees"
	"github.com/bursarhq/bursar/internal/http/feestructure"
	"github.com/bursarhq/bursar/internal/http/importcsv"
	"github.com/bursarhq/bursar/internal/http/matching"
)

func New(
	authSecret string,
	feesV1 *fees.Handler,
	academicsV1 *academics.Handler,
	structuresV1 *feestructure.Handler,
	importV1 *importcsv.Handler,
	matchingV1 *matching.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/fees", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			feesV1.Routes(r)
		})

		r.Route("/academics", academicsV1.Routes)

		r.Route("/fee-structures", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			structuresV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/matching", func(r chi.Router) {
			matchingV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
