package neurobond

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	analysisdialog "github.com/neurobond/neurobond/internal/http/handlers/analysis/dialog"
	casecreate "github.com/neurobond/neurobond/internal/http/handlers/cases/create"
	caselist "github.com/neurobond/neurobond/internal/http/handlers/cases/list"
	cataloglexicon "github.com/neurobond/neurobond/internal/http/handlers/catalog/lexicon"
	catalogstages "github.com/neurobond/neurobond/internal/http/handlers/catalog/stages"
	checkoutcreate "github.com/neurobond/neurobond/internal/http/handlers/checkout/create"
	checkoutstatus "github.com/neurobond/neurobond/internal/http/handlers/checkout/status"
	"github.com/neurobond/neurobond/internal/http/handlers/health"
	userbyemail "github.com/neurobond/neurobond/internal/http/handlers/user/byemail"
	userme "github.com/neurobond/neurobond/internal/http/handlers/user/me"
	userregister "github.com/neurobond/neurobond/internal/http/handlers/user/register"
	"github.com/neurobond/neurobond/internal/http/middlewarectx"
	"github.com/neurobond/neurobond/internal/lib/jwt"
	analysisservice "github.com/neurobond/neurobond/internal/services/analysis"
	caseservice "github.com/neurobond/neurobond/internal/services/cases"
	checkoutservice "github.com/neurobond/neurobond/internal/services/checkout"
	userservice "github.com/neurobond/neurobond/internal/services/user"
)

// RegisterRoutes registers all routes of the backend.
func RegisterRoutes(r chi.Router, logger *slog.Logger, maker jwt.Maker,
	users *userservice.Service, cases *caseservice.Service,
	checkout *checkoutservice.Service, provider analysisservice.Provider) {

	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/health", health.New(logger).ServeHTTP)

		// Open endpoints: onboarding and launch happen before any session
		// exists, checkout reconciliation happens right after an external
		// redirect.
		r.Post("/register", userregister.New(logger, users).ServeHTTP)
		r.Get("/user/by-email/{email}", userbyemail.New(logger, users).ServeHTTP)
		r.Post("/checkout/session", checkoutcreate.New(logger, checkout).ServeHTTP)
		r.Get("/checkout/status/{session_id}", checkoutstatus.New(logger, checkout).ServeHTTP)
		r.Get("/community-cases", caselist.New(logger, cases).ServeHTTP)
		r.Post("/create-community-case-direct", casecreate.New(logger, cases).ServeHTTP)
		r.Post("/analysis/dialog", analysisdialog.New(logger, provider).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(maker, logger))
			r.Get("/me", userme.New(logger).ServeHTTP)
		})

		// Content endpoints are reachable anonymously but sliced per tier.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.TierMiddleware(maker, logger))
			r.Get("/lexicon", cataloglexicon.New(logger).ServeHTTP)
			r.Get("/training-stages", catalogstages.New(logger).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
