package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/almanac-dev/almanac/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/events/{year}          computed event map (JSON)
//	GET  /api/v1/events/{year}/ics      computed events as iCalendar
//	GET  /api/v1/grid/{year}/{month}    month grid layout
//	POST /api/v1/birthdays/parse        birthday text -> records
//	GET  /api/v1/profiles               saved configurations
//	GET  /api/v1/profiles/{name}
//	PUT  /api/v1/profiles/{name}        (API key)
//	DEL  /api/v1/profiles/{name}        (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	// Auth middleware for profile-mutating routes
	authWrap := AuthMiddleware(cfg, logger)

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events/{year}", handlers.GetYearEvents)
		r.Get("/events/{year}/ics", handlers.GetYearEventsICS)
		r.Get("/grid/{year}/{month}", handlers.GetMonthGrid)
		r.Post("/birthdays/parse", handlers.ParseBirthdays)

		r.Get("/profiles", handlers.ListProfiles)
		r.Get("/profiles/{name}", handlers.GetProfile)

		// ======================================================================
		// Mutating routes (API key)
		// ======================================================================
		r.With(authWrap).Put("/profiles/{name}", handlers.SaveProfile)
		r.With(authWrap).Delete("/profiles/{name}", handlers.DeleteProfile)
	})

	return r
}
