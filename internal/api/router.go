package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

type RouterConfig struct {
	Service *schedule.Service
	Logger  zerolog.Logger
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.Service, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	h := newHandlers(cfg.Service)

	// Scheduling endpoints
	r.Post("/appointments/office", h.bookOffice)
	r.Post("/appointments/imaging", h.bookImaging)
	r.Post("/appointments/reschedule", h.reschedule)
	r.Delete("/appointments", h.cancel)
	r.Get("/appointments", h.listAppointments)

	// Roster and reporting endpoints
	r.Get("/providers", h.listProviders)
	r.Get("/reports/credits", h.providerCredits)
	r.Post("/billing/close", h.closeBilling)

	return r
}
