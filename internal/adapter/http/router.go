package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/iho/bookkeeper/internal/adapter/http/handler"
	"github.com/iho/bookkeeper/internal/adapter/http/middleware"
	"github.com/iho/bookkeeper/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	DetailHandler    *handler.DetailHandler
	VoucherHandler   *handler.VoucherHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RebuildLimiter   *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/details", cfg.DetailHandler.ListByAccount)
			r.Get("/{id}/verify", cfg.DetailHandler.Verify)

			// Rebuilds rewrite whole accounts, so they are rate limited
			r.Group(func(r chi.Router) {
				if cfg.RebuildLimiter != nil {
					r.Use(cfg.RebuildLimiter.Limit)
				}
				r.Post("/{id}/rebuild", cfg.DetailHandler.Rebuild)
			})
		})

		// Details
		r.Route("/details", func(r chi.Router) {
			r.Post("/", cfg.DetailHandler.Create)
			r.Get("/{id}", cfg.DetailHandler.Get)
			r.Put("/{id}", cfg.DetailHandler.Update)
			r.Delete("/{id}", cfg.DetailHandler.Delete)
			r.Post("/{id}/vouchers", cfg.VoucherHandler.Upload)
			r.Get("/{id}/vouchers", cfg.VoucherHandler.List)
		})

		// Vouchers
		r.Route("/vouchers", func(r chi.Router) {
			r.Get("/{id}", cfg.VoucherHandler.Download)
			r.Delete("/{id}", cfg.VoucherHandler.Delete)
		})

		// Admin
		r.Route("/admin", func(r chi.Router) {
			if cfg.RebuildLimiter != nil {
				r.Use(cfg.RebuildLimiter.Limit)
			}
			r.Post("/rebuild", cfg.DetailHandler.RebuildAll)
		})
	})

	return r
}
