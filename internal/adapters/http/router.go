// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is composed with middleware.Chain and applied to every route,
// outermost first. A nil adminHandler leaves the administrative routes
// unmounted.
func NewRouter(
	confHandler *handlers.ClusterConfHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Read-only configuration view. The static filter route wins over {name}.
		r.Get("/cluster_conf", confHandler.List)
		r.Get("/cluster_conf/filter", confHandler.Filter)
		r.Get("/cluster_conf/{name}", confHandler.Get)

		if adminHandler == nil {
			return
		}

		// Administrative write channel.
		r.Get("/admin/config", adminHandler.Dump)
		r.Post("/admin/config/bulk", adminHandler.BulkSet)
		r.Post("/admin/config/apply", adminHandler.Apply)
		r.Put("/admin/config/{section}/{name}", adminHandler.Set)
		r.Delete("/admin/config/{section}/{name}", adminHandler.Remove)
	})

	return r
}
