// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/handlers"
)

// LivePath is where the live websocket endpoint is mounted.
const LivePath = "/live"

// Routes groups the handlers served by NewRouter.
type Routes struct {
	Component *handlers.ComponentHandler
	Shop      *handlers.ShopHandler
	Health    *handlers.HealthHandler

	// Live serves LivePath. Nil leaves the path unregistered.
	Live http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	// HTML host for the connected component.
	r.Get("/", routes.Component.Page)
	r.Route("/components/"+routes.Component.Name(), func(r chi.Router) {
		r.Get("/", routes.Component.Fragment)
		r.Post("/handlers/{name}", routes.Component.Invoke)
	})

	if routes.Live != nil {
		r.Get(LivePath, routes.Live.ServeHTTP)
	}

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", routes.Shop.GetState)
		r.Post("/actions", routes.Shop.Dispatch)
	})

	return r
}
