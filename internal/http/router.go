// Package httpapi assembles the public router: middleware stack,
// health probe, and the application module's routes.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"assure/internal/application"
	"assure/internal/platform/middleware"
	"assure/pkg/platform/httputil"
)

// NewRouter wires all public endpoints behind the shared middleware
// stack.
func NewRouter(apps *application.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	apps.Register(r)

	return r
}
