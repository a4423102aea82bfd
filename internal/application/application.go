// Package application bundles the intake module: progressive
// validation, merge/removal semantics, and the submission transition.
package application

import (
	"log/slog"

	"assure/internal/application/handler"
	"assure/internal/application/service"
	"assure/internal/application/store"
)

// Service exposes the application lifecycle.
type Service = service.Service

// Handler wires HTTP endpoints to the application service.
type Handler = handler.Handler

// NewService constructs the application service over a record store.
func NewService(st store.Store, opts ...service.Option) *Service {
	return service.New(st, opts...)
}

// NewHandler constructs an HTTP handler for application routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
