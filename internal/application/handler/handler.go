// Package handler exposes the application lifecycle over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"assure/internal/application/models"
	"assure/internal/application/schema"
	"assure/internal/application/service"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/httputil"
	"assure/pkg/requestcontext"
)

// Service defines the lifecycle operations the handler exposes.
type Service interface {
	Create(ctx context.Context, app models.PartialApplication) (service.View, error)
	Search(ctx context.Context, id int64) (service.View, error)
	Patch(ctx context.Context, id int64, patch models.PartialApplication) (service.View, error)
	RemoveField(ctx context.Context, id int64, path string) (service.View, error)
	Submit(ctx context.Context, id int64) (models.CompletedApplication, error)
}

// Handler wires application endpoints to the lifecycle service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an application handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications", h.HandleCreate)
	r.Get("/applications/{id}", h.HandleSearch)
	r.Patch("/applications/{id}", h.HandleUpdate)
	r.Delete("/applications/{id}/data", h.HandleRemoveField)
	r.Post("/applications/{id}/submit", h.HandleSubmit)
}

type dataResponse struct {
	Data any `json:"data"`
}

type progressResponse struct {
	Data   models.PartialApplication `json:"data"`
	Errors []schema.FieldError       `json:"errors,omitempty"`
}

// HandleCreate handles POST /applications requests. Partial
// applications are allowed; provided fields must individually validate.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	view, err := h.service.Create(ctx, body)
	if err != nil {
		h.writeError(ctx, w, "create application", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"id": view.ID})
}

// HandleSearch handles GET /applications/{id} requests. Submitted
// applications return the completed shape with 200; everything else is
// partial content.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Search(ctx, id)
	if err != nil {
		h.writeError(ctx, w, "search application", err)
		return
	}

	if view.Completed && view.App != nil && view.Quote != nil {
		httputil.WriteJSON(w, http.StatusOK, dataResponse{Data: models.CompletedApplication{
			Application: *view.App,
			Completed:   true,
			Quote:       *view.Quote,
		}})
		return
	}

	httputil.WriteJSON(w, http.StatusPartialContent, progressResponse{
		Data:   view.Data,
		Errors: view.Errors,
	})
}

// HandleUpdate handles PATCH /applications/{id} requests.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}
	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	view, err := h.service.Patch(ctx, id, body)
	if err != nil {
		h.writeError(ctx, w, "update application", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dataResponse{Data: view.Data})
}

type removeFieldRequest struct {
	Path string `json:"path"`
}

// HandleRemoveField handles DELETE /applications/{id}/data requests.
func (h *Handler) HandleRemoveField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	var req removeFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "A field path is required"))
		return
	}

	view, err := h.service.RemoveField(ctx, id, req.Path)
	if err != nil {
		h.writeError(ctx, w, "remove application field", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dataResponse{Data: view.Data})
}

// HandleSubmit handles POST /applications/{id}/submit requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	completed, err := h.service.Submit(ctx, id)
	if err != nil {
		h.writeError(ctx, w, "submit application", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dataResponse{Data: completed})
}

// applicationID parses the id path parameter. Ids that are not numeric
// cannot name a record, so they read as not found.
func (h *Handler) applicationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Application not found"))
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (models.PartialApplication, bool) {
	var body models.PartialApplication
	err := json.NewDecoder(r.Body).Decode(&body)
	if errors.Is(err, io.EOF) {
		// No body at all reads as an empty partial application.
		return models.PartialApplication{}, true
	}
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return models.PartialApplication{}, false
	}
	return body, true
}

// errorResponse is the failure envelope. Field errors ride along when
// validation produced them.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []schema.FieldError `json:"errors,omitempty"`
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if h.logger != nil {
		h.logger.ErrorContext(ctx, op+" failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}

	var fieldErrs schema.Errors
	if errors.As(err, &fieldErrs) {
		httputil.WriteJSON(w, httputil.StatusOf(err), errorResponse{
			Message: dErrors.MessageOf(err),
			Errors:  fieldErrs,
		})
		return
	}
	httputil.WriteError(w, err)
}
