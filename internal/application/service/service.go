// Package service orchestrates the application lifecycle: intake,
// progressive updates, field removal, and submission.
package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"assure/internal/application/metrics"
	"assure/internal/application/models"
	"assure/internal/application/schema"
	"assure/internal/application/store"
	"assure/pkg/audit"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/requestcontext"
)

// QuoteFunc computes the premium quote assigned at submission.
type QuoteFunc func() float64

// defaultQuote mirrors the pricing placeholder: a whole-dollar amount
// under a thousand. Real rating comes later.
func defaultQuote() float64 {
	return math.Floor(rand.Float64() * 1000)
}

// AuditPublisher is the sink for lifecycle audit events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates application intake and submission.
type Service struct {
	store          store.Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	quote          QuoteFunc
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithQuoteFunc overrides quote generation. Tests use it for
// deterministic quotes.
func WithQuoteFunc(quote QuoteFunc) Option {
	return func(s *Service) {
		s.quote = quote
	}
}

// New constructs a Service.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		quote:  defaultQuote,
		tracer: otel.Tracer("assure/application"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View is the lifecycle layer's read model of one application.
type View struct {
	ID        int64
	Data      models.PartialApplication
	Completed bool
	Quote     *float64
	// App is the strict shape, set when Data passes full validation.
	App *models.Application
	// Errors lists what still blocks submission. Empty means the
	// application would pass full validation as it stands.
	Errors schema.Errors
}

// Valid reports whether the application currently passes full validation.
func (v View) Valid() bool {
	return len(v.Errors) == 0
}

// Create starts a new application from optionally pre-filled data. The
// provided fields must individually pass in-progress validation.
func (s *Service) Create(ctx context.Context, app models.PartialApplication) (View, error) {
	ctx, span := s.tracer.Start(ctx, "application.Create")
	defer span.End()

	if errs := schema.ValidateInProgress(app, requestcontext.Now(ctx)); len(errs) > 0 {
		s.incrementValidationFailure("create")
		return View{}, dErrors.Wrap(errs, dErrors.CodeBadRequest, errs.Error())
	}

	data, err := store.EncodeData(app)
	if err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode application")
	}
	record, err := s.store.Create(ctx, data)
	if err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application")
	}
	span.SetAttributes(attribute.Int64("application.id", record.ID))

	s.logAudit(ctx, audit.EventApplicationCreated, record.ID, nil)
	s.incrementCreated()

	return s.view(ctx, record), nil
}

// Search returns one application with its current validation state.
func (s *Service) Search(ctx context.Context, id int64) (View, error) {
	ctx, span := s.tracer.Start(ctx, "application.Search",
		trace.WithAttributes(attribute.Int64("application.id", id)))
	defer span.End()

	record, err := s.findRecord(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, record), nil
}

// Patch merges new fields into an application. Submitted applications
// are frozen.
func (s *Service) Patch(ctx context.Context, id int64, patch models.PartialApplication) (View, error) {
	ctx, span := s.tracer.Start(ctx, "application.Patch",
		trace.WithAttributes(attribute.Int64("application.id", id)))
	defer span.End()
	start := time.Now()
	defer s.observePatch(start)

	record, err := s.findRecord(ctx, id)
	if err != nil {
		return View{}, err
	}
	if record.Completed {
		return View{}, dErrors.New(dErrors.CodeAlreadySubmitted,
			"Unable to update application as it has already been submitted")
	}

	if errs := schema.ValidateInProgress(patch, requestcontext.Now(ctx)); len(errs) > 0 {
		s.incrementValidationFailure("patch")
		return View{}, dErrors.Wrap(errs, dErrors.CodeBadRequest, errs.Error())
	}

	merged := models.Merge(store.DecodeData(record.Data), patch)
	data, err := store.EncodeData(merged)
	if err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode application")
	}
	if err := s.store.UpdateData(ctx, id, data); err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "Unable to update application")
	}
	record.Data = data

	s.logAudit(ctx, audit.EventApplicationUpdated, id, nil)

	return s.view(ctx, record), nil
}

// RemoveField deletes one field, addressed by dot path, from an
// application. Paths that do not resolve leave the data untouched.
func (s *Service) RemoveField(ctx context.Context, id int64, path string) (View, error) {
	ctx, span := s.tracer.Start(ctx, "application.RemoveField",
		trace.WithAttributes(attribute.Int64("application.id", id)))
	defer span.End()

	record, err := s.findRecord(ctx, id)
	if err != nil {
		return View{}, err
	}
	if record.Completed {
		return View{}, dErrors.New(dErrors.CodeAlreadySubmitted,
			"Unable to update application as it has already been submitted")
	}

	updated := models.RemovePath(store.DecodeData(record.Data), path)
	data, err := store.EncodeData(updated)
	if err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode application")
	}
	if err := s.store.UpdateData(ctx, id, data); err != nil {
		return View{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "Unable to delete the specified field")
	}
	record.Data = data

	s.logAudit(ctx, audit.EventFieldRemoved, id, map[string]any{"path": path})

	return s.view(ctx, record), nil
}

// Submit runs full validation and, on success, assigns a quote and
// marks the application completed. The transition is one-way.
func (s *Service) Submit(ctx context.Context, id int64) (models.CompletedApplication, error) {
	ctx, span := s.tracer.Start(ctx, "application.Submit",
		trace.WithAttributes(attribute.Int64("application.id", id)))
	defer span.End()
	start := time.Now()
	defer s.observeSubmit(start)

	record, err := s.findRecord(ctx, id)
	if err != nil {
		return models.CompletedApplication{}, err
	}
	if record.Completed {
		return models.CompletedApplication{}, dErrors.New(dErrors.CodeAlreadySubmitted,
			"Unable to update application as it has already been submitted")
	}

	app, errs := schema.ParseValid(store.DecodeData(record.Data), requestcontext.Now(ctx))
	if len(errs) > 0 {
		s.incrementValidationFailure("submit")
		return models.CompletedApplication{}, dErrors.Wrap(errs, dErrors.CodeValidation,
			"Unable to submit application as it is not valid")
	}

	quote := s.quote()
	if err := s.store.Complete(ctx, id, quote); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.CompletedApplication{}, dErrors.New(dErrors.CodeNotFound, "Application not found")
		}
		return models.CompletedApplication{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit application")
	}

	s.logAudit(ctx, audit.EventApplicationSubmitted, id, map[string]any{"quote": quote})
	s.incrementSubmitted()

	return models.CompletedApplication{
		Application: app,
		Completed:   true,
		Quote:       quote,
	}, nil
}

func (s *Service) findRecord(ctx context.Context, id int64) (store.Record, error) {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Record{}, dErrors.New(dErrors.CodeNotFound, "Application not found")
		}
		return store.Record{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	return record, nil
}

// view assembles the read model, revalidating the stored data so
// callers always see the current distance to submittability.
func (s *Service) view(ctx context.Context, record store.Record) View {
	v := View{
		ID:        record.ID,
		Data:      store.DecodeData(record.Data),
		Completed: record.Completed,
		Quote:     record.Quote,
	}
	if record.Completed {
		completed, errs := schema.ParseCompleted(v.Data, record.Completed, record.Quote, requestcontext.Now(ctx))
		if len(errs) > 0 {
			v.Errors = errs
		} else {
			v.App = &completed.Application
		}
		return v
	}
	app, errs := schema.ParseValid(v.Data, requestcontext.Now(ctx))
	if len(errs) > 0 {
		v.Errors = errs
	} else {
		v.App = &app
	}
	return v
}

func (s *Service) logAudit(ctx context.Context, action audit.AuditEvent, applicationID int64, detail map[string]any) {
	requestID := requestcontext.RequestID(ctx)
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"application_id", applicationID,
			"request_id", requestID,
			"log_type", "audit")
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		ApplicationID: applicationID,
		Action:        string(action),
		RequestID:     requestID,
		Detail:        detail,
	})
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
}

func (s *Service) incrementSubmitted() {
	if s.metrics != nil {
		s.metrics.IncrementSubmitted()
	}
}

func (s *Service) incrementValidationFailure(operation string) {
	if s.metrics != nil {
		s.metrics.IncrementValidationFailure(operation)
	}
}

func (s *Service) observePatch(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObservePatch(start)
	}
}

func (s *Service) observeSubmit(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSubmit(start)
	}
}
