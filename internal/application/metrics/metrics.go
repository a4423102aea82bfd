package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the application module.
// Tracks intake volume, submission outcomes, and critical path durations.
type Metrics struct {
	ApplicationsCreated   prometheus.Counter
	ApplicationsSubmitted prometheus.Counter
	ValidationFailures    *prometheus.CounterVec
	SubmitDuration        prometheus.Histogram
	PatchDuration         prometheus.Histogram
}

// New creates a new Metrics instance with all application module metrics registered.
func New() *Metrics {
	return &Metrics{
		ApplicationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assure_applications_created_total",
			Help: "Total number of applications started",
		}),
		ApplicationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assure_applications_submitted_total",
			Help: "Total number of applications submitted for a quote",
		}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "assure_validation_failures_total",
			Help: "Total number of rejected operations by validation stage",
		}, []string{"operation"}),
		SubmitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "assure_submit_duration_seconds",
			Help:    "Duration of Submit operations (full validation plus quote assignment)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		PatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "assure_patch_duration_seconds",
			Help:    "Duration of Patch operations (merge plus persistence)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCreated records a successfully started application.
func (m *Metrics) IncrementCreated() {
	m.ApplicationsCreated.Inc()
}

// IncrementSubmitted records a successful submission.
func (m *Metrics) IncrementSubmitted() {
	m.ApplicationsSubmitted.Inc()
}

// IncrementValidationFailure records a rejected operation by stage
// (create, patch, submit).
func (m *Metrics) IncrementValidationFailure(operation string) {
	m.ValidationFailures.WithLabelValues(operation).Inc()
}

// ObserveSubmit records the duration of a Submit operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmit(start time.Time) {
	m.SubmitDuration.Observe(time.Since(start).Seconds())
}

// ObservePatch records the duration of a Patch operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObservePatch(start time.Time) {
	m.PatchDuration.Observe(time.Since(start).Seconds())
}
