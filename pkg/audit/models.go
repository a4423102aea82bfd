// Package audit captures the key actions of the application lifecycle.
// Events are transport-agnostic so sinks can fan out; the Kafka
// publisher is the production sink and Noop serves tests and local runs.
package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	ApplicationID int64     `json:"applicationId"`
	Action        string    `json:"action"`
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string `json:"requestId,omitempty"`
	// Detail carries action-specific context, e.g. the removed field
	// path or the assigned quote.
	Detail map[string]any `json:"detail,omitempty"`
}

type AuditEvent string

const (
	EventApplicationCreated   AuditEvent = "application_created"
	EventApplicationUpdated   AuditEvent = "application_updated"
	EventFieldRemoved         AuditEvent = "application_field_removed"
	EventApplicationSubmitted AuditEvent = "application_submitted"
)
