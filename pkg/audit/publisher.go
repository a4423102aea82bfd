package audit

import "context"

// Publisher is the sink contract domain services emit into.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// NoopPublisher discards events. Used in tests and when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Emit(context.Context, Event) error { return nil }
