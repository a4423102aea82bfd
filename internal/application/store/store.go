// Package store persists application records. Each entity section is an
// opaque serialized JSON document on the storage side; assembling and
// merging structured data is the lifecycle layer's job.
package store

import (
	"context"

	dErrors "assure/pkg/domain-errors"
)

// ErrNotFound keeps lookup misses consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "application record not found")

// Data holds the serialized entity sections of a record. A nil section
// means "nothing stored yet" and decodes to an empty object.
type Data struct {
	PrimaryDriver     []byte
	MailingAddress    []byte
	GaragingAddress   []byte
	Vehicles          []byte
	AdditionalDrivers []byte
}

// Record is one persisted application.
type Record struct {
	ID        int64
	Data      Data
	Completed bool
	Quote     *float64
}

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks Store

// Store is the minimal record contract the lifecycle layer requires.
// Implementations overwrite named fields; they never merge.
type Store interface {
	// Create persists initial data and returns the record with its
	// newly assigned id.
	Create(ctx context.Context, data Data) (Record, error)
	// FindByID returns ErrNotFound when the id has no record.
	FindByID(ctx context.Context, id int64) (Record, error)
	// UpdateData overwrites the entity sections of an existing record.
	UpdateData(ctx context.Context, id int64, data Data) error
	// Complete marks the record completed and stores its quote.
	Complete(ctx context.Context, id int64, quote float64) error
}
